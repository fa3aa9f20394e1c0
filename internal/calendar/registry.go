package calendar

import "sort"

// defaultHolidays is the built-in holiday table (South Korean public holidays),
// keyed by year. Years outside the table contribute no holidays.
var defaultHolidays = map[int][]string{
	2024: {
		"2024-01-01",
		"2024-02-09",
		"2024-02-10",
		"2024-02-11",
		"2024-03-01",
		"2024-05-05",
		"2024-05-06",
		"2024-05-15",
		"2024-06-06",
		"2024-08-15",
		"2024-09-16",
		"2024-09-17",
		"2024-09-18",
		"2024-10-03",
		"2024-10-09",
		"2024-12-25",
	},
	2025: {
		"2025-01-01",
		"2025-01-28",
		"2025-01-29",
		"2025-01-30",
		"2025-03-01",
		"2025-05-05",
		"2025-05-06",
		"2025-06-06",
		"2025-08-15",
		"2025-10-03",
		"2025-10-05",
		"2025-10-06",
		"2025-10-07",
		"2025-12-25",
	},
	2026: {
		"2026-01-01",
		"2026-02-16",
		"2026-02-17",
		"2026-02-18",
		"2026-03-01",
		"2026-04-15",
		"2026-05-05",
		"2026-05-25",
		"2026-06-06",
		"2026-08-15",
		"2026-09-07",
		"2026-09-08",
		"2026-09-09",
		"2026-10-03",
		"2026-10-09",
		"2026-12-25",
	},
}

// holidayNames maps a built-in holiday to its display name.
var holidayNames = map[string]string{
	"2024-01-01": "신정",
	"2024-02-09": "설날",
	"2024-02-10": "설날",
	"2024-02-11": "설날",
	"2024-03-01": "삼일절",
	"2024-05-05": "어린이날",
	"2024-05-06": "어린이날 대체휴무",
	"2024-05-15": "부처님오신날",
	"2024-06-06": "현충일",
	"2024-08-15": "광복절",
	"2024-09-16": "추석",
	"2024-09-17": "추석",
	"2024-09-18": "추석",
	"2024-10-03": "개천절",
	"2024-10-09": "한글날",
	"2024-12-25": "크리스마스",
	"2025-01-01": "신정",
	"2025-01-28": "설날",
	"2025-01-29": "설날",
	"2025-01-30": "설날",
	"2025-03-01": "삼일절",
	"2025-05-05": "어린이날",
	"2025-05-06": "어린이날 대체휴무",
	"2025-06-06": "현충일",
	"2025-08-15": "광복절",
	"2025-10-03": "개천절",
	"2025-10-05": "추석",
	"2025-10-06": "추석",
	"2025-10-07": "추석",
	"2025-12-25": "크리스마스",
	"2026-01-01": "신정",
	"2026-02-16": "설날",
	"2026-02-17": "설날",
	"2026-02-18": "설날",
	"2026-03-01": "삼일절",
	"2026-04-15": "국회의원선거일",
	"2026-05-05": "어린이날",
	"2026-05-25": "부처님오신날",
	"2026-06-06": "현충일",
	"2026-08-15": "광복절",
	"2026-09-07": "추석",
	"2026-09-08": "추석",
	"2026-09-09": "추석",
	"2026-10-03": "개천절",
	"2026-10-09": "한글날",
	"2026-12-25": "크리스마스",
}

// WeekdayLabels are the short display labels for time.Weekday values,
// Sunday first.
var WeekdayLabels = [7]string{"일", "월", "화", "수", "목", "금", "토"}

// HolidaysForYear returns the built-in holidays of year in chronological order.
// Unknown years yield an empty slice.
func HolidaysForYear(year int) []string {
	list := defaultHolidays[year]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// HolidayName returns the display name of a built-in holiday.
func HolidayName(date string) (string, bool) {
	name, ok := holidayNames[date]
	return name, ok
}

// KnownYears returns the years covered by the built-in table, ascending.
func KnownYears() []int {
	years := make([]int, 0, len(defaultHolidays))
	for y := range defaultHolidays {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
