package calendar

import "time"

// HolidaySet is a membership set of canonical date strings.
type HolidaySet map[string]struct{}

// Has reports whether date (YYYY-MM-DD) is in the set.
func (s HolidaySet) Has(date string) bool {
	_, ok := s[date]
	return ok
}

// BuildHolidaySet unions the built-in holidays of every year between start and
// end (in either order, inclusive) with the custom dates found in customText.
func BuildHolidaySet(start, end time.Time, customText string) HolidaySet {
	yearStart, yearEnd := start.Year(), end.Year()
	if yearStart > yearEnd {
		yearStart, yearEnd = yearEnd, yearStart
	}

	set := HolidaySet{}
	for year := yearStart; year <= yearEnd; year++ {
		for _, d := range defaultHolidays[year] {
			set[d] = struct{}{}
		}
	}
	for _, d := range ParseCustomHolidays(customText) {
		set[d] = struct{}{}
	}
	return set
}

// IsWeekend reports whether d is a weekend day.
//
// includeSaturday means Saturday is treated as a working day: only Sunday is
// then a weekend. Otherwise both Saturday and Sunday are.
func IsWeekend(d time.Time, includeSaturday bool) bool {
	wd := d.Weekday()
	if includeSaturday {
		return wd == time.Sunday
	}
	return wd == time.Sunday || wd == time.Saturday
}

// IsHoliday reports whether d is a holiday. It is always false when
// excludeHolidays is off, whatever the set contains.
func IsHoliday(d time.Time, set HolidaySet, excludeHolidays bool) bool {
	return excludeHolidays && set.Has(FormatDate(d))
}
