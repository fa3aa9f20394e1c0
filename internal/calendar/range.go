package calendar

import "time"

// Options carries the weekend and holiday flags shared by range and offset
// calculations.
type Options struct {
	// IncludeSaturday treats Saturday as a business day.
	IncludeSaturday bool
	// ExcludeHolidays removes holidays (built-in and custom) from business days.
	ExcludeHolidays bool
	// CustomHolidays is free text with extra YYYY-MM-DD dates.
	CustomHolidays string
}

// holidaySet returns the set used for a query between start and end, or an
// empty set when holiday exclusion is off.
func (o Options) holidaySet(start, end time.Time) HolidaySet {
	if !o.ExcludeHolidays {
		return HolidaySet{}
	}
	return BuildHolidaySet(start, end, o.CustomHolidays)
}

// RangeStats aggregates the classification of every day in a scanned interval.
//
// A day that is both a weekend and a holiday is counted in WeekendDays and in
// HolidayDays, so the three category totals may exceed CalendarDays.
type RangeStats struct {
	CalendarDays  int
	BusinessDays  int
	WeekendDays   int
	HolidayDays   int
	BusinessDates []string
	WeekendDates  []string
	HolidayDates  []string
	WeekdayCounts [7]int // indexed by time.Weekday
}

// CalculateRange scans the days from start to end and classifies each one.
//
// The caller guarantees start <= end. When includeEnd is false the end date
// itself is not visited.
//
// Parameters:
//   - start, end: calendar dates bounding the scan.
//   - opts: weekend and holiday flags plus custom holiday text.
//   - includeEnd: whether end is part of the interval.
//
// Returns:
//   - RangeStats: counts and chronological date lists per category.
func CalculateRange(start, end time.Time, opts Options, includeEnd bool) RangeStats {
	start, end = truncateToDate(start), truncateToDate(end)
	holidays := opts.holidaySet(start, end)

	stats := RangeStats{
		BusinessDates: []string{},
		WeekendDates:  []string{},
		HolidayDates:  []string{},
	}

	within := func(cur time.Time) bool {
		if includeEnd {
			return !cur.After(end)
		}
		return cur.Before(end)
	}

	for cur := start; within(cur); cur = cur.AddDate(0, 0, 1) {
		ds := FormatDate(cur)
		weekend := IsWeekend(cur, opts.IncludeSaturday)
		holiday := IsHoliday(cur, holidays, opts.ExcludeHolidays)

		stats.CalendarDays++
		stats.WeekdayCounts[cur.Weekday()]++

		if !weekend && !holiday {
			stats.BusinessDays++
			stats.BusinessDates = append(stats.BusinessDates, ds)
			continue
		}
		if weekend {
			stats.WeekendDays++
			stats.WeekendDates = append(stats.WeekendDates, ds)
		}
		if holiday {
			stats.HolidayDays++
			stats.HolidayDates = append(stats.HolidayDates, ds)
		}
	}

	return stats
}
