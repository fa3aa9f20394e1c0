package calendar

import "time"

const (
	// MaxOffsetSteps bounds the offset walk; a holiday set covering every day
	// of the window would otherwise never let it finish. The walk stops once
	// it has taken more than MaxOffsetSteps steps, so at most
	// MaxOffsetSteps+1 days are visited.
	MaxOffsetSteps = 5000

	// spanMultiplier and spanPadDays size the window over which holidays are
	// loaded: |offset|*3 + 366 calendar days in the direction of travel.
	spanMultiplier = 3
	spanPadDays    = 366
)

// OffsetResult is the outcome of a business-day offset search.
type OffsetResult struct {
	TargetDate time.Time
	// Steps is the number of calendar days walked, skipped days included.
	Steps int
	// Truncated is set when the walk went past MaxOffsetSteps before consuming
	// every requested business day. TargetDate is then the last day reached.
	Truncated bool
}

// FindBusinessDate returns the date that is offset business days away from
// base. A negative offset walks backwards; a zero offset returns base without
// loading any holidays.
func FindBusinessDate(base time.Time, offset int, opts Options) OffsetResult {
	base = truncateToDate(base)
	if offset == 0 {
		return OffsetResult{TargetDate: base}
	}

	direction, remaining, clamped := offsetWalk(offset)

	boundary := base.AddDate(0, 0, direction*(remaining*spanMultiplier+spanPadDays))
	holidays := opts.holidaySet(base, boundary)

	cur, steps := base, 0
	for remaining > 0 {
		cur = cur.AddDate(0, 0, direction)
		steps++
		if !IsWeekend(cur, opts.IncludeSaturday) && !IsHoliday(cur, holidays, opts.ExcludeHolidays) {
			remaining--
		}
		if steps > MaxOffsetSteps {
			break
		}
	}

	return OffsetResult{TargetDate: cur, Steps: steps, Truncated: remaining > 0 || clamped}
}

// offsetWalk splits a non-zero offset into a direction and a day count. The
// count is capped at MaxOffsetSteps+1, the most a walk can consume; clamped
// reports that the cap applied. Comparing before negating keeps math.MinInt
// from overflowing.
func offsetWalk(offset int) (direction, remaining int, clamped bool) {
	const limit = MaxOffsetSteps + 1
	if offset > 0 {
		if offset > limit {
			return 1, limit, true
		}
		return 1, offset, false
	}
	if offset < -limit {
		return -1, limit, true
	}
	return -1, -offset, false
}
