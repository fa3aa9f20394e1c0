package dto

// RangeRequest is one range query. Dates use YYYY-MM-DD.
//
// Pointer flags distinguish "absent" from "false" so defaults can apply:
// include_saturday=false, exclude_holidays=true, include_end=true.
type RangeRequest struct {
	Start           string `json:"start" binding:"required" example:"2025-10-01"`
	End             string `json:"end" binding:"required" example:"2025-10-07"`
	IncludeSaturday *bool  `json:"include_saturday,omitempty" example:"false"`
	ExcludeHolidays *bool  `json:"exclude_holidays,omitempty" example:"true"`
	IncludeEnd      *bool  `json:"include_end,omitempty" example:"true"`
	CustomHolidays  string `json:"custom_holidays,omitempty" example:"2025-10-10, 2025-10-13"`
}

// BatchRangeRequest is the body of POST /api/v1/range/batch.
type BatchRangeRequest struct {
	Queries []RangeRequest `json:"queries" binding:"required,min=1,dive"`
}

// NamedHoliday is a built-in holiday paired with its display name.
type NamedHoliday struct {
	Date string `json:"date" example:"2025-10-03"`
	Name string `json:"name" example:"개천절"`
}

// WeekdayCount is the number of occurrences of one weekday in a range.
type WeekdayCount struct {
	Weekday int    `json:"weekday" example:"0"` // 0=Sunday..6=Saturday
	Label   string `json:"label" example:"일"`
	Count   int    `json:"count" example:"1"`
}

// RangeResponse is the result of a range calculation.
//
// HolidayDays counts a holiday falling on a weekend in both WeekendDays and
// HolidayDays.
type RangeResponse struct {
	Start           string         `json:"start" example:"2025-10-01"`
	End             string         `json:"end" example:"2025-10-07"`
	Swapped         bool           `json:"swapped"`
	Notice          string         `json:"notice,omitempty"`
	IncludeEnd      bool           `json:"include_end"`
	CalendarDays    int            `json:"calendar_days" example:"7"`
	BusinessDays    int            `json:"business_days" example:"2"`
	WeekendDays     int            `json:"weekend_days" example:"2"`
	HolidayDays     int            `json:"holiday_days" example:"4"`
	BusinessDates   []string       `json:"business_dates"`
	WeekendDates    []string       `json:"weekend_dates"`
	HolidayDates    []string       `json:"holiday_dates"`
	DefaultHolidays []NamedHoliday `json:"default_holidays"`
	CustomHolidays  []string       `json:"custom_holidays"`
	WeekdayCounts   []WeekdayCount `json:"weekday_counts"`
}

// BatchRangeResponse holds results in request order.
type BatchRangeResponse struct {
	Results []RangeResponse `json:"results"`
}

// OffsetRequest is a business-day offset query.
type OffsetRequest struct {
	Base            string `json:"base" example:"2025-10-01"`
	Offset          int    `json:"offset" example:"3"`
	IncludeSaturday bool   `json:"include_saturday"`
	ExcludeHolidays bool   `json:"exclude_holidays"`
	CustomHolidays  string `json:"custom_holidays,omitempty"`
}

// OffsetResponse is the result of an offset calculation.
//
// Truncated is true when the search stopped at its step limit before reaching
// the requested number of business days; TargetDate is then best effort.
type OffsetResponse struct {
	Base       string `json:"base" example:"2025-10-01"`
	Offset     int    `json:"offset" example:"3"`
	TargetDate string `json:"target_date" example:"2025-10-09"`
	Steps      int    `json:"steps" example:"8"`
	Truncated  bool   `json:"truncated"`
	Trace      string `json:"trace" example:"2025-10-01 기준 3 근무일 이동"`
}

// HolidaysResponse lists built-in holidays.
type HolidaysResponse struct {
	Years    []int          `json:"years" example:"2025"`
	Holidays []NamedHoliday `json:"holidays"`
}
