package batch

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/guttosm/bizdays/internal/calendar"
	"github.com/guttosm/bizdays/internal/domain/dto"
)

// expectedHeaders enforces strict column ordering for query files.
// If the header doesn't match EXACTLY (order + count), the run must fail.
var expectedHeaders = []string{
	"start",
	"end",
	"include_saturday",
	"exclude_holidays",
	"include_end",
	"custom_holidays",
}

// outputHeaders is the first row of every result file.
var outputHeaders = []string{
	"line",
	"start",
	"end",
	"calendar_days",
	"business_days",
	"weekend_days",
	"holiday_days",
	"swapped",
}

// Query is one parsed row together with its line number in the source file.
type Query struct {
	Line    int
	Request dto.RangeRequest
}

// ReadQueries validates the header and parses every row.
//
// It fails on:
//   - header not matching expected order/length
//   - a row with the wrong column count
//   - an unparseable date or flag
//
// It tolerates:
//   - empty flag cells (the service defaults apply)
//   - empty custom_holidays cells
func ReadQueries(ctx context.Context, in io.Reader) ([]Query, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1 // checked explicitly for a better message
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(expectedHeaders) {
		return nil, fmt.Errorf("invalid header length: expected %d, got %d", len(expectedHeaders), len(header))
	}
	for i, h := range header {
		if strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")) != expectedHeaders[i] {
			return nil, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expectedHeaders[i], h)
		}
	}

	var out []Query
	lineNumber := 1 // header already read

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		if len(rec) != len(expectedHeaders) {
			return nil, fmt.Errorf("invalid column count on line %d: expected %d got %d", lineNumber, len(expectedHeaders), len(rec))
		}

		req, err := recordToRequest(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		out = append(out, Query{Line: lineNumber, Request: req})
	}

	return out, nil
}

// recordToRequest converts a single record (already validated length==6).
//
// Column order:
//
//	0 start             → Start (YYYY-MM-DD, required)
//	1 end               → End (YYYY-MM-DD, required)
//	2 include_saturday  → IncludeSaturday (bool, empty→default)
//	3 exclude_holidays  → ExcludeHolidays (bool, empty→default)
//	4 include_end       → IncludeEnd (bool, empty→default)
//	5 custom_holidays   → CustomHolidays (dates separated by spaces)
func recordToRequest(rec []string) (dto.RangeRequest, error) {
	var req dto.RangeRequest

	req.Start = strings.TrimSpace(rec[0])
	if _, ok := calendar.ParseDate(req.Start); !ok {
		return req, fmt.Errorf("invalid start %q", rec[0])
	}
	req.End = strings.TrimSpace(rec[1])
	if _, ok := calendar.ParseDate(req.End); !ok {
		return req, fmt.Errorf("invalid end %q", rec[1])
	}

	var err error
	if req.IncludeSaturday, err = parseFlag(rec[2]); err != nil {
		return req, fmt.Errorf("invalid include_saturday: %w", err)
	}
	if req.ExcludeHolidays, err = parseFlag(rec[3]); err != nil {
		return req, fmt.Errorf("invalid exclude_holidays: %w", err)
	}
	if req.IncludeEnd, err = parseFlag(rec[4]); err != nil {
		return req, fmt.Errorf("invalid include_end: %w", err)
	}

	req.CustomHolidays = strings.TrimSpace(rec[5])
	return req, nil
}

func parseFlag(s string) (*bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
