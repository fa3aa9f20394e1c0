package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/bizdays/internal/calendar"
	"github.com/guttosm/bizdays/internal/domain/dto"
	"github.com/guttosm/bizdays/internal/domain/models"
	"github.com/guttosm/bizdays/internal/logger"
	"github.com/guttosm/bizdays/internal/storage"
)

// ErrInvalidInput marks errors caused by caller input (bad dates, oversized
// batches, out-of-range offsets). Handlers map it to 400.
var ErrInvalidInput = errors.New("invalid input")

const swapNotice = "시작일이 종료일보다 늦어 날짜를 교환했습니다."

// CalendarService defines the calendar operations exposed to transports.
// It owns the caller-side concerns of the engine: parsing and validating
// input, ordering range bounds, annotating holidays and recording history.
type CalendarService interface {
	CalculateRange(ctx context.Context, req dto.RangeRequest) (*dto.RangeResponse, error)
	CalculateRanges(ctx context.Context, reqs []dto.RangeRequest) ([]dto.RangeResponse, error)
	FindBusinessDate(ctx context.Context, req dto.OffsetRequest) (*dto.OffsetResponse, error)
	Holidays(year int) dto.HolidaysResponse
	History(ctx context.Context, limit int) ([]models.CalculationLog, error)
}

// Limits bounds the work a single call may request.
type Limits struct {
	BatchParallel   int // concurrent range calculations in CalculateRanges
	BatchMaxQueries int // maximum queries per CalculateRanges call
	HistoryLimit    int // default and maximum page size for History
}

type calendarService struct {
	repo   storage.CalculationLogRepository
	limits Limits
}

// now is an indirection for tests.
var now = time.Now

// NewCalendarService wires the service to its history repository.
// Zero limits fall back to 4 workers, 100 queries and 20 history rows.
func NewCalendarService(repo storage.CalculationLogRepository, limits Limits) CalendarService {
	if limits.BatchParallel < 1 {
		limits.BatchParallel = 4
	}
	if limits.BatchMaxQueries < 1 {
		limits.BatchMaxQueries = 100
	}
	if limits.HistoryLimit < 1 {
		limits.HistoryLimit = 20
	}
	return &calendarService{repo: repo, limits: limits}
}

func (s *calendarService) CalculateRange(ctx context.Context, req dto.RangeRequest) (*dto.RangeResponse, error) {
	resp, err := computeRange(req)
	if err != nil {
		return nil, err
	}
	s.record(ctx, models.KindRange, req, resp)
	return resp, nil
}

// CalculateRanges computes every query concurrently and returns the results in
// request order. The first invalid query cancels the rest.
func (s *calendarService) CalculateRanges(ctx context.Context, reqs []dto.RangeRequest) ([]dto.RangeResponse, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: at least one query is required", ErrInvalidInput)
	}
	if len(reqs) > s.limits.BatchMaxQueries {
		return nil, fmt.Errorf("%w: %d queries exceeds the limit of %d", ErrInvalidInput, len(reqs), s.limits.BatchMaxQueries)
	}

	out := make([]dto.RangeResponse, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limits.BatchParallel)

	for i := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			resp, err := computeRange(reqs[i])
			if err != nil {
				return fmt.Errorf("query %d: %w", i+1, err)
			}
			out[i] = *resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.L().Debug().Int("queries", len(reqs)).Msg("range batch computed")
	return out, nil
}

func (s *calendarService) FindBusinessDate(ctx context.Context, req dto.OffsetRequest) (*dto.OffsetResponse, error) {
	base, ok := calendar.ParseDate(req.Base)
	if !ok {
		return nil, fmt.Errorf("%w: base %q, expected YYYY-MM-DD", ErrInvalidInput, req.Base)
	}
	// Offsets beyond the step limit can never complete.
	if req.Offset > calendar.MaxOffsetSteps || req.Offset < -calendar.MaxOffsetSteps {
		return nil, fmt.Errorf("%w: offset must be within ±%d", ErrInvalidInput, calendar.MaxOffsetSteps)
	}

	res := calendar.FindBusinessDate(base, req.Offset, calendar.Options{
		IncludeSaturday: req.IncludeSaturday,
		ExcludeHolidays: req.ExcludeHolidays,
		CustomHolidays:  req.CustomHolidays,
	})
	if res.Truncated {
		logger.L().Warn().
			Str("base", req.Base).
			Int("offset", req.Offset).
			Int("steps", res.Steps).
			Msg("business date search hit step limit")
	}

	direction := "이동"
	if req.Offset < 0 {
		direction = "역방향 이동"
	}
	resp := &dto.OffsetResponse{
		Base:       calendar.FormatDate(base),
		Offset:     req.Offset,
		TargetDate: calendar.FormatDate(res.TargetDate),
		Steps:      res.Steps,
		Truncated:  res.Truncated,
		Trace:      fmt.Sprintf("%s 기준 %d 근무일 %s", calendar.FormatDate(base), req.Offset, direction),
	}
	s.record(ctx, models.KindOffset, req, resp)
	return resp, nil
}

// Holidays lists built-in holidays for year, or for every known year when
// year is 0. Unknown years yield an empty list.
func (s *calendarService) Holidays(year int) dto.HolidaysResponse {
	years := calendar.KnownYears()
	if year != 0 {
		years = []int{year}
	}
	resp := dto.HolidaysResponse{Years: years, Holidays: []dto.NamedHoliday{}}
	for _, y := range years {
		for _, d := range calendar.HolidaysForYear(y) {
			name, _ := calendar.HolidayName(d)
			resp.Holidays = append(resp.Holidays, dto.NamedHoliday{Date: d, Name: name})
		}
	}
	return resp
}

func (s *calendarService) History(ctx context.Context, limit int) ([]models.CalculationLog, error) {
	if limit < 1 || limit > s.limits.HistoryLimit {
		limit = s.limits.HistoryLimit
	}
	return s.repo.ListRecentCalculations(ctx, limit)
}

// record stores a calculation in the history. Failures are logged only: the
// calculation itself already succeeded.
func (s *calendarService) record(ctx context.Context, kind models.CalculationKind, req, resp any) {
	reqJSON, err := json.Marshal(req)
	if err != nil {
		logger.L().Warn().Err(err).Msg("marshal calculation request")
		return
	}
	respJSON, err := json.Marshal(resp)
	if err != nil {
		logger.L().Warn().Err(err).Msg("marshal calculation result")
		return
	}

	entry := models.CalculationLog{
		ID:        uuid.NewString(),
		Kind:      kind,
		Request:   reqJSON,
		Result:    respJSON,
		CreatedAt: now().UTC(),
	}
	if err := s.repo.InsertCalculation(ctx, entry); err != nil {
		logger.L().Warn().Err(err).Str("kind", string(kind)).Msg("calculation history not saved")
	}
}

// computeRange validates a range request and runs the engine. Start after end
// is swapped and reported.
func computeRange(req dto.RangeRequest) (*dto.RangeResponse, error) {
	start, ok := calendar.ParseDate(req.Start)
	if !ok {
		return nil, fmt.Errorf("%w: start %q, expected YYYY-MM-DD", ErrInvalidInput, req.Start)
	}
	end, ok := calendar.ParseDate(req.End)
	if !ok {
		return nil, fmt.Errorf("%w: end %q, expected YYYY-MM-DD", ErrInvalidInput, req.End)
	}

	resp := &dto.RangeResponse{}
	if start.After(end) {
		start, end = end, start
		resp.Swapped = true
		resp.Notice = swapNotice
	}

	opts := calendar.Options{
		IncludeSaturday: boolOr(req.IncludeSaturday, false),
		ExcludeHolidays: boolOr(req.ExcludeHolidays, true),
		CustomHolidays:  req.CustomHolidays,
	}
	includeEnd := boolOr(req.IncludeEnd, true)
	stats := calendar.CalculateRange(start, end, opts, includeEnd)

	resp.Start = calendar.FormatDate(start)
	resp.End = calendar.FormatDate(end)
	resp.IncludeEnd = includeEnd
	resp.CalendarDays = stats.CalendarDays
	resp.BusinessDays = stats.BusinessDays
	resp.WeekendDays = stats.WeekendDays
	resp.HolidayDays = stats.HolidayDays
	resp.BusinessDates = stats.BusinessDates
	resp.WeekendDates = stats.WeekendDates
	resp.HolidayDates = stats.HolidayDates
	resp.DefaultHolidays, resp.CustomHolidays = splitHolidays(stats.HolidayDates, req.CustomHolidays)

	resp.WeekdayCounts = make([]dto.WeekdayCount, len(stats.WeekdayCounts))
	for wd, n := range stats.WeekdayCounts {
		resp.WeekdayCounts[wd] = dto.WeekdayCount{Weekday: wd, Label: calendar.WeekdayLabels[wd], Count: n}
	}
	return resp, nil
}

// splitHolidays separates the holidays of a range into built-in ones (with
// their names) and those that came from the custom text. A date listed in
// both goes to the custom list.
func splitHolidays(holidayDates []string, customText string) ([]dto.NamedHoliday, []string) {
	custom := map[string]struct{}{}
	for _, d := range calendar.ParseCustomHolidays(customText) {
		custom[d] = struct{}{}
	}

	defaults := []dto.NamedHoliday{}
	customs := []string{}
	for _, d := range holidayDates {
		if _, ok := custom[d]; ok {
			customs = append(customs, d)
			continue
		}
		name, _ := calendar.HolidayName(d)
		defaults = append(defaults, dto.NamedHoliday{Date: d, Name: name})
	}
	return defaults, customs
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
