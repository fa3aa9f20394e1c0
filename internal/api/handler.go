package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bizdays/internal/domain/dto"
	"github.com/guttosm/bizdays/internal/middleware"
	"github.com/guttosm/bizdays/internal/service"
)

// Handler provides HTTP handlers for the calendar endpoints.
//
// Responsibilities:
//   - Read and validate query parameters and JSON bodies
//   - Delegate calculations to the calendar service
//   - Map service errors to HTTP status codes (invalid input → 400)
type Handler struct {
	svc service.CalendarService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.CalendarService): service used for every calculation.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.CalendarService) *Handler {
	return &Handler{svc: svc}
}

// GetRange godoc
// @Summary      Range statistics
// @Description  Counts calendar, business, weekend and holiday days between two dates. Start after end is swapped.
// @Tags         calendar
// @Produce      json
// @Param        start             query     string  true   "Start date (YYYY-MM-DD)" example(2025-10-01)
// @Param        end               query     string  true   "End date (YYYY-MM-DD)" example(2025-10-07)
// @Param        include_saturday  query     bool    false  "Treat Saturday as a business day" default(false)
// @Param        exclude_holidays  query     bool    false  "Exclude built-in and custom holidays" default(true)
// @Param        include_end       query     bool    false  "Count the end date itself" default(true)
// @Param        custom_holidays   query     string  false  "Extra holidays separated by commas or spaces"
// @Success      200  {object}  dto.RangeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/range [get]
func (h *Handler) GetRange(c *gin.Context) {
	req := dto.RangeRequest{
		Start:          strings.TrimSpace(c.Query("start")),
		End:            strings.TrimSpace(c.Query("end")),
		CustomHolidays: c.Query("custom_holidays"),
	}
	if req.Start == "" || req.End == "" {
		middleware.AbortWithError(c, http.StatusBadRequest, "start and end are required", nil)
		return
	}

	var err error
	if req.IncludeSaturday, err = queryBool(c, "include_saturday"); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid include_saturday", err)
		return
	}
	if req.ExcludeHolidays, err = queryBool(c, "exclude_holidays"); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid exclude_holidays", err)
		return
	}
	if req.IncludeEnd, err = queryBool(c, "include_end"); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid include_end", err)
		return
	}

	resp, err := h.svc.CalculateRange(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "failed to calculate range", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PostRangeBatch godoc
// @Summary      Batch range statistics
// @Description  Computes several range queries concurrently; results keep request order.
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Param        body  body      dto.BatchRangeRequest  true  "Queries"
// @Success      200   {object}  dto.BatchRangeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/range/batch [post]
func (h *Handler) PostRangeBatch(c *gin.Context) {
	var body dto.BatchRangeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	results, err := h.svc.CalculateRanges(c.Request.Context(), body.Queries)
	if err != nil {
		h.fail(c, "failed to calculate ranges", err)
		return
	}
	c.JSON(http.StatusOK, dto.BatchRangeResponse{Results: results})
}

// GetOffset godoc
// @Summary      Business-day offset
// @Description  Finds the date that is N business days away from base (negative N walks backwards).
// @Tags         calendar
// @Produce      json
// @Param        base              query     string  true   "Base date (YYYY-MM-DD)" example(2025-10-01)
// @Param        offset            query     int     true   "Business days to move" example(3)
// @Param        include_saturday  query     bool    false  "Treat Saturday as a business day" default(false)
// @Param        exclude_holidays  query     bool    false  "Exclude built-in and custom holidays" default(true)
// @Param        custom_holidays   query     string  false  "Extra holidays separated by commas or spaces"
// @Success      200  {object}  dto.OffsetResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/offset [get]
func (h *Handler) GetOffset(c *gin.Context) {
	base := strings.TrimSpace(c.Query("base"))
	if base == "" {
		middleware.AbortWithError(c, http.StatusBadRequest, "base is required", nil)
		return
	}
	offset, err := strconv.Atoi(strings.TrimSpace(c.Query("offset")))
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "offset must be an integer", err)
		return
	}

	includeSaturday, err := queryBool(c, "include_saturday")
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid include_saturday", err)
		return
	}
	excludeHolidays, err := queryBool(c, "exclude_holidays")
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid exclude_holidays", err)
		return
	}

	resp, err := h.svc.FindBusinessDate(c.Request.Context(), dto.OffsetRequest{
		Base:            base,
		Offset:          offset,
		IncludeSaturday: includeSaturday != nil && *includeSaturday,
		ExcludeHolidays: excludeHolidays == nil || *excludeHolidays,
		CustomHolidays:  c.Query("custom_holidays"),
	})
	if err != nil {
		h.fail(c, "failed to find business date", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetHolidays godoc
// @Summary      Built-in holidays
// @Description  Lists the built-in holidays with their names, for one year or every known year.
// @Tags         calendar
// @Produce      json
// @Param        year  query     int  false  "Year" example(2025)
// @Success      200   {object}  dto.HolidaysResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/holidays [get]
func (h *Handler) GetHolidays(c *gin.Context) {
	year := 0
	if s := strings.TrimSpace(c.Query("year")); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil || y < 1 {
			middleware.AbortWithError(c, http.StatusBadRequest, "invalid year", err)
			return
		}
		year = y
	}
	c.JSON(http.StatusOK, h.svc.Holidays(year))
}

// GetHistory godoc
// @Summary      Calculation history
// @Description  Returns the most recent calculations (empty when history storage is disabled).
// @Tags         calendar
// @Produce      json
// @Param        limit  query     int  false  "Maximum entries" example(20)
// @Success      200    {array}   models.CalculationLog
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /api/v1/history [get]
func (h *Handler) GetHistory(c *gin.Context) {
	limit := 0
	if s := strings.TrimSpace(c.Query("limit")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			middleware.AbortWithError(c, http.StatusBadRequest, "limit must be an integer", err)
			return
		}
		limit = n
	}

	entries, err := h.svc.History(c.Request.Context(), limit)
	if err != nil {
		// rendered by middleware.ErrorHandler
		_ = c.Error(dto.NewErrorResponse("failed to fetch history", err))
		return
	}
	c.JSON(http.StatusOK, entries)
}

// fail maps a service error to a response: invalid input is a 400, anything
// else a 500.
func (h *Handler) fail(c *gin.Context, message string, err error) {
	if errors.Is(err, service.ErrInvalidInput) {
		middleware.AbortWithError(c, http.StatusBadRequest, message, err)
		return
	}
	middleware.AbortWithError(c, http.StatusInternalServerError, message, err)
}

// queryBool reads an optional boolean query parameter; nil means absent.
func queryBool(c *gin.Context, key string) (*bool, error) {
	s, ok := c.GetQuery(key)
	if !ok || strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &v, nil
}
