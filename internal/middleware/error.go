package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bizdays/internal/domain/dto"
	"github.com/guttosm/bizdays/internal/logger"
)

// ErrorHandler turns errors attached with c.Error into a JSON response once
// the handler chain has finished, unless a response was already written.
//
// An attached dto.ErrorResponse is returned as is; any other error becomes a
// 500 with a generic message.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}
	last := c.Errors.Last().Err

	rid, _ := c.Get(RequestIDKey)
	logger.L().Error().
		Err(last).
		Str("request_id", toString(rid)).
		Str("path", c.Request.URL.Path).
		Msg("request error")

	if c.Writer.Written() {
		return
	}

	var resp dto.ErrorResponse
	if errors.As(last, &resp) {
		c.JSON(http.StatusInternalServerError, resp)
		return
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", last))
}

// AbortWithError stops the chain and writes a dto.ErrorResponse with status.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
