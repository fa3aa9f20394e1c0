package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /healthz: Basic liveness probe (always returns 200 OK).
//   - /readyz: Readiness probe. When history storage is enabled it depends on
//     database connectivity; otherwise the service is always ready.
type HealthHandler struct {
	dbPing func() error // nil when history storage is disabled
}

// NewHealthHandler constructs a HealthHandler. Pass nil when no database is
// configured.
func NewHealthHandler(dbPing func() error) *HealthHandler {
	return &HealthHandler{dbPing: dbPing}
}

// Register mounts the health and readiness endpoints into the provided Gin router.
//
// Routes:
//   - GET /healthz: Always returns 200 OK.
//   - GET /readyz: 200 with history "enabled"/"disabled", or 503 when the
//     database cannot be reached.
func (h *HealthHandler) Register(r *gin.Engine) {
	// @Summary      Liveness probe
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /healthz [get]
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// @Summary      Readiness probe
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Failure      503  {object}  map[string]string
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		if h.dbPing == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ready", "history": "disabled"})
			return
		}
		if err := h.dbPing(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "history": "unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "history": "enabled"})
	})
}
