package app

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bizdays/config"
	"github.com/guttosm/bizdays/internal/api"
	"github.com/guttosm/bizdays/internal/logger"
	"github.com/guttosm/bizdays/internal/middleware"
	"github.com/guttosm/bizdays/internal/service"
	"github.com/guttosm/bizdays/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the calendar service via InitializeService().
//   - Applies the per-IP rate limit from config.
//   - Creates the HTTP handler layer and configures the Gin router.
//   - Registers health and readiness probes; readiness pings the database only
//     when history storage is enabled.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig
	svc, db, cleanup, err := build(cfg)
	if err != nil {
		return nil, nil, err
	}

	middleware.ConfigureRateLimit(cfg.Server.RateLimit, time.Minute)

	handler := api.NewHandler(svc)
	router := api.NewRouter(handler)

	var ping func() error
	if db != nil {
		ping = db.Ping
	}
	api.NewHealthHandler(ping).Register(router)

	return router, cleanup, nil
}

// InitializeService builds the calendar service without the HTTP layer. The
// command-line modes use it directly.
func InitializeService() (service.CalendarService, func(), error) {
	svc, _, cleanup, err := build(config.AppConfig)
	if err != nil {
		return nil, nil, err
	}
	return svc, cleanup, nil
}

// build wires the history repository and the service. db is nil when history
// storage is disabled.
func build(cfg config.Config) (service.CalendarService, *sql.DB, func(), error) {
	limits := service.Limits{
		BatchParallel:   cfg.Batch.Parallel,
		BatchMaxQueries: cfg.Batch.MaxQueries,
		HistoryLimit:    cfg.History.Limit,
	}

	if !cfg.Postgres.Enabled {
		logger.L().Info().Msg("history storage disabled")
		svc := service.NewCalendarService(storage.NewNoopCalculationLogRepository(), limits)
		return svc, nil, func() {}, nil
	}

	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	svc := service.NewCalendarService(storage.NewCalculationLogRepository(db), limits)
	cleanup := func() {
		_ = db.Close()
	}
	return svc, db, cleanup, nil
}
