package main

//
//  @title           bizdays API
//  @version         1.0
//  @description     Business-day calendar: range statistics and business-day offsets over the Korean public holiday calendar.
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/bizdays
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        calendar
//  @tag.description Range statistics, business-day offsets and the holiday registry
//
//  @tag.name        history
//  @tag.description Recently computed queries
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/bizdays/config"
	_ "github.com/guttosm/bizdays/docs" // swagger docs
	"github.com/guttosm/bizdays/internal/app"
	"github.com/guttosm/bizdays/internal/batch"
	"github.com/guttosm/bizdays/internal/domain/dto"
	"github.com/guttosm/bizdays/internal/logger"
	"github.com/guttosm/bizdays/internal/service"
)

// cliFlags holds every command-line option; each mode reads the ones it needs.
type cliFlags struct {
	mode string

	start string
	end   string
	base  string

	offset int

	includeSaturday bool
	excludeHolidays bool
	includeEnd      bool
	custom          string

	in       string
	out      string
	parallel int

	port string
}

// parseFlags parses args into cliFlags. Defaults for port and parallel come
// from the loaded configuration.
func parseFlags(fs *flag.FlagSet, args []string, cfg config.Config) (cliFlags, error) {
	var f cliFlags
	fs.StringVar(&f.mode, "mode", "api", "Mode: api, range, offset or batch")
	fs.StringVar(&f.start, "start", "", "Range start date (YYYY-MM-DD)")
	fs.StringVar(&f.end, "end", "", "Range end date (YYYY-MM-DD)")
	fs.StringVar(&f.base, "base", "", "Offset base date (YYYY-MM-DD)")
	fs.IntVar(&f.offset, "offset", 0, "Business days to move from --base (negative walks backwards)")
	fs.BoolVar(&f.includeSaturday, "include-saturday", false, "Treat Saturday as a business day")
	fs.BoolVar(&f.excludeHolidays, "exclude-holidays", true, "Exclude built-in and custom holidays")
	fs.BoolVar(&f.includeEnd, "include-end", true, "Count the end date itself")
	fs.StringVar(&f.custom, "custom", "", "Extra holidays separated by commas or spaces")
	fs.StringVar(&f.in, "in", "", "Batch input CSV")
	fs.StringVar(&f.out, "out", "", "Batch output CSV (default stdout)")
	fs.IntVar(&f.parallel, "parallel", cfg.Batch.Parallel, "Concurrent batch queries (0=auto up to CPU)")
	fs.StringVar(&f.port, "port", cfg.Server.Port, "Port for API mode")
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	return f, nil
}

// runRange computes one range query and prints the JSON response.
func runRange(ctx context.Context, svc service.CalendarService, f cliFlags, out io.Writer) error {
	if f.start == "" || f.end == "" {
		return errors.New("--start and --end are required in range mode")
	}
	resp, err := svc.CalculateRange(ctx, dto.RangeRequest{
		Start:           f.start,
		End:             f.end,
		IncludeSaturday: &f.includeSaturday,
		ExcludeHolidays: &f.excludeHolidays,
		IncludeEnd:      &f.includeEnd,
		CustomHolidays:  f.custom,
	})
	if err != nil {
		return err
	}
	return writeJSON(out, resp)
}

// runOffset finds the business date --offset days away from --base and prints
// the JSON response.
func runOffset(ctx context.Context, svc service.CalendarService, f cliFlags, out io.Writer) error {
	if f.base == "" {
		return errors.New("--base is required in offset mode")
	}
	resp, err := svc.FindBusinessDate(ctx, dto.OffsetRequest{
		Base:            f.base,
		Offset:          f.offset,
		IncludeSaturday: f.includeSaturday,
		ExcludeHolidays: f.excludeHolidays,
		CustomHolidays:  f.custom,
	})
	if err != nil {
		return err
	}
	return writeJSON(out, resp)
}

// runBatch computes every row of --in and writes the result CSV.
func runBatch(ctx context.Context, svc service.CalendarService, f cliFlags) error {
	if f.in == "" {
		return errors.New("--in is required in batch mode")
	}
	n, err := batch.RunFile(ctx, svc, f.in, f.out, f.parallel)
	if err != nil {
		return err
	}
	logger.L().Info().Int("rows", n).Str("in", f.in).Str("out", f.out).Msg("batch completed successfully")
	return nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the bizdays application.
//
// Modes (selected via --mode flag):
//   - api:    Starts the REST API (default).
//   - range:  Prints range statistics for --start/--end as JSON.
//   - offset: Prints the business date --offset days from --base as JSON.
//   - batch:  Computes every query of the --in CSV and writes --out.
//
// The command-line modes log to stderr so stdout carries only results.
func main() {
	ctx := context.Background()

	config.LoadConfig()

	f, err := parseFlags(flag.CommandLine, os.Args[1:], config.AppConfig)
	if err != nil {
		os.Exit(2)
	}

	if f.mode == "api" {
		logger.Init()
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, f.port)
		gracefulShutdown(ctx, server, cleanup)
		return
	}

	logger.InitWithWriter(os.Stderr)

	svc, cleanup, err := app.InitializeService()
	if err != nil {
		logger.L().Fatal().Err(err).Msg("app init error")
	}
	defer cleanup()

	switch f.mode {
	case "range":
		err = runRange(ctx, svc, f, os.Stdout)
	case "offset":
		err = runOffset(ctx, svc, f, os.Stdout)
	case "batch":
		err = runBatch(ctx, svc, f)
	default:
		err = fmt.Errorf("unknown mode %q", f.mode)
	}
	if err != nil {
		cleanup()
		logger.L().Fatal().Err(err).Str("mode", f.mode).Msg("command failed")
	}
}
