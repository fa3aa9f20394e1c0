// Package batch computes range statistics for every row of a CSV file.
package batch

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/bizdays/internal/domain/dto"
	"github.com/guttosm/bizdays/internal/logger"
	"github.com/guttosm/bizdays/internal/service"
)

// maxParallel caps the worker count regardless of the requested value.
const maxParallel = 32

// Result pairs a source line with its computed statistics.
type Result struct {
	Line     int
	Response dto.RangeResponse
}

// Run reads queries from in, computes them concurrently and writes one output
// row per query to out, in input order.
//
// Behavior:
//   - parallel <= 0 means min(NumCPU, maxParallel); larger values are clamped.
//   - The first failing query cancels the rest and its error (with the line
//     number) is returned; nothing is written in that case.
func Run(ctx context.Context, svc service.CalendarService, in io.Reader, out io.Writer, parallel int) (int, error) {
	log := logger.Component("batch")
	start := time.Now()

	queries, err := ReadQueries(ctx, in)
	if err != nil {
		return 0, err
	}

	workers := workerCount(parallel)
	log.Info().Int("queries", len(queries)).Int("max_parallel", workers).Msg("batch start")

	results, err := compute(ctx, svc, queries, workers)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("batch failed")
		return 0, err
	}

	if err := WriteResults(out, results); err != nil {
		return 0, err
	}

	log.Info().Int("rows", len(results)).Dur("elapsed", time.Since(start)).Msg("batch done")
	return len(results), nil
}

// createOutput is an indirection for tests; defaults to os.Create.
var createOutput = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// RunFile is Run over file paths. An empty outPath writes to stdout. A failure
// to close the output file is reported even when every row was written.
func RunFile(ctx context.Context, svc service.CalendarService, inPath, outPath string, parallel int) (n int, err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return 0, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = in.Close() }()

	if outPath == "" {
		return Run(ctx, svc, in, os.Stdout, parallel)
	}

	f, err := createOutput(outPath)
	if err != nil {
		return 0, fmt.Errorf("create: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			n, err = 0, fmt.Errorf("close %s: %w", outPath, cerr)
		}
	}()

	return Run(ctx, svc, in, f, parallel)
}

func compute(ctx context.Context, svc service.CalendarService, queries []Query, workers int) ([]Result, error) {
	results := make([]Result, len(queries))

	// errgroup will cancel siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, q := range queries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			resp, err := svc.CalculateRange(gctx, q.Request)
			if err != nil {
				return fmt.Errorf("line %d: %w", q.Line, err)
			}
			results[i] = Result{Line: q.Line, Response: *resp}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// WriteResults writes the output header followed by one row per result.
func WriteResults(out io.Writer, results []Result) error {
	w := csv.NewWriter(out)
	if err := w.Write(outputHeaders); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range results {
		resp := r.Response
		row := []string{
			strconv.Itoa(r.Line),
			resp.Start,
			resp.End,
			strconv.Itoa(resp.CalendarDays),
			strconv.Itoa(resp.BusinessDays),
			strconv.Itoa(resp.WeekendDays),
			strconv.Itoa(resp.HolidayDays),
			strconv.FormatBool(resp.Swapped),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write line %d: %w", r.Line, err)
		}
	}
	w.Flush()
	return w.Error()
}

func workerCount(parallel int) int {
	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}
	if parallel > maxParallel {
		parallel = maxParallel
	}
	return parallel
}
