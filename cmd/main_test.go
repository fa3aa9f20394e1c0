package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/guttosm/bizdays/config"
	"github.com/guttosm/bizdays/internal/domain/dto"
	"github.com/guttosm/bizdays/internal/service"
	"github.com/guttosm/bizdays/internal/storage"
)

type dummyHandler struct{}

func (d dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func newService() service.CalendarService {
	return service.NewCalendarService(storage.NewNoopCalculationLogRepository(), service.Limits{})
}

func mustParse(t *testing.T, args ...string) cliFlags {
	t.Helper()
	fs := flag.NewFlagSet("bizdays", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg := config.Config{Server: config.ServerConfig{Port: "9090"}, Batch: config.BatchConfig{Parallel: 3}}
	f, err := parseFlags(fs, args, cfg)
	if err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return f
}

func TestParseFlags_Defaults(t *testing.T) {
	f := mustParse(t)
	if f.mode != "api" || f.port != "9090" || f.parallel != 3 {
		t.Fatalf("unexpected defaults: %+v", f)
	}
	if f.includeSaturday || !f.excludeHolidays || !f.includeEnd {
		t.Fatalf("unexpected flag defaults: %+v", f)
	}
}

func TestParseFlags_Unknown(t *testing.T) {
	fs := flag.NewFlagSet("bizdays", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := parseFlags(fs, []string{"--nope"}, config.Config{}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestRunRange(t *testing.T) {
	f := mustParse(t, "--mode", "range", "--start", "2025-10-07", "--end", "2025-10-01")
	var out bytes.Buffer
	if err := runRange(context.Background(), newService(), f, &out); err != nil {
		t.Fatalf("runRange: %v", err)
	}
	var resp dto.RangeResponse
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Swapped || resp.CalendarDays != 7 || resp.BusinessDays != 2 || resp.HolidayDays != 4 {
		t.Fatalf("unexpected response: %+v", resp)
	}

	if err := runRange(context.Background(), newService(), mustParse(t, "--start", "2025-10-01"), &out); err == nil {
		t.Fatal("expected error without --end")
	}
}

func TestRunOffset(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"--base", "2025-10-01", "--offset", "3"}, "2025-10-09"},
		{[]string{"--base", "2025-10-01", "--offset", "3", "--exclude-holidays=false"}, "2025-10-06"},
		{[]string{"--base", "2025-10-03", "--offset", "1", "--include-saturday", "--exclude-holidays=false"}, "2025-10-04"},
	}
	for _, tc := range cases {
		var out bytes.Buffer
		if err := runOffset(context.Background(), newService(), mustParse(t, tc.args...), &out); err != nil {
			t.Fatalf("%v: %v", tc.args, err)
		}
		var resp dto.OffsetResponse
		if err := json.Unmarshal(out.Bytes(), &resp); err != nil || resp.TargetDate != tc.want {
			t.Fatalf("%v: got %s err=%v", tc.args, out.String(), err)
		}
	}

	if err := runOffset(context.Background(), newService(), mustParse(t, "--offset", "1"), io.Discard); err == nil {
		t.Fatal("expected error without --base")
	}
}

func TestRunBatch(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv")
	content := "start,end,include_saturday,exclude_holidays,include_end,custom_holidays\n2025-10-01,2025-10-07,,,,\n"
	if err := os.WriteFile(in, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := runBatch(context.Background(), newService(), mustParse(t, "--in", in, "--out", out)); err != nil {
		t.Fatalf("runBatch: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil || !strings.Contains(string(b), "2,2025-10-01,2025-10-07,7,2,2,4,false") {
		t.Fatalf("output=%q err=%v", string(b), err)
	}

	if err := runBatch(context.Background(), newService(), mustParse(t)); err == nil {
		t.Fatal("expected error without --in")
	}
}

func TestStartServerAndShutdown(t *testing.T) {
	srv := startServer(dummyHandler{}, "0") // random port
	if srv == nil {
		t.Fatalf("expected server")
	}

	// Give server a moment to start
	time.Sleep(50 * time.Millisecond)

	shutdownCtx, c := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer c()
	if err := srv.Shutdown(shutdownCtx); err != nil && err != http.ErrServerClosed {
		t.Fatalf("shutdown err: %v", err)
	}
}

func TestGracefulShutdown_SignalPath(t *testing.T) {
	srv := startServer(dummyHandler{}, "0")

	cleaned := make(chan struct{}, 1)
	go func() {
		gracefulShutdown(context.Background(), srv, func() { close(cleaned) })
	}()

	// Give the goroutine time to set up signal notifications
	time.Sleep(50 * time.Millisecond)

	p, _ := os.FindProcess(os.Getpid())
	_ = p.Signal(syscall.SIGTERM)

	select {
	case <-cleaned:
	case <-time.After(2 * time.Second):
		t.Fatalf("cleanup not called after SIGTERM")
	}
}
