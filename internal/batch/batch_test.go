package batch

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/guttosm/bizdays/internal/domain/dto"
	"github.com/guttosm/bizdays/internal/service"
	"github.com/guttosm/bizdays/internal/storage"
)

func newService() service.CalendarService {
	return service.NewCalendarService(storage.NewNoopCalculationLogRepository(), service.Limits{})
}

func TestRun_ComputesInInputOrder(t *testing.T) {
	in := validHeader +
		"2025-10-01,2025-10-07,,,,\n" +
		"2025-10-10,2025-10-06,false,true,true,2025-10-08 2025-10-09\n" +
		"2025-10-04,2025-10-05,true,false,false,\n"

	var out bytes.Buffer
	n, err := Run(context.Background(), newService(), strings.NewReader(in), &out, 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 3 {
		t.Fatalf("rows=%d", n)
	}

	want := strings.Join([]string{
		"line,start,end,calendar_days,business_days,weekend_days,holiday_days,swapped",
		"2,2025-10-01,2025-10-07,7,2,2,4,false",
		"3,2025-10-06,2025-10-10,5,1,0,4,true",
		"4,2025-10-04,2025-10-05,1,1,0,0,false",
	}, "\n") + "\n"
	if out.String() != want {
		t.Fatalf("output mismatch\nwant:\n%s\ngot:\n%s", want, out.String())
	}
}

func TestRun_StructuralErrorWritesNothing(t *testing.T) {
	in := validHeader + "2025-10-01,2025-10-07,,,,\n" + "2025-13-01,2025-10-07,,,,\n"
	var out bytes.Buffer
	_, err := Run(context.Background(), newService(), strings.NewReader(in), &out, 1)
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("expected line 3 error, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("nothing should be written on failure, got %q", out.String())
	}
}

type failingService struct {
	service.CalendarService
}

func (failingService) CalculateRange(context.Context, dto.RangeRequest) (*dto.RangeResponse, error) {
	return nil, errors.New("boom")
}

func TestRun_ServiceErrorCarriesLine(t *testing.T) {
	in := validHeader + "2025-10-01,2025-10-07,,,,\n"
	_, err := Run(context.Background(), failingService{}, strings.NewReader(in), &bytes.Buffer{}, 1)
	if err == nil || !strings.Contains(err.Error(), "line 2: boom") {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "queries.csv")
	outPath := filepath.Join(dir, "results.csv")
	if err := os.WriteFile(inPath, []byte(validHeader+"2025-01-01,2025-01-31,,,,\n"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	n, err := RunFile(context.Background(), newService(), inPath, outPath, 0)
	if err != nil || n != 1 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	b, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	// January 2025: 31 days, 8 weekend days, 4 holidays (01-01, 01-28..30), 19 business days.
	if !strings.Contains(string(b), "2,2025-01-01,2025-01-31,31,19,8,4,false") {
		t.Fatalf("unexpected output %q", string(b))
	}

	if _, err := RunFile(context.Background(), newService(), filepath.Join(dir, "missing.csv"), outPath, 0); err == nil {
		t.Fatal("expected open error")
	}
}

type failingCloser struct {
	bytes.Buffer
}

func (*failingCloser) Close() error { return errors.New("disk full") }

func TestRunFile_CloseErrorIsReported(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "queries.csv")
	if err := os.WriteFile(inPath, []byte(validHeader+"2025-10-01,2025-10-07,,,,\n"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	out := &failingCloser{}
	old := createOutput
	createOutput = func(string) (io.WriteCloser, error) { return out, nil }
	t.Cleanup(func() { createOutput = old })

	n, err := RunFile(context.Background(), newService(), inPath, "results.csv", 1)
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected close error, got n=%d err=%v", n, err)
	}
	if n != 0 {
		t.Fatalf("rows should not be reported on failure, got %d", n)
	}
	if out.Len() == 0 {
		t.Fatal("rows should have been written before close")
	}
}

func TestWorkerCount(t *testing.T) {
	if got := workerCount(100); got != maxParallel {
		t.Fatalf("clamp: %d", got)
	}
	if got := workerCount(3); got != 3 {
		t.Fatalf("explicit: %d", got)
	}
	if got := workerCount(0); got < 1 {
		t.Fatalf("default: %d", got)
	}
}
