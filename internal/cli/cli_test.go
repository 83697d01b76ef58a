package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/briandowns/spinner"
	"github.com/golang/mock/gomock"

	"github.com/agbru/histcalc/internal/cli/mocks"
	"github.com/agbru/histcalc/internal/config"
	apperrors "github.com/agbru/histcalc/internal/errors"
	"github.com/agbru/histcalc/internal/histogram"
	"github.com/agbru/histcalc/internal/metrics"
	"github.com/agbru/histcalc/internal/orchestration"
	"github.com/agbru/histcalc/internal/sysmon"
	"github.com/agbru/histcalc/internal/ui"
)

func TestMain(m *testing.M) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	os.Exit(m.Run())
}

func TestCLIProgressReporter(t *testing.T) {
	// Not parallel: replaces the package-level spinner factory.
	ctrl := gomock.NewController(t)
	mockSpinner := mocks.NewMockSpinner(ctrl)

	orig := newSpinner
	newSpinner = func(...spinner.Option) Spinner { return mockSpinner }
	defer func() { newSpinner = orig }()

	gomock.InOrder(
		mockSpinner.EXPECT().UpdateSuffix(" run 1"),
		mockSpinner.EXPECT().Start(),
		mockSpinner.EXPECT().Stop(),
		mockSpinner.EXPECT().UpdateSuffix(" run 2"),
		mockSpinner.EXPECT().Start(),
		mockSpinner.EXPECT().Stop(),
	)

	var buf bytes.Buffer
	r := NewCLIProgressReporter(&buf, false)

	r.RunStarted(orchestration.ReferenceThreads, 0)
	r.RunCompleted(orchestration.RunResult{Threads: orchestration.ReferenceThreads, Duration: 1500 * time.Microsecond})
	r.RunStarted(8, 1)
	r.RunCompleted(orchestration.RunResult{Threads: 8, Loop: 1, Duration: 250 * time.Microsecond})

	want := "\nCreating the reference histogram.\n" +
		"Single-threaded creation took 1.500 msec\n" +
		"\nCreating histogram using 8 threads.\n" +
		"8 threads took 0.250 ms\n"
	if got := buf.String(); got != want {
		t.Errorf("output mismatch\ngot:  %q\nwant: %q", got, want)
	}
}

func TestCLIProgressReporterVerbose(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := NewCLIProgressReporter(&buf, true)

	// The real spinner stays silent when its writer is not a terminal.
	r.RunStarted(2, 0)
	r.RunCompleted(orchestration.RunResult{
		Threads:     2,
		Duration:    time.Millisecond,
		Fingerprint: 0xdeadbeef,
		Memory:      metrics.MemorySnapshot{TotalAlloc: 2048, NumGC: 1},
	})

	out := buf.String()
	for _, want := range []string{"2 threads took 1.000 ms", "fingerprint 00000000deadbeef", "allocated 2.0 KiB", "1 GC cycles"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestCLIProgressReporterCompletedWithoutStart(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := NewCLIProgressReporter(&buf, false)
	r.RunCompleted(orchestration.RunResult{Threads: 4, Duration: time.Millisecond})
	if !strings.Contains(buf.String(), "4 threads took") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func sampleReport() orchestration.Report {
	return orchestration.Report{
		N:       10,
		Buckets: 5,
		Reference: orchestration.ConfigurationSummary{
			Threads: orchestration.ReferenceThreads,
			Runs:    []time.Duration{4 * time.Millisecond, 6 * time.Millisecond},
		},
		Parallel: []orchestration.ConfigurationSummary{
			{Threads: 1, Runs: []time.Duration{5 * time.Millisecond, 5 * time.Millisecond}},
			{Threads: 4, Runs: []time.Duration{time.Millisecond, 3 * time.Millisecond}},
			{Threads: 8, Runs: []time.Duration{2 * time.Millisecond, 2 * time.Millisecond}},
		},
		Histogram: histogram.Histogram{2, 2, 2, 2, 2},
	}
}

func TestSummaryRows(t *testing.T) {
	t.Parallel()
	rows, fastest := SummaryRows(sampleReport())

	want := [][]string{
		{"reference", "2", "4.000", "5.000", "1.00x"},
		{"1", "2", "5.000", "5.000", "0.80x"},
		{"4", "2", "1.000", "2.000", "4.00x"},
		{"8", "2", "2.000", "2.000", "2.00x"},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		if strings.Join(rows[i], "|") != strings.Join(want[i], "|") {
			t.Errorf("row %d = %v, want %v", i, rows[i], want[i])
		}
	}
	if fastest != 2 {
		t.Errorf("fastest row = %d, want 2", fastest)
	}
}

func TestSummaryRowsReferenceOnly(t *testing.T) {
	t.Parallel()
	rows, fastest := SummaryRows(orchestration.Report{})
	if len(rows) != 1 || fastest != -1 {
		t.Errorf("got %d rows, fastest %d", len(rows), fastest)
	}
	if rows[0][4] != "-" {
		t.Errorf("speedup without runs = %q, want \"-\"", rows[0][4])
	}
}

func TestPresentSummary(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		verbose  bool
		contains []string
		excludes []string
	}{
		{
			name:     "default",
			contains: []string{"--- Sweep Summary ---", "10 values, 5 buckets", "Threads", "Speedup", "reference", "4.00x"},
			excludes: []string{"Fingerprint"},
		},
		{
			name:     "verbose",
			verbose:  true,
			contains: []string{"Reference histogram: [2 2 2 2 2]", "Fingerprint:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			CLIResultPresenter{Verbose: tt.verbose}.PresentSummary(sampleReport(), &buf)
			out := buf.String()
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output missing %q:\n%s", s, out)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(out, s) {
					t.Errorf("output should not contain %q", s)
				}
			}
		})
	}
}

func TestPresentFailure(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"consistency", apperrors.ConsistencyError{Expected: 10, Observed: 7}, "3 values were lost or counted twice."},
		{"mismatch", apperrors.MismatchError{Threads: 4, Discrepancy: 2}, "2 errors between the reference and computed results (4 threads)."},
		{"worker", apperrors.WrapError(apperrors.WorkerError{Worker: 3, Cause: errors.New("index out of range")}, "8-thread run 0"), "Worker 3 failed: index out of range"},
		{"canceled", apperrors.WrapError(context.Canceled, "sweep interrupted"), "Sweep stopped: sweep interrupted: context canceled"},
		{"timeout", apperrors.TimeoutError{Operation: "sweep", Limit: time.Second, Cause: context.DeadlineExceeded}, `Sweep stopped: operation "sweep" timed out after 1s`},
		{"other", errors.New("boom"), "Error: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			CLIResultPresenter{}.PresentFailure(tt.err, &buf)
			out := buf.String()
			if !strings.Contains(out, tt.want) {
				t.Errorf("output %q missing %q", out, tt.want)
			}
			if !strings.Contains(out, "Global Status: Failure.") {
				t.Errorf("output %q missing global status", out)
			}
		})
	}
}

func TestDisplayMemoryStats(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	DisplayMemoryStats(1024, 3*1024*1024, 7, 2_500_000, &buf)
	out := buf.String()
	for _, want := range []string{"Heap in use:     1.0 KiB", "Total allocated: 3.0 MiB", "GC cycles:       7", "GC pause total:  2.50ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestPrintExecutionConfig(t *testing.T) {
	t.Parallel()
	cfg := config.AppConfig{
		N:       1000,
		Buckets: 5,
		Threads: []int{1, 2, 4},
		Loops:   4,
		Seed:    7,
		Timeout: time.Minute,
	}
	var buf bytes.Buffer
	PrintExecutionConfig(cfg, &buf)
	out := buf.String()
	for _, want := range []string{"1000 values over 5 buckets (seed 7)", "timeout 1m0s", "Thread counts: 1,2,4, 4 runs each.", "GOMAXPROCS", "CPU features: "} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestPrintExecutionConfigWithoutTimeout(t *testing.T) {
	t.Parallel()
	cfg := config.AppConfig{N: 10, Buckets: 5, Threads: []int{1}, Loops: 1}
	var buf bytes.Buffer
	PrintExecutionConfig(cfg, &buf)
	if !strings.Contains(buf.String(), "(seed 0), no timeout.") {
		t.Errorf("output %q should state that no deadline applies", buf.String())
	}
}

func TestPrintSystemSample(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	PrintSystemSample(sysmon.Stats{CPUPercent: 12.5, MemPercent: 40, LogicalCores: 8}, &buf)
	if want := "System load: cpu 12.5%, mem 40.0%, 8 logical cores\n"; buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestCPUFeatures(t *testing.T) {
	t.Parallel()
	if CPUFeatures() == "" {
		t.Error("CPUFeatures() should never be empty")
	}
}
