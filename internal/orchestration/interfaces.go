//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"io"
	"time"

	"github.com/agbru/histcalc/internal/metrics"
)

// ReferenceThreads is the thread count reported for reference runs.
const ReferenceThreads = 0

// RunResult describes one completed run.
type RunResult struct {
	// Threads is the worker count, ReferenceThreads for the reference.
	Threads int
	// Loop is the zero-based repetition index.
	Loop int
	// Duration is the wall-clock time of the computation alone.
	Duration time.Duration
	// Fingerprint is the xxh3 digest of the resulting histogram.
	Fingerprint uint64
	// Memory is the allocation activity during the run. It is only filled
	// when memory statistics are enabled.
	Memory metrics.MemorySnapshot
}

// ProgressReporter receives sweep progress. Calls arrive from the sweep
// goroutine, one run at a time.
type ProgressReporter interface {
	// RunStarted is called before a run begins.
	RunStarted(threads, loop int)
	// RunCompleted is called after a run has been verified.
	RunCompleted(result RunResult)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// RunStarted does nothing.
func (NullProgressReporter) RunStarted(int, int) {}

// RunCompleted does nothing.
func (NullProgressReporter) RunCompleted(RunResult) {}

// MetricsRecorder receives per-run measurements. metrics.RunMetrics
// implements it.
type MetricsRecorder interface {
	ObserveRun(threads, n int, d time.Duration)
	ObserveFailure(kind string)
}

// NopRecorder discards measurements.
type NopRecorder struct{}

// ObserveRun does nothing.
func (NopRecorder) ObserveRun(int, int, time.Duration) {}

// ObserveFailure does nothing.
func (NopRecorder) ObserveFailure(string) {}

// ResultPresenter defines the interface for presenting the outcome of a
// sweep. This decouples the orchestration layer from output formatting.
type ResultPresenter interface {
	// PresentSummary displays the per-configuration timing table.
	PresentSummary(report Report, out io.Writer)
	// PresentFailure displays the diagnostic of a fatal sweep error.
	PresentFailure(err error, out io.Writer)
}

var _ MetricsRecorder = (*metrics.RunMetrics)(nil)
