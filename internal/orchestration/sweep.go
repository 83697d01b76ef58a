package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/histcalc/internal/errors"
	"github.com/agbru/histcalc/internal/histogram"
	"github.com/agbru/histcalc/internal/logging"
	"github.com/agbru/histcalc/internal/metrics"
	"github.com/agbru/histcalc/internal/timing"
)

const tracerName = "github.com/agbru/histcalc/internal/orchestration"

// SweepPlan describes which configurations a sweep runs.
type SweepPlan struct {
	// Buckets is the histogram bucket count.
	Buckets int
	// Threads lists the worker counts, run in order.
	Threads []int
	// Loops is the number of repetitions per configuration, reference included.
	Loops int
}

// ConfigurationSummary aggregates the runs of one configuration.
type ConfigurationSummary struct {
	Threads int
	Runs    []time.Duration
}

// Best returns the fastest run, zero when there are none.
func (c ConfigurationSummary) Best() time.Duration {
	var best time.Duration
	for i, d := range c.Runs {
		if i == 0 || d < best {
			best = d
		}
	}
	return best
}

// Mean returns the average run duration, zero when there are none.
func (c ConfigurationSummary) Mean() time.Duration {
	if len(c.Runs) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range c.Runs {
		total += d
	}
	return total / time.Duration(len(c.Runs))
}

// Report is the outcome of a successful sweep.
type Report struct {
	// N is the input length.
	N int
	// Buckets is the histogram bucket count.
	Buckets int
	// Reference holds the reference runs.
	Reference ConfigurationSummary
	// Parallel holds one summary per thread count, in plan order.
	Parallel []ConfigurationSummary
	// Histogram is the verified reference histogram.
	Histogram histogram.Histogram
}

// SweepOption configures ExecuteSweep.
type SweepOption func(*sweepOptions)

type sweepOptions struct {
	logger logging.Logger
	memory *metrics.MemoryCollector
}

// WithLogger routes debug events about partitions and runs to logger.
func WithLogger(logger logging.Logger) SweepOption {
	return func(o *sweepOptions) { o.logger = logger }
}

// WithMemoryStats fills RunResult.Memory for every run.
func WithMemoryStats(mc *metrics.MemoryCollector) SweepOption {
	return func(o *sweepOptions) { o.memory = mc }
}

// ExecuteSweep runs the reference computation plan.Loops times, then, for
// every thread count in plan.Threads, the parallel computation plan.Loops
// times. Every histogram is checked for total-count conservation and every
// parallel histogram is compared bucket-wise with the reference.
//
// Every input value must already lie in [0, plan.Buckets) (see
// input.Validate); the reference pass does not guard against it.
//
// The sweep stops at the first failing check and returns its error
// (apperrors.ConsistencyError or apperrors.MismatchError). The context is
// consulted between runs only; a run in progress always completes.
//
// Parameters:
//   - ctx: The context for cancellation and deadlines between runs.
//   - input: The shared, read-only input sequence.
//   - plan: The configurations to run.
//   - reporter: Receives per-run progress (use NullProgressReporter for quiet mode).
//   - recorder: Receives per-run measurements (use NopRecorder to discard).
//   - opts: Optional logger and memory statistics.
//
// Returns:
//   - Report: Timings of every configuration.
//   - error: The first verification, worker or context error.
func ExecuteSweep(ctx context.Context, input []int, plan SweepPlan, reporter ProgressReporter, recorder MetricsRecorder, opts ...SweepOption) (Report, error) {
	o := sweepOptions{logger: logging.Nop{}}
	for _, opt := range opts {
		opt(&o)
	}
	if plan.Loops < 1 {
		return Report{}, apperrors.ValidationError{Field: "loops", Message: "must be at least 1"}
	}

	tracer := otel.Tracer(tracerName)
	ctx, sweepSpan := tracer.Start(ctx, "histogram.sweep", trace.WithAttributes(
		attribute.Int("input.length", len(input)),
		attribute.Int("buckets", plan.Buckets),
		attribute.Int("loops", plan.Loops),
	))
	defer sweepSpan.End()

	n := len(input)
	report := Report{
		N:         n,
		Buckets:   plan.Buckets,
		Reference: ConfigurationSummary{Threads: ReferenceThreads},
	}

	s := &sweeper{
		tracer:   tracer,
		reporter: reporter,
		recorder: recorder,
		opts:     o,
		n:        n,
	}

	var ref histogram.Histogram
	for loop := 0; loop < plan.Loops; loop++ {
		if err := ctx.Err(); err != nil {
			return report, failSpan(sweepSpan, apperrors.WrapError(err, "sweep interrupted before reference run %d", loop))
		}
		h, d, err := s.run(ctx, ReferenceThreads, loop, func() (histogram.Histogram, error) {
			return histogram.Reference(input, plan.Buckets), nil
		}, nil)
		if err != nil {
			return report, failSpan(sweepSpan, err)
		}
		ref = h
		report.Reference.Runs = append(report.Reference.Runs, d)
	}
	report.Histogram = ref
	o.logger.Debug("reference histogram ready",
		logging.String("histogram", ref.String()),
		logging.Uint64("fingerprint", ref.Fingerprint()))

	for _, threads := range plan.Threads {
		summary := ConfigurationSummary{Threads: threads}
		logPlan(o.logger, n, threads)

		for loop := 0; loop < plan.Loops; loop++ {
			if err := ctx.Err(); err != nil {
				return report, failSpan(sweepSpan, apperrors.WrapError(err, "sweep interrupted before %d-thread run %d", threads, loop))
			}
			_, d, err := s.run(ctx, threads, loop, func() (histogram.Histogram, error) {
				return histogram.Parallel(input, plan.Buckets, threads)
			}, ref)
			if err != nil {
				return report, failSpan(sweepSpan, err)
			}
			summary.Runs = append(summary.Runs, d)
		}
		report.Parallel = append(report.Parallel, summary)
	}

	return report, nil
}

type sweeper struct {
	tracer   trace.Tracer
	reporter ProgressReporter
	recorder MetricsRecorder
	opts     sweepOptions
	n        int
}

// run times compute, verifies its result and reports it. A nil ref skips the
// bucket-wise comparison.
func (s *sweeper) run(ctx context.Context, threads, loop int, compute func() (histogram.Histogram, error), ref histogram.Histogram) (histogram.Histogram, time.Duration, error) {
	name := "histogram.parallel"
	if threads == ReferenceThreads {
		name = "histogram.reference"
	}
	_, span := s.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.Int("threads", threads),
		attribute.Int("loop", loop),
	))
	defer span.End()

	s.reporter.RunStarted(threads, loop)

	var before metrics.MemorySnapshot
	if s.opts.memory != nil {
		before = s.opts.memory.Snapshot()
	}

	sw := timing.Start()
	h, err := compute()
	elapsed := sw.Elapsed()
	if err != nil {
		return nil, elapsed, failSpan(span, apperrors.WrapError(err, "%s run %d", runLabel(threads), loop))
	}

	if err := histogram.CheckTotal(h, s.n); err != nil {
		s.recorder.ObserveFailure(metrics.FailureConsistency)
		return nil, elapsed, failSpan(span, err)
	}
	if ref != nil {
		if err := histogram.Compare(ref, h); err != nil {
			var mismatch apperrors.MismatchError
			if errors.As(err, &mismatch) {
				mismatch.Threads = threads
				err = mismatch
			}
			s.recorder.ObserveFailure(metrics.FailureMismatch)
			return nil, elapsed, failSpan(span, err)
		}
	}

	result := RunResult{
		Threads:     threads,
		Loop:        loop,
		Duration:    elapsed,
		Fingerprint: h.Fingerprint(),
	}
	if s.opts.memory != nil {
		result.Memory = s.opts.memory.Snapshot().Since(before)
	}
	span.SetAttributes(attribute.Int64("duration_us", elapsed.Microseconds()))

	s.recorder.ObserveRun(threads, s.n, elapsed)
	s.reporter.RunCompleted(result)
	s.opts.logger.Debug("run verified",
		logging.Int("threads", threads),
		logging.Int("loop", loop),
		logging.Float64("ms", timing.Millis(elapsed)),
		logging.Uint64("fingerprint", result.Fingerprint))
	return h, elapsed, nil
}

// logPlan records how n values split among threads workers.
func logPlan(logger logging.Logger, n, threads int) {
	if threads < 1 {
		return
	}
	first := histogram.Partition(0, n, threads)
	last := histogram.Partition(threads-1, n, threads)
	logger.Debug("partition plan",
		logging.Int("threads", threads),
		logging.Int("chunk", first.Len()),
		logging.Int("last_chunk", last.Len()))
}

func runLabel(threads int) string {
	if threads == ReferenceThreads {
		return "reference"
	}
	return fmt.Sprintf("%d-thread", threads)
}

func failSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// AnalyzeSweep presents the outcome of a sweep and returns the exit code.
//
// Parameters:
//   - report: The (possibly partial) sweep report.
//   - err: The sweep error, nil on success.
//   - presenter: The result presenter for display formatting.
//   - out: The io.Writer for the summary.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeSweep(report Report, err error, presenter ResultPresenter, out io.Writer) int {
	if err != nil {
		presenter.PresentFailure(err, out)
		return apperrors.ExitCode(err)
	}
	presenter.PresentSummary(report, out)
	fmt.Fprintf(out, "\nGlobal Status: Success. All %d configurations match the reference.\n", len(report.Parallel))
	return apperrors.ExitSuccess
}
