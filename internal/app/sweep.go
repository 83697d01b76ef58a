package app

import (
	"context"
	"errors"
	"io"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/histcalc/internal/cli"
	apperrors "github.com/agbru/histcalc/internal/errors"
	"github.com/agbru/histcalc/internal/input"
	"github.com/agbru/histcalc/internal/logging"
	"github.com/agbru/histcalc/internal/metrics"
	"github.com/agbru/histcalc/internal/orchestration"
	"github.com/agbru/histcalc/internal/server"
	"github.com/agbru/histcalc/internal/sysmon"
)

// SystemSampleTimeout bounds the verbose system load sample.
const SystemSampleTimeout = 2 * time.Second

// runSweep generates the input, runs the sweep and presents its outcome.
func (a *Application) runSweep(ctx context.Context, out io.Writer) int {
	if a.Config.Timeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, a.Config.Timeout)
		defer cancelTimeout()
	}
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	seq, err := input.Generate(a.Config.N, a.Config.Buckets, a.Config.Seed)
	if err == nil {
		err = input.Validate(seq, a.Config.Buckets)
	}
	if err != nil {
		a.Logger.Error("input generation failed", err, logging.Int("n", a.Config.N))
		return apperrors.ExitCode(err)
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
	}

	var reporter orchestration.ProgressReporter = orchestration.NullProgressReporter{}
	if !a.Config.Quiet {
		reporter = cli.NewCLIProgressReporter(out, a.Config.Verbose)
	}

	opts := []orchestration.SweepOption{orchestration.WithLogger(a.Logger)}
	mc := metrics.NewMemoryCollector()
	if a.Config.Verbose {
		opts = append(opts, orchestration.WithMemoryStats(mc))
	}

	plan := orchestration.SweepPlan{
		Buckets: a.Config.Buckets,
		Threads: a.Config.Threads,
		Loops:   a.Config.Loops,
	}
	runMetrics := metrics.NewRunMetrics()
	sweep := func(ctx context.Context) (orchestration.Report, error) {
		return orchestration.ExecuteSweep(ctx, seq, plan, reporter, runMetrics, opts...)
	}

	var report orchestration.Report
	if a.Config.MetricsAddr == "" {
		report, err = sweep(ctx)
	} else {
		report, err = a.sweepWhileServing(ctx, runMetrics, sweep)
	}

	if a.Config.Timeout > 0 && errors.Is(err, context.DeadlineExceeded) {
		err = apperrors.TimeoutError{Operation: "sweep", Limit: a.Config.Timeout, Cause: err}
	}

	presenter := cli.CLIResultPresenter{Verbose: a.Config.Verbose}
	code := orchestration.AnalyzeSweep(report, err, presenter, out)
	if err != nil {
		a.Logger.Error("sweep failed", err, logging.Int("exit_code", code))
	}

	if a.Config.Verbose && !a.Config.Quiet {
		snap := mc.Snapshot()
		cli.DisplayMemoryStats(snap.HeapAlloc, snap.TotalAlloc, snap.NumGC, snap.PauseTotalNs, out)
		// The sweep context may already be done after a timeout or signal.
		sampleCtx, cancelSample := context.WithTimeout(context.Background(), SystemSampleTimeout)
		cli.PrintSystemSample(sysmon.Sample(sampleCtx), out)
		cancelSample()
	}
	return code
}

// sweepWhileServing exposes runMetrics over HTTP for the duration of the
// sweep. The server stops once the sweep returns; a server failure stops the
// sweep before its next run and takes precedence over the resulting
// cancellation error.
func (a *Application) sweepWhileServing(ctx context.Context, runMetrics *metrics.RunMetrics, sweep func(context.Context) (orchestration.Report, error)) (orchestration.Report, error) {
	serveCtx, stopServing := context.WithCancel(ctx)
	defer stopServing()
	g, gctx := errgroup.WithContext(serveCtx)

	srv := server.New(a.Config.MetricsAddr, runMetrics, a.Logger)
	g.Go(func() error {
		return srv.Run(gctx)
	})

	var (
		report   orchestration.Report
		sweepErr error
	)
	g.Go(func() error {
		defer stopServing()
		report, sweepErr = sweep(gctx)
		return nil
	})

	if serveErr := g.Wait(); serveErr != nil {
		a.Logger.Error("metrics server failed", serveErr, logging.String("addr", a.Config.MetricsAddr))
		if sweepErr == nil || apperrors.IsContextError(sweepErr) {
			return report, serveErr
		}
	}
	return report, sweepErr
}
