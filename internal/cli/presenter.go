package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	apperrors "github.com/agbru/histcalc/internal/errors"
	"github.com/agbru/histcalc/internal/format"
	"github.com/agbru/histcalc/internal/orchestration"
	"github.com/agbru/histcalc/internal/ui"
)

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
type CLIResultPresenter struct {
	// Verbose adds the reference histogram and its fingerprint to the summary.
	Verbose bool
}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// summaryHeaders are the columns of the timing table.
var summaryHeaders = []string{"Threads", "Runs", "Best (ms)", "Mean (ms)", "Speedup"}

// SummaryRows builds the timing table rows: the reference first, then one row
// per thread count. Speedup is the best reference run over the best run of
// the row. The second result is the row index of the fastest parallel
// configuration, or -1 when there is none.
func SummaryRows(report orchestration.Report) ([][]string, int) {
	base := report.Reference.Best()
	rows := [][]string{summaryRow("reference", report.Reference, base)}

	fastest := -1
	var fastestBest time.Duration
	for i, s := range report.Parallel {
		rows = append(rows, summaryRow(strconv.Itoa(s.Threads), s, base))
		if best := s.Best(); fastest < 0 || best < fastestBest {
			fastest, fastestBest = i+1, best
		}
	}
	return rows, fastest
}

func summaryRow(label string, s orchestration.ConfigurationSummary, base time.Duration) []string {
	return []string{
		label,
		strconv.Itoa(len(s.Runs)),
		format.FormatMillis(s.Best()),
		format.FormatMillis(s.Mean()),
		format.FormatSpeedup(base, s.Best()),
	}
}

// PresentSummary prints the timing table of a successful sweep.
func (p CLIResultPresenter) PresentSummary(report orchestration.Report, out io.Writer) {
	fmt.Fprintf(out, "\n--- Sweep Summary ---\n")
	fmt.Fprintf(out, "%d values, %d buckets\n", report.N, report.Buckets)

	rows, fastest := SummaryRows(report)
	fmt.Fprintln(out, ui.RenderTable(summaryHeaders, rows, fastest))

	if p.Verbose {
		fmt.Fprintf(out, "Reference histogram: %s%s%s\n", ui.ColorBlue(), report.Histogram, ui.ColorReset())
		fmt.Fprintf(out, "Fingerprint:         %s%016x%s\n", ui.ColorGrey(), report.Histogram.Fingerprint(), ui.ColorReset())
	}
}

// PresentFailure prints a diagnostic for the error that stopped the sweep.
func (CLIResultPresenter) PresentFailure(err error, out io.Writer) {
	var (
		consistency apperrors.ConsistencyError
		mismatch    apperrors.MismatchError
		workerErr   apperrors.WorkerError
	)

	switch {
	case errors.As(err, &consistency):
		fmt.Fprintf(out, "\n%s%s%s\n", ui.ColorRed(), consistency.Error(), ui.ColorReset())
		fmt.Fprintf(out, "%d values were lost or counted twice.\n", abs(consistency.Expected-consistency.Observed))
	case errors.As(err, &mismatch):
		fmt.Fprintf(out, "\n%s%s.%s\n", ui.ColorRed(), mismatch.Error(), ui.ColorReset())
	case errors.As(err, &workerErr):
		fmt.Fprintf(out, "\n%sWorker %d failed: %v%s\n", ui.ColorRed(), workerErr.Worker, workerErr.Cause, ui.ColorReset())
	case apperrors.IsContextError(err):
		fmt.Fprintf(out, "\n%sSweep stopped: %v%s\n", ui.ColorYellow(), err, ui.ColorReset())
	default:
		fmt.Fprintf(out, "\n%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	}
	fmt.Fprintf(out, "\nGlobal Status: %sFailure%s.\n", ui.ColorRed(), ui.ColorReset())
}

// DisplayMemoryStats shows process memory statistics after a sweep.
func DisplayMemoryStats(heapAlloc, totalAlloc uint64, numGC uint32, pauseTotalNs uint64, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(heapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(totalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", numGC)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(pauseTotalNs)/1e6)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
