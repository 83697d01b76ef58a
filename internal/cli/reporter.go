package cli

import (
	"fmt"
	"io"

	"github.com/briandowns/spinner"

	"github.com/agbru/histcalc/internal/format"
	"github.com/agbru/histcalc/internal/orchestration"
	"github.com/agbru/histcalc/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter for CLI
// output. It prints one header line before and one timing line after every
// run, with a spinner in between.
type CLIProgressReporter struct {
	out     io.Writer
	verbose bool
	spin    Spinner
}

var _ orchestration.ProgressReporter = (*CLIProgressReporter)(nil)

// NewCLIProgressReporter creates a reporter writing to out. In verbose mode
// every timing line is followed by the run's fingerprint and allocations.
func NewCLIProgressReporter(out io.Writer, verbose bool) *CLIProgressReporter {
	return &CLIProgressReporter{out: out, verbose: verbose}
}

// RunStarted prints the run header and starts the spinner.
func (r *CLIProgressReporter) RunStarted(threads, loop int) {
	if threads == orchestration.ReferenceThreads {
		fmt.Fprintf(r.out, "\nCreating the reference histogram.\n")
	} else {
		fmt.Fprintf(r.out, "\nCreating histogram using %s%d%s threads.\n", ui.ColorCyan(), threads, ui.ColorReset())
	}

	r.spin = newSpinner(spinner.WithWriter(r.out))
	r.spin.UpdateSuffix(fmt.Sprintf(" run %d", loop+1))
	r.spin.Start()
}

// RunCompleted stops the spinner and prints the run's timing.
func (r *CLIProgressReporter) RunCompleted(result orchestration.RunResult) {
	if r.spin != nil {
		r.spin.Stop()
		r.spin = nil
	}

	ms := format.FormatMillis(result.Duration)
	if result.Threads == orchestration.ReferenceThreads {
		fmt.Fprintf(r.out, "Single-threaded creation took %s%s%s msec\n", ui.ColorYellow(), ms, ui.ColorReset())
	} else {
		fmt.Fprintf(r.out, "%d threads took %s%s%s ms\n", result.Threads, ui.ColorYellow(), ms, ui.ColorReset())
	}

	if r.verbose {
		fmt.Fprintf(r.out, "%s  fingerprint %016x, allocated %s, %d GC cycles%s\n",
			ui.ColorGrey(), result.Fingerprint, format.FormatBytes(result.Memory.TotalAlloc),
			result.Memory.NumGC, ui.ColorReset())
	}
}
