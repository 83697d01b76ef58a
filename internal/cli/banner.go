package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"

	"github.com/agbru/histcalc/internal/config"
	"github.com/agbru/histcalc/internal/sysmon"
	"github.com/agbru/histcalc/internal/ui"
)

// PrintExecutionConfig displays the sweep parameters and the environment it
// runs in.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	deadline := "no timeout"
	if cfg.Timeout > 0 {
		deadline = "timeout " + cfg.Timeout.String()
	}
	fmt.Fprintf(out, "Histogram of %s%d%s values over %s%d%s buckets (seed %d), %s%s%s.\n",
		ui.ColorBlue(), cfg.N, ui.ColorReset(),
		ui.ColorBlue(), cfg.Buckets, ui.ColorReset(),
		cfg.Seed,
		ui.ColorYellow(), deadline, ui.ColorReset())
	fmt.Fprintf(out, "Thread counts: %s%s%s, %d runs each.\n",
		ui.ColorCyan(), config.FormatThreads(cfg.Threads), ui.ColorReset(), cfg.Loops)
	fmt.Fprintf(out, "Environment: %s%d%s logical processors (GOMAXPROCS %d), Go %s, %s/%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), runtime.GOMAXPROCS(0),
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(out, "CPU features: %s\n", CPUFeatures())
}

// PrintSystemSample displays a one-line system load sample.
func PrintSystemSample(s sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "System load: %s%s%s\n", ui.ColorGrey(), s, ui.ColorReset())
}

// CPUFeatures lists the SIMD and atomic features relevant to tight counting
// loops on the running architecture.
func CPUFeatures() string {
	var features []string
	add := func(ok bool, name string) {
		if ok {
			features = append(features, name)
		}
	}

	switch runtime.GOARCH {
	case "amd64", "386":
		add(cpu.X86.HasSSE42, "sse4.2")
		add(cpu.X86.HasPOPCNT, "popcnt")
		add(cpu.X86.HasAVX, "avx")
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasAVX512F, "avx512f")
		add(cpu.X86.HasBMI2, "bmi2")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "asimd")
		add(cpu.ARM64.HasATOMICS, "atomics")
		add(cpu.ARM64.HasSVE, "sve")
		add(cpu.ARM64.HasCRC32, "crc32")
	}

	if len(features) == 0 {
		return "none detected"
	}
	return strings.Join(features, " ")
}
