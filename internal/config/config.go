// Package config parses the command line and environment into an AppConfig.
package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/histcalc/internal/errors"
	"github.com/agbru/histcalc/internal/histogram"
)

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "HISTCALC_"

const (
	// DefaultLoops is how many times each configuration is run.
	DefaultLoops = 4
	// DefaultSeed seeds the input generator.
	DefaultSeed = 1
	// DefaultTimeout is zero: the sweep runs to completion unless a
	// deadline is requested.
	DefaultTimeout time.Duration = 0
)

// DefaultThreads is the thread-count sweep run when --threads is not given.
var DefaultThreads = []int{1, 2, 4, 8, 16, 32, 64, 128}

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// N is the number of input values to generate.
	N int
	// Buckets is the number of histogram buckets.
	Buckets int
	// Threads lists the worker counts to sweep, in order.
	Threads []int
	// Loops is the number of repetitions of every configuration.
	Loops int
	// Seed seeds the input generator.
	Seed uint64
	// Timeout bounds the whole sweep, zero for none. It is checked between
	// runs only.
	Timeout time.Duration
	// MetricsAddr, when set, serves Prometheus metrics during the sweep.
	MetricsAddr string
	// Quiet prints the summary only.
	Quiet bool
	// Verbose adds memory statistics, fingerprints and debug logs.
	Verbose bool
	// NoColor disables ANSI colours.
	NoColor bool
}

// Validate checks the semantic validity of the configuration.
func (c AppConfig) Validate() error {
	if c.N < 0 {
		return apperrors.NewConfigError("n_input_vals must be non-negative, got %d", c.N)
	}
	if c.Buckets < 1 {
		return apperrors.NewConfigError("--buckets must be at least 1, got %d", c.Buckets)
	}
	if c.Loops < 1 {
		return apperrors.NewConfigError("--loops must be at least 1, got %d", c.Loops)
	}
	if c.Timeout < 0 {
		return apperrors.NewConfigError("--timeout must not be negative, got %s", c.Timeout)
	}
	if len(c.Threads) == 0 {
		return apperrors.NewConfigError("--threads must list at least one thread count")
	}
	for _, t := range c.Threads {
		if t < 1 {
			return apperrors.NewConfigError("--threads entries must be at least 1, got %d", t)
		}
	}
	return nil
}

// threadList is a flag.Value holding a comma separated list of thread counts.
type threadList []int

func (t *threadList) String() string { return FormatThreads(*t) }

func (t *threadList) Set(s string) error {
	parsed, err := ParseThreads(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseThreads parses "1,2,4" into []int{1, 2, 4}.
func ParseThreads(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid thread count %q", p)
		}
		out = append(out, n)
	}
	return out, nil
}

// FormatThreads renders a thread list the way ParseThreads reads it.
func FormatThreads(threads []int) string {
	parts := make([]string, len(threads))
	for i, t := range threads {
		parts[i] = strconv.Itoa(t)
	}
	return strings.Join(parts, ",")
}

// ParseConfig parses the command-line arguments into an AppConfig.
//
// Exactly one positional argument, the number of input values, is required.
// Flags may appear before or after it. Values not given on the command line
// fall back to HISTCALC_* environment variables, then to defaults.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The arguments without the program name.
//   - errWriter: Where usage and flag errors are written.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp for --help, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	threads := threadList(append([]int(nil), DefaultThreads...))
	config := AppConfig{}
	fs.IntVar(&config.Buckets, "buckets", histogram.DefaultBuckets, "Number of histogram buckets.")
	fs.Var(&threads, "threads", "Comma separated thread counts to sweep.")
	fs.IntVar(&config.Loops, "loops", DefaultLoops, "Repetitions of every configuration.")
	fs.Uint64Var(&config.Seed, "seed", DefaultSeed, "Seed for the input generator.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Deadline for the whole sweep (e.g. 30s, 5m); 0 disables it.")
	fs.StringVar(&config.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address during the sweep.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print the summary only.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Print memory statistics and debug logs.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for --verbose.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable coloured output.")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags] <n_input_vals>\n\nFlags:\n", programName)
		fs.PrintDefaults()
	}

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return AppConfig{}, err
	}
	if len(positional) != 1 {
		fs.Usage()
		return AppConfig{}, apperrors.NewConfigError("Usage: %s <n_input_vals>", programName)
	}
	n, err := strconv.Atoi(positional[0])
	if err != nil {
		fs.Usage()
		return AppConfig{}, apperrors.NewConfigError("n_input_vals must be an integer, got %q", positional[0])
	}
	config.N = n
	config.Threads = threads

	if err := applyEnvOverrides(&config, fs); err != nil {
		return AppConfig{}, err
	}
	if err := config.Validate(); err != nil {
		fmt.Fprintln(errWriter, err)
		return AppConfig{}, err
	}
	return config, nil
}

// parseInterspersed lets flags follow the positional argument, which the
// flag package alone does not.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			if err == flag.ErrHelp {
				return nil, err
			}
			return nil, apperrors.NewConfigError("%v", err)
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}
