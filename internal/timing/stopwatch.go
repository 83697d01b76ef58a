// Package timing measures elapsed wall-clock time for reporting. It never
// influences results.
package timing

import "time"

// Stopwatch marks a start instant on the monotonic clock.
type Stopwatch struct {
	start time.Time
}

// Start marks the current instant.
func Start() Stopwatch {
	return Stopwatch{start: time.Now()}
}

// Elapsed returns the time since Start.
func (s Stopwatch) Elapsed() time.Duration {
	return time.Since(s.start)
}

// ElapsedMicros returns the whole microseconds since Start.
func (s Stopwatch) ElapsedMicros() int64 {
	return s.Elapsed().Microseconds()
}

// Millis converts a duration to fractional milliseconds, the unit the harness
// reports in.
func Millis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}
