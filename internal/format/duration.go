// Package format holds pure string formatting helpers shared by the CLI
// presentation code.
package format

import (
	"fmt"
	"time"
)

// FormatMillis renders d as fractional milliseconds, e.g. "1.234".
func FormatMillis(d time.Duration) string {
	return fmt.Sprintf("%.3f", float64(d.Microseconds())/1000.0)
}

// FormatSpeedup renders base/d as "3.42x", or "-" when d is zero.
func FormatSpeedup(base, d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2fx", float64(base)/float64(d))
}

// FormatBytes renders a byte count with a binary unit suffix.
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
