// Package sysmon samples system-wide CPU and memory usage so that sweep
// timings can be read against machine load.
package sysmon

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent   float64 // 0.0 .. 100.0
	MemPercent   float64 // 0.0 .. 100.0
	LogicalCores int
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Fields stay zero on error.
func Sample(ctx context.Context) Stats {
	var s Stats
	if pcts, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vmem, err := mem.VirtualMemoryWithContext(ctx); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	if n, err := cpu.CountsWithContext(ctx, true); err == nil {
		s.LogicalCores = n
	}
	return s
}

// String renders the snapshot on one line.
func (s Stats) String() string {
	return fmt.Sprintf("cpu %.1f%%, mem %.1f%%, %d logical cores", s.CPUPercent, s.MemPercent, s.LogicalCores)
}
