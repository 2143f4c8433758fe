// Package sysmon samples system-wide CPU and memory usage so calibration
// can tell whether its timings were taken on a busy machine.
package sysmon

import (
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// BusyCPUPercent is the system CPU usage above which timings are considered
// unreliable.
const BusyCPUPercent = 50.0

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
	MemTotal   uint64  // bytes
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
		s.MemTotal = vmem.Total
	}
	return s
}

// Busy reports whether the CPU load in s is high enough to skew benchmarks.
func (s Stats) Busy() bool {
	return s.CPUPercent > BusyCPUPercent
}

// CPUModel returns the model name of the first CPU, or "" when the platform
// does not expose it.
func CPUModel() string {
	infos, err := cpu.Info()
	if err != nil || len(infos) == 0 {
		return ""
	}
	return strings.TrimSpace(infos[0].ModelName)
}
