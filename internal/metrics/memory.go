// Package metrics provides runtime memory snapshots and a text dump of the
// Prometheus counters recorded during a run.
package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	TotalAlloc   uint64 // cumulative bytes allocated
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	Mallocs      uint64 // cumulative heap objects allocated
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		TotalAlloc:   m.TotalAlloc,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		Mallocs:      m.Mallocs,
	}
}

// AllocationDelta is what happened between two snapshots.
type AllocationDelta struct {
	Bytes   uint64
	Objects uint64
	GCs     uint32
}

// Since returns the allocations made between before and s. The cumulative
// counters never decrease, so the delta is well defined.
func (s MemorySnapshot) Since(before MemorySnapshot) AllocationDelta {
	return AllocationDelta{
		Bytes:   s.TotalAlloc - before.TotalAlloc,
		Objects: s.Mallocs - before.Mallocs,
		GCs:     s.NumGC - before.NumGC,
	}
}
