// Package metrics exposes runtime resource readings for the verbose run
// summary. The simulation core never reads these; only the application
// shell samples them after a run completes.
package metrics

import "runtime"

// MemorySnapshot is a point-in-time reading of the Go heap. HeapAlloc
// reflects live simulation state (sweep points, ray bundles), TotalAlloc
// the cumulative churn of a run.
type MemorySnapshot struct {
	HeapAlloc    uint64
	TotalAlloc   uint64
	HeapSys      uint64
	Sys          uint64
	NumGC        uint32
	PauseTotalNs uint64
	HeapObjects  uint64
}

// MemoryCollector samples runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a MemoryCollector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads the current memory statistics. Note ReadMemStats stops
// the world briefly, so callers should sample outside timed sections.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		TotalAlloc:   m.TotalAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
	}
}
