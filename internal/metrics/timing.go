// Package metrics provides lightweight in-memory instrumentation for the
// core: timing of hot paths (superstep execution, algorithm passes) and
// cache hit/miss counters, collected with atomic operations so recording
// never needs a lock. Grounded on the teacher's pkg/metrics/timing.go,
// renamed to the runtime's own hot paths and carrying its own CacheMetric
// type (the teacher's AllTimingMetrics referenced an AllCacheMetrics that
// never shipped in that package).
package metrics

import (
	"os"
	"sync/atomic"
	"time"
)

var enabled = os.Getenv("HUGEGRAPH_METRICS") != "0"

// Enabled returns whether metrics collection is enabled.
func Enabled() bool { return enabled }

// SetEnabled allows programmatic control of metrics collection.
func SetEnabled(e bool) { enabled = e }

// TimingMetric tracks count/total/min/max timing statistics for a named
// operation. All methods are thread-safe via atomics.
type TimingMetric struct {
	name    string
	count   int64
	totalNs int64
	maxNs   int64
	minNs   int64
}

func newTimingMetric(name string) *TimingMetric {
	return &TimingMetric{name: name}
}

// Record records a single timing measurement.
func (m *TimingMetric) Record(d time.Duration) {
	if !enabled {
		return
	}
	ns := d.Nanoseconds()

	atomic.AddInt64(&m.count, 1)
	atomic.AddInt64(&m.totalNs, ns)

	for {
		old := atomic.LoadInt64(&m.maxNs)
		if ns <= old || atomic.CompareAndSwapInt64(&m.maxNs, old, ns) {
			break
		}
	}
	for {
		old := atomic.LoadInt64(&m.minNs)
		if old != 0 && ns >= old {
			break
		}
		if atomic.CompareAndSwapInt64(&m.minNs, old, ns) {
			break
		}
	}
}

// Name returns the metric name.
func (m *TimingMetric) Name() string { return m.name }

// Count returns the number of recorded measurements.
func (m *TimingMetric) Count() int64 { return atomic.LoadInt64(&m.count) }

// Stats returns a snapshot of all timing statistics.
func (m *TimingMetric) Stats() TimingStats {
	count := atomic.LoadInt64(&m.count)
	totalNs := atomic.LoadInt64(&m.totalNs)
	maxNs := atomic.LoadInt64(&m.maxNs)
	minNs := atomic.LoadInt64(&m.minNs)

	var avgNs int64
	if count > 0 {
		avgNs = totalNs / count
	}

	return TimingStats{
		Name:    m.name,
		Count:   count,
		TotalMs: float64(totalNs) / 1e6,
		AvgMs:   float64(avgNs) / 1e6,
		MaxMs:   float64(maxNs) / 1e6,
		MinMs:   float64(minNs) / 1e6,
	}
}

// Reset clears all recorded measurements.
func (m *TimingMetric) Reset() {
	atomic.StoreInt64(&m.count, 0)
	atomic.StoreInt64(&m.totalNs, 0)
	atomic.StoreInt64(&m.maxNs, 0)
	atomic.StoreInt64(&m.minNs, 0)
}

// TimingStats is a point-in-time snapshot of a TimingMetric.
type TimingStats struct {
	Name    string  `json:"name"`
	Count   int64   `json:"count"`
	TotalMs float64 `json:"total_ms"`
	AvgMs   float64 `json:"avg_ms"`
	MaxMs   float64 `json:"max_ms"`
	MinMs   float64 `json:"min_ms,omitempty"`
}

// Timer returns a function that records elapsed time when called. Use with
// defer:
//
//	defer metrics.Timer(metrics.SuperstepCompute)()
func Timer(m *TimingMetric) func() {
	if !enabled || m == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		m.Record(time.Since(start))
	}
}

// Global timing metrics for the runtime's own hot paths.
var (
	SuperstepCompute = newTimingMetric("superstep_compute")
	PartitionBuild   = newTimingMetric("partition_build")
	GraphLoad        = newTimingMetric("graph_load")
	PageRankCompute  = newTimingMetric("pagerank_compute")
	LouvainPass      = newTimingMetric("louvain_pass")
	HitsCompute      = newTimingMetric("hits_compute")
	YensSpurSearch   = newTimingMetric("yens_spur_search")
	ResultPersist    = newTimingMetric("result_persist")
)

// AllTimingMetrics returns every registered timing metric.
func AllTimingMetrics() []*TimingMetric {
	return []*TimingMetric{
		SuperstepCompute,
		PartitionBuild,
		GraphLoad,
		PageRankCompute,
		LouvainPass,
		HitsCompute,
		YensSpurSearch,
		ResultPersist,
	}
}

// AllTimingStats returns stats for every timing metric that recorded at
// least one measurement.
func AllTimingStats() []TimingStats {
	all := AllTimingMetrics()
	stats := make([]TimingStats, 0, len(all))
	for _, m := range all {
		if m.Count() > 0 {
			stats = append(stats, m.Stats())
		}
	}
	return stats
}

// ResetAll resets every timing and cache metric.
func ResetAll() {
	for _, m := range AllTimingMetrics() {
		m.Reset()
	}
	for _, c := range AllCacheMetrics() {
		c.Reset()
	}
}
