package sysprim

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting allocator metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    allocCounter prometheus.Counter
//	    liveBytes    prometheus.Gauge
//	}
//
//	func (p *PrometheusCollector) RecordAlloc(size, alignment int, s sysprim.Strategy, d time.Duration, err error) {
//	    p.allocCounter.Inc()
//	    if err == nil {
//	        p.liveBytes.Add(float64(size))
//	    }
//	}
type MetricsCollector interface {
	// RecordAlloc is called after each allocation attempt.
	// duration is the time spent in the facility, err is nil if successful.
	RecordAlloc(size, alignment int, strategy Strategy, duration time.Duration, err error)

	// RecordFree is called after each release attempt, including rejected
	// ones (double free, foreign buffer).
	RecordFree(size int, strategy Strategy, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAlloc(int, int, Strategy, time.Duration, error) {}
func (NoopMetricsCollector) RecordFree(int, Strategy, error)                      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Live counters make it usable as an allocation-counting leak harness.
type BasicMetricsCollector struct {
	AllocCount      atomic.Int64
	AllocErrors     atomic.Int64
	AllocTotalNanos atomic.Int64
	AllocBytes      atomic.Int64
	PagedAllocs     atomic.Int64
	FreeCount       atomic.Int64
	FreeErrors      atomic.Int64
	LiveBuffers     atomic.Int64
	LiveBytes       atomic.Int64
}

// RecordAlloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAlloc(size, _ int, strategy Strategy, duration time.Duration, err error) {
	b.AllocCount.Add(1)
	b.AllocTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AllocErrors.Add(1)
		return
	}
	if strategy == StrategyPages {
		b.PagedAllocs.Add(1)
	}
	b.AllocBytes.Add(int64(size))
	b.LiveBuffers.Add(1)
	b.LiveBytes.Add(int64(size))
}

// RecordFree implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFree(size int, _ Strategy, err error) {
	b.FreeCount.Add(1)
	if err != nil {
		b.FreeErrors.Add(1)
		return
	}
	b.LiveBuffers.Add(-1)
	b.LiveBytes.Add(-int64(size))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AllocCount:    b.AllocCount.Load(),
		AllocErrors:   b.AllocErrors.Load(),
		AllocAvgNanos: b.getAvgAllocNanos(),
		AllocBytes:    b.AllocBytes.Load(),
		PagedAllocs:   b.PagedAllocs.Load(),
		FreeCount:     b.FreeCount.Load(),
		FreeErrors:    b.FreeErrors.Load(),
		LiveBuffers:   b.LiveBuffers.Load(),
		LiveBytes:     b.LiveBytes.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgAllocNanos() int64 {
	count := b.AllocCount.Load()
	if count == 0 {
		return 0
	}
	return b.AllocTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of metrics from BasicMetricsCollector.
type BasicMetricsStats struct {
	AllocCount    int64
	AllocErrors   int64
	AllocAvgNanos int64
	AllocBytes    int64
	PagedAllocs   int64
	FreeCount     int64
	FreeErrors    int64
	LiveBuffers   int64
	LiveBytes     int64
}
