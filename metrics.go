package bitmap

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Implementations must be safe for concurrent use: IsTurnedOnAll records
// queries from several goroutines.
type MetricsCollector interface {
	// RecordTurnOn is called after each CompoundBitmap.TurnOn.
	RecordTurnOn(duration time.Duration, err error)

	// RecordTurnOff is called after each CompoundBitmap.TurnOff.
	RecordTurnOff(duration time.Duration, err error)

	// RecordQuery is called after each membership query.
	// hit reports whether the string was found.
	RecordQuery(hit bool, duration time.Duration, err error)

	// RecordChainGrowth is called whenever the chain reaches a new length.
	RecordChainGrowth(bitmapCount int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordTurnOn(time.Duration, error)      {}
func (NoopMetricsCollector) RecordTurnOff(time.Duration, error)     {}
func (NoopMetricsCollector) RecordQuery(bool, time.Duration, error) {}
func (NoopMetricsCollector) RecordChainGrowth(int)                  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	TurnOnCount       atomic.Int64
	TurnOnErrors      atomic.Int64
	TurnOnTotalNanos  atomic.Int64
	TurnOffCount      atomic.Int64
	TurnOffErrors     atomic.Int64
	TurnOffTotalNanos atomic.Int64
	QueryCount        atomic.Int64
	QueryHits         atomic.Int64
	QueryErrors       atomic.Int64
	QueryTotalNanos   atomic.Int64
	ChainGrowths      atomic.Int64
	MaxBitmapCount    atomic.Int64
}

// RecordTurnOn implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTurnOn(duration time.Duration, err error) {
	b.TurnOnCount.Add(1)
	b.TurnOnTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.TurnOnErrors.Add(1)
	}
}

// RecordTurnOff implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTurnOff(duration time.Duration, err error) {
	b.TurnOffCount.Add(1)
	b.TurnOffTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.TurnOffErrors.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(hit bool, duration time.Duration, err error) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.QueryErrors.Add(1)
	}
	if hit {
		b.QueryHits.Add(1)
	}
}

// RecordChainGrowth implements MetricsCollector.
func (b *BasicMetricsCollector) RecordChainGrowth(bitmapCount int) {
	b.ChainGrowths.Add(1)
	for {
		cur := b.MaxBitmapCount.Load()
		if int64(bitmapCount) <= cur {
			return
		}
		if b.MaxBitmapCount.CompareAndSwap(cur, int64(bitmapCount)) {
			return
		}
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		TurnOnCount:     b.TurnOnCount.Load(),
		TurnOnErrors:    b.TurnOnErrors.Load(),
		TurnOnAvgNanos:  avgNanos(b.TurnOnTotalNanos.Load(), b.TurnOnCount.Load()),
		TurnOffCount:    b.TurnOffCount.Load(),
		TurnOffErrors:   b.TurnOffErrors.Load(),
		TurnOffAvgNanos: avgNanos(b.TurnOffTotalNanos.Load(), b.TurnOffCount.Load()),
		QueryCount:      b.QueryCount.Load(),
		QueryHits:       b.QueryHits.Load(),
		QueryErrors:     b.QueryErrors.Load(),
		QueryAvgNanos:   avgNanos(b.QueryTotalNanos.Load(), b.QueryCount.Load()),
		ChainGrowths:    b.ChainGrowths.Load(),
		MaxBitmapCount:  b.MaxBitmapCount.Load(),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	TurnOnCount     int64
	TurnOnErrors    int64
	TurnOnAvgNanos  int64
	TurnOffCount    int64
	TurnOffErrors   int64
	TurnOffAvgNanos int64
	QueryCount      int64
	QueryHits       int64
	QueryErrors     int64
	QueryAvgNanos   int64
	ChainGrowths    int64
	MaxBitmapCount  int64
}
