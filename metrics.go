package hashgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; package
// metric ships a Prometheus implementation.
type MetricsCollector interface {
	// RecordHash is called after each Hash/HashSync/Number/NumberSync call.
	// cached is true when the digest was served from the cache.
	RecordHash(algorithm string, sync, cached bool, duration time.Duration, err error)

	// RecordFallback is called when a requested algorithm is replaced by the
	// default one.
	RecordFallback(requested, fallback string)

	// RecordHookFailure is called for every failing hook callback.
	RecordHookFailure(event string, propagated bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordHash(string, bool, bool, time.Duration, error) {}
func (NoopMetricsCollector) RecordFallback(string, string)                       {}
func (NoopMetricsCollector) RecordHookFailure(string, bool)                      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	HashCount      atomic.Int64
	HashErrors     atomic.Int64
	HashTotalNanos atomic.Int64
	SyncHashCount  atomic.Int64
	CacheHits      atomic.Int64
	Fallbacks      atomic.Int64
	HookFailures   atomic.Int64
	HookPropagated atomic.Int64
}

// RecordHash implements MetricsCollector.
func (b *BasicMetricsCollector) RecordHash(_ string, sync, cached bool, duration time.Duration, err error) {
	b.HashCount.Add(1)
	b.HashTotalNanos.Add(duration.Nanoseconds())
	if sync {
		b.SyncHashCount.Add(1)
	}
	if cached {
		b.CacheHits.Add(1)
	}
	if err != nil {
		b.HashErrors.Add(1)
	}
}

// RecordFallback implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFallback(string, string) {
	b.Fallbacks.Add(1)
}

// RecordHookFailure implements MetricsCollector.
func (b *BasicMetricsCollector) RecordHookFailure(_ string, propagated bool) {
	b.HookFailures.Add(1)
	if propagated {
		b.HookPropagated.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		HashCount:      b.HashCount.Load(),
		HashErrors:     b.HashErrors.Load(),
		HashAvgNanos:   b.getAvgHashNanos(),
		SyncHashCount:  b.SyncHashCount.Load(),
		CacheHits:      b.CacheHits.Load(),
		Fallbacks:      b.Fallbacks.Load(),
		HookFailures:   b.HookFailures.Load(),
		HookPropagated: b.HookPropagated.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgHashNanos() int64 {
	count := b.HashCount.Load()
	if count == 0 {
		return 0
	}
	return b.HashTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	HashCount      int64
	HashErrors     int64
	HashAvgNanos   int64
	SyncHashCount  int64
	CacheHits      int64
	Fallbacks      int64
	HookFailures   int64
	HookPropagated int64
}
