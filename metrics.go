package entitygo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordFind is called after each keyed lookup on a union.
	// found is false when the lookup produced a terminal iterator.
	RecordFind(duration time.Duration, found bool)

	// RecordCount is called after each intersection cardinality computation.
	RecordCount(duration time.Duration, count uint64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFind(time.Duration, bool)    {}
func (NoopMetricsCollector) RecordCount(time.Duration, uint64) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FindCount      atomic.Int64
	FindMisses     atomic.Int64
	FindTotalNanos atomic.Int64
	CountCount     atomic.Int64
	CountTotal     atomic.Int64
}

// RecordFind implements MetricsCollector.
func (m *BasicMetricsCollector) RecordFind(duration time.Duration, found bool) {
	m.FindCount.Add(1)
	if !found {
		m.FindMisses.Add(1)
	}
	m.FindTotalNanos.Add(duration.Nanoseconds())
}

// RecordCount implements MetricsCollector.
func (m *BasicMetricsCollector) RecordCount(_ time.Duration, count uint64) {
	m.CountCount.Add(1)
	m.CountTotal.Add(int64(count))
}

// Stats is a snapshot of collected metrics.
type Stats struct {
	FindCount    int64
	FindMisses   int64
	FindAvgNanos int64
	CountCount   int64
	CountTotal   int64
}

// GetStats returns a consistent snapshot of the collected metrics.
func (m *BasicMetricsCollector) GetStats() Stats {
	s := Stats{
		FindCount:  m.FindCount.Load(),
		FindMisses: m.FindMisses.Load(),
		CountCount: m.CountCount.Load(),
		CountTotal: m.CountTotal.Load(),
	}
	if s.FindCount > 0 {
		s.FindAvgNanos = m.FindTotalNanos.Load() / s.FindCount
	}
	return s
}
