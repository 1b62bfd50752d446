package client

import (
	"sync/atomic"
	"time"
)

// Metrics tracks API call counts and latency
type Metrics struct {
	calls   int64
	errors  int64
	latency int64 // total latency in nanoseconds
}

// MetricsSnapshot is a point-in-time copy of Metrics
type MetricsSnapshot struct {
	Calls        int64
	Errors       int64
	TotalLatency time.Duration
}

func (m *Metrics) record(duration time.Duration, err error) {
	atomic.AddInt64(&m.calls, 1)
	atomic.AddInt64(&m.latency, duration.Nanoseconds())
	if err != nil {
		atomic.AddInt64(&m.errors, 1)
	}
}

// Snapshot returns the current counters
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Calls:        atomic.LoadInt64(&m.calls),
		Errors:       atomic.LoadInt64(&m.errors),
		TotalLatency: time.Duration(atomic.LoadInt64(&m.latency)),
	}
}

// AverageLatency returns the mean call duration
func (s MetricsSnapshot) AverageLatency() time.Duration {
	if s.Calls == 0 {
		return 0
	}
	return s.TotalLatency / time.Duration(s.Calls)
}

// ErrorRate returns the error rate as a percentage
func (s MetricsSnapshot) ErrorRate() float64 {
	if s.Calls == 0 {
		return 0
	}
	return float64(s.Errors) / float64(s.Calls) * 100
}
