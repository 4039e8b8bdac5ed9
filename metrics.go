package nearpair

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; package
// metrics/prom provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordSolve is called after each closest-pair computation.
	// points is the input size, err is nil if successful.
	RecordSolve(points int, duration time.Duration, err error)

	// RecordExport is called after each table export.
	RecordExport(rows int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSolve(int, time.Duration, error)  {}
func (NoopMetricsCollector) RecordExport(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SolveCount      atomic.Int64
	SolveErrors     atomic.Int64
	SolvePoints     atomic.Int64
	SolveTotalNanos atomic.Int64
	ExportCount     atomic.Int64
	ExportErrors    atomic.Int64
	ExportRows      atomic.Int64
}

// RecordSolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSolve(points int, duration time.Duration, err error) {
	b.SolveCount.Add(1)
	b.SolveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SolveErrors.Add(1)
		return
	}
	b.SolvePoints.Add(int64(points))
}

// RecordExport implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExport(rows int, _ time.Duration, err error) {
	b.ExportCount.Add(1)
	if err != nil {
		b.ExportErrors.Add(1)
		return
	}
	b.ExportRows.Add(int64(rows))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SolveCount:    b.SolveCount.Load(),
		SolveErrors:   b.SolveErrors.Load(),
		SolvePoints:   b.SolvePoints.Load(),
		SolveAvgNanos: b.getAvgSolveNanos(),
		ExportCount:   b.ExportCount.Load(),
		ExportErrors:  b.ExportErrors.Load(),
		ExportRows:    b.ExportRows.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSolveNanos() int64 {
	count := b.SolveCount.Load()
	if count == 0 {
		return 0
	}
	return b.SolveTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SolveCount    int64
	SolveErrors   int64
	SolvePoints   int64
	SolveAvgNanos int64
	ExportCount   int64
	ExportErrors  int64
	ExportRows    int64
}
