package cellkit

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives scan measurements from a Scanner.
// Implement this interface to integrate with monitoring systems like Prometheus.
// Implementations must be safe for concurrent use.
type MetricsCollector interface {
	// RecordBlock is called after each block scan. bytes is the decoded block size,
	// err is nil if successful.
	RecordBlock(cells int, matched uint64, bytes int, duration time.Duration, err error)

	// RecordScan is called after each ScanAll.
	RecordScan(blocks int, matched uint64, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBlock(int, uint64, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordScan(int, uint64, time.Duration, error)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	BlockCount      atomic.Int64
	BlockErrors     atomic.Int64
	BlockTotalNanos atomic.Int64
	CellsScanned    atomic.Int64
	CellsMatched    atomic.Int64
	BytesScanned    atomic.Int64
	ScanCount       atomic.Int64
	ScanErrors      atomic.Int64
	ScanTotalNanos  atomic.Int64
}

// RecordBlock implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBlock(cells int, matched uint64, bytes int, duration time.Duration, err error) {
	b.BlockCount.Add(1)
	b.BlockTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BlockErrors.Add(1)
		return
	}
	b.CellsScanned.Add(int64(cells))
	b.CellsMatched.Add(int64(matched)) //nolint:gosec // bounded by cells
	b.BytesScanned.Add(int64(bytes))
}

// RecordScan implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScan(_ int, _ uint64, duration time.Duration, err error) {
	b.ScanCount.Add(1)
	b.ScanTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ScanErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BlockCount:    b.BlockCount.Load(),
		BlockErrors:   b.BlockErrors.Load(),
		BlockAvgNanos: avg(b.BlockTotalNanos.Load(), b.BlockCount.Load()),
		CellsScanned:  b.CellsScanned.Load(),
		CellsMatched:  b.CellsMatched.Load(),
		BytesScanned:  b.BytesScanned.Load(),
		ScanCount:     b.ScanCount.Load(),
		ScanErrors:    b.ScanErrors.Load(),
		ScanAvgNanos:  avg(b.ScanTotalNanos.Load(), b.ScanCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BlockCount    int64
	BlockErrors   int64
	BlockAvgNanos int64
	CellsScanned  int64
	CellsMatched  int64
	BytesScanned  int64
	ScanCount     int64
	ScanErrors    int64
	ScanAvgNanos  int64
}
