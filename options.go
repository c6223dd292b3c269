package cellkit

import "runtime"

type scanOptions struct {
	concurrency int
	bytesPerSec int
	logger      *Logger
	metrics     MetricsCollector
}

func defaultScanOptions() scanOptions {
	return scanOptions{
		concurrency: runtime.GOMAXPROCS(0),
		logger:      NoopLogger(),
		metrics:     NoopMetricsCollector{},
	}
}

// ScanOption configures a Scanner.
type ScanOption func(*scanOptions)

// WithConcurrency sets how many blocks ScanAll evaluates in parallel.
// Values < 1 select GOMAXPROCS.
func WithConcurrency(n int) ScanOption {
	return func(o *scanOptions) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		o.concurrency = n
	}
}

// WithRateLimit caps scan throughput at bytesPerSec decoded block bytes, shared by
// all goroutines of the Scanner. Zero (the default) disables throttling.
func WithRateLimit(bytesPerSec int) ScanOption {
	return func(o *scanOptions) {
		o.bytesPerSec = max(bytesPerSec, 0)
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) ScanOption {
	return func(o *scanOptions) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics sets the metrics collector. If nil is passed, metrics are disabled.
func WithMetrics(mc MetricsCollector) ScanOption {
	return func(o *scanOptions) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}
