package cellkit

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with cellkit-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithFilter adds the filter description to the logger.
func (l *Logger) WithFilter(f Filter) *Logger {
	return &Logger{
		Logger: l.Logger.With("filter", describeFilter(f)),
	}
}

// LogBlock logs the outcome of scanning a single block.
func (l *Logger) LogBlock(ctx context.Context, block, cells int, matched uint64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "block scan failed",
			"block", block,
			"cells", cells,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "block scanned",
			"block", block,
			"cells", cells,
			"matched", matched,
		)
	}
}

// LogScan logs the outcome of a multi-block scan.
func (l *Logger) LogScan(ctx context.Context, blocks, cells int, matched uint64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "scan failed",
			"blocks", blocks,
			"cells", cells,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "scan completed",
			"blocks", blocks,
			"cells", cells,
			"matched", matched,
		)
	}
}

func describeFilter(f Filter) string {
	switch v := f.(type) {
	case *FieldFilter:
		return v.field.String() + " " + v.op.String() + " " + v.cmp.Kind().String()
	case *FilterList:
		return "list(" + v.op.String() + ")"
	default:
		return "custom"
	}
}
