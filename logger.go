package bitmap

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitmap-specific helpers.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithGroupWidth adds a group_width field to the logger.
func (l *Logger) WithGroupWidth(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("group_width", n),
	}
}

// LogChainGrowth logs the chain reaching a new length.
func (l *Logger) LogChainGrowth(length int) {
	l.Debug("chain grown",
		"bitmap_count", length,
	)
}

// LogTurnOn logs a turn-on operation. Only the key length is recorded.
func (l *Logger) LogTurnOn(s string, err error) {
	if err != nil {
		l.Error("turn on failed",
			"key_len", len(s),
			"error", err,
		)
	} else {
		l.Debug("turn on completed",
			"key_len", len(s),
		)
	}
}

// LogTurnOff logs a turn-off operation. Only the key length is recorded.
func (l *Logger) LogTurnOff(s string, err error) {
	if err != nil {
		l.Error("turn off failed",
			"key_len", len(s),
			"error", err,
		)
	} else {
		l.Debug("turn off completed",
			"key_len", len(s),
		)
	}
}

// LogBatchQuery logs a batch membership query.
func (l *Logger) LogBatchQuery(ctx context.Context, count, hits int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch query failed",
			"count", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "batch query completed",
			"count", count,
			"hits", hits,
		)
	}
}
