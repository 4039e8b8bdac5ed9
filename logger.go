package nearpair

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with nearpair-specific context.
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
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// WithName adds an input name field to the logger.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("name", name),
	}
}

// LogSolve logs a closest-pair computation.
func (l *Logger) LogSolve(ctx context.Context, points int, distance float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "solve failed",
			"points", points,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "solve completed",
			"points", points,
			"distance", distance,
		)
	}
}

// LogExport logs a table export.
func (l *Logger) LogExport(ctx context.Context, name string, rows int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "export failed",
			"name", name,
			"rows", rows,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "table exported",
			"name", name,
			"rows", rows,
		)
	}
}
