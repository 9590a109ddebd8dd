package hashgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with hashgo-specific context.
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

// WithAlgorithm adds an algorithm field to the logger.
func (l *Logger) WithAlgorithm(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("algorithm", name),
	}
}

// LogHash logs a completed hash computation.
func (l *Logger) LogHash(ctx context.Context, algorithm string, sync, cached bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "hash failed",
			"algorithm", algorithm,
			"sync", sync,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "hash completed",
			"algorithm", algorithm,
			"sync", sync,
			"cached", cached,
		)
	}
}

// LogFallback logs the substitution of a missing algorithm.
func (l *Logger) LogFallback(ctx context.Context, requested, fallback string) {
	l.WarnContext(ctx, fallbackMessage(requested, fallback),
		"requested", requested,
		"fallback", fallback,
	)
}

// LogHookFailure logs a failing hook callback.
func (l *Logger) LogHookFailure(ctx context.Context, event string, index int, err error, propagated bool) {
	if propagated {
		l.ErrorContext(ctx, "hook failed",
			"event", event,
			"index", index,
			"error", err,
		)
	} else {
		l.WarnContext(ctx, "hook failed, continuing",
			"event", event,
			"index", index,
			"error", err,
		)
	}
}
