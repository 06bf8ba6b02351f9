package sysprim

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with sysprim-specific context.
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
		Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(1000), // Unreachable level
		})),
	}
}

// WithStrategy adds an allocation strategy field to the logger.
func (l *Logger) WithStrategy(s Strategy) *Logger {
	return &Logger{
		Logger: l.Logger.With("strategy", s.String()),
	}
}

// WithAlignment adds an alignment field to the logger.
func (l *Logger) WithAlignment(alignment int) *Logger {
	return &Logger{
		Logger: l.Logger.With("alignment", alignment),
	}
}

// WithSize adds a size field to the logger.
func (l *Logger) WithSize(size int) *Logger {
	return &Logger{
		Logger: l.Logger.With("size", size),
	}
}

// LogAlloc logs an allocation. Heap allocations sit on hot paths and are
// only logged on failure.
func (l *Logger) LogAlloc(ctx context.Context, b *Buffer, size, alignment int, strategy Strategy, err error) {
	if err != nil {
		l.ErrorContext(ctx, "aligned allocation failed",
			"size", size,
			"alignment", alignment,
			"strategy", strategy.String(),
			"error", err,
		)
		return
	}
	if strategy == StrategyPages {
		l.DebugContext(ctx, "mapped aligned buffer",
			"id", b.id,
			"size", size,
			"alignment", alignment,
			"reserved", b.block.Reserved(),
		)
	}
}

// LogFree logs the release of a page-backed buffer.
func (l *Logger) LogFree(ctx context.Context, b *Buffer, err error) {
	if err != nil {
		l.ErrorContext(ctx, "unmapping aligned buffer failed",
			"id", b.id,
			"size", b.size,
			"error", err,
		)
		return
	}
	if b.strategy == StrategyPages {
		l.DebugContext(ctx, "unmapped aligned buffer",
			"id", b.id,
			"size", b.size,
		)
	}
}
