package colidx

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with colidx-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithType adds an array type field to the logger.
func (l *Logger) WithType(typ string) *Logger {
	return &Logger{
		Logger: l.Logger.With("type", typ),
	}
}

// WithDictionary adds a dictionary id field to the logger.
func (l *Logger) WithDictionary(id uint32) *Logger {
	return &Logger{
		Logger: l.Logger.With("dict_id", id),
	}
}

// LogEncode logs a block encode.
func (l *Logger) LogEncode(ctx context.Context, length int, width uint8, rawBytes, encodedBytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "encode failed",
			"length", length,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "encode completed",
		"length", length,
		"width", width,
		"raw_bytes", rawBytes,
		"encoded_bytes", encodedBytes,
	)
}

// LogDecode logs a block decode. Bounds violations are logged at warn level
// since they point at bad input rather than a fault.
func (l *Logger) LogDecode(ctx context.Context, length int, dictLen uint64, err error, isBounds bool) {
	switch {
	case err == nil:
		l.DebugContext(ctx, "decode completed",
			"length", length,
			"dict_len", dictLen,
		)
	case isBounds:
		l.WarnContext(ctx, "decode rejected out-of-bounds indices",
			"length", length,
			"dict_len", dictLen,
			"error", err,
		)
	default:
		l.ErrorContext(ctx, "decode failed",
			"error", err,
		)
	}
}

// LogBatchDecode logs a concurrent multi-block decode.
func (l *Logger) LogBatchDecode(ctx context.Context, blocks int, duration time.Duration, err error) {
	if err != nil {
		l.WarnContext(ctx, "batch decode failed",
			"blocks", blocks,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "batch decode completed",
		"blocks", blocks,
		"duration", duration,
	)
}

// LogRemap logs a dictionary remap.
func (l *Logger) LogRemap(ctx context.Context, length, tableLen int, width uint8, err error) {
	if err != nil {
		l.ErrorContext(ctx, "remap failed",
			"length", length,
			"table_len", tableLen,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "remap completed",
		"length", length,
		"table_len", tableLen,
		"width", width,
	)
}

// LogKernel logs the active reduction kernel.
func (l *Logger) LogKernel(ctx context.Context, kernel string, overridden bool) {
	l.DebugContext(ctx, "reduction kernel selected",
		"kernel", kernel,
		"overridden", overridden,
	)
}
