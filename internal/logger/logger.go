// Package logger provides structured logging using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/zapponejosh/festivos-api/internal/config"
)

// Context keys for request-scoped values
type contextKey string

const (
	// RequestIDKey is the context key for request IDs
	RequestIDKey contextKey = "request_id"

	loggerKey contextKey = "logger"
)

// Setup initializes the global logger based on configuration.
// Call this once at application startup. Production always logs JSON;
// development adds source locations.
func Setup(cfg *config.Config) *slog.Logger {
	format := cfg.LogFormat
	if cfg.IsProduction() {
		format = "json"
	}

	lvl := parseLevel(cfg.LogLevel)
	logger := slog.New(newHandler(os.Stdout, lvl, format, lvl == slog.LevelDebug || cfg.IsDevelopment()))
	slog.SetDefault(logger)
	return logger
}

// New builds a logger writing to w. The CLI uses it to log to stderr
// while command output goes to stdout.
func New(w io.Writer, level, format string) *slog.Logger {
	lvl := parseLevel(level)
	return slog.New(newHandler(w, lvl, format, lvl == slog.LevelDebug))
}

func newHandler(w io.Writer, lvl slog.Level, format string, addSource bool) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: addSource,
	}

	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID adds a request ID to the context and tags base with it.
// Use this in middleware to tag all logs for a request. A nil base uses
// the default logger.
func WithRequestID(ctx context.Context, base *slog.Logger, requestID string) context.Context {
	if base == nil {
		base = slog.Default()
	}
	ctx = context.WithValue(ctx, RequestIDKey, requestID)
	return context.WithValue(ctx, loggerKey, base.With(slog.String("request_id", requestID)))
}

// RequestID extracts the request ID from context.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// FromContext returns the request-scoped logger stored by WithRequestID.
// If there is none, returns the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// Error logs an error with context.
func Error(ctx context.Context, msg string, err error, args ...any) {
	allArgs := append([]any{slog.Any("error", err)}, args...)
	FromContext(ctx).ErrorContext(ctx, msg, allArgs...)
}

// Info logs an info message with context.
func Info(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).InfoContext(ctx, msg, args...)
}

// Debug logs a debug message with context.
func Debug(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).DebugContext(ctx, msg, args...)
}

// Warn logs a warning message with context.
func Warn(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).WarnContext(ctx, msg, args...)
}
