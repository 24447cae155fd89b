package logger

import (
	"context"
	"log/slog"
)

// ContextKey keeps this package's context values from colliding with
// other packages' keys.
type ContextKey string

const LoggerKey ContextKey = "logger"

// FromContext returns the request-scoped logger, falling back to
// slog.Default when the context carries none.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(LoggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithLogger stores a logger in the context for handlers downstream.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

// WithRequestID returns a context whose logger tags every record with the
// given request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	logger := FromContext(ctx).With("request_id", requestID)
	return WithLogger(ctx, logger)
}
