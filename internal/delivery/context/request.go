// Package context carries request-scoped values through the bridge.
package context

import (
	"context"
	"log/slog"
)

type key int

const (
	requestIDKey key = iota
	loggerKey
)

// WithRequest stores the request id and a logger already tagged with it
func WithRequest(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, requestIDKey, requestID)

	return context.WithValue(ctx, loggerKey, logger.With(slog.String("request_id", requestID)))
}

// RequestID returns the id stored by WithRequest, or an empty string outside a bridge request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// Logger returns the request logger, or fallback when none is set.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
