// Package middleware holds echo middleware specific to the bridge server.
package middleware

import (
	"log/slog"

	deliverycontext "automarket/internal/delivery/context"
	"automarket/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware turns handler errors into response envelopes
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	known, writeErr := response.Fail(c, err)
	if !known {
		m.logger.Error("[Bridge] Unhandled error",
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
			slog.String("request_id", deliverycontext.RequestID(c.Request().Context())),
		)
	}
	if writeErr != nil {
		m.logger.Error("[Bridge] Failed to write error response", slog.Any("error", writeErr))
	}
}
