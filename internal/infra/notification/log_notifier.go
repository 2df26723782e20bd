package notification

import (
	"context"
	"log/slog"

	"automarket/internal/domain/service"
)

// logNotifier writes alerts to the log; used headless and when no notifier is configured
type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that only logs
func NewLogNotifier(logger *slog.Logger) service.Notifier {
	return &logNotifier{logger: logger}
}

// Notify logs the alert
func (n *logNotifier) Notify(ctx context.Context, title, message string) error {
	n.logger.InfoContext(ctx, "[Notifier] "+title, slog.String("message", message))

	return nil
}
