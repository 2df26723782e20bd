// Package notification provides the channels raising paid-order alerts.
package notification

import (
	"context"
	"log/slog"

	"automarket/config"
	"automarket/internal/domain/constants"
	"automarket/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NotifierParams holds dependencies for the Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier creates a Notifier based on configuration
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	cfg := params.Config.Notifier
	logger := params.Logger

	// Without a notifier section the desktop notification center is used
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Notifier not configured, using desktop notifications")

		return NewDesktopNotifier(""), nil
	}

	switch cfg.Provider {
	case constants.NotifierProviderDesktop:
		logger.Info("Using desktop notifier", slog.String("icon", cfg.IconPath))

		return NewDesktopNotifier(cfg.IconPath), nil

	case constants.NotifierProviderFirebase:
		if cfg.Firebase == nil {
			return nil, errors.New("firebase section is required for firebase provider")
		}
		logger.Info("Using Firebase push notifier",
			slog.String("project_id", cfg.Firebase.ProjectID),
		)

		return NewFirebaseNotifier(params.Ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath, cfg.Firebase.DeviceToken)

	case constants.NotifierProviderLog:
		logger.Info("Using log notifier")

		return NewLogNotifier(logger), nil

	default:
		return nil, errors.Errorf("unknown notifier provider: %s", cfg.Provider)
	}
}

// Module provides the notifier FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotifier),
)
