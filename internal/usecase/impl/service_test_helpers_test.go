package impl

import (
	"io"
	"log/slog"

	"automarket/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(dedupe bool) *config.Config {
	cfg := &config.Config{}
	cfg.Backend.DefaultAPIURL = "http://localhost:8000"
	cfg.Poller.NotificationTitle = "AUTO Marketplace"
	cfg.Poller.Dedupe = dedupe

	return cfg
}
