package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"poller": map[string]any{
			"notificationTitle": "",
			"interval":          "5m",
		},
		"backend": map[string]any{
			"defaultApiUrl": "",
		},
		"notifier": map[string]any{
			"firebase": map[string]any{
				"deviceToken": "",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POLLER_NOTIFICATIONTITLE", want: "poller.notificationTitle"},
		{envKey: "POLLER_INTERVAL", want: "poller.interval"},
		{envKey: "BACKEND_DEFAULTAPIURL", want: "backend.defaultApiUrl"},
		{envKey: "NOTIFIER_FIREBASE_DEVICETOKEN", want: "notifier.firebase.deviceToken"},
		{envKey: "POLLER_NOTIFICATION_TITLE", want: "poller.notificationTitle"},
		{envKey: "BACKEND_DEFAULT_API_URL", want: "backend.defaultApiUrl"},
		{envKey: "NOTIFIER__FIREBASE_DEVICE_TOKEN", want: "notifier.firebase.deviceToken"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestNew_AppliesDefaultsWithoutFile(t *testing.T) {
	t.Setenv("AUTO_CONFIG_DIR", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, defaultAPIURL, cfg.Backend.DefaultAPIURL)
	assert.Equal(t, 5*time.Minute, cfg.Poller.Interval)
	assert.Equal(t, time.Second, cfg.Page.SettleDelay)
	assert.Equal(t, "AUTO Marketplace", cfg.Poller.NotificationTitle)
	assert.Equal(t, defaultBridgePort, cfg.Bridge.Port)
	assert.Equal(t, "http://127.0.0.1:17321", cfg.BridgeURL())
	assert.Nil(t, cfg.Notifier)
}

func TestNew_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("poller:\n  interval: 5m\n  dedupe: false\nbridge:\n  port: 9000\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))

	t.Setenv("AUTO_CONFIG_DIR", dir)
	t.Chdir(t.TempDir())
	t.Setenv("AUTO_POLLER_INTERVAL", "30s")
	t.Setenv("AUTO_POLLER_DEDUPE", "true")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Poller.Interval)
	assert.True(t, cfg.Poller.Dedupe)
	assert.Equal(t, 9000, cfg.Bridge.Port)
}
