package notification

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"automarket/config"
	"automarket/internal/domain/constants"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams(cfg *config.Config) NotifierParams {
	return NotifierParams{
		Ctx:    context.Background(),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewNotifier_Selection(t *testing.T) {
	tests := []struct {
		name     string
		notifier *config.NotifierConfig
		wantType any
		wantErr  string
	}{
		{name: "unset", notifier: nil, wantType: &desktopNotifier{}},
		{name: "desktop", notifier: &config.NotifierConfig{Provider: constants.NotifierProviderDesktop}, wantType: &desktopNotifier{}},
		{name: "log", notifier: &config.NotifierConfig{Provider: constants.NotifierProviderLog}, wantType: &logNotifier{}},
		{name: "firebase without section", notifier: &config.NotifierConfig{Provider: constants.NotifierProviderFirebase}, wantErr: "firebase section is required"},
		{
			name:     "firebase without device",
			notifier: &config.NotifierConfig{Provider: constants.NotifierProviderFirebase, Firebase: &config.FirebaseConfig{ProjectID: "p"}},
			wantErr:  "device token is required",
		},
		{name: "unknown", notifier: &config.NotifierConfig{Provider: "sms"}, wantErr: "unknown notifier provider: sms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Notifier: tt.notifier}

			got, err := NewNotifier(testParams(cfg))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.wantType, got)
		})
	}
}

func TestDesktopNotifier_PassesTitleMessageAndIcon(t *testing.T) {
	var gotTitle, gotMessage string
	var gotIcon any

	n := &desktopNotifier{
		iconPath: "assets/icon.png",
		notify: func(title, message string, icon any) error {
			gotTitle, gotMessage, gotIcon = title, message, icon

			return nil
		},
	}

	require.NoError(t, n.Notify(context.Background(), "AUTO Marketplace", "You have 2 new paid order(s) ready for delivery!"))
	assert.Equal(t, "AUTO Marketplace", gotTitle)
	assert.Equal(t, "You have 2 new paid order(s) ready for delivery!", gotMessage)
	assert.Equal(t, "assets/icon.png", gotIcon)
}

func TestDesktopNotifier_WrapsFailure(t *testing.T) {
	n := &desktopNotifier{notify: func(string, string, any) error { return errors.New("no dbus") }}

	err := n.Notify(context.Background(), "t", "m")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no dbus")
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, n.Notify(context.Background(), "AUTO Marketplace", "You have 1 new paid order(s) ready for delivery!"))
	assert.Contains(t, buf.String(), "[Notifier] AUTO Marketplace")
	assert.Contains(t, buf.String(), "You have 1 new paid order(s)")
}

type fakeSender struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.sent = append(f.sent, message)

	return "projects/p/messages/1", f.err
}

func TestFirebaseNotifier_SendsToDeviceToken(t *testing.T) {
	sender := &fakeSender{}
	n := &firebaseNotifier{client: sender, deviceToken: "device-1"}

	require.NoError(t, n.Notify(context.Background(), "AUTO Marketplace", "You have 3 new paid order(s) ready for delivery!"))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "device-1", sender.sent[0].Token)
	assert.Equal(t, "AUTO Marketplace", sender.sent[0].Notification.Title)
	assert.Equal(t, "You have 3 new paid order(s) ready for delivery!", sender.sent[0].Notification.Body)
}

func TestFirebaseNotifier_WrapsSendFailure(t *testing.T) {
	n := &firebaseNotifier{client: &fakeSender{err: errors.New("quota exceeded")}, deviceToken: "device-1"}

	err := n.Notify(context.Background(), "t", "m")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send notification")
}
