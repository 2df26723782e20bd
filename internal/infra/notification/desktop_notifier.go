package notification

import (
	"context"

	"automarket/internal/domain/service"
	"automarket/internal/errors"

	"github.com/gen2brain/beeep"
)

type desktopNotifier struct {
	iconPath string
	notify   func(title, message string, icon any) error
}

// NewDesktopNotifier creates a notifier using the operating system notification center
func NewDesktopNotifier(iconPath string) service.Notifier {
	return &desktopNotifier{
		iconPath: iconPath,
		notify:   beeep.Notify,
	}
}

// Notify shows a desktop notification
func (n *desktopNotifier) Notify(_ context.Context, title, message string) error {
	return errors.Wrap(n.notify(title, message, n.iconPath), "failed to show desktop notification")
}
