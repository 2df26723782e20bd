package service

import (
	"context"
)

// Notifier raises a seller-facing alert outside the terminal
type Notifier interface {
	// Notify delivers a single alert with the given title and message
	Notify(ctx context.Context, title, message string) error
}
