package service

import (
	"time"
)

// TokenInspector reads claims from a bearer token issued by the backend.
// The signature is not verified; the backend remains the authority.
type TokenInspector interface {
	// ExpiresAt returns the exp claim. ok is false when the token carries none.
	ExpiresAt(token string) (expiresAt time.Time, ok bool, err error)
}
