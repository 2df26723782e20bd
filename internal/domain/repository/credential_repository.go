// Package repository defines the persistence contracts used by the use cases.
package repository

import (
	"context"

	"automarket/internal/domain/entity"
)

// CredentialRepository persists the seller session on the local machine.
type CredentialRepository interface {
	// Load returns the stored credentials. Missing keys yield zero values, never an error.
	Load(ctx context.Context) (*entity.Credentials, error)

	// SaveLogin stores the API URL and key and marks the session as logged in.
	SaveLogin(ctx context.Context, apiURL, apiKey string) error

	// SetLoggedIn flips the login flag only; the URL and key are retained.
	SetLoggedIn(ctx context.Context, loggedIn bool) error

	// SaveToken stores the dashboard bearer token. An empty token clears it.
	SaveToken(ctx context.Context, token string) error
}
