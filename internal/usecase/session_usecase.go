// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"automarket/internal/domain/entity"
)

// SessionUsecase manages the stored seller session for the agent and the dashboard.
type SessionUsecase interface {
	// Login stores the API URL and key and marks the session logged in.
	Login(ctx context.Context, apiURL, apiKey string) error

	// Logout clears the login flag; URL and key stay stored.
	Logout(ctx context.Context) error

	// Credentials returns the stored session.
	Credentials(ctx context.Context) (*entity.Credentials, error)

	// DashboardLogin authenticates with email and password and stores the bearer token.
	DashboardLogin(ctx context.Context, input *entity.LoginCredentials) (*entity.User, error)

	// DashboardRegister creates an account and logs it in.
	DashboardRegister(ctx context.Context, input *entity.RegisterInput) (*entity.User, error)

	// DashboardSession returns the dashboard session, failing when the token is missing or expired.
	DashboardSession(ctx context.Context) (entity.Session, error)

	// DashboardLogout forgets the bearer token.
	DashboardLogout(ctx context.Context) error
}
