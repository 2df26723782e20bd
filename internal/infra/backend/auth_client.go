package backend

import (
	"context"
	"net/http"
	"strings"

	"automarket/internal/domain/entity"
)

// Login exchanges email and password for a bearer token
func (c *Client) Login(ctx context.Context, baseURL string, credentials *entity.LoginCredentials) (*entity.AuthResponse, error) {
	var auth entity.AuthResponse
	session := entity.Session{BaseURL: strings.TrimRight(baseURL, "/")}
	if err := c.send(ctx, session, http.MethodPost, "/api/auth/login", credentials, &auth); err != nil {
		return nil, err
	}

	return &auth, nil
}

// Register creates a seller account
func (c *Client) Register(ctx context.Context, baseURL string, input *entity.RegisterInput) (*entity.User, error) {
	var user entity.User
	session := entity.Session{BaseURL: strings.TrimRight(baseURL, "/")}
	if err := c.send(ctx, session, http.MethodPost, "/api/auth/register", input, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// CurrentUser returns the account behind the session token
func (c *Client) CurrentUser(ctx context.Context, session entity.Session) (*entity.User, error) {
	var user entity.User
	if err := c.get(ctx, session, "/api/users/me", &user); err != nil {
		return nil, err
	}

	return &user, nil
}
