// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"automarket/config"
	"automarket/internal/domain/entity"
	domainerrors "automarket/internal/domain/errors"
	"automarket/internal/domain/repository"
	"automarket/internal/domain/service"
	"automarket/internal/errors"
	"automarket/internal/usecase"

	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	credentialRepo repository.CredentialRepository
	authAPI        service.AuthAPI
	tokens         service.TokenInspector
	defaultAPIURL  string
	now            func() time.Time
	logger         *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	CredentialRepo repository.CredentialRepository
	AuthAPI        service.AuthAPI
	Tokens         service.TokenInspector
	Config         *config.Config
	Logger         *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	defaultAPIURL := ""
	if params.Config != nil {
		defaultAPIURL = params.Config.Backend.DefaultAPIURL
	}

	return &sessionService{
		credentialRepo: params.CredentialRepo,
		authAPI:        params.AuthAPI,
		tokens:         params.Tokens,
		defaultAPIURL:  defaultAPIURL,
		now:            time.Now,
		logger:         params.Logger,
	}
}

// Login stores the API URL and key. An empty URL falls back to the configured default.
func (s *sessionService) Login(ctx context.Context, apiURL, apiKey string) error {
	apiURL = strings.TrimSpace(apiURL)
	apiKey = strings.TrimSpace(apiKey)
	if apiURL == "" {
		apiURL = s.defaultAPIURL
	}
	if apiURL == "" || apiKey == "" {
		return domainerrors.ErrMissingCredentials
	}

	if err := s.credentialRepo.SaveLogin(ctx, apiURL, apiKey); err != nil {
		return errors.Wrap(err, "save login")
	}

	s.logger.Info("[Session] Logged in", slog.String("api_url", apiURL))

	return nil
}

// Logout clears the login flag only.
func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.credentialRepo.SetLoggedIn(ctx, false); err != nil {
		return errors.Wrap(err, "clear login flag")
	}

	s.logger.Info("[Session] Logged out")

	return nil
}

// Credentials returns the stored session.
func (s *sessionService) Credentials(ctx context.Context) (*entity.Credentials, error) {
	creds, err := s.credentialRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load credentials")
	}

	return creds, nil
}

// DashboardLogin authenticates against the stored API URL and keeps the access token.
func (s *sessionService) DashboardLogin(ctx context.Context, input *entity.LoginCredentials) (*entity.User, error) {
	baseURL, err := s.baseURL(ctx)
	if err != nil {
		return nil, err
	}

	auth, err := s.authAPI.Login(ctx, baseURL, input)
	if err != nil {
		return nil, errors.Wrap(err, "dashboard login")
	}
	if auth.AccessToken == "" {
		return nil, domainerrors.ErrSessionExpired.WithDetails("backend returned no access token")
	}

	if err := s.credentialRepo.SaveToken(ctx, auth.AccessToken); err != nil {
		return nil, errors.Wrap(err, "save token")
	}

	s.logger.Info("[Session] Dashboard login succeeded", slog.String("email", auth.User.Email))

	return &auth.User, nil
}

// DashboardRegister creates the account and then logs it in with the same password.
func (s *sessionService) DashboardRegister(ctx context.Context, input *entity.RegisterInput) (*entity.User, error) {
	baseURL, err := s.baseURL(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.authAPI.Register(ctx, baseURL, input); err != nil {
		return nil, errors.Wrap(err, "dashboard register")
	}

	return s.DashboardLogin(ctx, &entity.LoginCredentials{
		Email:    input.Email,
		Password: input.Password,
	})
}

// DashboardSession returns the stored token session if it has not expired.
func (s *sessionService) DashboardSession(ctx context.Context) (entity.Session, error) {
	creds, err := s.Credentials(ctx)
	if err != nil {
		return entity.Session{}, err
	}
	if creds.Token == "" {
		return entity.Session{}, domainerrors.ErrNotLoggedIn
	}

	session := creds.DashboardSession()
	if session.BaseURL == "" {
		session.BaseURL = strings.TrimRight(s.defaultAPIURL, "/")
	}

	expiresAt, ok, err := s.tokens.ExpiresAt(creds.Token)
	if err != nil {
		return entity.Session{}, domainerrors.ErrSessionExpired.WithDetails(err.Error())
	}
	if ok && !s.now().Before(expiresAt) {
		return entity.Session{}, domainerrors.ErrSessionExpired
	}

	return session, nil
}

// DashboardLogout forgets the token.
func (s *sessionService) DashboardLogout(ctx context.Context) error {
	if err := s.credentialRepo.SaveToken(ctx, ""); err != nil {
		return errors.Wrap(err, "clear token")
	}

	return nil
}

func (s *sessionService) baseURL(ctx context.Context) (string, error) {
	creds, err := s.Credentials(ctx)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(creds.APIURL) != "" {
		return creds.APIURL, nil
	}
	if s.defaultAPIURL == "" {
		return "", domainerrors.ErrMissingCredentials
	}

	return s.defaultAPIURL, nil
}
