package impl

import (
	"context"
	"testing"
	"time"

	"automarket/internal/domain/entity"
	domainerrors "automarket/internal/domain/errors"
	mockRepo "automarket/internal/mocks/repository"
	mockSvc "automarket/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	repo    *mockRepo.MockCredentialRepository
	auth    *mockSvc.MockAuthAPI
	tokens  *mockSvc.MockTokenInspector
	service *sessionService
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	f := &sessionFixture{
		repo:   mockRepo.NewMockCredentialRepository(t),
		auth:   mockSvc.NewMockAuthAPI(t),
		tokens: mockSvc.NewMockTokenInspector(t),
	}
	f.service = NewSessionService(SessionServiceParams{
		CredentialRepo: f.repo,
		AuthAPI:        f.auth,
		Tokens:         f.tokens,
		Config:         newTestConfig(false),
		Logger:         newDiscardLogger(),
	}).(*sessionService)

	return f
}

func TestSessionService_Login(t *testing.T) {
	tests := []struct {
		name    string
		apiURL  string
		apiKey  string
		wantURL string
		wantErr error
	}{
		{name: "explicit url", apiURL: " https://api.example.com ", apiKey: "key", wantURL: "https://api.example.com"},
		{name: "default url", apiURL: "", apiKey: "key", wantURL: "http://localhost:8000"},
		{name: "missing key", apiURL: "https://api.example.com", apiKey: "  ", wantErr: domainerrors.ErrMissingCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSessionFixture(t)
			ctx := context.Background()

			if tt.wantErr == nil {
				f.repo.EXPECT().SaveLogin(ctx, tt.wantURL, tt.apiKey).Return(nil)
			}

			err := f.service.Login(ctx, tt.apiURL, tt.apiKey)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSessionService_LogoutOnlyClearsFlag(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().SetLoggedIn(ctx, false).Return(nil)

	require.NoError(t, f.service.Logout(ctx))
}

func TestSessionService_DashboardLoginStoresToken(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	input := &entity.LoginCredentials{Email: "seller@example.com", Password: "secret"}

	f.repo.EXPECT().Load(ctx).Return(&entity.Credentials{APIURL: "https://api.example.com"}, nil)
	f.auth.EXPECT().Login(ctx, "https://api.example.com", input).Return(&entity.AuthResponse{
		AccessToken: "jwt-token",
		TokenType:   "bearer",
		User:        entity.User{ID: 7, Email: "seller@example.com"},
	}, nil)
	f.repo.EXPECT().SaveToken(ctx, "jwt-token").Return(nil)

	user, err := f.service.DashboardLogin(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
}

func TestSessionService_DashboardLoginUsesDefaultURL(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	input := &entity.LoginCredentials{Email: "seller@example.com", Password: "secret"}

	f.repo.EXPECT().Load(ctx).Return(&entity.Credentials{}, nil)
	f.auth.EXPECT().Login(ctx, "http://localhost:8000", input).Return(nil, errors.New("connection refused"))

	_, err := f.service.DashboardLogin(ctx, input)

	assert.ErrorContains(t, err, "connection refused")
}

func TestSessionService_DashboardRegisterLogsIn(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	input := &entity.RegisterInput{Email: "new@example.com", Password: "secret", FullName: "New Seller"}

	f.repo.EXPECT().Load(ctx).Return(&entity.Credentials{APIURL: "https://api.example.com"}, nil)
	f.auth.EXPECT().Register(ctx, "https://api.example.com", input).Return(&entity.User{ID: 9, Email: input.Email}, nil)
	f.auth.EXPECT().
		Login(ctx, "https://api.example.com", &entity.LoginCredentials{Email: input.Email, Password: input.Password}).
		Return(&entity.AuthResponse{AccessToken: "jwt-token", User: entity.User{ID: 9, Email: input.Email}}, nil)
	f.repo.EXPECT().SaveToken(ctx, "jwt-token").Return(nil)

	user, err := f.service.DashboardRegister(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(9), user.ID)
}

func TestSessionService_DashboardSession(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name      string
		creds     *entity.Credentials
		expiresAt time.Time
		hasExp    bool
		inspect   bool
		want      entity.Session
		wantErr   error
	}{
		{
			name:    "no token",
			creds:   &entity.Credentials{APIURL: "https://api.example.com"},
			wantErr: domainerrors.ErrNotLoggedIn,
		},
		{
			name:      "valid token",
			creds:     &entity.Credentials{APIURL: "https://api.example.com/", Token: "jwt"},
			expiresAt: now.Add(time.Hour),
			hasExp:    true,
			inspect:   true,
			want:      entity.Session{BaseURL: "https://api.example.com", Token: "jwt"},
		},
		{
			name:    "token without exp",
			creds:   &entity.Credentials{Token: "jwt"},
			inspect: true,
			want:    entity.Session{BaseURL: "http://localhost:8000", Token: "jwt"},
		},
		{
			name:      "expired token",
			creds:     &entity.Credentials{APIURL: "https://api.example.com", Token: "jwt"},
			expiresAt: now,
			hasExp:    true,
			inspect:   true,
			wantErr:   domainerrors.ErrSessionExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSessionFixture(t)
			f.service.now = func() time.Time { return now }
			ctx := context.Background()

			f.repo.EXPECT().Load(ctx).Return(tt.creds, nil)
			if tt.inspect {
				f.tokens.EXPECT().ExpiresAt(tt.creds.Token).Return(tt.expiresAt, tt.hasExp, nil)
			}

			session, err := f.service.DashboardSession(ctx)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, session)
		})
	}
}

func TestSessionService_DashboardSessionMalformedToken(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().Load(ctx).Return(&entity.Credentials{Token: "garbage"}, nil)
	f.tokens.EXPECT().ExpiresAt("garbage").Return(time.Time{}, false, errors.New("token is malformed"))

	_, err := f.service.DashboardSession(ctx)

	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestSessionService_DashboardLogoutClearsToken(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().SaveToken(ctx, "").Return(nil)

	require.NoError(t, f.service.DashboardLogout(ctx))
}
