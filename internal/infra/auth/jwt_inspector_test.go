package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend_secret_not_known_to_the_agent"))
	require.NoError(t, err)

	return token
}

func TestJWTInspector_ExpiresAt(t *testing.T) {
	inspector := NewJWTInspector()
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)

	token := signToken(t, jwt.RegisteredClaims{
		Subject:   "seller@example.com",
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	got, ok, err := inspector.ExpiresAt(token)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, exp.Equal(got))
}

func TestJWTInspector_ExpiredTokenStillParses(t *testing.T) {
	inspector := NewJWTInspector()
	exp := time.Now().Add(-time.Hour).Truncate(time.Second)

	got, ok, err := inspector.ExpiresAt(signToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)}))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, got.Before(time.Now()))
}

func TestJWTInspector_NoExpiry(t *testing.T) {
	inspector := NewJWTInspector()

	_, ok, err := inspector.ExpiresAt(signToken(t, jwt.MapClaims{"sub": "seller@example.com"}))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestJWTInspector_InvalidToken(t *testing.T) {
	inspector := NewJWTInspector()

	_, ok, err := inspector.ExpiresAt("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}
