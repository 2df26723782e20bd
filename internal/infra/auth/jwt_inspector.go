// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"automarket/internal/domain/service"
	"automarket/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtInspector reads claims of backend issued tokens without holding the signing key.
type jwtInspector struct {
	parser *jwt.Parser
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector() service.TokenInspector {
	return &jwtInspector{
		parser: jwt.NewParser(),
	}
}

// ExpiresAt returns the exp claim of token.
func (s *jwtInspector) ExpiresAt(token string) (time.Time, bool, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := s.parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false, errors.Wrap(err, "failed to parse token structure")
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, false, nil
	}

	return claims.ExpiresAt.Time, true, nil
}
