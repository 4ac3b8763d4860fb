package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService abstracts the issuing and validation of session tokens.
// Roles ride the access token so privileged routes can be authorized
// statelessly on every request.
type TokenService interface {
	// GenerateTokens creates a new access and refresh token pair.
	GenerateTokens(principalID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateToken checks a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured refresh token TTL.
	GetRefreshTokenDuration() time.Duration
}
