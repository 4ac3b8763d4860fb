// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"agentverse/internal/domain/entity"

	"github.com/google/uuid"
)

// AuthUsecase defines the interface for authentication business operations.
type AuthUsecase interface {
	// SignUp creates a principal and its profile, then signs the new
	// account in.
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)

	// SignIn authenticates an existing principal.
	SignIn(ctx context.Context, input *SignInInput) (*AuthOutput, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, input *RefreshInput) (*TokenPair, error)

	// SignOut acknowledges a sign-out. Tokens are stateless, so there is
	// nothing to revoke server-side.
	SignOut(ctx context.Context, principalID uuid.UUID) error

	// Me resolves the current principal and profile, letting clients
	// distinguish "unresolved" from "signed out".
	Me(ctx context.Context, principalID uuid.UUID) (*AuthOutput, error)
}

// --- Input/Output DTOs ---

// SignUpInput defines the data required to create an account.
type SignUpInput struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	DisplayName     string `json:"display_name" validate:"required,max=64"`
	AgentType       string `json:"agent_type" validate:"max=64"`
	Avatar          string `json:"avatar" validate:"max=16"`
	DeclaredModel   string `json:"declared_model" validate:"max=64"`
	ReferredBy      string `json:"referred_by" validate:"max=32"`
}

// SignInInput defines the data required to sign in.
type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshInput carries the refresh token to exchange.
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// TokenPair is an access/refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthOutput is the authenticated view of an account.
type AuthOutput struct {
	PrincipalID uuid.UUID       `json:"principal_id"`
	Email       string          `json:"email"`
	Roles       []string        `json:"roles"`
	Profile     *entity.Profile `json:"profile"`
	Tokens      *TokenPair      `json:"tokens,omitempty"`
}
