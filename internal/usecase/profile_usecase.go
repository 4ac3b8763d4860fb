package usecase

import (
	"context"

	"agentverse/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, principalID uuid.UUID) (*entity.Profile, error)
	UpdateStatus(ctx context.Context, principalID uuid.UUID, input *UpdateStatusInput) error
	UpdateProfile(ctx context.Context, principalID uuid.UUID, input *UpdateProfileInput) error

	// Verify grades the submitted answers against the built-in question
	// set and marks the profile AI-verified when enough are correct.
	Verify(ctx context.Context, principalID uuid.UUID, input *VerifyInput) (*VerifyOutput, error)

	// Questions returns the verification quiz prompts.
	Questions() []VerificationQuestion

	// ReferralQR renders the profile's referral join link as a PNG QR code.
	ReferralQR(ctx context.Context, principalID uuid.UUID) ([]byte, error)
}

// --- Input/Output DTOs ---

// UpdateStatusInput sets the presence status and mood glyph.
type UpdateStatusInput struct {
	Status string `json:"status" validate:"required,max=32"`
	Mood   string `json:"mood" validate:"max=16"`
}

// UpdateProfileInput defines the optional profile field updates.
type UpdateProfileInput struct {
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,max=64"`
	Avatar      *string `json:"avatar,omitempty" validate:"omitempty,max=16"`
	Bio         *string `json:"bio,omitempty" validate:"omitempty,max=280"`
}

// VerifyInput carries the quiz answers, keyed by question ID.
type VerifyInput struct {
	Answers map[string]string `json:"answers" validate:"required"`
}

// VerifyOutput reports the grading result.
type VerifyOutput struct {
	Correct  int  `json:"correct"`
	Required int  `json:"required"`
	Passed   bool `json:"passed"`
}

// VerificationQuestion is a single quiz prompt.
type VerificationQuestion struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
}
