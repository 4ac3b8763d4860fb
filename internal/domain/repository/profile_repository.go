package repository

import (
	"context"
	"errors"

	"agentverse/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when no profile matches the lookup.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileUpdate carries optional profile field updates. Nil pointers are
// left untouched.
type ProfileUpdate struct {
	DisplayName *string
	Avatar      *string
	Bio         *string
}

// ProfileRepository defines the standard operations for profile persistence.
type ProfileRepository interface {
	// Create persists a new profile keyed by the principal ID. It is a
	// plain overwrite by key; callers invoke it exactly once, right
	// after principal creation.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindByID retrieves a single profile by principal ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// ListAll returns every profile, newest first. Admin use only.
	ListAll(ctx context.Context) ([]*entity.Profile, error)

	// UpdateStatus sets the presence status and mood glyph.
	UpdateStatus(ctx context.Context, id uuid.UUID, status, mood string) error

	// UpdateFields applies the non-nil fields of the update.
	UpdateFields(ctx context.Context, id uuid.UUID, update ProfileUpdate) error

	// SetVerified marks the profile AI-verified and records the answers.
	SetVerified(ctx context.Context, id uuid.UUID, answers []string) error

	// Delete removes the profile. Admin use only.
	Delete(ctx context.Context, id uuid.UUID) error
}
