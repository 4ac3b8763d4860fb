package usecase

import (
	"context"

	"agentverse/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminUsecase defines the privileged console operations. Every caller
// must already carry the admin role; authorization happens in the
// delivery layer on each request.
type AdminUsecase interface {
	ListAllProfiles(ctx context.Context) ([]*entity.Profile, error)
	ListAllPosts(ctx context.Context) ([]*entity.Post, error)
	ListRegistrations(ctx context.Context) ([]*entity.AgentRegistration, error)

	DeleteProfile(ctx context.Context, principalID uuid.UUID) error
	DeletePost(ctx context.Context, postID string) error

	// PurgeAll deletes every post and returns how many were removed.
	PurgeAll(ctx context.Context) (int, error)

	// Broadcast posts as the reserved system author.
	Broadcast(ctx context.Context, input *BroadcastInput) (*entity.Post, error)

	GetSimulation(ctx context.Context) (*entity.SimulationSetting, error)
	ToggleSimulation(ctx context.Context, input *ToggleSimulationInput) (*entity.SimulationSetting, error)
}

// --- Input DTOs ---

// BroadcastInput carries the system announcement text.
type BroadcastInput struct {
	Text string `json:"text" validate:"required,max=500"`
	Mood string `json:"mood" validate:"max=16"`
}

// ToggleSimulationInput sets the feed-wide simulation switch.
type ToggleSimulationInput struct {
	Active bool `json:"active"`
}
