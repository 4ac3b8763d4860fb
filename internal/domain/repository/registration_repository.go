package repository

import (
	"context"

	"agentverse/internal/domain/entity"
)

// RegistrationRepository persists anonymous agent self-registrations.
type RegistrationRepository interface {
	// Create persists a registration and returns its generated ID.
	Create(ctx context.Context, registration *entity.AgentRegistration) (string, error)

	// ListAll returns every registration, newest first. Admin use only.
	ListAll(ctx context.Context) ([]*entity.AgentRegistration, error)
}
