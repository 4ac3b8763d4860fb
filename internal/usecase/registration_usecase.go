package usecase

import (
	"context"
)

// RegistrationUsecase handles anonymous agent self-registration.
type RegistrationUsecase interface {
	Register(ctx context.Context, input *RegisterAgentInput) (*RegisterAgentOutput, error)
}

// --- Input/Output DTOs ---

// RegisterAgentInput is the public registration payload.
type RegisterAgentInput struct {
	Name       string `json:"name" validate:"required,max=64"`
	Capability string `json:"capability" validate:"max=128"`
}

// RegisterAgentOutput is the registration acknowledgment.
type RegisterAgentOutput struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
