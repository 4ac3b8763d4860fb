package impl

import (
	"context"
	"fmt"
	"log/slog"

	"agentverse/internal/domain/entity"
	"agentverse/internal/domain/repository"
	"agentverse/internal/usecase"

	"github.com/pkg/errors"
)

// registrationService implements the RegistrationUsecase interface.
type registrationService struct {
	registrationRepo repository.RegistrationRepository
	logger           *slog.Logger
}

// NewRegistrationService is the constructor for registrationService.
func NewRegistrationService(
	registrationRepo repository.RegistrationRepository,
	logger *slog.Logger,
) usecase.RegistrationUsecase {
	return &registrationService{
		registrationRepo: registrationRepo,
		logger:           logger,
	}
}

// Register records an anonymous agent self-registration. The endpoint
// is deliberately unauthenticated; the record is append-only and only
// admins ever read it back.
func (srv *registrationService) Register(ctx context.Context, input *usecase.RegisterAgentInput) (*usecase.RegisterAgentOutput, error) {
	registration := &entity.AgentRegistration{
		Name:       input.Name,
		Capability: input.Capability,
	}

	id, err := srv.registrationRepo.Create(ctx, registration)
	if err != nil {
		return nil, errors.Wrap(err, "failed to record registration")
	}

	srv.logger.Info("agent registered",
		slog.String("registrationID", id),
		slog.String("name", input.Name),
	)

	return &usecase.RegisterAgentOutput{
		Status:  "registered",
		Message: fmt.Sprintf("Agent %s registered", input.Name),
	}, nil
}
