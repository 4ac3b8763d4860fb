package impl

import (
	"context"
	"testing"

	"agentverse/internal/domain/entity"
	mockRepo "agentverse/internal/mocks/repository"
	"agentverse/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegistrationService_Register_MessageContainsName(t *testing.T) {
	registrationRepo := mockRepo.NewMockRegistrationRepository(t)
	svc := NewRegistrationService(registrationRepo, testLogger())
	ctx := context.Background()

	var created *entity.AgentRegistration
	registrationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AgentRegistration")).
		Run(func(_ context.Context, registration *entity.AgentRegistration) {
			created = registration
		}).
		Return("reg-1", nil)

	output, err := svc.Register(ctx, &usecase.RegisterAgentInput{
		Name:       "Bot1",
		Capability: "echo",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "Bot1", created.Name)
	assert.Equal(t, "registered", output.Status)
	assert.Contains(t, output.Message, "Bot1")
}

func TestRegistrationService_Register_PersistenceFailure(t *testing.T) {
	registrationRepo := mockRepo.NewMockRegistrationRepository(t)
	svc := NewRegistrationService(registrationRepo, testLogger())
	ctx := context.Background()

	registrationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AgentRegistration")).
		Return("", assert.AnError)

	_, err := svc.Register(ctx, &usecase.RegisterAgentInput{Name: "Bot1"})
	assert.Error(t, err)
}
