package impl

import (
	"context"
	"testing"

	"agentverse/internal/domain/entity"
	domainerrors "agentverse/internal/domain/errors"
	"agentverse/internal/domain/repository"
	"agentverse/internal/domain/service"
	mockRepo "agentverse/internal/mocks/repository"
	mockSvc "agentverse/internal/mocks/service"
	"agentverse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service          usecase.AdminUsecase
	profileRepo      *mockRepo.MockProfileRepository
	postRepo         *mockRepo.MockPostRepository
	registrationRepo *mockRepo.MockRegistrationRepository
	simulationRepo   *mockRepo.MockSimulationRepository
	publisher        *mockSvc.MockEventPublisher
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	postRepo := mockRepo.NewMockPostRepository(t)
	registrationRepo := mockRepo.NewMockRegistrationRepository(t)
	simulationRepo := mockRepo.NewMockSimulationRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewAdminService(profileRepo, postRepo, registrationRepo, simulationRepo, publisher, testLogger())

	return adminServiceFixtures{
		service:          svc,
		profileRepo:      profileRepo,
		postRepo:         postRepo,
		registrationRepo: registrationRepo,
		simulationRepo:   simulationRepo,
		publisher:        publisher,
	}
}

func TestAdminService_Broadcast_UsesSystemAuthor(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	var createdPost *entity.Post
	fx.postRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Post"), false).
		Run(func(_ context.Context, post *entity.Post, _ bool) {
			createdPost = post
		}).
		Return("post-1", nil)
	fx.publisher.EXPECT().
		PublishFeedEvent(ctx, mock.AnythingOfType("*service.FeedEvent")).
		Return(nil)

	post, err := fx.service.Broadcast(ctx, &usecase.BroadcastInput{Text: "maintenance at noon"})
	require.NoError(t, err)
	require.NotNil(t, createdPost)

	// Broadcasts carry the reserved system identity and never bump a profile.
	assert.Equal(t, entity.SystemAuthorID, createdPost.AuthorID)
	assert.Equal(t, entity.SystemAuthorName, createdPost.AuthorName)
	assert.Equal(t, entity.SystemAuthorAvatar, createdPost.AuthorAvatar)
	assert.Equal(t, "post-1", post.ID)
}

func TestAdminService_PurgeAll_ReportsCountAndPublishes(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.postRepo.EXPECT().PurgeAll(ctx).Return(42, nil)

	var published *service.FeedEvent
	fx.publisher.EXPECT().
		PublishFeedEvent(ctx, mock.AnythingOfType("*service.FeedEvent")).
		Run(func(_ context.Context, event *service.FeedEvent) {
			published = event
		}).
		Return(nil)

	deleted, err := fx.service.PurgeAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, deleted)
	require.NotNil(t, published)
	assert.Equal(t, service.FeedEventFeedPurged, published.Type)
}

func TestAdminService_PurgeAll_PartialFailureSurfacesCount(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.postRepo.EXPECT().
		PurgeAll(ctx).
		Return(500, errors.New("purge aborted after 500 deletions"))

	deleted, err := fx.service.PurgeAll(ctx)
	require.Error(t, err)
	assert.Equal(t, 500, deleted)
}

func TestAdminService_DeleteProfile_Missing(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	principalID := uuid.New()

	fx.profileRepo.EXPECT().
		Delete(ctx, principalID).
		Return(repository.ErrProfileNotFound)

	err := fx.service.DeleteProfile(ctx, principalID)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestAdminService_DeletePost_PublishesEvent(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.postRepo.EXPECT().Delete(ctx, "post-1").Return(nil)
	fx.publisher.EXPECT().
		PublishFeedEvent(ctx, mock.AnythingOfType("*service.FeedEvent")).
		Return(nil)

	err := fx.service.DeletePost(ctx, "post-1")
	require.NoError(t, err)
}

func TestAdminService_ToggleSimulation(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.simulationRepo.EXPECT().
		Set(ctx, true).
		Return(&entity.SimulationSetting{Active: true}, nil)

	setting, err := fx.service.ToggleSimulation(ctx, &usecase.ToggleSimulationInput{Active: true})
	require.NoError(t, err)
	assert.True(t, setting.Active)
}

func TestAdminService_ListRegistrations(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.registrationRepo.EXPECT().
		ListAll(ctx).
		Return([]*entity.AgentRegistration{{ID: "reg-1", Name: "Bot1"}}, nil)

	registrations, err := fx.service.ListRegistrations(ctx)
	require.NoError(t, err)
	assert.Len(t, registrations, 1)
}
