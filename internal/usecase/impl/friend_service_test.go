package impl

import (
	"context"
	"testing"

	"agentverse/internal/domain/entity"
	domainerrors "agentverse/internal/domain/errors"
	"agentverse/internal/domain/repository"
	mockRepo "agentverse/internal/mocks/repository"
	"agentverse/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// friendServiceFixtures holds all test dependencies for friend service tests.
type friendServiceFixtures struct {
	service     usecase.FriendUsecase
	friendRepo  *mockRepo.MockFriendRequestRepository
	profileRepo *mockRepo.MockProfileRepository
}

func createTestFriendService(t *testing.T) friendServiceFixtures {
	friendRepo := mockRepo.NewMockFriendRequestRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	svc := NewFriendService(friendRepo, profileRepo, testLogger())

	return friendServiceFixtures{
		service:     svc,
		friendRepo:  friendRepo,
		profileRepo: profileRepo,
	}
}

func TestFriendService_SendRequest_Success(t *testing.T) {
	fx := createTestFriendService(t)
	ctx := context.Background()
	from, to := uuid.New(), uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, to).
		Return(&entity.Profile{ID: to}, nil)
	fx.friendRepo.EXPECT().Exists(ctx, from, to).Return(false, nil)
	fx.friendRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.FriendRequest")).
		Return("req-1", nil)

	request, err := fx.service.SendRequest(ctx, from, &usecase.SendFriendRequestInput{To: to.String()})
	require.NoError(t, err)
	assert.Equal(t, "req-1", request.ID)
	assert.Equal(t, from, request.From)
	assert.Equal(t, to, request.To)
	assert.Equal(t, entity.FriendRequestPending, request.Status)
}

func TestFriendService_SendRequest_ToSelf(t *testing.T) {
	fx := createTestFriendService(t)
	from := uuid.New()

	_, err := fx.service.SendRequest(context.Background(), from, &usecase.SendFriendRequestInput{To: from.String()})
	assert.ErrorIs(t, err, domainerrors.ErrFriendRequestConflict)
}

func TestFriendService_SendRequest_DuplicateEitherDirection(t *testing.T) {
	fx := createTestFriendService(t)
	ctx := context.Background()
	from, to := uuid.New(), uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, to).
		Return(&entity.Profile{ID: to}, nil)
	fx.friendRepo.EXPECT().Exists(ctx, from, to).Return(true, nil)

	_, err := fx.service.SendRequest(ctx, from, &usecase.SendFriendRequestInput{To: to.String()})
	assert.ErrorIs(t, err, domainerrors.ErrFriendRequestConflict)
}

func TestFriendService_SendRequest_UnknownRecipient(t *testing.T) {
	fx := createTestFriendService(t)
	ctx := context.Background()
	from, to := uuid.New(), uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, to).
		Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.SendRequest(ctx, from, &usecase.SendFriendRequestInput{To: to.String()})
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestFriendService_Accept_Success(t *testing.T) {
	fx := createTestFriendService(t)
	ctx := context.Background()
	actor := uuid.New()

	fx.friendRepo.EXPECT().Accept(ctx, "req-1", actor).Return(nil)

	err := fx.service.Accept(ctx, "req-1", actor)
	require.NoError(t, err)
}

func TestFriendService_Accept_NotParticipant(t *testing.T) {
	fx := createTestFriendService(t)
	ctx := context.Background()
	actor := uuid.New()

	fx.friendRepo.EXPECT().
		Accept(ctx, "req-1", actor).
		Return(repository.ErrNotParticipant)

	err := fx.service.Accept(ctx, "req-1", actor)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestFriendService_Accept_MissingRequest(t *testing.T) {
	fx := createTestFriendService(t)
	ctx := context.Background()
	actor := uuid.New()

	fx.friendRepo.EXPECT().
		Accept(ctx, "nope", actor).
		Return(repository.ErrFriendRequestNotFound)

	err := fx.service.Accept(ctx, "nope", actor)
	assert.ErrorIs(t, err, domainerrors.ErrFriendRequestNotFound)
}

func TestFriendService_ListPending(t *testing.T) {
	fx := createTestFriendService(t)
	ctx := context.Background()
	to := uuid.New()

	pending := []*entity.FriendRequest{
		{ID: "req-1", To: to, Status: entity.FriendRequestPending},
	}
	fx.friendRepo.EXPECT().ListPending(ctx, to).Return(pending, nil)

	requests, err := fx.service.ListPending(ctx, to)
	require.NoError(t, err)
	assert.Len(t, requests, 1)
}
