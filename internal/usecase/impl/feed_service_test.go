package impl

import (
	"context"
	"testing"

	"agentverse/config"
	"agentverse/internal/domain/entity"
	domainerrors "agentverse/internal/domain/errors"
	"agentverse/internal/domain/repository"
	"agentverse/internal/domain/service"
	mockRepo "agentverse/internal/mocks/repository"
	mockSvc "agentverse/internal/mocks/service"
	"agentverse/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// feedServiceFixtures holds all test dependencies for feed service tests.
type feedServiceFixtures struct {
	service     usecase.FeedUsecase
	postRepo    *mockRepo.MockPostRepository
	profileRepo *mockRepo.MockProfileRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestFeedService(t *testing.T) feedServiceFixtures {
	postRepo := mockRepo.NewMockPostRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	cfg := &config.Config{
		Feed: &config.FeedConfig{DefaultLimit: 20, MaxLimit: 100},
	}
	svc := NewFeedService(postRepo, profileRepo, publisher, cfg, testLogger())

	return feedServiceFixtures{
		service:     svc,
		postRepo:    postRepo,
		profileRepo: profileRepo,
		publisher:   publisher,
	}
}

func TestFeedService_CreatePost_SnapshotsAuthor(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()
	authorID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, authorID).
		Return(&entity.Profile{ID: authorID, DisplayName: "Bot One", Avatar: "🤖"}, nil)

	var createdPost *entity.Post
	fx.postRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Post"), true).
		Run(func(_ context.Context, post *entity.Post, _ bool) {
			createdPost = post
		}).
		Return("post-1", nil)

	fx.publisher.EXPECT().
		PublishFeedEvent(ctx, mock.AnythingOfType("*service.FeedEvent")).
		Return(nil)

	post, err := fx.service.CreatePost(ctx, authorID, &usecase.CreatePostInput{
		Content: "hello, world",
		Mood:    "😎",
	})
	require.NoError(t, err)
	require.NotNil(t, createdPost)

	assert.Equal(t, "post-1", post.ID)
	assert.Equal(t, authorID.String(), createdPost.AuthorID)
	assert.Equal(t, "Bot One", createdPost.AuthorName)
	assert.Equal(t, "🤖", createdPost.AuthorAvatar)
	assert.Equal(t, "hello, world", createdPost.Content)
	assert.NotEmpty(t, createdPost.ClientTime)
	assert.Empty(t, createdPost.LikedBy)
}

func TestFeedService_CreatePost_UnknownAuthor(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()
	authorID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, authorID).
		Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.CreatePost(ctx, authorID, &usecase.CreatePostInput{Content: "hi"})
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestFeedService_CreatePost_PublishFailureDoesNotFailWrite(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()
	authorID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, authorID).
		Return(&entity.Profile{ID: authorID, DisplayName: "Bot One"}, nil)
	fx.postRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Post"), true).
		Return("post-1", nil)
	fx.publisher.EXPECT().
		PublishFeedEvent(ctx, mock.AnythingOfType("*service.FeedEvent")).
		Return(assert.AnError)

	post, err := fx.service.CreatePost(ctx, authorID, &usecase.CreatePostInput{Content: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "post-1", post.ID)
}

func TestFeedService_ListRecent_UsesDefaultLimit(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()

	fx.postRepo.EXPECT().ListRecent(ctx, 20).Return([]*entity.Post{}, nil)

	_, err := fx.service.ListRecent(ctx, 0)
	require.NoError(t, err)
}

func TestFeedService_ListRecent_ClampsToMaxLimit(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()

	fx.postRepo.EXPECT().ListRecent(ctx, 100).Return([]*entity.Post{}, nil)

	_, err := fx.service.ListRecent(ctx, 5000)
	require.NoError(t, err)
}

func TestFeedService_Like_NewLikePublishesEvent(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()
	principalID := uuid.New()

	fx.postRepo.EXPECT().Like(ctx, "post-1", principalID.String()).Return(true, nil)

	var published *service.FeedEvent
	fx.publisher.EXPECT().
		PublishFeedEvent(ctx, mock.AnythingOfType("*service.FeedEvent")).
		Run(func(_ context.Context, event *service.FeedEvent) {
			published = event
		}).
		Return(nil)

	err := fx.service.Like(ctx, "post-1", principalID)
	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, service.FeedEventPostLiked, published.Type)
	assert.Equal(t, "post-1", published.PostID)
}

func TestFeedService_Like_RepeatIsSilent(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()
	principalID := uuid.New()

	// Second like of the same post: no event, no error.
	fx.postRepo.EXPECT().Like(ctx, "post-1", principalID.String()).Return(false, nil)

	err := fx.service.Like(ctx, "post-1", principalID)
	require.NoError(t, err)
}

func TestFeedService_Like_MissingPost(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()
	principalID := uuid.New()

	fx.postRepo.EXPECT().
		Like(ctx, "nope", principalID.String()).
		Return(false, repository.ErrPostNotFound)

	err := fx.service.Like(ctx, "nope", principalID)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestFeedService_Unlike_RemovalPublishesEvent(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()
	principalID := uuid.New()

	fx.postRepo.EXPECT().Unlike(ctx, "post-1", principalID.String()).Return(true, nil)
	fx.publisher.EXPECT().
		PublishFeedEvent(ctx, mock.AnythingOfType("*service.FeedEvent")).
		Return(nil)

	err := fx.service.Unlike(ctx, "post-1", principalID)
	require.NoError(t, err)
}

func TestFeedService_Subscribe_ClampsLimit(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()

	deliveries := make(chan []*entity.Post)
	fx.postRepo.EXPECT().
		Subscribe(ctx, 20).
		Return((<-chan []*entity.Post)(deliveries), nil)

	got, err := fx.service.Subscribe(ctx, -5)
	require.NoError(t, err)
	assert.NotNil(t, got)
}
