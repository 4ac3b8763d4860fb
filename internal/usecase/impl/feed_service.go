package impl

import (
	"context"
	"log/slog"
	"time"

	"agentverse/config"
	"agentverse/internal/domain/entity"
	domainerrors "agentverse/internal/domain/errors"
	"agentverse/internal/domain/repository"
	"agentverse/internal/domain/service"
	"agentverse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// feedService implements the FeedUsecase interface.
type feedService struct {
	postRepo    repository.PostRepository
	profileRepo repository.ProfileRepository
	publisher   service.EventPublisher
	cfg         *config.Config
	logger      *slog.Logger
}

// NewFeedService is the constructor for feedService.
func NewFeedService(
	postRepo repository.PostRepository,
	profileRepo repository.ProfileRepository,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.FeedUsecase {
	return &feedService{
		postRepo:    postRepo,
		profileRepo: profileRepo,
		publisher:   publisher,
		cfg:         cfg,
		logger:      logger,
	}
}

// CreatePost snapshots the author onto a new post and persists it. The
// author's post counter and XP move in the same store transaction.
func (srv *feedService) CreatePost(ctx context.Context, authorID uuid.UUID, input *usecase.CreatePostInput) (*entity.Post, error) {
	profile, err := srv.profileRepo.FindByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load author profile")
	}

	post := &entity.Post{
		AuthorID:     authorID.String(),
		AuthorName:   profile.DisplayName,
		AuthorAvatar: profile.Avatar,
		Content:      input.Content,
		Mood:         input.Mood,
		LikedBy:      []string{},
		ClientTime:   time.Now().UTC().Format(time.RFC3339),
	}

	id, err := srv.postRepo.Create(ctx, post, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create post")
	}
	post.ID = id

	srv.publish(ctx, &service.FeedEvent{
		Type:    service.FeedEventPostCreated,
		PostID:  id,
		ActorID: post.AuthorID,
	})

	return post, nil
}

// ListRecent returns the most recent posts, clamped to the configured window.
func (srv *feedService) ListRecent(ctx context.Context, limit int) ([]*entity.Post, error) {
	posts, err := srv.postRepo.ListRecent(ctx, srv.clampLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

// Subscribe opens a live view over the feed window.
func (srv *feedService) Subscribe(ctx context.Context, limit int) (<-chan []*entity.Post, error) {
	deliveries, err := srv.postRepo.Subscribe(ctx, srv.clampLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to subscribe to feed")
	}

	return deliveries, nil
}

// Like adds the principal to the post's liker set. Idempotent.
func (srv *feedService) Like(ctx context.Context, postID string, principalID uuid.UUID) error {
	newlyLiked, err := srv.postRepo.Like(ctx, postID, principalID.String())
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrPostNotFound
		}

		return errors.Wrap(err, "failed to like post")
	}

	if newlyLiked {
		srv.publish(ctx, &service.FeedEvent{
			Type:    service.FeedEventPostLiked,
			PostID:  postID,
			ActorID: principalID.String(),
		})
	}

	return nil
}

// Unlike removes the principal from the liker set. Idempotent.
func (srv *feedService) Unlike(ctx context.Context, postID string, principalID uuid.UUID) error {
	removed, err := srv.postRepo.Unlike(ctx, postID, principalID.String())
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrPostNotFound
		}

		return errors.Wrap(err, "failed to unlike post")
	}

	if removed {
		srv.publish(ctx, &service.FeedEvent{
			Type:    service.FeedEventPostUnliked,
			PostID:  postID,
			ActorID: principalID.String(),
		})
	}

	return nil
}

// publish sends a feed event best effort; a failing publish is logged
// and never fails the feed write.
func (srv *feedService) publish(ctx context.Context, event *service.FeedEvent) {
	if err := srv.publisher.PublishFeedEvent(ctx, event); err != nil {
		srv.logger.Warn("failed to publish feed event",
			slog.String("type", event.Type),
			slog.String("postID", event.PostID),
			slog.Any("error", err),
		)
	}
}

func (srv *feedService) clampLimit(limit int) int {
	defaultLimit, maxLimit := 20, 100
	if srv.cfg.Feed != nil {
		if srv.cfg.Feed.DefaultLimit > 0 {
			defaultLimit = srv.cfg.Feed.DefaultLimit
		}
		if srv.cfg.Feed.MaxLimit > 0 {
			maxLimit = srv.cfg.Feed.MaxLimit
		}
	}

	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}

	return limit
}
