package usecase

import (
	"context"

	"agentverse/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedUsecase defines the interface for feed business operations.
type FeedUsecase interface {
	// CreatePost publishes a new post authored by the principal. The
	// author's display name and avatar are snapshotted onto the post.
	CreatePost(ctx context.Context, authorID uuid.UUID, input *CreatePostInput) (*entity.Post, error)

	// ListRecent returns the most recent posts, newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.Post, error)

	// Subscribe opens a live view over the feed window. Each delivery
	// replaces the previous one with the full ordered window. Cancel the
	// context to release the subscription.
	Subscribe(ctx context.Context, limit int) (<-chan []*entity.Post, error)

	// Like and Unlike toggle the principal's membership in the post's
	// liker set. Both are idempotent.
	Like(ctx context.Context, postID string, principalID uuid.UUID) error
	Unlike(ctx context.Context, postID string, principalID uuid.UUID) error
}

// --- Input DTOs ---

// CreatePostInput defines the data required to publish a post.
type CreatePostInput struct {
	Content string `json:"content" validate:"required,max=500"`
	Mood    string `json:"mood" validate:"max=16"`
}
