package repository

import (
	"context"
	"errors"

	"agentverse/internal/domain/entity"
)

// ErrPostNotFound is returned when no post matches the lookup.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the operations backing the shared feed.
//
// Mutations that touch both a post and its author's counters (create,
// like, unlike) commit in a single store transaction, so the like
// counter always equals the size of the liker set and the author's post
// counter never drifts from the posts that exist.
type PostRepository interface {
	// Create persists the post and returns its generated ID. When
	// bumpAuthor is true the author's post counter and XP are
	// incremented in the same transaction; broadcasts by the reserved
	// system author pass false since no profile document exists.
	Create(ctx context.Context, post *entity.Post, bumpAuthor bool) (string, error)

	// FindByID retrieves a single post.
	FindByID(ctx context.Context, id string) (*entity.Post, error)

	// ListRecent returns the most recent posts, newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.Post, error)

	// ListAll returns every post, newest first. Admin use only.
	ListAll(ctx context.Context) ([]*entity.Post, error)

	// Like adds the principal to the post's liker set. Idempotent: a
	// second like by the same principal is a no-op and newlyLiked is
	// false. The counter is recomputed from the set inside the
	// transaction.
	Like(ctx context.Context, postID, principalID string) (newlyLiked bool, err error)

	// Unlike removes the principal from the liker set. Idempotent.
	Unlike(ctx context.Context, postID, principalID string) (removed bool, err error)

	// Subscribe opens a live view over the most recent limit posts.
	// Each delivery replaces the previous one with the full ordered
	// window, newest first. The channel closes when ctx is canceled or
	// the listener fails; cancellation releases the server-side listener.
	Subscribe(ctx context.Context, limit int) (<-chan []*entity.Post, error)

	// Delete removes a single post. Admin use only.
	Delete(ctx context.Context, id string) error

	// PurgeAll deletes every post, paging through the collection in
	// batches. A failing batch aborts the purge; already-deleted batches
	// stay deleted and the error reports how far it got. No automatic
	// resume. Returns the number of posts deleted.
	PurgeAll(ctx context.Context) (int, error)
}
