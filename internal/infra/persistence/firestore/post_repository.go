package firestore

import (
	"context"
	"log/slog"

	"agentverse/internal/domain/entity"
	"agentverse/internal/domain/repository"
	"agentverse/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// xpPerPost is the experience awarded to the author of each post.
const xpPerPost = 10

// purgeBatchSize bounds each deletion page during a feed purge.
const purgeBatchSize = 500

// postRepository is the Firestore implementation of repository.PostRepository.
type postRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(client *firestore.Client, logger *slog.Logger) repository.PostRepository {
	return &postRepository{client: client, logger: logger}
}

// Create persists the post and, when bumpAuthor is set, increments the
// author's post counter and XP in the same transaction. The author's
// profile is read first so the level can be recomputed from the new XP.
func (r *postRepository) Create(ctx context.Context, post *entity.Post, bumpAuthor bool) (string, error) {
	postRef := r.client.Collection(postsCollection).NewDoc()

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if bumpAuthor {
			profileRef := r.client.Collection(profilesCollection).Doc(post.AuthorID)
			snap, err := tx.Get(profileRef)
			if err != nil {
				if status.Code(err) == codes.NotFound {
					return repository.ErrProfileNotFound
				}

				return errors.Wrap(err, "failed to get author profile")
			}

			var doc model.ProfileDoc
			if err := snap.DataTo(&doc); err != nil {
				return errors.Wrap(err, "failed to decode author profile")
			}

			newXP := doc.XP + xpPerPost
			if err := tx.Update(profileRef, []firestore.Update{
				{Path: "postCount", Value: firestore.Increment(1)},
				{Path: "xp", Value: newXP},
				{Path: "level", Value: entity.LevelForXP(newXP)},
			}); err != nil {
				return errors.Wrap(err, "failed to bump author counters")
			}
		}

		return errors.Wrap(tx.Create(postRef, model.PostFromEntity(post)), "failed to create post document")
	})

	if errors.Is(err, repository.ErrProfileNotFound) {
		return "", repository.ErrProfileNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "post creation transaction failed")
	}

	return postRef.ID, nil
}

// FindByID retrieves a single post.
func (r *postRepository) FindByID(ctx context.Context, id string) (*entity.Post, error) {
	snap, err := r.client.Collection(postsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to get post document")
	}

	return decodePost(snap)
}

// ListRecent returns the most recent posts, newest first.
func (r *postRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Post, error) {
	return r.collect(r.client.Collection(postsCollection).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit).
		Documents(ctx))
}

// ListAll returns every post, newest first.
func (r *postRepository) ListAll(ctx context.Context) ([]*entity.Post, error) {
	return r.collect(r.client.Collection(postsCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx))
}

// Like adds the principal to the post's liker set. The counter is set to
// the size of the updated set inside the transaction, so it can never
// drift from the set, and a repeated like is a no-op.
func (r *postRepository) Like(ctx context.Context, postID, principalID string) (bool, error) {
	newlyLiked := false
	err := r.likeTransaction(ctx, postID, principalID, true, &newlyLiked)

	return newlyLiked, err
}

// Unlike removes the principal from the liker set. Idempotent.
func (r *postRepository) Unlike(ctx context.Context, postID, principalID string) (bool, error) {
	removed := false
	err := r.likeTransaction(ctx, postID, principalID, false, &removed)

	return removed, err
}

func (r *postRepository) likeTransaction(ctx context.Context, postID, principalID string, add bool, changed *bool) error {
	postRef := r.client.Collection(postsCollection).Doc(postID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		*changed = false

		snap, err := tx.Get(postRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return repository.ErrPostNotFound
			}

			return errors.Wrap(err, "failed to get post document")
		}

		post, err := decodePost(snap)
		if err != nil {
			return err
		}

		if add {
			if !post.AddLike(principalID) {
				return nil // already liked
			}
		} else if !post.RemoveLike(principalID) {
			return nil // nothing to remove
		}

		*changed = true

		if err := tx.Update(postRef, []firestore.Update{
			{Path: "likedBy", Value: post.LikedBy},
			{Path: "likes", Value: post.Likes},
		}); err != nil {
			return errors.Wrap(err, "failed to update liker set")
		}

		// Mirror the change onto the author's aggregate counter, except
		// for the synthetic system author which has no profile.
		if post.AuthorID == entity.SystemAuthorID {
			return nil
		}
		delta := 1
		if !add {
			delta = -1
		}
		profileRef := r.client.Collection(profilesCollection).Doc(post.AuthorID)

		return errors.Wrap(tx.Update(profileRef, []firestore.Update{
			{Path: "likesReceived", Value: firestore.Increment(delta)},
		}), "failed to update author likes counter")
	})

	if errors.Is(err, repository.ErrPostNotFound) {
		return repository.ErrPostNotFound
	}

	return errors.Wrap(err, "like transaction failed")
}

// Subscribe opens a snapshot listener over the feed window and pushes the
// full ordered window on every change. The latest window wins when the
// consumer lags; deliveries never go backwards. The goroutine exits and
// the channel closes when ctx is canceled or the listener fails.
func (r *postRepository) Subscribe(ctx context.Context, limit int) (<-chan []*entity.Post, error) {
	query := r.client.Collection(postsCollection).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit)

	snapshots := query.Snapshots(ctx)
	deliveries := make(chan []*entity.Post, 1)

	go func() {
		defer close(deliveries)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if ctx.Err() != nil || status.Code(err) == codes.Canceled {
					return
				}
				r.logger.Error("feed snapshot listener failed", slog.Any("error", err))

				return
			}

			posts, err := r.collect(snap.Documents)
			if err != nil {
				r.logger.Error("failed to read feed snapshot", slog.Any("error", err))

				continue
			}

			select {
			case deliveries <- posts:
			case <-ctx.Done():
				return
			default:
				// Consumer lags: replace the pending window with the newer one.
				select {
				case <-deliveries:
				default:
				}
				select {
				case deliveries <- posts:
				default:
				}
			}
		}
	}()

	return deliveries, nil
}

// Delete removes a single post.
func (r *postRepository) Delete(ctx context.Context, id string) error {
	ref := r.client.Collection(postsCollection).Doc(id)
	_, err := ref.Delete(ctx, firestore.Exists)
	if status.Code(err) == codes.NotFound {
		return repository.ErrPostNotFound
	}

	return errors.Wrap(err, "failed to delete post document")
}

// PurgeAll pages through the posts collection and batch-deletes until
// exhausted. A failing batch aborts the purge with the progress so far;
// there is no automatic resume.
func (r *postRepository) PurgeAll(ctx context.Context) (int, error) {
	deleted := 0

	for {
		refs, err := r.nextPurgePage(ctx)
		if err != nil {
			return deleted, errors.Wrapf(err, "purge aborted after %d deletions", deleted)
		}
		if len(refs) == 0 {
			return deleted, nil
		}

		writer := r.client.BulkWriter(ctx)
		jobs := make([]*firestore.BulkWriterJob, 0, len(refs))
		for _, ref := range refs {
			job, err := writer.Delete(ref)
			if err != nil {
				writer.End()

				return deleted, errors.Wrapf(err, "purge aborted after %d deletions", deleted)
			}
			jobs = append(jobs, job)
		}
		writer.End()

		for _, job := range jobs {
			if _, err := job.Results(); err != nil {
				return deleted, errors.Wrapf(err, "purge batch failed after %d deletions", deleted)
			}
			deleted++
		}
	}
}

func (r *postRepository) nextPurgePage(ctx context.Context) ([]*firestore.DocumentRef, error) {
	iter := r.client.Collection(postsCollection).
		Select().
		Limit(purgeBatchSize).
		Documents(ctx)
	defer iter.Stop()

	var refs []*firestore.DocumentRef
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to page posts for purge")
		}
		refs = append(refs, snap.Ref)
	}

	return refs, nil
}

func (r *postRepository) collect(iter *firestore.DocumentIterator) ([]*entity.Post, error) {
	defer iter.Stop()

	posts := []*entity.Post{}
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate posts")
		}

		post, err := decodePost(snap)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	return posts, nil
}

func decodePost(snap *firestore.DocumentSnapshot) (*entity.Post, error) {
	var doc model.PostDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode post document")
	}

	return doc.ToEntity(snap.Ref.ID), nil
}
