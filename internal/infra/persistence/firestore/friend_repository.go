package firestore

import (
	"context"

	"agentverse/internal/domain/entity"
	"agentverse/internal/domain/repository"
	"agentverse/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// friendRequestRepository is the Firestore implementation of repository.FriendRequestRepository.
type friendRequestRepository struct {
	client *firestore.Client
}

// NewFriendRequestRepository is the constructor for friendRequestRepository.
func NewFriendRequestRepository(client *firestore.Client) repository.FriendRequestRepository {
	return &friendRequestRepository{client: client}
}

// Create persists a pending request and returns its generated ID.
func (r *friendRequestRepository) Create(ctx context.Context, request *entity.FriendRequest) (string, error) {
	ref := r.client.Collection(friendRequestsCollection).NewDoc()
	if _, err := ref.Create(ctx, model.FriendRequestFromEntity(request)); err != nil {
		return "", errors.Wrap(err, "failed to create friend request document")
	}

	return ref.ID, nil
}

// Exists reports whether a request already links the two principals in
// either direction.
func (r *friendRequestRepository) Exists(ctx context.Context, a, b uuid.UUID) (bool, error) {
	pairs := [][2]string{
		{a.String(), b.String()},
		{b.String(), a.String()},
	}

	for _, pair := range pairs {
		iter := r.client.Collection(friendRequestsCollection).
			Where("from", "==", pair[0]).
			Where("to", "==", pair[1]).
			Limit(1).
			Documents(ctx)

		_, err := iter.Next()
		iter.Stop()
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, iterator.Done) {
			return false, errors.Wrap(err, "failed to query friend requests")
		}
	}

	return false, nil
}

// Accept marks the request accepted and increments both profiles' friend
// counters in one transaction, so the two counters move together with
// the status change. Accepting an already-accepted request is a no-op.
func (r *friendRequestRepository) Accept(ctx context.Context, requestID string, actor uuid.UUID) error {
	requestRef := r.client.Collection(friendRequestsCollection).Doc(requestID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(requestRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return repository.ErrFriendRequestNotFound
			}

			return errors.Wrap(err, "failed to get friend request document")
		}

		var doc model.FriendRequestDoc
		if err := snap.DataTo(&doc); err != nil {
			return errors.Wrap(err, "failed to decode friend request document")
		}

		actorID := actor.String()
		if doc.From != actorID && doc.To != actorID {
			return repository.ErrNotParticipant
		}

		if doc.Status == string(entity.FriendRequestAccepted) {
			return nil
		}

		if err := tx.Update(requestRef, []firestore.Update{
			{Path: "status", Value: string(entity.FriendRequestAccepted)},
		}); err != nil {
			return errors.Wrap(err, "failed to update friend request status")
		}

		for _, id := range []string{doc.From, doc.To} {
			profileRef := r.client.Collection(profilesCollection).Doc(id)
			if err := tx.Update(profileRef, []firestore.Update{
				{Path: "friendCount", Value: firestore.Increment(1)},
			}); err != nil {
				return errors.Wrap(err, "failed to increment friend counter")
			}
		}

		return nil
	})

	switch {
	case errors.Is(err, repository.ErrFriendRequestNotFound):
		return repository.ErrFriendRequestNotFound
	case errors.Is(err, repository.ErrNotParticipant):
		return repository.ErrNotParticipant
	}

	return errors.Wrap(err, "friend request accept transaction failed")
}

// ListPending returns the pending requests addressed to a principal,
// newest first.
func (r *friendRequestRepository) ListPending(ctx context.Context, to uuid.UUID) ([]*entity.FriendRequest, error) {
	iter := r.client.Collection(friendRequestsCollection).
		Where("to", "==", to.String()).
		Where("status", "==", string(entity.FriendRequestPending)).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var requests []*entity.FriendRequest
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate friend requests")
		}

		var doc model.FriendRequestDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode friend request document")
		}

		request, err := doc.ToEntity(snap.Ref.ID)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, nil
}
