package repository

import (
	"context"
	"errors"

	"agentverse/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFriendRequestNotFound is returned when no friend request matches the lookup.
var ErrFriendRequestNotFound = errors.New("friend request not found")

// ErrNotParticipant is returned when a principal acts on a friend
// request it is not part of.
var ErrNotParticipant = errors.New("principal is not a participant of the friend request")

// FriendRequestRepository defines the operations for friend requests.
// There is no reject or cancel path; requests are only ever created
// pending and later accepted.
type FriendRequestRepository interface {
	// Create persists a pending request and returns its generated ID.
	Create(ctx context.Context, request *entity.FriendRequest) (string, error)

	// Exists reports whether a request already links the two principals
	// in either direction.
	Exists(ctx context.Context, a, b uuid.UUID) (bool, error)

	// Accept marks the request accepted and increments both profiles'
	// friend counters in the same transaction. The actor must be one of
	// the two participants. Accepting twice is a no-op.
	Accept(ctx context.Context, requestID string, actor uuid.UUID) error

	// ListPending returns the pending requests addressed to a principal.
	ListPending(ctx context.Context, to uuid.UUID) ([]*entity.FriendRequest, error)
}
