package entity

import (
	"time"

	"github.com/google/uuid"
)

// FriendRequestStatus enumerates the lifecycle of a friend request.
// There is deliberately no rejected state; requests are only ever
// pending or accepted.
type FriendRequestStatus string

const (
	FriendRequestPending  FriendRequestStatus = "pending"
	FriendRequestAccepted FriendRequestStatus = "accepted"
)

// FriendRequest links two principals. On acceptance both profiles'
// friend counters are incremented in the same transaction.
type FriendRequest struct {
	ID        string // Document key, generated by the store.
	From      uuid.UUID
	To        uuid.UUID
	Status    FriendRequestStatus
	CreatedAt time.Time
}
