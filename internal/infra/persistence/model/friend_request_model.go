package model

import (
	"time"

	"agentverse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// FriendRequestDoc is the document stored in the friend_requests collection.
type FriendRequestDoc struct {
	From      string    `firestore:"from"`
	To        string    `firestore:"to"`
	Status    string    `firestore:"status"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"`
}

// FriendRequestFromEntity converts a domain friend request to its document form.
func FriendRequestFromEntity(r *entity.FriendRequest) *FriendRequestDoc {
	return &FriendRequestDoc{
		From:   r.From.String(),
		To:     r.To.String(),
		Status: string(r.Status),
	}
}

// ToEntity converts the document back to a domain friend request.
func (d *FriendRequestDoc) ToEntity(id string) (*entity.FriendRequest, error) {
	from, err := uuid.Parse(d.From)
	if err != nil {
		return nil, errors.Wrap(err, "invalid sender id in friend request document")
	}
	to, err := uuid.Parse(d.To)
	if err != nil {
		return nil, errors.Wrap(err, "invalid recipient id in friend request document")
	}

	return &entity.FriendRequest{
		ID:        id,
		From:      from,
		To:        to,
		Status:    entity.FriendRequestStatus(d.Status),
		CreatedAt: d.CreatedAt,
	}, nil
}
