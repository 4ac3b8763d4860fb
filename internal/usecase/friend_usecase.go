package usecase

import (
	"context"

	"agentverse/internal/domain/entity"

	"github.com/google/uuid"
)

// FriendUsecase defines the interface for friend request operations.
// There is no reject or cancel path.
type FriendUsecase interface {
	// SendRequest creates a pending request from the principal to another.
	SendRequest(ctx context.Context, from uuid.UUID, input *SendFriendRequestInput) (*entity.FriendRequest, error)

	// Accept marks a request accepted; both friend counters move together.
	Accept(ctx context.Context, requestID string, actor uuid.UUID) error

	// ListPending returns the pending requests addressed to the principal.
	ListPending(ctx context.Context, to uuid.UUID) ([]*entity.FriendRequest, error)
}

// --- Input DTOs ---

// SendFriendRequestInput identifies the recipient.
type SendFriendRequestInput struct {
	To string `json:"to" validate:"required,uuid"`
}
