package impl

import (
	"context"
	"log/slog"

	"agentverse/internal/domain/entity"
	domainerrors "agentverse/internal/domain/errors"
	"agentverse/internal/domain/repository"
	"agentverse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// friendService implements the FriendUsecase interface.
type friendService struct {
	friendRepo  repository.FriendRequestRepository
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewFriendService is the constructor for friendService.
func NewFriendService(
	friendRepo repository.FriendRequestRepository,
	profileRepo repository.ProfileRepository,
	logger *slog.Logger,
) usecase.FriendUsecase {
	return &friendService{
		friendRepo:  friendRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// SendRequest creates a pending request from the principal to another.
func (srv *friendService) SendRequest(ctx context.Context, from uuid.UUID, input *usecase.SendFriendRequestInput) (*entity.FriendRequest, error) {
	to, err := uuid.Parse(input.To)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed
	}
	if to == from {
		return nil, domainerrors.ErrFriendRequestConflict
	}

	// The recipient must exist; a dangling request would never be seen.
	if _, err := srv.profileRepo.FindByID(ctx, to); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load recipient profile")
	}

	exists, err := srv.friendRepo.Exists(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing friend request")
	}
	if exists {
		return nil, domainerrors.ErrFriendRequestConflict
	}

	request := &entity.FriendRequest{
		From:   from,
		To:     to,
		Status: entity.FriendRequestPending,
	}

	id, err := srv.friendRepo.Create(ctx, request)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create friend request")
	}
	request.ID = id

	srv.logger.Info("friend request sent",
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)

	return request, nil
}

// Accept marks a request accepted. Both friend counters move in the
// same transaction inside the repository.
func (srv *friendService) Accept(ctx context.Context, requestID string, actor uuid.UUID) error {
	if err := srv.friendRepo.Accept(ctx, requestID, actor); err != nil {
		switch {
		case errors.Is(err, repository.ErrFriendRequestNotFound):
			return domainerrors.ErrFriendRequestNotFound
		case errors.Is(err, repository.ErrNotParticipant):
			return domainerrors.ErrForbidden
		}

		return errors.Wrap(err, "failed to accept friend request")
	}

	return nil
}

// ListPending returns the pending requests addressed to the principal.
func (srv *friendService) ListPending(ctx context.Context, to uuid.UUID) ([]*entity.FriendRequest, error) {
	requests, err := srv.friendRepo.ListPending(ctx, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending friend requests")
	}

	return requests, nil
}
