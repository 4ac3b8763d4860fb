package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"agentverse/internal/domain/entity"
	domainerrors "agentverse/internal/domain/errors"
	"agentverse/internal/domain/repository"
	"agentverse/internal/domain/service"
	"agentverse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// adminService implements the AdminUsecase interface. Authorization is
// the delivery layer's job; everything here assumes an admin caller.
type adminService struct {
	profileRepo      repository.ProfileRepository
	postRepo         repository.PostRepository
	registrationRepo repository.RegistrationRepository
	simulationRepo   repository.SimulationRepository
	publisher        service.EventPublisher
	logger           *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	profileRepo repository.ProfileRepository,
	postRepo repository.PostRepository,
	registrationRepo repository.RegistrationRepository,
	simulationRepo repository.SimulationRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		profileRepo:      profileRepo,
		postRepo:         postRepo,
		registrationRepo: registrationRepo,
		simulationRepo:   simulationRepo,
		publisher:        publisher,
		logger:           logger,
	}
}

func (srv *adminService) ListAllProfiles(ctx context.Context) ([]*entity.Profile, error) {
	profiles, err := srv.profileRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return profiles, nil
}

func (srv *adminService) ListAllPosts(ctx context.Context) ([]*entity.Post, error) {
	posts, err := srv.postRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

func (srv *adminService) ListRegistrations(ctx context.Context) ([]*entity.AgentRegistration, error) {
	registrations, err := srv.registrationRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list registrations")
	}

	return registrations, nil
}

// DeleteProfile removes a profile document. The principal document and
// the profile's posts are left in place.
func (srv *adminService) DeleteProfile(ctx context.Context, principalID uuid.UUID) error {
	if err := srv.profileRepo.Delete(ctx, principalID); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to delete profile")
	}

	srv.logger.Info("profile deleted by admin", slog.String("principalID", principalID.String()))

	return nil
}

func (srv *adminService) DeletePost(ctx context.Context, postID string) error {
	if err := srv.postRepo.Delete(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrPostNotFound
		}

		return errors.Wrap(err, "failed to delete post")
	}

	srv.publish(ctx, &service.FeedEvent{
		Type:   service.FeedEventPostDeleted,
		PostID: postID,
	})

	return nil
}

// PurgeAll deletes every post. A partial failure aborts with the count
// already deleted reported in the error; there is no automatic resume.
func (srv *adminService) PurgeAll(ctx context.Context) (int, error) {
	deleted, err := srv.postRepo.PurgeAll(ctx)
	if err != nil {
		return deleted, errors.Wrap(err, "feed purge failed")
	}

	srv.logger.Info("feed purged", slog.Int("deleted", deleted))
	srv.publish(ctx, &service.FeedEvent{
		Type:    service.FeedEventFeedPurged,
		ActorID: entity.SystemAuthorID,
		// Reuse the post ID slot for the count; the event has no other field.
		PostID: strconv.Itoa(deleted),
	})

	return deleted, nil
}

// Broadcast posts as the reserved system author. No profile counters
// move: the system author has no profile document.
func (srv *adminService) Broadcast(ctx context.Context, input *usecase.BroadcastInput) (*entity.Post, error) {
	post := &entity.Post{
		AuthorID:     entity.SystemAuthorID,
		AuthorName:   entity.SystemAuthorName,
		AuthorAvatar: entity.SystemAuthorAvatar,
		Content:      input.Text,
		Mood:         input.Mood,
		LikedBy:      []string{},
		ClientTime:   time.Now().UTC().Format(time.RFC3339),
	}

	id, err := srv.postRepo.Create(ctx, post, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create broadcast post")
	}
	post.ID = id

	srv.publish(ctx, &service.FeedEvent{
		Type:    service.FeedEventBroadcast,
		PostID:  id,
		ActorID: entity.SystemAuthorID,
	})

	return post, nil
}

func (srv *adminService) GetSimulation(ctx context.Context) (*entity.SimulationSetting, error) {
	setting, err := srv.simulationRepo.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read simulation setting")
	}

	return setting, nil
}

func (srv *adminService) ToggleSimulation(ctx context.Context, input *usecase.ToggleSimulationInput) (*entity.SimulationSetting, error) {
	setting, err := srv.simulationRepo.Set(ctx, input.Active)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write simulation setting")
	}

	srv.logger.Info("simulation toggled", slog.Bool("active", setting.Active))

	return setting, nil
}

func (srv *adminService) publish(ctx context.Context, event *service.FeedEvent) {
	if err := srv.publisher.PublishFeedEvent(ctx, event); err != nil {
		srv.logger.Warn("failed to publish feed event",
			slog.String("type", event.Type),
			slog.Any("error", err),
		)
	}
}
