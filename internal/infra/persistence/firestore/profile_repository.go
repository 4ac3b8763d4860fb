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

// profileRepository is the Firestore implementation of repository.ProfileRepository.
type profileRepository struct {
	client *firestore.Client
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &profileRepository{client: client}
}

// Create persists a new profile keyed by the principal ID. Set overwrites
// by key; callers invoke it exactly once after principal creation.
func (r *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	ref := r.client.Collection(profilesCollection).Doc(profile.ID.String())
	_, err := ref.Set(ctx, model.ProfileFromEntity(profile))

	return errors.Wrap(err, "failed to create profile document")
}

// FindByID retrieves a single profile by principal ID.
func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	snap, err := r.client.Collection(profilesCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to get profile document")
	}

	return decodeProfile(snap)
}

// ListAll returns every profile, newest first.
func (r *profileRepository) ListAll(ctx context.Context) ([]*entity.Profile, error) {
	iter := r.client.Collection(profilesCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var profiles []*entity.Profile
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate profiles")
		}

		profile, err := decodeProfile(snap)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

// UpdateStatus sets the presence status and mood glyph.
func (r *profileRepository) UpdateStatus(ctx context.Context, id uuid.UUID, statusValue, mood string) error {
	ref := r.client.Collection(profilesCollection).Doc(id.String())
	_, err := ref.Update(ctx, []firestore.Update{
		{Path: "status", Value: statusValue},
		{Path: "mood", Value: mood},
	})
	if status.Code(err) == codes.NotFound {
		return repository.ErrProfileNotFound
	}

	return errors.Wrap(err, "failed to update profile status")
}

// UpdateFields applies the non-nil fields of the update.
func (r *profileRepository) UpdateFields(ctx context.Context, id uuid.UUID, update repository.ProfileUpdate) error {
	var updates []firestore.Update
	if update.DisplayName != nil {
		updates = append(updates, firestore.Update{Path: "displayName", Value: *update.DisplayName})
	}
	if update.Avatar != nil {
		updates = append(updates, firestore.Update{Path: "avatar", Value: *update.Avatar})
	}
	if update.Bio != nil {
		updates = append(updates, firestore.Update{Path: "bio", Value: *update.Bio})
	}
	if len(updates) == 0 {
		return nil
	}

	ref := r.client.Collection(profilesCollection).Doc(id.String())
	_, err := ref.Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return repository.ErrProfileNotFound
	}

	return errors.Wrap(err, "failed to update profile fields")
}

// SetVerified marks the profile AI-verified and records the answers.
func (r *profileRepository) SetVerified(ctx context.Context, id uuid.UUID, answers []string) error {
	ref := r.client.Collection(profilesCollection).Doc(id.String())
	_, err := ref.Update(ctx, []firestore.Update{
		{Path: "aiVerified", Value: true},
		{Path: "answers", Value: answers},
	})
	if status.Code(err) == codes.NotFound {
		return repository.ErrProfileNotFound
	}

	return errors.Wrap(err, "failed to mark profile verified")
}

// Delete removes the profile document.
func (r *profileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ref := r.client.Collection(profilesCollection).Doc(id.String())
	_, err := ref.Delete(ctx, firestore.Exists)
	if status.Code(err) == codes.NotFound {
		return repository.ErrProfileNotFound
	}

	return errors.Wrap(err, "failed to delete profile document")
}

func decodeProfile(snap *firestore.DocumentSnapshot) (*entity.Profile, error) {
	var doc model.ProfileDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile document")
	}

	id, err := uuid.Parse(snap.Ref.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid profile document key")
	}

	return doc.ToEntity(id), nil
}
