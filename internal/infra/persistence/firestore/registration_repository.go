package firestore

import (
	"context"

	"agentverse/internal/domain/entity"
	"agentverse/internal/domain/repository"
	"agentverse/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// registrationRepository is the Firestore implementation of repository.RegistrationRepository.
type registrationRepository struct {
	client *firestore.Client
}

// NewRegistrationRepository is the constructor for registrationRepository.
func NewRegistrationRepository(client *firestore.Client) repository.RegistrationRepository {
	return &registrationRepository{client: client}
}

// Create persists a registration and returns its generated ID.
func (r *registrationRepository) Create(ctx context.Context, registration *entity.AgentRegistration) (string, error) {
	ref := r.client.Collection(registrationsCollection).NewDoc()
	if _, err := ref.Create(ctx, model.RegistrationFromEntity(registration)); err != nil {
		return "", errors.Wrap(err, "failed to create registration document")
	}

	return ref.ID, nil
}

// ListAll returns every registration, newest first.
func (r *registrationRepository) ListAll(ctx context.Context) ([]*entity.AgentRegistration, error) {
	iter := r.client.Collection(registrationsCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var registrations []*entity.AgentRegistration
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate registrations")
		}

		var doc model.RegistrationDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode registration document")
		}
		registrations = append(registrations, doc.ToEntity(snap.Ref.ID))
	}

	return registrations, nil
}
