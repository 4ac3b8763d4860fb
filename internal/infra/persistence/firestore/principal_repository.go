package firestore

import (
	"context"
	"strings"

	"agentverse/internal/domain/entity"
	"agentverse/internal/domain/repository"
	"agentverse/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// principalRepository is the Firestore implementation of repository.PrincipalRepository.
type principalRepository struct {
	client *firestore.Client
}

// NewPrincipalRepository is the constructor for principalRepository.
func NewPrincipalRepository(client *firestore.Client) repository.PrincipalRepository {
	return &principalRepository{client: client}
}

// Create persists the principal together with its email index document in
// one transaction, so two sign-ups racing on the same email cannot both
// succeed.
func (r *principalRepository) Create(ctx context.Context, principal *entity.Principal) error {
	principalRef := r.client.Collection(principalsCollection).Doc(principal.ID.String())
	emailRef := r.client.Collection(principalEmailCollection).Doc(emailKey(principal.Email))

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		_, err := tx.Get(emailRef)
		if err == nil {
			return repository.ErrEmailTaken
		}
		if status.Code(err) != codes.NotFound {
			return errors.Wrap(err, "failed to check email index")
		}

		if err := tx.Create(emailRef, &model.PrincipalEmailDoc{PrincipalID: principal.ID.String()}); err != nil {
			return errors.Wrap(err, "failed to create email index document")
		}

		return errors.Wrap(tx.Create(principalRef, model.PrincipalFromEntity(principal)), "failed to create principal document")
	})

	if errors.Is(err, repository.ErrEmailTaken) {
		return repository.ErrEmailTaken
	}

	return errors.Wrap(err, "principal creation transaction failed")
}

// FindByID retrieves a single principal by its unique ID.
func (r *principalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Principal, error) {
	snap, err := r.client.Collection(principalsCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrPrincipalNotFound
		}

		return nil, errors.Wrap(err, "failed to get principal document")
	}

	var doc model.PrincipalDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode principal document")
	}

	return doc.ToEntity(id), nil
}

// FindByEmail resolves the email index document, then the principal itself.
func (r *principalRepository) FindByEmail(ctx context.Context, email string) (*entity.Principal, error) {
	snap, err := r.client.Collection(principalEmailCollection).Doc(emailKey(email)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrPrincipalNotFound
		}

		return nil, errors.Wrap(err, "failed to get email index document")
	}

	var indexDoc model.PrincipalEmailDoc
	if err := snap.DataTo(&indexDoc); err != nil {
		return nil, errors.Wrap(err, "failed to decode email index document")
	}

	id, err := uuid.Parse(indexDoc.PrincipalID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid principal id in email index document")
	}

	return r.FindByID(ctx, id)
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
