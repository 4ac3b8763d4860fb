package firestore

import (
	"context"

	"agentverse/internal/domain/entity"
	"agentverse/internal/domain/repository"
	"agentverse/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// simulationDocID is the fixed key of the singleton settings document.
const simulationDocID = "simulation"

// simulationRepository is the Firestore implementation of repository.SimulationRepository.
type simulationRepository struct {
	client *firestore.Client
}

// NewSimulationRepository is the constructor for simulationRepository.
func NewSimulationRepository(client *firestore.Client) repository.SimulationRepository {
	return &simulationRepository{client: client}
}

// Get reads the current setting. A missing document reads as inactive.
func (r *simulationRepository) Get(ctx context.Context) (*entity.SimulationSetting, error) {
	snap, err := r.client.Collection(settingsCollection).Doc(simulationDocID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &entity.SimulationSetting{}, nil
		}

		return nil, errors.Wrap(err, "failed to get simulation setting")
	}

	var doc model.SimulationDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode simulation setting")
	}

	return doc.ToEntity(), nil
}

// Set writes the switch; the update timestamp is server-assigned.
func (r *simulationRepository) Set(ctx context.Context, active bool) (*entity.SimulationSetting, error) {
	ref := r.client.Collection(settingsCollection).Doc(simulationDocID)
	if _, err := ref.Set(ctx, &model.SimulationDoc{Active: active}); err != nil {
		return nil, errors.Wrap(err, "failed to write simulation setting")
	}

	return r.Get(ctx)
}
