package repository

import (
	"context"

	"agentverse/internal/domain/entity"
)

// SimulationRepository persists the singleton simulation switch.
type SimulationRepository interface {
	// Get reads the current setting. A missing document reads as inactive.
	Get(ctx context.Context) (*entity.SimulationSetting, error)

	// Set writes the switch and stamps the update time.
	Set(ctx context.Context, active bool) (*entity.SimulationSetting, error)
}
