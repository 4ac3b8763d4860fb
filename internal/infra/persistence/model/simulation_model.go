package model

import (
	"time"

	"agentverse/internal/domain/entity"
)

// SimulationDoc is the singleton settings/simulation document.
type SimulationDoc struct {
	Active    bool      `firestore:"active"`
	UpdatedAt time.Time `firestore:"updatedAt,serverTimestamp"`
}

// ToEntity converts the document to its domain form.
func (d *SimulationDoc) ToEntity() *entity.SimulationSetting {
	return &entity.SimulationSetting{
		Active:    d.Active,
		UpdatedAt: d.UpdatedAt,
	}
}
