package model

import (
	"time"

	"agentverse/internal/domain/entity"
)

// RegistrationDoc is the document stored in the registrations collection.
type RegistrationDoc struct {
	Name       string    `firestore:"name"`
	Capability string    `firestore:"capability"`
	CreatedAt  time.Time `firestore:"createdAt,serverTimestamp"`
}

// RegistrationFromEntity converts a domain registration to its document form.
func RegistrationFromEntity(r *entity.AgentRegistration) *RegistrationDoc {
	return &RegistrationDoc{
		Name:       r.Name,
		Capability: r.Capability,
	}
}

// ToEntity converts the document back to a domain registration.
func (d *RegistrationDoc) ToEntity(id string) *entity.AgentRegistration {
	return &entity.AgentRegistration{
		ID:         id,
		Name:       d.Name,
		Capability: d.Capability,
		CreatedAt:  d.CreatedAt,
	}
}
