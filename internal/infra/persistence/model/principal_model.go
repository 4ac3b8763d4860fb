// Package model contains the Firestore document shapes and their
// conversions to and from domain entities. Field names are the wire
// names stored in the collections.
package model

import (
	"time"

	"agentverse/internal/domain/entity"

	"github.com/google/uuid"
)

// PrincipalDoc is the document stored in the principals collection,
// keyed by the principal UUID string.
type PrincipalDoc struct {
	Email        string    `firestore:"email"`
	PasswordHash string    `firestore:"passwordHash"`
	Roles        []string  `firestore:"roles"`
	CreatedAt    time.Time `firestore:"createdAt,serverTimestamp"`
}

// PrincipalEmailDoc is the uniqueness index document in the
// principal_emails collection, keyed by the lowercased email. Creating
// it in the same transaction as the principal enforces one principal
// per email.
type PrincipalEmailDoc struct {
	PrincipalID string `firestore:"principalId"`
}

// PrincipalFromEntity converts a domain principal to its document form.
func PrincipalFromEntity(p *entity.Principal) *PrincipalDoc {
	return &PrincipalDoc{
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		Roles:        p.Roles,
	}
}

// ToEntity converts the document back to a domain principal.
func (d *PrincipalDoc) ToEntity(id uuid.UUID) *entity.Principal {
	return &entity.Principal{
		ID:           id,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Roles:        d.Roles,
		CreatedAt:    d.CreatedAt,
	}
}
