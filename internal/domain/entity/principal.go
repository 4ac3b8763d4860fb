// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role names carried on access tokens.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Principal is the authenticated identity behind a profile. It owns the
// credentials and roles; everything user-facing lives on the Profile.
type Principal struct {
	ID           uuid.UUID // Unique identifier, also the profile document key.
	Email        string    // Login identifier, unique across the system.
	PasswordHash string    // bcrypt hash of the password.
	Roles        []string  // Roles minted into the access token on sign-in.
	CreatedAt    time.Time // Timestamp of account creation.
}

// IsAdmin reports whether the principal carries the admin role.
func (p *Principal) IsAdmin() bool {
	for _, r := range p.Roles {
		if r == RoleAdmin {
			return true
		}
	}

	return false
}
