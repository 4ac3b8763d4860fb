// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"agentverse/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPrincipalNotFound is returned when no principal matches the lookup.
var ErrPrincipalNotFound = errors.New("principal not found")

// ErrEmailTaken is returned when creating a principal whose email is
// already registered.
var ErrEmailTaken = errors.New("email already registered")

// PrincipalRepository defines the standard operations for principal persistence.
// The application layer depends on this interface, not the concrete implementation.
type PrincipalRepository interface {
	// Create persists a new principal. Email uniqueness is enforced by
	// the store; ErrEmailTaken is returned on conflict.
	Create(ctx context.Context, principal *entity.Principal) error

	// FindByID retrieves a single principal by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Principal, error)

	// FindByEmail retrieves a single principal by email address.
	FindByEmail(ctx context.Context, email string) (*entity.Principal, error)
}
