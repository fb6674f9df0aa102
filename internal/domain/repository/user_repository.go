// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"hifybe/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when a create would violate the unique
// email constraint.
var ErrDuplicateEmail = errors.New("email already registered")

// UserUpdate is the allow-listed set of mutable profile fields. A nil
// pointer leaves the stored value untouched; arbitrary caller-supplied
// field sets are never merged into a record.
type UserUpdate struct {
	GivenName    *string
	FamilyName   *string
	Biography    *string
	AvatarURL    *string
	Latitude     *float64
	Longitude    *float64
	PasswordHash *string
}

// UserRepository defines the standard operations for account persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their (lowercased) email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List retrieves every user record.
	List(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update applies the allow-listed profile changes to one user.
	Update(ctx context.Context, id uuid.UUID, update *UserUpdate) (*entity.User, error)

	// Delete removes a user record.
	Delete(ctx context.Context, id uuid.UUID) error

	// TouchLastSeen sets the last-seen timestamp to now.
	TouchLastSeen(ctx context.Context, id uuid.UUID) error

	// ReconcileFederated resolves a federated login in a single atomic
	// upsert keyed by email: when no account exists the candidate row is
	// inserted as-is; when one exists, the provider subject id is
	// backfilled only if absent and name fields only while they still hold
	// the provider-agnostic placeholders. The last-seen timestamp is
	// refreshed either way. The resolved account is returned.
	ReconcileFederated(ctx context.Context, candidate *entity.User) (*entity.User, error)
}
