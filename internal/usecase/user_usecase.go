package usecase

import (
	"context"

	"github.com/google/uuid"
)

// UpdateUserInput is the allow-listed set of profile fields a user may
// change. Nil pointers leave the stored value untouched.
type UpdateUserInput struct {
	GivenName  *string
	FamilyName *string
	Biography  *string
	AvatarURL  *string
	Latitude   *float64
	Longitude  *float64
	Password   *string
}

// UserUsecase defines the interface for account management operations.
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]*PublicUser, error)
	GetUser(ctx context.Context, id uuid.UUID) (*PublicUser, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*PublicUser, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
