package repository

import (
	"context"
	"errors"

	"hifybe/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for friendship persistence.
var (
	ErrFriendshipNotFound    = errors.New("friendship not found")
	ErrFriendRequestNotFound = errors.New("friend request not found")
)

// FriendshipRepository defines the operations for friendships and friend
// requests.
type FriendshipRepository interface {
	// ListAccepted returns the accepted friendships in which the user
	// appears on either side.
	ListAccepted(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error)

	CreateFriendship(ctx context.Context, friendship *entity.Friendship) error
	DeleteFriendship(ctx context.Context, id uuid.UUID) error

	CreateRequest(ctx context.Context, request *entity.FriendRequest) error
	FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.FriendRequest, error)
	UpdateRequestStatus(ctx context.Context, id uuid.UUID, status entity.FriendRequestStatus) (*entity.FriendRequest, error)
	ListPendingRequests(ctx context.Context, toUserID uuid.UUID) ([]*entity.FriendRequest, error)
}
