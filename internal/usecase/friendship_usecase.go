package usecase

import (
	"context"
	"time"

	"hifybe/internal/domain/entity"

	"github.com/google/uuid"
)

// SendFriendRequestInput defines the data required to send a friend request.
type SendFriendRequestInput struct {
	FromUserID uuid.UUID
	ToUserID   uuid.UUID
}

// FriendOutput is one friendship seen from a user's point of view: the
// friendship record plus the other user's sanitized profile.
type FriendOutput struct {
	FriendshipID uuid.UUID   `json:"amistad_id"`
	Friend       *PublicUser `json:"amigo"`
	StartedAt    time.Time   `json:"fecha_inicio"`
}

// FriendRequestOutput is the outward-facing friend request representation.
type FriendRequestOutput struct {
	ID         uuid.UUID `json:"id"`
	FromUserID uuid.UUID `json:"emisor_id"`
	ToUserID   uuid.UUID `json:"receptor_id"`
	Status     string    `json:"estado"`
	SentAt     time.Time `json:"fecha_envio"`
}

// NewFriendRequestOutput maps a domain friend request to its output form.
func NewFriendRequestOutput(request *entity.FriendRequest) *FriendRequestOutput {
	if request == nil {
		return nil
	}

	return &FriendRequestOutput{
		ID:         request.ID,
		FromUserID: request.FromUserID,
		ToUserID:   request.ToUserID,
		Status:     string(request.Status),
		SentAt:     request.SentAt,
	}
}

// NearbyFriendOutput is one friend with their last known distance from the
// requesting user.
type NearbyFriendOutput struct {
	Friend     *PublicUser `json:"amigo"`
	DistanceKm float64     `json:"distancia_km"`
}

// FriendshipUsecase defines the interface for friendship operations.
type FriendshipUsecase interface {
	// ListFriends returns the accepted friendships of a user with the other
	// side's profile resolved.
	ListFriends(ctx context.Context, userID uuid.UUID) ([]*FriendOutput, error)

	// SendRequest creates a pending friend request and notifies the
	// recipient.
	SendRequest(ctx context.Context, input *SendFriendRequestInput) (*FriendRequestOutput, error)

	// RespondRequest accepts or rejects a pending request. Accepting also
	// creates the friendship and notifies the requester, atomically.
	RespondRequest(ctx context.Context, requestID uuid.UUID, status entity.FriendRequestStatus) (*FriendRequestOutput, error)

	// RemoveFriendship deletes an existing friendship.
	RemoveFriendship(ctx context.Context, friendshipID uuid.UUID) error

	// ListPendingRequests returns the pending requests addressed to a user.
	ListPendingRequests(ctx context.Context, userID uuid.UUID) ([]*FriendRequestOutput, error)

	// NearbyFriends returns the user's friends within the configured radius
	// of the user's last known position, closest first. Friends without a
	// location are skipped.
	NearbyFriends(ctx context.Context, userID uuid.UUID) ([]*NearbyFriendOutput, error)
}
