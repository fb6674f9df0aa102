package entity

import (
	"time"

	"github.com/google/uuid"
)

// FriendshipStatus is the lifecycle state of a friendship.
type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "pendiente"
	FriendshipAccepted FriendshipStatus = "aceptada"
	FriendshipBlocked  FriendshipStatus = "bloqueada"
)

// FriendRequestStatus is the lifecycle state of a friend request.
type FriendRequestStatus string

const (
	FriendRequestPending  FriendRequestStatus = "pendiente"
	FriendRequestAccepted FriendRequestStatus = "aceptada"
	FriendRequestRejected FriendRequestStatus = "rechazada"
)

// Friendship links two users. The pair is unordered; queries match either
// column.
type Friendship struct {
	ID        uuid.UUID
	UserID1   uuid.UUID
	UserID2   uuid.UUID
	Status    FriendshipStatus
	StartedAt time.Time
}

// FriendRequest is a pending invitation from one user to another.
type FriendRequest struct {
	ID         uuid.UUID
	FromUserID uuid.UUID
	ToUserID   uuid.UUID
	Status     FriendRequestStatus
	SentAt     time.Time
}
