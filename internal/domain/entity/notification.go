package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app message shown to a user until read or deleted.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Content   string
	Read      bool
	CreatedAt time.Time
}
