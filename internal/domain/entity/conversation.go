package entity

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is a direct message thread between two users.
type Conversation struct {
	ID        uuid.UUID
	UserID1   uuid.UUID
	UserID2   uuid.UUID
	StartedAt time.Time
}

// Message is one entry in a conversation. A message may carry an attached
// song recommendation.
type Message struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	SenderID       uuid.UUID
	Content        string
	SongID         *uuid.UUID // Optional attached song.
	Read           bool
	SentAt         time.Time
}
