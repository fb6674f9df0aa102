package entity

import (
	"time"

	"github.com/google/uuid"
)

// Playlist is a user-owned, optionally public collection of songs.
type Playlist struct {
	ID          uuid.UUID
	Name        string
	Description string
	OwnerID     uuid.UUID
	Public      bool
	CoverURL    string
	CreatedAt   time.Time
}

// PlaylistEntry links one song into one playlist at a given position.
type PlaylistEntry struct {
	ID         uuid.UUID
	PlaylistID uuid.UUID
	SongID     uuid.UUID
	Position   int
}
