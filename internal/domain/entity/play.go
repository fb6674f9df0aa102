package entity

import (
	"time"

	"github.com/google/uuid"
)

// Play records one playback of a song by a user, optionally with the
// location where it happened.
type Play struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	SongID    uuid.UUID
	PlayedAt  time.Time
	Latitude  *float64
	Longitude *float64
}
