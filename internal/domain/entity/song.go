package entity

import (
	"time"

	"github.com/google/uuid"
)

// Song is a track in the shared catalog.
type Song struct {
	ID          uuid.UUID
	CatalogID   int64  // External catalog number, unique across the store.
	Title       string
	Artist      string
	Album       string
	DurationSec int // Track length in seconds.
	AudioURL    string
	ReleasedAt  *time.Time
}
