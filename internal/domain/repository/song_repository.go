package repository

import (
	"context"
	"errors"
	"time"

	"hifybe/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSongNotFound is returned when a song is not found.
var ErrSongNotFound = errors.New("song not found")

// SongUpdate is the allow-listed set of mutable song fields.
type SongUpdate struct {
	Title       *string
	Artist      *string
	Album       *string
	DurationSec *int
	AudioURL    *string
	ReleasedAt  *time.Time
}

// SongRepository defines the standard operations for catalog persistence.
type SongRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Song, error)
	List(ctx context.Context) ([]*entity.Song, error)
	Create(ctx context.Context, song *entity.Song) error
	Update(ctx context.Context, id uuid.UUID, update *SongUpdate) (*entity.Song, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
