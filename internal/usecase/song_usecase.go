package usecase

import (
	"context"
	"time"

	"hifybe/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateSongInput defines the data required to add a song to the catalog.
type CreateSongInput struct {
	CatalogID   int64
	Title       string
	Artist      string
	Album       string
	DurationSec int
	AudioURL    string
	ReleasedAt  *time.Time
}

// UpdateSongInput is the allow-listed set of mutable song fields.
type UpdateSongInput struct {
	Title       *string
	Artist      *string
	Album       *string
	DurationSec *int
	AudioURL    *string
	ReleasedAt  *time.Time
}

// SongOutput is the outward-facing catalog representation.
type SongOutput struct {
	ID          uuid.UUID  `json:"id"`
	CatalogID   int64      `json:"numero_catalogo"`
	Title       string     `json:"titulo"`
	Artist      string     `json:"artista"`
	Album       string     `json:"album,omitempty"`
	DurationSec int        `json:"duracion_seg"`
	AudioURL    string     `json:"audio_url,omitempty"`
	ReleasedAt  *time.Time `json:"fecha_lanzamiento,omitempty"`
}

// NewSongOutput maps a domain song to its output representation.
func NewSongOutput(song *entity.Song) *SongOutput {
	if song == nil {
		return nil
	}

	return &SongOutput{
		ID:          song.ID,
		CatalogID:   song.CatalogID,
		Title:       song.Title,
		Artist:      song.Artist,
		Album:       song.Album,
		DurationSec: song.DurationSec,
		AudioURL:    song.AudioURL,
		ReleasedAt:  song.ReleasedAt,
	}
}

// SongUsecase defines the interface for catalog operations.
type SongUsecase interface {
	ListSongs(ctx context.Context) ([]*SongOutput, error)
	GetSong(ctx context.Context, id uuid.UUID) (*SongOutput, error)
	CreateSong(ctx context.Context, input *CreateSongInput) (*SongOutput, error)
	UpdateSong(ctx context.Context, id uuid.UUID, input *UpdateSongInput) (*SongOutput, error)
	DeleteSong(ctx context.Context, id uuid.UUID) error
}
