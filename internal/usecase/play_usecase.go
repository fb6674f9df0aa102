package usecase

import (
	"context"
	"time"

	"hifybe/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordPlayInput defines the data required to record one playback.
type RecordPlayInput struct {
	UserID    uuid.UUID
	SongID    uuid.UUID
	Latitude  *float64
	Longitude *float64
}

// PlayOutput is one play-history record with the song resolved.
type PlayOutput struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"usuario_id"`
	Song      *SongOutput `json:"cancion"`
	PlayedAt  time.Time   `json:"fecha_reproduccion"`
	Latitude  *float64    `json:"latitud,omitempty"`
	Longitude *float64    `json:"longitud,omitempty"`
}

// NewPlayOutput maps a domain play and its song to an output record.
func NewPlayOutput(play *entity.Play, song *entity.Song) *PlayOutput {
	if play == nil {
		return nil
	}

	return &PlayOutput{
		ID:        play.ID,
		UserID:    play.UserID,
		Song:      NewSongOutput(song),
		PlayedAt:  play.PlayedAt,
		Latitude:  play.Latitude,
		Longitude: play.Longitude,
	}
}

// PlayUsecase defines the interface for play-history operations.
type PlayUsecase interface {
	RecordPlay(ctx context.Context, input *RecordPlayInput) (*PlayOutput, error)
	UserHistory(ctx context.Context, userID uuid.UUID) ([]*PlayOutput, error)
}
