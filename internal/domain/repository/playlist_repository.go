package repository

import (
	"context"
	"errors"

	"hifybe/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for playlist persistence.
var (
	ErrPlaylistNotFound      = errors.New("playlist not found")
	ErrPlaylistEntryNotFound = errors.New("playlist entry not found")
)

// PlaylistUpdate is the allow-listed set of mutable playlist fields.
type PlaylistUpdate struct {
	Name        *string
	Description *string
	Public      *bool
	CoverURL    *string
}

// PlaylistRepository defines the operations for playlist persistence,
// including the membership of songs in playlists.
type PlaylistRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error)
	ListPublic(ctx context.Context) ([]*entity.Playlist, error)
	Create(ctx context.Context, playlist *entity.Playlist) error
	Update(ctx context.Context, id uuid.UUID, update *PlaylistUpdate) (*entity.Playlist, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddEntry(ctx context.Context, entry *entity.PlaylistEntry) error
	RemoveEntry(ctx context.Context, playlistID, songID uuid.UUID) error
	ListEntries(ctx context.Context, playlistID uuid.UUID) ([]*entity.PlaylistEntry, error)
}
