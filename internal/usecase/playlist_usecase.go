package usecase

import (
	"context"
	"time"

	"hifybe/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePlaylistInput defines the data required to create a playlist.
type CreatePlaylistInput struct {
	Name        string
	Description string
	OwnerID     uuid.UUID
	Public      bool
	CoverURL    string
}

// UpdatePlaylistInput is the allow-listed set of mutable playlist fields.
type UpdatePlaylistInput struct {
	Name        *string
	Description *string
	Public      *bool
	CoverURL    *string
}

// PlaylistOutput is the outward-facing playlist representation.
type PlaylistOutput struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"nombre"`
	Description string    `json:"descripcion,omitempty"`
	OwnerID     uuid.UUID `json:"usuario_id"`
	Public      bool      `json:"publica"`
	CoverURL    string    `json:"portada_url,omitempty"`
	CreatedAt   time.Time `json:"fecha_creacion"`
}

// PlaylistDetailOutput is a playlist with its songs resolved in order.
type PlaylistDetailOutput struct {
	PlaylistOutput
	Songs []*SongOutput `json:"canciones"`
}

// NewPlaylistOutput maps a domain playlist to its output representation.
func NewPlaylistOutput(playlist *entity.Playlist) *PlaylistOutput {
	if playlist == nil {
		return nil
	}

	return &PlaylistOutput{
		ID:          playlist.ID,
		Name:        playlist.Name,
		Description: playlist.Description,
		OwnerID:     playlist.OwnerID,
		Public:      playlist.Public,
		CoverURL:    playlist.CoverURL,
		CreatedAt:   playlist.CreatedAt,
	}
}

// PlaylistUsecase defines the interface for playlist operations.
type PlaylistUsecase interface {
	ListPublicPlaylists(ctx context.Context) ([]*PlaylistOutput, error)
	GetPlaylist(ctx context.Context, id uuid.UUID) (*PlaylistDetailOutput, error)
	CreatePlaylist(ctx context.Context, input *CreatePlaylistInput) (*PlaylistOutput, error)
	UpdatePlaylist(ctx context.Context, id uuid.UUID, input *UpdatePlaylistInput) (*PlaylistOutput, error)
	DeletePlaylist(ctx context.Context, id uuid.UUID) error

	// AddSong appends a song at the end of the playlist.
	AddSong(ctx context.Context, playlistID, songID uuid.UUID) (*PlaylistDetailOutput, error)
	RemoveSong(ctx context.Context, playlistID, songID uuid.UUID) error

	// ShareQR renders a PNG QR code linking to the playlist.
	ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
