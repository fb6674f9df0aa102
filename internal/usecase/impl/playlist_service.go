package impl

import (
	"context"
	"log/slog"

	deliverycontext "hifybe/internal/delivery/context"
	"hifybe/internal/domain/entity"
	domainerrors "hifybe/internal/domain/errors"
	"hifybe/internal/domain/repository"
	"hifybe/internal/domain/service"
	"hifybe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// playlistService implements the PlaylistUsecase interface.
type playlistService struct {
	playlistRepo  repository.PlaylistRepository
	songRepo      repository.SongRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// PlaylistServiceParams holds dependencies for playlistService, injected by Fx.
type PlaylistServiceParams struct {
	fx.In

	PlaylistRepo  repository.PlaylistRepository
	SongRepo      repository.SongRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewPlaylistService is the constructor for playlistService.
func NewPlaylistService(params PlaylistServiceParams) usecase.PlaylistUsecase {
	return &playlistService{
		playlistRepo:  params.PlaylistRepo,
		songRepo:      params.SongRepo,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

func (srv *playlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPublicPlaylists returns all playlists flagged as public.
func (srv *playlistService) ListPublicPlaylists(ctx context.Context) ([]*usecase.PlaylistOutput, error) {
	playlists, err := srv.playlistRepo.ListPublic(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list public playlists")
	}

	out := make([]*usecase.PlaylistOutput, 0, len(playlists))
	for _, playlist := range playlists {
		out = append(out, usecase.NewPlaylistOutput(playlist))
	}

	return out, nil
}

// GetPlaylist returns one playlist with its songs resolved in position order.
func (srv *playlistService) GetPlaylist(ctx context.Context, id uuid.UUID) (*usecase.PlaylistDetailOutput, error) {
	playlist, err := srv.playlistRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlaylistNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find playlist")
	}

	return srv.buildDetail(ctx, playlist)
}

func (srv *playlistService) buildDetail(ctx context.Context, playlist *entity.Playlist) (*usecase.PlaylistDetailOutput, error) {
	entries, err := srv.playlistRepo.ListEntries(ctx, playlist.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list playlist entries")
	}

	songs := make([]*usecase.SongOutput, 0, len(entries))
	for _, entry := range entries {
		song, err := srv.songRepo.FindByID(ctx, entry.SongID)
		if err != nil {
			if errors.Is(err, repository.ErrSongNotFound) {
				// Song removed from the catalog after it was added here.
				continue
			}

			return nil, errors.Wrap(err, "failed to resolve playlist song")
		}
		songs = append(songs, usecase.NewSongOutput(song))
	}

	return &usecase.PlaylistDetailOutput{
		PlaylistOutput: *usecase.NewPlaylistOutput(playlist),
		Songs:          songs,
	}, nil
}

// CreatePlaylist persists a new playlist.
func (srv *playlistService) CreatePlaylist(ctx context.Context, input *usecase.CreatePlaylistInput) (*usecase.PlaylistOutput, error) {
	playlist := &entity.Playlist{
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     input.OwnerID,
		Public:      input.Public,
		CoverURL:    input.CoverURL,
	}

	if err := srv.playlistRepo.Create(ctx, playlist); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to create playlist")
	}

	srv.log(ctx).Info("Playlist created", slog.Any("playlistID", playlist.ID), slog.Any("ownerID", playlist.OwnerID))

	return usecase.NewPlaylistOutput(playlist), nil
}

// UpdatePlaylist applies the allow-listed playlist changes.
func (srv *playlistService) UpdatePlaylist(ctx context.Context, id uuid.UUID, input *usecase.UpdatePlaylistInput) (*usecase.PlaylistOutput, error) {
	update := &repository.PlaylistUpdate{
		Name:        input.Name,
		Description: input.Description,
		Public:      input.Public,
		CoverURL:    input.CoverURL,
	}

	playlist, err := srv.playlistRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrPlaylistNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to update playlist")
	}

	return usecase.NewPlaylistOutput(playlist), nil
}

// DeletePlaylist removes a playlist and its entries.
func (srv *playlistService) DeletePlaylist(ctx context.Context, id uuid.UUID) error {
	if err := srv.playlistRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPlaylistNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete playlist")
	}

	return nil
}

// AddSong appends a song at the end of the playlist and returns the
// refreshed detail.
func (srv *playlistService) AddSong(ctx context.Context, playlistID, songID uuid.UUID) (*usecase.PlaylistDetailOutput, error) {
	playlist, err := srv.playlistRepo.FindByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, repository.ErrPlaylistNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find playlist")
	}

	if _, err := srv.songRepo.FindByID(ctx, songID); err != nil {
		if errors.Is(err, repository.ErrSongNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("song not found")
		}

		return nil, errors.Wrap(err, "failed to find song")
	}

	entry := &entity.PlaylistEntry{
		PlaylistID: playlistID,
		SongID:     songID,
	}

	if err := srv.playlistRepo.AddEntry(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to add song to playlist")
	}

	srv.log(ctx).Debug("Song added to playlist", slog.Any("playlistID", playlistID), slog.Any("songID", songID))

	return srv.buildDetail(ctx, playlist)
}

// RemoveSong removes a song from a playlist.
func (srv *playlistService) RemoveSong(ctx context.Context, playlistID, songID uuid.UUID) error {
	if err := srv.playlistRepo.RemoveEntry(ctx, playlistID, songID); err != nil {
		if errors.Is(err, repository.ErrPlaylistEntryNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to remove song from playlist")
	}

	return nil
}

// ShareQR renders a PNG QR code linking to the playlist. The playlist must
// exist.
func (srv *playlistService) ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.playlistRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPlaylistNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find playlist")
	}

	png, err := srv.qrcodeService.GeneratePlaylistQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate playlist QR code")
	}

	return png, nil
}
