package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates shareable QR codes for playlists.
type QRCodeService interface {
	// GeneratePlaylistQR returns a PNG QR code that links to the playlist
	// on the frontend.
	GeneratePlaylistQR(playlistID uuid.UUID) ([]byte, error)
}
