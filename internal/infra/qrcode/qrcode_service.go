// Package qrcode renders shareable QR codes for playlists.
package qrcode

import (
	"fmt"

	"hifybe/config"
	"hifybe/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size    int
	baseURL string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := 256
	baseURL := cfg.Frontend.URL
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.BaseURL != "" {
			baseURL = cfg.QRCode.BaseURL
		}
	}

	return &qrcodeService{
		size:    size,
		baseURL: baseURL,
	}
}

// GeneratePlaylistQR generates a PNG QR code pointing at the playlist's
// public page on the frontend.
func (s *qrcodeService) GeneratePlaylistQR(playlistID uuid.UUID) ([]byte, error) {
	shareURL := fmt.Sprintf("%s/playlists/%s", s.baseURL, playlistID)

	qrCode, err := qrcode.New(shareURL, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
