package qrcode

import (
	"testing"

	"hifybe/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(size int, baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Frontend.URL = "http://localhost:5173"
	cfg.QRCode = &config.QRCodeConfig{Size: size, BaseURL: baseURL}

	return cfg
}

func TestQRCodeService_GeneratePlaylistQR(t *testing.T) {
	service := NewQRCodeService(testConfig(256, "https://hifybe.example.com"))
	playlistID := uuid.New()

	qrBytes, err := service.GeneratePlaylistQR(playlistID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GeneratePlaylistQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(testConfig(tt.size, "https://hifybe.example.com"))

			qrBytes, err := service.GeneratePlaylistQR(uuid.New())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_FallsBackToFrontendURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.Frontend.URL = "http://localhost:5173"

	service := NewQRCodeService(cfg)

	qrBytes, err := service.GeneratePlaylistQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}
