package postgres

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"hifybe/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func testLogger(t *testing.T) *slog.Logger {
	t.Helper()

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewGormSlogLogger_ThresholdFromConfig(t *testing.T) {
	cfg := &config.Config{
		Database: &config.DatabaseConfig{SlowQueryThreshold: 750 * time.Millisecond},
	}

	gormLogger, ok := newGormSlogLogger(testLogger(t), cfg).(*gormSlogLogger)
	require.True(t, ok)

	assert.Equal(t, 750*time.Millisecond, gormLogger.slowThreshold)
}

func TestNewGormSlogLogger_Defaults(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{name: "nil config", cfg: nil},
		{name: "no database section", cfg: &config.Config{}},
		{name: "zero threshold", cfg: &config.Config{Database: &config.DatabaseConfig{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gormLogger, ok := newGormSlogLogger(testLogger(t), tt.cfg).(*gormSlogLogger)
			require.True(t, ok)

			assert.Equal(t, defaultGormSlowThreshold, gormLogger.slowThreshold)
		})
	}
}

func TestNewGormSlogLogger_DebugRaisesLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true

	gormLogger, ok := newGormSlogLogger(testLogger(t), cfg).(*gormSlogLogger)
	require.True(t, ok)
	assert.Equal(t, logger.Info, gormLogger.level)

	cfg.Env.Debug = false
	gormLogger, ok = newGormSlogLogger(testLogger(t), cfg).(*gormSlogLogger)
	require.True(t, ok)
	assert.Equal(t, logger.Warn, gormLogger.level)
}

func TestPoolMonitorSettings(t *testing.T) {
	interval, warnThreshold := poolMonitorSettings(nil)
	assert.Equal(t, defaultPoolMonitorInterval, interval)
	assert.Equal(t, defaultPoolWaitWarnThreshold, warnThreshold)

	cfg := &config.Config{
		Database: &config.DatabaseConfig{
			PoolMonitorInterval:   time.Minute,
			PoolWaitWarnThreshold: 10 * time.Millisecond,
		},
	}
	interval, warnThreshold = poolMonitorSettings(cfg)
	assert.Equal(t, time.Minute, interval)
	assert.Equal(t, 10*time.Millisecond, warnThreshold)

	// Partial overrides keep the defaults for the rest.
	interval, warnThreshold = poolMonitorSettings(&config.Config{
		Database: &config.DatabaseConfig{PoolMonitorInterval: time.Second},
	})
	assert.Equal(t, time.Second, interval)
	assert.Equal(t, defaultPoolWaitWarnThreshold, warnThreshold)
}
