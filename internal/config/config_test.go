package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Nil(t, cfg.Seed)
	assert.Equal(t, "classic", cfg.Board)
	assert.Empty(t, cfg.EventLog)
	assert.Zero(t, cfg.MaxTurns)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "dogboard", cfg.Telemetry.Dataset)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DOGBOARD_SEED", "-42")
	t.Setenv("DOGBOARD_BOARD", "sprint")
	t.Setenv("DOGBOARD_PLAYERS", "Rex,Fido,Spot")
	t.Setenv("DOGBOARD_EVENT_LOG", "/tmp/game.log")
	t.Setenv("DOGBOARD_MAX_TURNS", "500")
	t.Setenv("DOGBOARD_LOG_LEVEL", "debug")
	t.Setenv("DOGBOARD_TELEMETRY", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(-42), *cfg.Seed)
	assert.Equal(t, "sprint", cfg.Board)
	assert.Equal(t, []string{"Rex", "Fido", "Spot"}, cfg.Players)
	assert.Equal(t, "/tmp/game.log", cfg.EventLog)
	assert.Equal(t, 500, cfg.MaxTurns)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Telemetry.Enabled)
}

func TestLoadZeroSeed(t *testing.T) {
	t.Setenv("DOGBOARD_SEED", "0")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.NotNil(t, cfg.Seed, "zero is a seed, not a request for a random one")
	assert.Zero(t, *cfg.Seed)
}

func TestLoadDotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DOGBOARD_MAX_TURNS=77\nDOGBOARD_LOG_LEVEL=warn\n"), 0o644))
	t.Setenv("DOGBOARD_LOG_LEVEL", "error")
	t.Cleanup(func() { os.Unsetenv("DOGBOARD_MAX_TURNS") })

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 77, cfg.MaxTurns)
	assert.Equal(t, "error", cfg.LogLevel, "the environment wins over the file")
}

func TestLoadInvalidValue(t *testing.T) {
	t.Setenv("DOGBOARD_SEED", "not-a-number")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
