package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/clockface/internal/errors"
)

func TestSave_RoundTrip(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Clock.Radius = 64
	cfg.Clock.Interval = 500 * time.Millisecond
	cfg.Clock.Timezone = "UTC"
	cfg.Style.Accent = "#ff0000"

	require.NoError(t, Save(path, cfg))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := LoadFromPaths(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSave_BacksUpExistingFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, os.WriteFile(path, []byte("clock:\n  radius: 42\n"), 0o600))
	require.NoError(t, Save(path, DefaultConfig()))

	backup, err := os.ReadFile(path + ".backup") //nolint:gosec // test path
	require.NoError(t, err)
	assert.Contains(t, string(backup), "radius: 42")
}

func TestSave_RejectsInvalid(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Clock.ErrorPolicy = "panic"

	require.ErrorIs(t, Save(path, cfg), errors.ErrConfigInvalidClock)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
