package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cchooks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{"cable", "monitor"}, cfg.Render.HighlightOrder)
	assert.False(t, cfg.Debug.Overlay)
	assert.Empty(t, cfg.Storage.Dir)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  file: /tmp/cchooks.log
debug:
  overlay: true
render:
  highlight_order: [monitor, cable]
storage:
  dir: /saves/world
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/cchooks.log", cfg.Logging.File)
	assert.True(t, cfg.Debug.Overlay)
	assert.Equal(t, []string{"monitor", "cable"}, cfg.Render.HighlightOrder)
	assert.Equal(t, "/saves/world", cfg.Storage.Dir)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: warn\nstorage:\n  dir: /from/file\n")

	t.Run("set variables win", func(t *testing.T) {
		t.Setenv("CCHOOKS_LOG_LEVEL", "error")
		t.Setenv("CCHOOKS_HIGHLIGHT_ORDER", "monitor,cable")
		t.Setenv("CCHOOKS_DEBUG_OVERLAY", "true")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.Logging.Level)
		assert.Equal(t, []string{"monitor", "cable"}, cfg.Render.HighlightOrder)
		assert.True(t, cfg.Debug.Overlay)
		assert.Equal(t, "/from/file", cfg.Storage.Dir, "unset variable keeps file value")
	})

	t.Run("storage dir", func(t *testing.T) {
		t.Setenv("CCHOOKS_STORAGE_DIR", "/from/env")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/from/env", cfg.Storage.Dir)
		assert.Equal(t, "warn", cfg.Logging.Level)
	})
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "logging: [not, a, map]"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "logging:\n  level: loud\n"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load(writeConfig(t, "render:\n  highlight_order: [cable, cable]\n"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load(writeConfig(t, "render:\n  highlight_order: []\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}
