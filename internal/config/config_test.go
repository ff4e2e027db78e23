package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1, cfg.Version)
	assert.NotEmpty(t, cfg.StartDir)
	assert.False(t, cfg.ShowHidden)
	assert.True(t, cfg.DirsFirst)
	assert.True(t, cfg.WatchFS)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	svc := NewConfigService()
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := &Config{
		Version:    1,
		StartDir:   "/srv/data",
		ShowHidden: true,
		DirsFirst:  false,
		WatchFS:    true,
	}
	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFromMissingPath(t *testing.T) {
	svc := NewConfigService()

	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestLoadFillsEmptyStartDir(t *testing.T) {
	svc := NewConfigService()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0644))

	cfg, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.StartDir)
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	svc := NewConfigService()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = [broken"), 0644))

	_, err := svc.LoadFromPath(path)
	require.Error(t, err)
}
