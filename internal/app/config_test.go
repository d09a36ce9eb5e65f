package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"murmur/internal/domain"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, domain.KindChat, cfg.WrapKind)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache:\n  max_events: 16\n  enabled: false\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Cache.MaxEvents)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, Default().WrapKind, cfg.WrapKind, "untouched keys keep defaults")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache: ["), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestNewWire(t *testing.T) {
	w, err := NewWire(Default())
	require.NoError(t, err)
	assert.NotNil(t, w.Store)
	assert.NotNil(t, w.Wrapper)
	assert.NotNil(t, w.Subs)

	_, err = NewWire(Config{Cache: Default().Cache, WrapKind: domain.KindChat})
	require.NoError(t, err)
}
