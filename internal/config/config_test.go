package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerAt_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	m, err := NewManagerAt(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), m.GetConfig())

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestNewManagerAt_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: file\n  slot: todo\n"), 0644))

	m, err := NewManagerAt(path)
	require.NoError(t, err)

	cfg := m.GetConfig()
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "todo", cfg.Storage.Slot)
	assert.Equal(t, "data", cfg.Storage.File.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 960, cfg.App.WindowWidth)
}

func TestNewManagerAt_InvalidFileResetsToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [unterminated"), 0644))

	m, err := NewManagerAt(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), m.GetConfig())
}

func TestUpdateStorageConfig_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	m, err := NewManagerAt(path)
	require.NoError(t, err)

	storage := m.GetConfig().Storage
	storage.Backend = BackendRedis
	storage.Redis.Addr = "cache:6379"
	require.NoError(t, m.UpdateStorageConfig(storage))

	reloaded, err := NewManagerAt(path)
	require.NoError(t, err)
	assert.Equal(t, BackendRedis, reloaded.GetConfig().Storage.Backend)
	assert.Equal(t, "cache:6379", reloaded.GetConfig().Storage.Redis.Addr)
}

func TestResolvePath(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManagerAt(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "tasks.db"), m.ResolvePath("tasks.db"))
	assert.Equal(t, "/var/lib/tasks.db", m.ResolvePath("/var/lib/tasks.db"))
	assert.Equal(t, "", m.ResolvePath(""))
}
