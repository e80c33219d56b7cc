package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Create a temporary directory for test files
	tempDir := t.TempDir()

	configPath := filepath.Join(tempDir, "test_config.yaml")
	configContent := `
log_level: -4
server:
  port: "9090"
  max_results: 50
seed:
  source: sqlite://artists.db
lineup:
  request_timeout: 10s
resolver:
  workers: 8
storage:
  type: gcs
  bucket: lineups
  object_prefix: exports/
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)

	require.NoError(t, err)
	assert.Equal(t, -4, cfg.LogLevel)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 50, cfg.Server.MaxResults)
	assert.Equal(t, "sqlite://artists.db", cfg.Seed.Source)
	assert.Equal(t, 10*time.Second, cfg.Lineup.RequestTimeout)
	assert.Equal(t, DefaultUserAgent, cfg.Lineup.UserAgent)
	assert.Equal(t, 8, cfg.Resolver.Workers)
	assert.Equal(t, StorageGCS, cfg.Storage.Type)
	assert.Equal(t, "lineups", cfg.Storage.Bucket)
	assert.Equal(t, "exports/", cfg.Storage.ObjectPrefix)
}

func TestLoadDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("log_level: 0\n"), 0644))

	cfg, err := Load(configPath)

	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, DefaultMaxResults, cfg.Server.MaxResults)
	assert.Equal(t, DefaultSeedSource, cfg.Seed.Source)
	assert.Equal(t, DefaultRequestTimeout, cfg.Lineup.RequestTimeout)
	assert.Equal(t, DefaultWorkers, cfg.Resolver.Workers)
	assert.Equal(t, StorageLocal, cfg.Storage.Type)
	assert.Equal(t, DefaultOutputDir, cfg.Storage.OutputDir)
	assert.Equal(t, Default(), cfg)
}

func TestLoadNonExistentFile(t *testing.T) {
	cfg, err := Load("non_existent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("resolver:\n  workers: 2\n"), 0644))
	cfg, err = LoadOrDefault(configPath)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Resolver.Workers)

	invalidPath := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(invalidPath, []byte("storage:\n  type: ftp\n"), 0644))
	_, err = LoadOrDefault(invalidPath)
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid_config.yaml")
	configContent := `
log_level: -4
invalid_yaml: [this is not valid yaml
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadInvalidStorage(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown type", "storage:\n  type: ftp\n"},
		{"gcs without bucket", "storage:\n  type: gcs\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(configPath, []byte(tt.content), 0644))

			cfg, err := Load(configPath)

			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestClampWorkers(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{0, DefaultWorkers},
		{-3, DefaultWorkers},
		{1, 1},
		{16, 16},
		{MaxWorkers, MaxWorkers},
		{1000, MaxWorkers},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClampWorkers(tt.input), "ClampWorkers(%d)", tt.input)
	}
}
