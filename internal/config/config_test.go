package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 5, cfg.Runs)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, "memory", cfg.Store.Backend)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	content := `
runs: 3
size: 1000
store:
  backend: pebble
output:
  metrics: metrics.prom
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Runs)
	assert.Equal(t, 1000, cfg.Size)
	assert.Equal(t, 4, cfg.Workers, "unset keys keep defaults")
	assert.Equal(t, "pebble", cfg.Store.Backend)
	assert.Equal(t, "data", cfg.Store.Path)
	assert.Equal(t, "metrics.prom", cfg.Output.Metrics)
	assert.Equal(t, "result.txt", cfg.Output.Text)
	require.NoError(t, cfg.Validate())
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("runs: [1, 2"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero runs", func(c *Config) { c.Runs = 0 }},
		{"zero size", func(c *Config) { c.Size = 0 }},
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"negative max value", func(c *Config) { c.MaxValue = -5 }},
		{"unknown shape", func(c *Config) { c.Shape = "zigzag" }},
		{"unknown backend", func(c *Config) { c.Store.Backend = "rocksdb" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := Default()
	cfg.Size = 0
	cfg.Dataset = "stored"
	assert.NoError(t, cfg.Validate(), "size is ignored when loading a stored dataset")
}
