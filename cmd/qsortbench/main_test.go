package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"qsortbench/internal/config"
	"qsortbench/internal/store"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Runs = 2
	cfg.Size = 5000
	cfg.Workers = 2
	cfg.Store.Path = filepath.Join(dir, "data")
	cfg.Output.Dir = filepath.Join(dir, "out")
	cfg.Output.Metrics = "metrics.prom"
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestRunBenchmarkWritesReports(t *testing.T) {
	cfg := testConfig(t)

	report, err := runBenchmark(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	assert.True(t, report.Summarize().AllEqual)

	for _, name := range []string{"result.txt", "benchmark_results.md", "benchmark_results.json", "metrics.prom"} {
		_, err := os.Stat(filepath.Join(cfg.Output.Dir, name))
		assert.NoError(t, err, name)
	}
}

func TestGenerateThenRun(t *testing.T) {
	for _, backend := range []store.Backend{store.File, store.Bbolt, store.Pebble} {
		t.Run(string(backend), func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Store.Backend = string(backend)
			cfg.Shape = "sawtooth"

			require.NoError(t, generateDataset(cfg, "saw", zap.NewNop()))

			cfg.Dataset = "saw"
			cfg.Size = 0
			report, err := runBenchmark(context.Background(), cfg, zap.NewNop())
			require.NoError(t, err)
			assert.Equal(t, 5000, report.Size)
		})
	}
}

func TestGenerateRejectsMemoryStore(t *testing.T) {
	cfg := testConfig(t)
	cfg.Store.Backend = string(store.Memory)
	assert.Error(t, generateDataset(cfg, "x", zap.NewNop()))
}

func TestRunMissingDataset(t *testing.T) {
	cfg := testConfig(t)
	cfg.Store.Backend = string(store.Bbolt)
	cfg.Dataset = "nope"

	_, err := runBenchmark(context.Background(), cfg, zap.NewNop())
	assert.True(t, errors.Is(err, store.ErrNotFound), "got %v", err)
}

func TestRunCanceled(t *testing.T) {
	cfg := testConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runBenchmark(ctx, cfg, zap.NewNop())
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestRunCommandFlags(t *testing.T) {
	logger = zap.NewNop()
	out := filepath.Join(t.TempDir(), "out")

	rootCmd.SetArgs([]string{"run", "--runs", "1", "--size", "2000", "--workers", "3", "--out", out})
	require.NoError(t, rootCmd.Execute())

	raw, err := os.ReadFile(filepath.Join(out, "result.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Runs 1\nArray size 2000\nWorkers 3\n")
}
