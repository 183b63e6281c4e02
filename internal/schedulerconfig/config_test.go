package schedulerconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	require.Equal(t, defaultConfig(), Load(""))
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	require.Equal(t, defaultConfig(), Load(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestLoad_CorruptYAMLFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: valid: yaml: :::"), 0o644))

	require.Equal(t, defaultConfig(), Load(path))
}

func TestLoad_OverridesAndClamps(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("worker_count: 8\nqueue_capacity_hint: -5\n"), 0o644))

	cfg := Load(path)
	require.Equal(t, 8, cfg.WorkerCount)
	require.Equal(t, 64, cfg.QueueCapacityHint)
}

func TestLoad_OutOfRangeWorkerCountClampsToAuto(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("worker_count: 999\n"), 0o644))

	cfg := Load(path)
	require.Equal(t, 0, cfg.WorkerCount)
}
