package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupOldLogs(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"server-2025-01-01T00-00-00.log",
		"server-2025-01-02T00-00-00.log",
		"server-2025-01-03T00-00-00.log",
		"unrelated.txt",
	}
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), nil, 0644))
	}

	require.NoError(t, cleanupOldLogs(dir, 2))

	remaining, err := filepath.Glob(filepath.Join(dir, "*"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "server-2025-01-02T00-00-00.log"),
		filepath.Join(dir, "server-2025-01-03T00-00-00.log"),
		filepath.Join(dir, "unrelated.txt"),
	}, remaining)
}

func TestNewLogger_WithLogDir(t *testing.T) {
	cfg := &Config{Environment: "dev", LogDir: t.TempDir(), LogMaxFiles: 3}

	logger, closer, err := NewLogger(cfg)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("hello")

	files, err := filepath.Glob(filepath.Join(cfg.LogDir, "server-*.log"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}
