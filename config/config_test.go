package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bbfmm/fmm1d/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `
rank: 5
kernel: laplacian
gaussianA: 1.0
inputFile: points.txt
verify: true
`)
	c, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 5, c.Rank)
	require.Equal(t, "laplacian", c.Kernel)
	require.True(t, c.Verify)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsBadRank(t *testing.T) {
	path := writeConfig(t, "rank: 0\nkernel: laplacian\ninputFile: a.txt\n")
	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoadRejectsUnknownKernel(t *testing.T) {
	path := writeConfig(t, "rank: 4\nkernel: cubic\ninputFile: a.txt\n")
	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoadRejectsMissingInputFile(t *testing.T) {
	path := writeConfig(t, "rank: 4\nkernel: laplacian\n")
	_, err := config.Load(path)
	require.Error(t, err)
}
