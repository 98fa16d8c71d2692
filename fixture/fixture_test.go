package fixture_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bbfmm/fmm1d/fixture"
)

func writeFixture(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadParsesLocationsAndCharges(t *testing.T) {
	path := writeFixture(t, "0.0 1.0 2.0\n0.5 3.0 4.0\n1.0 5.0 6.0\n")

	points, charges, err := fixture.Load(path, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{0.0, 0.5, 1.0}, points)
	require.Equal(t, 3, charges.Rows())
	require.Equal(t, 2, charges.Cols())
	require.Equal(t, []float64{1.0, 2.0}, charges[0])
	require.Equal(t, []float64{5.0, 6.0}, charges[2])
}

func TestLoadSkipsBlankLines(t *testing.T) {
	path := writeFixture(t, "0.0 1.0\n\n1.0 2.0\n")
	points, charges, err := fixture.Load(path, 1)
	require.NoError(t, err)
	require.Len(t, points, 2)
	require.Equal(t, 2, charges.Rows())
}

func TestLoadRejectsWrongFieldCount(t *testing.T) {
	path := writeFixture(t, "0.0 1.0 2.0\n0.5 3.0\n")
	_, _, err := fixture.Load(path, 2)
	require.Error(t, err)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, _, err := fixture.Load(filepath.Join(t.TempDir(), "missing.txt"), 1)
	require.Error(t, err)
}

func TestLoadRejectsEmptyFile(t *testing.T) {
	path := writeFixture(t, "")
	_, _, err := fixture.Load(path, 1)
	require.Error(t, err)
}
