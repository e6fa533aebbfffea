package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/survey-report/pkg/dataset"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadNotFound(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope.csv")
	_, err := dataset.Load(path, []string{"Plan"})
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrNotFound)
	assert.Contains(t, err.Error(), path)
}

func TestLoadMissingColumns(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, "Plan,Percent\nPPO,78.5\n")
	_, err := dataset.Load(path, []string{"Region", "Plan", "PEPM"})
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrMissingColumns)

	var missingErr *dataset.MissingColumnsError
	require.True(t, errors.As(err, &missingErr))
	assert.Equal(t, []string{"Region", "PEPM"}, missingErr.Missing)
	assert.Equal(t, path, missingErr.Path)
	assert.Contains(t, err.Error(), "[Region, PEPM]")
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, "\ufeffRegion, PEPM\nBay Area,758\nCentral Valley,548\n")
	ds, err := dataset.Load(path, []string{"Region", "PEPM"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Region", "PEPM"}, ds.Columns())
	assert.Equal(t, 2, ds.Len())

	regions, err := ds.Strings("Region")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bay Area", "Central Valley"}, regions)

	values, err := ds.Floats("PEPM")
	require.NoError(t, err)
	assert.Equal(t, []float64{758, 548}, values)

	assert.Equal(t, [][]string{{"Bay Area", "758"}, {"Central Valley", "548"}}, ds.Rows())
}

func TestFloatsNotNumeric(t *testing.T) {
	t.Parallel()

	ds, err := dataset.Read(strings.NewReader("Plan,Percent\nPPO,78.5\nHMO,n/a\n"))
	require.NoError(t, err)

	_, err = ds.Floats("Percent")
	assert.ErrorIs(t, err, dataset.ErrNotNumeric)

	_, err = ds.Floats("Unknown")
	assert.ErrorIs(t, err, dataset.ErrUnknownColumn)
}

func TestReadEmpty(t *testing.T) {
	t.Parallel()

	_, err := dataset.Read(strings.NewReader(""))
	assert.ErrorIs(t, err, dataset.ErrEmpty)
}

func TestReadRaggedRow(t *testing.T) {
	t.Parallel()

	_, err := dataset.Read(strings.NewReader("Plan,Percent\nPPO,78.5,extra\n"))
	assert.Error(t, err)
}

func TestReadHeaderOnly(t *testing.T) {
	t.Parallel()

	ds, err := dataset.Read(strings.NewReader("Plan,Percent\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())

	values, err := ds.Floats("Percent")
	require.NoError(t, err)
	assert.Empty(t, values)
}
