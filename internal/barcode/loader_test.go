package barcode

import (
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioCSV = `Lineage,A1T,C22G,G333C,T4A
L1,1,0,0,1
L2,1,0,1,0
L3,0,0,1,0
`

func TestReadCSV_Scenario(t *testing.T) {
	m, err := ReadCSV(strings.NewReader(scenarioCSV), "mem.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"L1", "L2", "L3"}, m.Lineages)
	assert.Equal(t, []string{"A1T", "C22G", "G333C", "T4A"}, m.Mutations)
	assert.Equal(t, [][]float64{{1, 0, 0, 1}, {1, 0, 1, 0}, {0, 0, 1, 0}}, m.Values)
}

func TestReadCSV_FloatsAndBlankIndexHeader(t *testing.T) {
	m, err := ReadCSV(strings.NewReader(",A1T,C2G\nB.1.1.7, 0.5 ,-1e0\n"), "mem.csv")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.5, -1}}, m.Values)
}

func TestReadCSV_Errors(t *testing.T) {
	cases := map[string]struct {
		in   string
		line int
		msg  string
	}{
		"empty":            {"", 0, "missing header"},
		"no mutations":     {"Lineage\nL1\n", 1, "no mutation columns"},
		"dup column":       {"Lineage,A1T,A1T\nL1,1,0\n", 1, "duplicate mutation"},
		"blank column":     {"Lineage,A1T,\nL1,1,0\n", 1, "empty mutation label"},
		"dup lineage":      {"Lineage,A1T\nL1,1\nL1,0\n", 3, "duplicate lineage"},
		"blank lineage":    {"Lineage,A1T\n,1\n", 2, "empty lineage"},
		"non-numeric":      {"Lineage,A1T\nL1,yes\n", 2, "non-numeric"},
		"empty cell":       {"Lineage,A1T\nL1,\n", 2, "non-numeric"},
		"nan":              {"Lineage,A1T\nL1,NaN\n", 2, "non-numeric"},
		"inf":              {"Lineage,A1T\nL1,+Inf\n", 2, "non-numeric"},
		"short row":        {"Lineage,A1T,C2G\nL1,1\n", 2, "malformed CSV"},
		"unbalanced quote": {"Lineage,A1T\nL1,\"1\n", -1, "malformed CSV"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tc.in), "bad.csv")
			var pe *ParseError
			require.True(t, errors.As(err, &pe), "want *ParseError, got %v", err)
			assert.Equal(t, "bad.csv", pe.Path)
			if tc.line >= 0 {
				assert.Equal(t, tc.line, pe.Line)
			}
			assert.Contains(t, pe.Error(), tc.msg)
		})
	}
}

func TestReadCSV_DuplicatesComeFromMatrixInvariant(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("Lineage,A1T\nL1,1\nL2,0\nL1,0\n"), "dup.csv")
	var de *DuplicateLabelError
	require.True(t, errors.As(err, &de), "got %v", err)
	assert.True(t, de.Lineage)
	assert.Equal(t, "L1", de.Label)
	assert.Equal(t, 2, de.Index)
	assert.EqualError(t, err, `dup.csv:4: invalid matrix: duplicate lineage "L1"`)

	_, err = ReadCSV(strings.NewReader("Lineage,A1T,A1T\n"), "dup.csv")
	require.True(t, errors.As(err, &de), "got %v", err)
	assert.False(t, de.Lineage)
	assert.EqualError(t, err, `dup.csv:1: invalid matrix: duplicate mutation label "A1T"`)
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, err.Error(), "cannot open input")
}

func TestLoadCSV_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "barcodes.csv.gz")
	fh, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(fh)
	_, err = gz.Write([]byte(scenarioCSV))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, fh.Close())

	m, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())
}
