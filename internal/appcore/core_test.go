package appcore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andersen-lab/BarcodeForge/internal/barcode"
	"github.com/andersen-lab/BarcodeForge/internal/cmdutil"
	"github.com/andersen-lab/BarcodeForge/internal/config"
	"github.com/andersen-lab/BarcodeForge/internal/render"
)

const scenarioCSV = `,A1T,C22G,G333C,T4A
L1,1,0,0,1
L2,1,0,1,0
L3,0,0,1,0
`

func quietLog() *cmdutil.Logger { return cmdutil.NewLogger(io.Discard, false, true) }

func writeCSV(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "barcodes.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestCreateBarcodePlot(t *testing.T) {
	dir := t.TempDir()
	o := Options{
		Input:       writeCSV(t, dir, scenarioCSV),
		Output:      filepath.Join(dir, "plot.png"),
		DPI:         render.DefaultDPI,
		PrintMatrix: "text",
		Header:      true,
	}
	var stdout, stderr bytes.Buffer
	log := cmdutil.NewLogger(&stderr, true, false)

	require.NoError(t, CreateBarcodePlot(context.Background(), log, o, &stdout))

	info, err := os.Stat(o.Output)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Equal(t, "position\tReference\tL1\tL2\tL3\n1\tA\tT\tT\tUnchanged\n4\tT\tA\tUnchanged\tUnchanged\n333\tG\tUnchanged\tC\tC\n", stdout.String())

	logs := stderr.String()
	assert.Contains(t, logs, "DEBUG: Reading barcode data from "+o.Input)
	assert.Contains(t, logs, "DEBUG: Barcode data shape: (3, 4)")
	assert.Contains(t, logs, "DEBUG: Barcode data columns: A1T, C22G, G333C, T4A")
	assert.Contains(t, logs, "Creating barcode plot with 3 positions and 4 lineages...")
}

func TestCreateBarcodePlot_Errors(t *testing.T) {
	cases := []struct {
		name  string
		csv   string
		check func(t *testing.T, err error)
	}{
		{"bad label", ",M1\nL1,1\n", func(t *testing.T, err error) {
			var lfe *barcode.LabelFormatError
			require.True(t, errors.As(err, &lfe), "got %v", err)
			assert.Equal(t, "M1", lfe.Label)
		}},
		{"all zero", ",A1T\nL1,0\n", func(t *testing.T, err error) {
			assert.ErrorIs(t, err, barcode.ErrEmptyData)
		}},
		{"ambiguous", ",A1T,A1G\nL1,1,1\n", func(t *testing.T, err error) {
			var dce *barcode.DataConsistencyError
			require.True(t, errors.As(err, &dce), "got %v", err)
		}},
		{"non-numeric", ",A1T\nL1,yes\n", func(t *testing.T, err error) {
			var pe *barcode.ParseError
			require.True(t, errors.As(err, &pe), "got %v", err)
		}},
		{"unknown base", ",A1N\nL1,1\n", func(t *testing.T, err error) {
			var pe *render.PaletteError
			require.True(t, errors.As(err, &pe), "got %v", err)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			o := Options{Input: writeCSV(t, dir, tc.csv), Output: filepath.Join(dir, "plot.png")}
			err := CreateBarcodePlot(context.Background(), quietLog(), o, &bytes.Buffer{})
			require.Error(t, err)
			tc.check(t, err)
			assert.Equal(t, ExitUsage, ExitCode(err))
			_, statErr := os.Stat(o.Output)
			assert.True(t, os.IsNotExist(statErr), "no image may be written on failure")
		})
	}
}

func TestCreateBarcodePlot_Canceled(t *testing.T) {
	dir := t.TempDir()
	o := Options{Input: writeCSV(t, dir, scenarioCSV), Output: filepath.Join(dir, "plot.png")}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := CreateBarcodePlot(ctx, quietLog(), o, &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, ExitCanceled, ExitCode(err))
	_, statErr := os.Stat(o.Output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCreateBarcodePlot_PaletteFile(t *testing.T) {
	dir := t.TempDir()
	pal := filepath.Join(dir, "pal.yaml")
	require.NoError(t, os.WriteFile(pal, []byte("bases: {N: '#444444'}\n"), 0o644))
	o := Options{
		Input:       writeCSV(t, dir, ",A1N\nL1,1\n"),
		Output:      filepath.Join(dir, "plot.svg"),
		PaletteFile: pal,
	}
	require.NoError(t, CreateBarcodePlot(context.Background(), quietLog(), o, &bytes.Buffer{}))

	require.NoError(t, os.WriteFile(pal, []byte("bases: {N: grey}\n"), 0o644))
	err := CreateBarcodePlot(context.Background(), quietLog(), o, &bytes.Buffer{})
	assert.ErrorIs(t, err, config.ErrInvalidPalette)
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{context.Canceled, ExitCanceled},
		{fmt.Errorf("wrapped: %w", barcode.ErrEmptyData), ExitUsage},
		{&barcode.ParseError{Path: "x.csv", Msg: "malformed CSV"}, ExitUsage},
		{&barcode.DataConsistencyError{}, ExitUsage},
		{fmt.Errorf("%w: bad", config.ErrInvalidPalette), ExitUsage},
		{errors.New("write plot.png: disk full"), ExitFailure},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ExitCode(tc.err), "%v", tc.err)
	}
}

func TestCreateBarcodePlot_WarnsAboutDroppedLineages(t *testing.T) {
	dir := t.TempDir()
	o := Options{
		Input:  writeCSV(t, dir, scenarioCSV+"L4,0,0,0,0\nL5,0,0,0,0\n"),
		Output: filepath.Join(dir, "plot.png"),
	}
	var stderr bytes.Buffer
	require.NoError(t, CreateBarcodePlot(context.Background(), cmdutil.NewLogger(&stderr, false, false), o, &bytes.Buffer{}))
	assert.Contains(t, stderr.String(), "WARN: 2 lineage(s) without nonzero indicators left out of the plot: L4, L5")

	stderr.Reset()
	require.NoError(t, CreateBarcodePlot(context.Background(), cmdutil.NewLogger(&stderr, false, false), Options{
		Input:  writeCSV(t, dir, scenarioCSV),
		Output: filepath.Join(dir, "plot2.png"),
	}, &bytes.Buffer{}))
	assert.NotContains(t, stderr.String(), "WARN")
}

func TestCreateBarcodePlot_PaletteErrorsBeforePreview(t *testing.T) {
	dir := t.TempDir()
	badPal := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badPal, []byte("bases: {A: nope}\n"), 0o644))

	cases := map[string]struct{ csv, palette string }{
		"invalid palette file":  {scenarioCSV, badPal},
		"symbol without colour": {",A1N\nL1,1\n", ""},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			tmp := t.TempDir()
			o := Options{
				Input:       writeCSV(t, tmp, tc.csv),
				Output:      filepath.Join(tmp, "plot.png"),
				PaletteFile: tc.palette,
			}
			o.PrintMatrix = "text"
			var stdout bytes.Buffer
			err := CreateBarcodePlot(context.Background(), quietLog(), o, &stdout)
			require.Error(t, err)
			assert.Equal(t, ExitUsage, ExitCode(err))
			assert.Empty(t, stdout.String(), "no preview may be printed for a run that fails on its palette")
		})
	}
}

func TestDroppedLineages(t *testing.T) {
	assert.Nil(t, droppedLineages([]string{"L1"}, []string{"Reference", "L1"}))
	assert.Equal(t, []string{"b", "d"}, droppedLineages([]string{"a", "b", "c", "d"}, []string{"Reference", "c", "a"}))
}
