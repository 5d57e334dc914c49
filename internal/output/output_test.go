package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andersen-lab/BarcodeForge/internal/barcode"
	"github.com/andersen-lab/BarcodeForge/pkg/api"
)

func sample() *barcode.BarcodeMatrix {
	return &barcode.BarcodeMatrix{
		Positions: []int{1, 333},
		Lineages:  []string{barcode.ReferenceLineage, "L1", "L2"},
		Cells: [][]string{
			{"A", "T", barcode.Unchanged},
			{"G", barcode.Unchanged, "C"},
		},
	}
}

func TestFormats_Stable(t *testing.T) {
	if FormatText != "text" || FormatJSON != "json" || FormatJSONL != "jsonl" || FormatPretty != "pretty" {
		t.Fatalf("output format constants changed")
	}
}

func TestWriteText(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteText(&b, sample(), true))
	assert.Equal(t,
		"position\tReference\tL1\tL2\n"+
			"1\tA\tT\tUnchanged\n"+
			"333\tG\tUnchanged\tC\n",
		b.String())

	b.Reset()
	require.NoError(t, WriteText(&b, sample(), false))
	assert.Equal(t, "1\tA\tT\tUnchanged\n333\tG\tUnchanged\tC\n", b.String())
}

func TestWriteJSON(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteJSON(&b, sample()))

	var got api.BarcodeMatrixV1
	require.NoError(t, json.Unmarshal(b.Bytes(), &got))
	assert.Equal(t, []string{"Reference", "L1", "L2"}, got.Lineages)
	assert.Equal(t, "Unchanged", got.Sentinel)
	assert.Equal(t, []string{"A", "C", "G", "T", "Unchanged"}, got.Symbols)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, api.BarcodeRowV1{Position: 333, Bases: []string{"G", "Unchanged", "C"}}, got.Rows[1])
}

func TestWriteJSONL(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteJSONL(&b, sample()))

	lines := bytes.Split(bytes.TrimSpace(b.Bytes()), []byte("\n"))
	require.Len(t, lines, 6)
	var first, last api.BarcodeCellV1
	require.NoError(t, json.Unmarshal(lines[0], &first))
	require.NoError(t, json.Unmarshal(lines[5], &last))
	assert.Equal(t, api.BarcodeCellV1{Position: 1, Lineage: "Reference", Base: "A"}, first)
	assert.Equal(t, api.BarcodeCellV1{Position: 333, Lineage: "L2", Base: "C"}, last)
}
