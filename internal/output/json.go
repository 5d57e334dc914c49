// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"github.com/andersen-lab/BarcodeForge/internal/barcode"
	"github.com/andersen-lab/BarcodeForge/pkg/api"
)

// ToAPIMatrix converts a BarcodeMatrix to the stable wire schema (v1).
func ToAPIMatrix(m *barcode.BarcodeMatrix) api.BarcodeMatrixV1 {
	v := api.BarcodeMatrixV1{
		Lineages: append([]string(nil), m.Lineages...),
		Rows:     make([]api.BarcodeRowV1, len(m.Positions)),
		Symbols:  m.Symbols(),
		Sentinel: barcode.Unchanged,
	}
	for i, p := range m.Positions {
		v.Rows[i] = api.BarcodeRowV1{Position: p, Bases: append([]string(nil), m.Cells[i]...)}
	}
	return v
}

// WriteJSON writes the matrix as one indented JSON document.
func WriteJSON(w io.Writer, m *barcode.BarcodeMatrix) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPIMatrix(m))
}
