// internal/output/jsonl.go
package output

import (
	"io"

	"github.com/andersen-lab/BarcodeForge/internal/barcode"
	"github.com/andersen-lab/BarcodeForge/internal/jsonlutil"
	"github.com/andersen-lab/BarcodeForge/pkg/api"
)

// ToAPICells flattens m into long format, position-major, lineages in matrix order.
func ToAPICells(m *barcode.BarcodeMatrix) []api.BarcodeCellV1 {
	out := make([]api.BarcodeCellV1, 0, len(m.Positions)*len(m.Lineages))
	for i, p := range m.Positions {
		for j, l := range m.Lineages {
			out = append(out, api.BarcodeCellV1{Position: p, Lineage: l, Base: m.Cells[i][j]})
		}
	}
	return out
}

// WriteJSONL writes one api.BarcodeCellV1 per line.
func WriteJSONL(w io.Writer, m *barcode.BarcodeMatrix) error {
	return jsonlutil.Encode(w, ToAPICells(m))
}
