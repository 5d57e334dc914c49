// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"github.com/andersen-lab/BarcodeForge/internal/barcode"
	"github.com/andersen-lab/BarcodeForge/internal/output"
	"github.com/andersen-lab/BarcodeForge/internal/pretty"
)

// PreviewFunc writes a BarcodeMatrix to w. header only matters for tabular formats.
type PreviewFunc func(w io.Writer, m *barcode.BarcodeMatrix, header bool) error

// Preview writers (format → handler).
var previewWriters = map[string]PreviewFunc{
	output.FormatText: output.WriteText,
	output.FormatJSON: func(w io.Writer, m *barcode.BarcodeMatrix, _ bool) error {
		return output.WriteJSON(w, m)
	},
	output.FormatJSONL: func(w io.Writer, m *barcode.BarcodeMatrix, _ bool) error {
		return output.WriteJSONL(w, m)
	},
	output.FormatPretty: func(w io.Writer, m *barcode.BarcodeMatrix, header bool) error {
		_, err := io.WriteString(w, pretty.RenderMatrixWithOptions(m, header, pretty.DefaultOptions))
		return err
	},
}

// HasPreview reports whether format has a registered writer.
func HasPreview(format string) bool {
	_, ok := previewWriters[format]
	return ok
}

// PreviewFormats lists registered formats, sorted.
func PreviewFormats() []string {
	out := make([]string, 0, len(previewWriters))
	for k := range previewWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// WritePreview dispatches to the writer registered for format.
func WritePreview(format string, w io.Writer, m *barcode.BarcodeMatrix, header bool) error {
	fn, ok := previewWriters[format]
	if !ok {
		return fmt.Errorf("unknown preview format %q (no writer registered)", format)
	}
	return fn(w, m, header)
}
