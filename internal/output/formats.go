// internal/output/formats.go
package output

// Preview formats for the barcode matrix.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatJSONL  = "jsonl"
	FormatPretty = "pretty"
)

// TSVPositionColumn heads the first column of the text preview; lineage names
// follow in matrix order.
const TSVPositionColumn = "position"
