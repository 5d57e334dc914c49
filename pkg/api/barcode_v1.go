// pkg/api/barcode_v1.go
package api

// BarcodeMatrixV1 is the stable JSON schema for a barcode matrix preview.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type BarcodeMatrixV1 struct {
	Lineages []string       `json:"lineages"` // column order, "Reference" first
	Rows     []BarcodeRowV1 `json:"rows"`     // ascending position
	Symbols  []string       `json:"symbols"`  // sorted distinct cell values
	Sentinel string         `json:"sentinel"` // value used for "no mutation"
}

// BarcodeRowV1 is one genome position. Bases[i] belongs to Lineages[i].
type BarcodeRowV1 struct {
	Position int      `json:"position"`
	Bases    []string `json:"bases"`
}

// BarcodeCellV1 is one (position, lineage) cell of the matrix, emitted one per
// line by the jsonl preview in row-major order.
type BarcodeCellV1 struct {
	Position int    `json:"position"`
	Lineage  string `json:"lineage"`
	Base     string `json:"base"`
}
