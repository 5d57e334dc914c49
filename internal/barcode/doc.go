// Package barcode turns a lineage × mutation indicator matrix into a
// position × lineage matrix of alternate bases.
//
// Stages (each returns a new value, nothing is mutated in place):
//   • Load     – CSV (optionally compressed) → IndicatorMatrix
//   • Melt     – IndicatorMatrix → []LongRecord (R×C, zeros kept)
//   • Parse    – drop zeros, split "A123T" labels → []ParsedMutation
//   • Validate – at most one base per (position, lineage), Reference included
//   • Pivot    – []ParsedMutation → BarcodeMatrix ("Unchanged" fills gaps)
//
// The package knows nothing about rendering or the CLI.
package barcode
