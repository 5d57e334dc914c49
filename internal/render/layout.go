// internal/render/layout.go
package render

import (
	"image/color"
	"strconv"

	"gonum.org/v1/plot/vg"

	"github.com/andersen-lab/BarcodeForge/internal/barcode"
)

// Canvas scale, in inches. Every term grows with the data so the figure never
// shrinks when positions, lineages or name lengths grow.
const (
	inchPerPosition = 0.4
	inchPerNameRune = 0.2
	inchPerLineage  = 0.25
	inchPerPosDigit = 0.1
	marginWidth     = 1.0
	marginHeight    = 0.8
)

// Cell geometry in data units (one cell = 1×1).
const (
	separatorOffset = 0.0325
	separatorInset  = 0.05
)

// FigureSize returns the canvas size for a matrix of nPositions columns and
// nLineages rows, leaving room for the longest row label and the widest
// (rotated) position label.
func FigureSize(nPositions, nLineages, maxNameLen, maxPosDigits int) (w, h vg.Length) {
	wIn := marginWidth + inchPerPosition*float64(nPositions) + inchPerNameRune*float64(maxNameLen)
	hIn := marginHeight + inchPerLineage*float64(nLineages) + inchPerPosDigit*float64(maxPosDigits)
	return vg.Length(wIn) * vg.Inch, vg.Length(hIn) * vg.Inch
}

// OrderRows returns indices into lineages with barcode.ReferenceLineage first;
// everything else keeps its relative order.
func OrderRows(lineages []string) []int {
	out := make([]int, 0, len(lineages))
	for i, l := range lineages {
		if l == barcode.ReferenceLineage {
			out = append(out, i)
		}
	}
	for i, l := range lineages {
		if l != barcode.ReferenceLineage {
			out = append(out, i)
		}
	}
	return out
}

// RowColors assigns the cycling lineage colour of each display row. A nil
// entry means "default tick colour, no separators" and is used only for a
// leading Reference row.
func RowColors(rows []string, cycle []color.Color) []color.Color {
	out := make([]color.Color, len(rows))
	for i, name := range rows {
		if i == 0 && name == barcode.ReferenceLineage {
			continue
		}
		out[i] = cycle[i%len(cycle)]
	}
	return out
}

func maxDigits(positions []int) int {
	n := 0
	for _, p := range positions {
		if d := len(strconv.Itoa(p)); d > n {
			n = d
		}
	}
	return n
}
