// internal/barcode/pivot.go
package barcode

import (
	"sort"
)

// Unchanged marks a (position, lineage) cell without a mutation.
const Unchanged = "Unchanged"

// BarcodeMatrix holds one row per position and one column per lineage.
// Cells[i][j] is the base of Lineages[j] at Positions[i].
type BarcodeMatrix struct {
	Positions []int
	Lineages  []string
	Cells     [][]string
}

// Pivot validates muts and lays them out as a BarcodeMatrix. Positions are
// ascending; ReferenceLineage comes first, then lineages in order of first
// appearance. Missing cells are Unchanged.
func Pivot(muts []ParsedMutation) (*BarcodeMatrix, error) {
	if len(muts) == 0 {
		return nil, ErrEmptyData
	}
	if err := Validate(muts); err != nil {
		return nil, err
	}

	colIdx := map[string]int{ReferenceLineage: 0}
	lineages := []string{ReferenceLineage}
	posSet := make(map[int]struct{})
	for _, m := range muts {
		if _, ok := colIdx[m.Lineage]; !ok {
			colIdx[m.Lineage] = len(lineages)
			lineages = append(lineages, m.Lineage)
		}
		posSet[m.Position] = struct{}{}
	}
	positions := make([]int, 0, len(posSet))
	for p := range posSet {
		positions = append(positions, p)
	}
	sort.Ints(positions)
	rowIdx := make(map[int]int, len(positions))
	for i, p := range positions {
		rowIdx[p] = i
	}

	cells := make([][]string, len(positions))
	for i := range cells {
		cells[i] = make([]string, len(lineages))
		for j := range cells[i] {
			cells[i][j] = Unchanged
		}
	}
	for _, m := range muts {
		i := rowIdx[m.Position]
		cells[i][colIdx[m.Lineage]] = m.Alt
		cells[i][0] = m.Ref
	}
	return &BarcodeMatrix{Positions: positions, Lineages: lineages, Cells: cells}, nil
}

// Build runs Melt → ParseRecords → Pivot.
func Build(m *IndicatorMatrix) (*BarcodeMatrix, error) {
	muts, err := ParseRecords(m.Melt())
	if err != nil {
		return nil, err
	}
	return Pivot(muts)
}

// Symbols returns the distinct cell values, sorted.
func (b *BarcodeMatrix) Symbols() []string {
	seen := map[string]struct{}{}
	for _, row := range b.Cells {
		for _, c := range row {
			seen[c] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// MaxLineageLen is the longest lineage name, in runes.
func (b *BarcodeMatrix) MaxLineageLen() int {
	n := 0
	for _, l := range b.Lineages {
		if k := len([]rune(l)); k > n {
			n = k
		}
	}
	return n
}
