// internal/barcode/matrix.go
package barcode

import (
	"errors"
	"fmt"
)

// Long-form field names.
const (
	FieldLineage  = "Lineage"
	FieldMutation = "Mutation"
	FieldValue    = "value"
)

// IndicatorMatrix is the wide input: Values[r][c] belongs to
// (Lineages[r], Mutations[c]). Nonzero means the lineage carries the mutation.
type IndicatorMatrix struct {
	Lineages  []string
	Mutations []string
	Values    [][]float64
}

// LongRecord is one cell of an IndicatorMatrix.
type LongRecord struct {
	Lineage  string
	Mutation string
	Value    float64
}

// DuplicateLabelError reports a repeated row or column label. Index is the
// position of the second occurrence.
type DuplicateLabelError struct {
	Lineage bool // false: mutation column
	Label   string
	Index   int
}

func (e *DuplicateLabelError) Error() string {
	if e.Lineage {
		return fmt.Sprintf("duplicate lineage %q", e.Label)
	}
	return fmt.Sprintf("duplicate mutation label %q", e.Label)
}

// NewIndicatorMatrix checks shape and label uniqueness. Slices are copied.
// Repeated labels yield a *DuplicateLabelError.
func NewIndicatorMatrix(lineages, mutations []string, values [][]float64) (*IndicatorMatrix, error) {
	if len(values) != len(lineages) {
		return nil, fmt.Errorf("matrix has %d lineages but %d value rows", len(lineages), len(values))
	}
	if i, dup := firstDuplicate(mutations); dup {
		return nil, &DuplicateLabelError{Label: mutations[i], Index: i}
	}
	if i, dup := firstDuplicate(lineages); dup {
		return nil, &DuplicateLabelError{Lineage: true, Label: lineages[i], Index: i}
	}
	m := &IndicatorMatrix{
		Lineages:  append([]string(nil), lineages...),
		Mutations: append([]string(nil), mutations...),
		Values:    make([][]float64, len(values)),
	}
	for r, row := range values {
		if len(row) != len(mutations) {
			return nil, fmt.Errorf("lineage %q has %d values, want %d", lineages[r], len(row), len(mutations))
		}
		m.Values[r] = append([]float64(nil), row...)
	}
	return m, nil
}

func firstDuplicate(labels []string) (int, bool) {
	seen := make(map[string]struct{}, len(labels))
	for i, l := range labels {
		if _, ok := seen[l]; ok {
			return i, true
		}
		seen[l] = struct{}{}
	}
	return -1, false
}

// Rows returns the lineage count.
func (m *IndicatorMatrix) Rows() int { return len(m.Lineages) }

// Cols returns the mutation count.
func (m *IndicatorMatrix) Cols() int { return len(m.Mutations) }

// Melt flattens the matrix row-major: exactly Rows()*Cols() records, zeros kept.
func (m *IndicatorMatrix) Melt() []LongRecord {
	out := make([]LongRecord, 0, m.Rows()*m.Cols())
	for r, lineage := range m.Lineages {
		for c, mut := range m.Mutations {
			out = append(out, LongRecord{Lineage: lineage, Mutation: mut, Value: m.Values[r][c]})
		}
	}
	return out
}

// Widen is the inverse of Melt. Lineages and mutations keep first-appearance
// order; a repeated (lineage, mutation) pair or a missing cell is an error.
func Widen(recs []LongRecord) (*IndicatorMatrix, error) {
	rowIdx := map[string]int{}
	colIdx := map[string]int{}
	var lineages, mutations []string
	for _, r := range recs {
		if _, ok := rowIdx[r.Lineage]; !ok {
			rowIdx[r.Lineage] = len(lineages)
			lineages = append(lineages, r.Lineage)
		}
		if _, ok := colIdx[r.Mutation]; !ok {
			colIdx[r.Mutation] = len(mutations)
			mutations = append(mutations, r.Mutation)
		}
	}

	values := make([][]float64, len(lineages))
	filled := make([][]bool, len(lineages))
	for i := range values {
		values[i] = make([]float64, len(mutations))
		filled[i] = make([]bool, len(mutations))
	}
	for _, r := range recs {
		i, j := rowIdx[r.Lineage], colIdx[r.Mutation]
		if filled[i][j] {
			return nil, fmt.Errorf("duplicate record for (%s, %s)", r.Lineage, r.Mutation)
		}
		values[i][j] = r.Value
		filled[i][j] = true
	}
	for i := range filled {
		for j, ok := range filled[i] {
			if !ok {
				return nil, errors.New("missing record for (" + lineages[i] + ", " + mutations[j] + ")")
			}
		}
	}
	return &IndicatorMatrix{Lineages: lineages, Mutations: mutations, Values: values}, nil
}
