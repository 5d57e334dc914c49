// internal/barcode/parse.go
package barcode

import (
	"errors"
	"sort"
)

// ReferenceLineage is the synthetic lineage holding the reference base of
// every plotted position.
const ReferenceLineage = "Reference"

// ParsedMutation is a retained LongRecord with its label decomposed.
type ParsedMutation struct {
	Lineage  string
	Ref      string
	Position int
	Alt      string
}

// FilterNonZero drops records whose value is zero. Applying it twice is a no-op.
func FilterNonZero(recs []LongRecord) []LongRecord {
	out := make([]LongRecord, 0, len(recs))
	for _, r := range recs {
		if r.Value != 0 {
			out = append(out, r)
		}
	}
	return out
}

// ParseRecords filters zero values and parses every remaining label.
// The first malformed label aborts with a *LabelFormatError.
func ParseRecords(recs []LongRecord) ([]ParsedMutation, error) {
	kept := FilterNonZero(recs)
	out := make([]ParsedMutation, 0, len(kept))
	for _, r := range kept {
		mut, err := ParseLabel(r.Mutation)
		if err != nil {
			var lfe *LabelFormatError
			if errors.As(err, &lfe) {
				lfe.Lineage = r.Lineage
			}
			return nil, err
		}
		out = append(out, ParsedMutation{
			Lineage:  r.Lineage,
			Ref:      mut.Ref,
			Position: mut.Position,
			Alt:      mut.Alt,
		})
	}
	return out, nil
}

type pairKey struct {
	pos     int
	lineage string
}

// Validate groups bases by (position, lineage) and fails when any group holds
// more than one entry. Each distinct reference base seen at a position counts
// as an entry of ReferenceLineage, so conflicting reference bases and an input
// lineage named "Reference" are reported the same way. All conflicts are
// returned, sorted by position then lineage.
func Validate(muts []ParsedMutation) error {
	groups := make(map[pairKey][]string)
	refSeen := make(map[pairKey]struct{})
	for _, m := range muts {
		k := pairKey{m.Position, m.Lineage}
		groups[k] = append(groups[k], m.Alt)

		rk := pairKey{m.Position, m.Ref}
		if _, ok := refSeen[rk]; !ok {
			refSeen[rk] = struct{}{}
			ref := pairKey{m.Position, ReferenceLineage}
			groups[ref] = append(groups[ref], m.Ref)
		}
	}

	var conflicts []Conflict
	for k, bases := range groups {
		if len(bases) > 1 {
			conflicts = append(conflicts, Conflict{Position: k.pos, Lineage: k.lineage, Bases: bases})
		}
	}
	if len(conflicts) == 0 {
		return nil
	}
	sort.Slice(conflicts, func(i, j int) bool {
		if conflicts[i].Position != conflicts[j].Position {
			return conflicts[i].Position < conflicts[j].Position
		}
		return conflicts[i].Lineage < conflicts[j].Lineage
	})
	return &DataConsistencyError{Conflicts: conflicts}
}
