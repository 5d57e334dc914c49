// internal/barcode/label.go
package barcode

import (
	"regexp"
	"strconv"
)

var labelPattern = regexp.MustCompile(`^([A-Za-z]+)(\d+)([A-Za-z]+)$`)

// Mutation is a parsed "<ref><pos><alt>" label.
type Mutation struct {
	Ref      string
	Position int // 1-based
	Alt      string
}

// ParseLabel splits a label such as "A123T". Letters are kept as written.
func ParseLabel(label string) (Mutation, error) {
	m := labelPattern.FindStringSubmatch(label)
	if m == nil {
		return Mutation{}, &LabelFormatError{Label: label}
	}
	pos, err := strconv.Atoi(m[2])
	if err != nil {
		return Mutation{}, &LabelFormatError{Label: label, Reason: "position out of range"}
	}
	if pos < 1 {
		return Mutation{}, &LabelFormatError{Label: label, Reason: "positions are 1-based"}
	}
	return Mutation{Ref: m[1], Position: pos, Alt: m[3]}, nil
}

func (m Mutation) String() string { return m.Ref + strconv.Itoa(m.Position) + m.Alt }
