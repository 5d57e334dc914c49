// internal/barcode/errors.go
package barcode

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyData is returned when no record survives the zero filter.
var ErrEmptyData = errors.New("no nonzero indicator values: nothing to plot")

// ParseError reports a malformed input matrix. Line is 1-based; 0 when the
// failure is not tied to a line (open errors).
type ParseError struct {
	Path string
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(e.Path)
	if e.Line > 0 {
		fmt.Fprintf(&b, ":%d", e.Line)
	}
	b.WriteString(": ")
	b.WriteString(e.Msg)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// LabelFormatError reports a retained mutation label outside the
// <ref><pos><alt> grammar.
type LabelFormatError struct {
	Lineage string
	Label   string
	Reason  string
}

func (e *LabelFormatError) Error() string {
	msg := fmt.Sprintf("mutation label %q", e.Label)
	if e.Lineage != "" {
		msg += fmt.Sprintf(" (lineage %q)", e.Lineage)
	}
	if e.Reason != "" {
		return msg + ": " + e.Reason
	}
	return msg + ": want <ref><position><alt>, e.g. A123T"
}

// Conflict is one (position, lineage) pair with more than one base.
type Conflict struct {
	Position int
	Lineage  string
	Bases    []string
}

func (c Conflict) String() string {
	return fmt.Sprintf("position %d, lineage %q: %s", c.Position, c.Lineage, strings.Join(c.Bases, ","))
}

// DataConsistencyError lists every ambiguous (position, lineage) pair.
type DataConsistencyError struct {
	Conflicts []Conflict
}

func (e *DataConsistencyError) Error() string {
	parts := make([]string, len(e.Conflicts))
	for i, c := range e.Conflicts {
		parts[i] = c.String()
	}
	return fmt.Sprintf("each (position, lineage) pair must have a single base; %d ambiguous: %s",
		len(e.Conflicts), strings.Join(parts, "; "))
}
