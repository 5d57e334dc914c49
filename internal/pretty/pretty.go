// internal/pretty/pretty.go
package pretty

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/andersen-lab/BarcodeForge/internal/barcode"
)

// Options control the ASCII barcode rendering.
type Options struct {
	// Spaces between columns. If <=0, use default (2).
	Gap int

	// Draw a rule under a leading Reference row.
	ShowReferenceRule bool

	// Glyphs
	DotGlyph  string // Unchanged cells; default "."
	RuleGlyph string // default "-"
}

// DefaultOptions mirror the heatmap: Reference isolated, Unchanged as dots.
var DefaultOptions = Options{
	Gap:               2,
	ShowReferenceRule: true,
	DotGlyph:          ".",
	RuleGlyph:         "-",
}

const positionTitle = "position"

// RenderMatrixWithOptions draws m with one line per lineage and one
// right-aligned column per position. header adds the position line.
func RenderMatrixWithOptions(m *barcode.BarcodeMatrix, header bool, opt Options) string {
	gap := strings.Repeat(" ", opt.GapOrDefault())
	dot := opt.DotGlyphOrDefault()

	nameW := 0
	if header {
		nameW = len(positionTitle)
	}
	for _, l := range m.Lineages {
		if n := utf8.RuneCountInString(l); n > nameW {
			nameW = n
		}
	}

	cell := func(i, j int) string {
		if s := m.Cells[i][j]; s != barcode.Unchanged {
			return s
		}
		return dot
	}
	colW := make([]int, len(m.Positions))
	width := nameW
	for i, p := range m.Positions {
		colW[i] = len(strconv.Itoa(p))
		for j := range m.Lineages {
			if n := utf8.RuneCountInString(cell(i, j)); n > colW[i] {
				colW[i] = n
			}
		}
		width += len(gap) + colW[i]
	}

	var b strings.Builder
	if header {
		b.WriteString(padRight(positionTitle, nameW))
		for i, p := range m.Positions {
			b.WriteString(gap)
			b.WriteString(padLeft(strconv.Itoa(p), colW[i]))
		}
		b.WriteByte('\n')
	}
	for j, l := range m.Lineages {
		b.WriteString(padRight(l, nameW))
		for i := range m.Positions {
			b.WriteString(gap)
			b.WriteString(padLeft(cell(i, j), colW[i]))
		}
		b.WriteByte('\n')
		if j == 0 && l == barcode.ReferenceLineage && opt.ShowReferenceRule && len(m.Lineages) > 1 {
			b.WriteString(strings.Repeat(opt.RuleGlyphOrDefault(), width))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func padRight(s string, w int) string {
	if n := utf8.RuneCountInString(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}

func padLeft(s string, w int) string {
	if n := utf8.RuneCountInString(s); n < w {
		return strings.Repeat(" ", w-n) + s
	}
	return s
}

// helpers for defaults
func (o Options) GapOrDefault() int {
	if o.Gap > 0 {
		return o.Gap
	}
	return DefaultOptions.Gap
}
func (o Options) DotGlyphOrDefault() string {
	if o.DotGlyph != "" {
		return o.DotGlyph
	}
	return DefaultOptions.DotGlyph
}
func (o Options) RuleGlyphOrDefault() string {
	if o.RuleGlyph != "" {
		return o.RuleGlyph
	}
	return DefaultOptions.RuleGlyph
}
