// internal/render/palette.go
package render

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/andersen-lab/BarcodeForge/internal/barcode"
)

// Base colours of the default palette.
const (
	HexA         = "#CC3311"
	HexC         = "#33BBEE"
	HexG         = "#EE7733"
	HexT         = "#009988"
	HexUnchanged = "#BBBBBB"
)

// LineageHex is the row-cycling palette for separators and tick labels.
var LineageHex = [...]string{"#6699CC", "#004488", "#EECC66", "#994455", "#997700", "#EE99AA"}

// ColorPalette maps a cell symbol (base or barcode.Unchanged) to its fill.
type ColorPalette map[string]color.Color

// DefaultPalette returns a fresh copy of the five-entry palette.
func DefaultPalette() ColorPalette {
	return ColorPalette{
		"A":               MustParseHex(HexA),
		"C":               MustParseHex(HexC),
		"G":               MustParseHex(HexG),
		"T":               MustParseHex(HexT),
		barcode.Unchanged: MustParseHex(HexUnchanged),
	}
}

// DefaultLineageColors returns LineageHex as colours.
func DefaultLineageColors() []color.Color {
	out := make([]color.Color, len(LineageHex))
	for i, h := range LineageHex {
		out[i] = MustParseHex(h)
	}
	return out
}

// Clone returns an independent copy.
func (p ColorPalette) Clone() ColorPalette {
	out := make(ColorPalette, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// PaletteError lists symbols present in the matrix without a palette entry.
type PaletteError struct {
	Symbols []string
}

func (e *PaletteError) Error() string {
	return fmt.Sprintf("no palette colour for symbol(s): %s", strings.Join(e.Symbols, ", "))
}

// CodeTable sorts symbols, numbers them in that order and returns the colour
// for each code. Every missing symbol is reported in one *PaletteError.
func CodeTable(symbols []string, p ColorPalette) (map[string]int, []color.Color, error) {
	sorted := append([]string(nil), symbols...)
	sort.Strings(sorted)

	codes := make(map[string]int, len(sorted))
	colors := make([]color.Color, 0, len(sorted))
	var missing []string
	for i, s := range sorted {
		if i > 0 && sorted[i-1] == s {
			continue
		}
		c, ok := p[s]
		if !ok || c == nil {
			missing = append(missing, s)
			continue
		}
		codes[s] = len(colors)
		colors = append(colors, c)
	}
	if len(missing) > 0 {
		return nil, nil, &PaletteError{Symbols: missing}
	}
	return codes, colors, nil
}

// ParseHex accepts #RGB, #RGBA, #RRGGBB and #RRGGBBAA.
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == len(s) {
		return color.NRGBA{}, fmt.Errorf("colour %q: missing leading '#'", s)
	}
	switch len(h) {
	case 3, 4:
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	case 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("colour %q: want 3, 4, 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MustParseHex is ParseHex for compile-time constants.
func MustParseHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
