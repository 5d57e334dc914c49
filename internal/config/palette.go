// internal/config/palette.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/andersen-lab/BarcodeForge/internal/barcode"
	"github.com/andersen-lab/BarcodeForge/internal/render"
)

// PaletteEnv names a palette file used when no --palette flag is given.
const PaletteEnv = "BARCODEFORGE_PALETTE"

// ErrInvalidPalette wraps every failure to read, parse or validate a palette file.
var ErrInvalidPalette = errors.New("invalid palette file")

// PaletteFile is the on-disk palette override document.
type PaletteFile struct {
	Bases     map[string]string `yaml:"bases" validate:"omitempty,dive,keys,required,endkeys,required,hexcolor"`
	Unchanged string            `yaml:"unchanged" validate:"omitempty,hexcolor"`
	Lineages  []string          `yaml:"lineages" validate:"omitempty,dive,required,hexcolor"`
}

var paletteValidate = validator.New()

// Validate checks every colour value and key.
func (f *PaletteFile) Validate() error {
	if err := paletteValidate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: %q fails %q", fe.Namespace(), fmt.Sprint(fe.Value()), fe.Tag()))
			}
			sort.Strings(msgs)
			return errors.New(strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// ResolvePalettePath returns flagValue, or the PaletteEnv value when the flag is empty.
func ResolvePalettePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(PaletteEnv)
}

// LoadPalette reads the YAML palette at path and merges it over the default
// palettes. An empty path yields the defaults unchanged. Unknown keys are
// rejected so typos do not silently fall back to defaults.
func LoadPalette(path string) (render.Options, error) {
	o := render.Options{
		Palette:       render.DefaultPalette(),
		LineageColors: render.DefaultLineageColors(),
	}
	if path == "" {
		return o, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("%w: %v", ErrInvalidPalette, err)
	}
	f, err := DecodePalette(data)
	if err != nil {
		return o, fmt.Errorf("%w: %s: %v", ErrInvalidPalette, path, err)
	}
	return f.Apply(o)
}

// DecodePalette parses and validates a palette document. Empty input is an
// empty (valid) palette.
func DecodePalette(data []byte) (*PaletteFile, error) {
	var f PaletteFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Apply merges f over o and returns the result; o's palettes are not mutated.
func (f *PaletteFile) Apply(o render.Options) (render.Options, error) {
	pal := render.DefaultPalette()
	if o.Palette != nil {
		pal = o.Palette.Clone()
	}
	for sym, hex := range f.Bases {
		c, err := render.ParseHex(hex)
		if err != nil {
			return o, fmt.Errorf("%w: bases.%s: %v", ErrInvalidPalette, sym, err)
		}
		pal[sym] = c
	}
	if f.Unchanged != "" {
		c, err := render.ParseHex(f.Unchanged)
		if err != nil {
			return o, fmt.Errorf("%w: unchanged: %v", ErrInvalidPalette, err)
		}
		pal[barcode.Unchanged] = c
	}
	o.Palette = pal

	if len(f.Lineages) > 0 {
		cycle := make([]color.Color, len(f.Lineages))
		for i, hex := range f.Lineages {
			c, err := render.ParseHex(hex)
			if err != nil {
				return o, fmt.Errorf("%w: lineages[%d]: %v", ErrInvalidPalette, i, err)
			}
			cycle[i] = c
		}
		o.LineageColors = cycle
	}
	return o, nil
}
