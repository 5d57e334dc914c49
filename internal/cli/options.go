// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/andersen-lab/BarcodeForge/internal/config"
	"github.com/andersen-lab/BarcodeForge/internal/render"
	"github.com/andersen-lab/BarcodeForge/internal/writers"
)

// Defaults and limits.
const (
	DefaultOutput = "barcode_plot.png"
	MinDPI        = 36
	MaxDPI        = 1200
)

// Options holds all plot-barcode flags.
type Options struct {
	// Input / output
	Input       string
	Output      string
	PaletteFile string

	// Rendering
	DPI int

	// Preview
	PrintMatrix string // "" = none
	Header      bool   // true unless --no-header

	// Console
	Debug bool
	Quiet bool
}

// Register binds the plot-barcode flags to o. --no-header is inverted into
// o.Header by Finish.
func Register(fs *pflag.FlagSet, o *Options) {
	fs.StringVarP(&o.Input, "input", "i", "", "barcode CSV (lineage × mutation indicator matrix; .gz/.xz/.zst ok) [*]")
	fs.StringVarP(&o.Output, "output", "o", DefaultOutput, "output image; format from extension: "+strings.Join(render.SupportedFormats(), " | "))
	fs.StringVar(&o.PaletteFile, "palette", "", "YAML palette overrides (default $"+config.PaletteEnv+")")
	fs.IntVar(&o.DPI, "dpi", render.DefaultDPI, fmt.Sprintf("raster resolution (%d-%d)", MinDPI, MaxDPI))
	fs.StringVar(&o.PrintMatrix, "print-matrix", "", "also print the barcode matrix to stdout: "+strings.Join(writers.PreviewFormats(), " | "))
	fs.Bool("no-header", false, "suppress header line in the text matrix preview")
}

// Finish copies derived flag values into o after parsing.
func Finish(fs *pflag.FlagSet, o *Options) {
	noHeader, _ := fs.GetBool("no-header")
	o.Header = !noHeader
}

// Validate checks flag values that do not need the filesystem.
func (o Options) Validate() error {
	if o.Input == "" {
		return errors.New("--input is required")
	}
	if o.Output == "" {
		return errors.New("--output must not be empty")
	}
	if _, err := render.FormatFor(o.Output); err != nil {
		return fmt.Errorf("invalid --output: %w", err)
	}
	if o.DPI < MinDPI || o.DPI > MaxDPI {
		return fmt.Errorf("--dpi must be between %d and %d (got %d)", MinDPI, MaxDPI, o.DPI)
	}
	if o.PrintMatrix != "" && !writers.HasPreview(o.PrintMatrix) {
		return fmt.Errorf("invalid --print-matrix %q (want %s)", o.PrintMatrix, strings.Join(writers.PreviewFormats(), " | "))
	}
	return nil
}
