// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/andersen-lab/BarcodeForge/internal/barcode"
	"github.com/andersen-lab/BarcodeForge/internal/cmdutil"
	"github.com/andersen-lab/BarcodeForge/internal/config"
	"github.com/andersen-lab/BarcodeForge/internal/render"
	"github.com/andersen-lab/BarcodeForge/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitFailure  = 3
	ExitCanceled = 130
)

// Options drive one plot-barcode run.
type Options struct {
	Input       string
	Output      string
	PaletteFile string
	DPI         int

	PrintMatrix string // preview format, "" = none
	Header      bool
}

// CreateBarcodePlot loads the indicator CSV at o.Input, turns it into a
// barcode matrix and renders it to o.Output. The matrix preview, if any, goes
// to stdout once the palette covers every symbol, before rendering. ctx is
// checked between stages.
func CreateBarcodePlot(ctx context.Context, log *cmdutil.Logger, o Options, stdout io.Writer) error {
	log.Debugf("Reading barcode data from %s", o.Input)
	ind, err := barcode.LoadCSV(o.Input)
	if err != nil {
		return err
	}
	log.Debugf("Barcode data shape: (%d, %d)", ind.Rows(), ind.Cols())
	if log.DebugEnabled() {
		log.Debugf("Barcode data columns: %s", strings.Join(ind.Mutations, ", "))
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	log.Debugf("Transforming barcode data to long format...")
	long := ind.Melt()
	muts, err := barcode.ParseRecords(long)
	if err != nil {
		return err
	}
	log.Debugf("Kept %d of %d records with non-zero indicators", len(muts), len(long))
	b, err := barcode.Pivot(muts)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if dropped := droppedLineages(ind.Lineages, b.Lineages); len(dropped) > 0 {
		log.Warnf("%d lineage(s) without nonzero indicators left out of the plot: %s", len(dropped), strings.Join(dropped, ", "))
	}
	log.Infof("Creating barcode plot with %d positions and %d lineages...", len(b.Positions), len(b.Lineages))

	// Palette problems are input errors; surface them before anything reaches stdout.
	ro, err := config.LoadPalette(config.ResolvePalettePath(o.PaletteFile))
	if err != nil {
		return err
	}
	ro.DPI = o.DPI
	if _, _, err := render.CodeTable(b.Symbols(), ro.Palette); err != nil {
		return err
	}

	if o.PrintMatrix != "" {
		if err := writePreview(stdout, o.PrintMatrix, b, o.Header); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	log.Debugf("Rendering %s", o.Output)
	if err := render.Render(b, o.Output, ro); err != nil {
		return err
	}
	log.Debugf("Wrote %s", o.Output)
	return nil
}

// droppedLineages lists input lineages absent from the plotted matrix, in input order.
func droppedLineages(input, plotted []string) []string {
	kept := make(map[string]struct{}, len(plotted))
	for _, l := range plotted {
		kept[l] = struct{}{}
	}
	var out []string
	for _, l := range input {
		if _, ok := kept[l]; !ok {
			out = append(out, l)
		}
	}
	return out
}

func writePreview(stdout io.Writer, format string, b *barcode.BarcodeMatrix, header bool) error {
	outw := bufio.NewWriter(stdout)
	if err := writers.WritePreview(format, outw, b, header); err != nil {
		return writers.IgnoreBrokenPipe(err)
	}
	return writers.IgnoreBrokenPipe(outw.Flush())
}

// IsUsageError reports whether err stems from bad input data or options
// rather than from rendering or I/O.
func IsUsageError(err error) bool {
	var (
		pe  *barcode.ParseError
		lfe *barcode.LabelFormatError
		dce *barcode.DataConsistencyError
		pal *render.PaletteError
	)
	switch {
	case errors.As(err, &pe), errors.As(err, &lfe), errors.As(err, &dce), errors.As(err, &pal):
		return true
	case errors.Is(err, barcode.ErrEmptyData), errors.Is(err, config.ErrInvalidPalette):
		return true
	}
	return false
}

// ExitCode maps a CreateBarcodePlot error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ExitCanceled
	case IsUsageError(err):
		return ExitUsage
	default:
		return ExitFailure
	}
}
