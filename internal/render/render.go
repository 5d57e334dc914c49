// internal/render/render.go
package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/andersen-lab/BarcodeForge/internal/barcode"
	"github.com/andersen-lab/BarcodeForge/internal/writers"
)

// Axis titles.
const (
	XLabel = "Genome Position"
	YLabel = "Lineage"
)

// DefaultDPI is the raster resolution used when Options.DPI is zero.
const DefaultDPI = 150

// Options control colours and resolution. Zero values fall back to defaults.
type Options struct {
	Palette       ColorPalette
	LineageColors []color.Color
	DPI           int
}

// DefaultOptions returns the stock palettes at DefaultDPI.
func DefaultOptions() Options {
	return Options{
		Palette:       DefaultPalette(),
		LineageColors: DefaultLineageColors(),
		DPI:           DefaultDPI,
	}
}

func (o Options) withDefaults() Options {
	if o.Palette == nil {
		o.Palette = DefaultPalette()
	}
	if len(o.LineageColors) == 0 {
		o.LineageColors = DefaultLineageColors()
	}
	if o.DPI <= 0 {
		o.DPI = DefaultDPI
	}
	return o
}

// Render draws b as a barcode heatmap and writes it to path; the format comes
// from the extension. Nothing appears at path unless the whole image was
// produced and written.
func Render(b *barcode.BarcodeMatrix, path string, o Options) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	if b == nil || len(b.Positions) == 0 || len(b.Lineages) == 0 {
		return barcode.ErrEmptyData
	}
	o = o.withDefaults()

	codes, colors, err := CodeTable(b.Symbols(), o.Palette)
	if err != nil {
		return err
	}

	hm := newHeatmap(b, codes, colors, o.LineageColors)
	p := newPlot(hm)

	w, h := FigureSize(len(b.Positions), len(b.Lineages), b.MaxLineageLen(), maxDigits(b.Positions))
	cw := canvasFormats[format](w, h, o.DPI)
	if err := drawPlot(p, hm, draw.New(cw)); err != nil {
		return err
	}
	if err := writers.WriteFileAtomic(path, cw); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func newPlot(hm *heatmap) *plot.Plot {
	p := plot.New()
	p.BackgroundColor = color.White
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel

	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Padding = 0
		ax.LineStyle.Width = 0
		ax.Tick.Length = 0
		ax.Tick.LineStyle.Width = 0
	}
	p.X.Tick.Marker = hm.xTicks()
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	p.Y.Tick.Marker = hm.yTicks()

	hm.annot = p.X.Tick.Label
	hm.annot.Rotation = 0
	hm.annot.XAlign = draw.XCenter
	hm.annot.YAlign = draw.YCenter
	hm.annot.Font.Size = vg.Points(8)

	p.Add(hm)
	return p
}

// drawPlot draws everything onto dc. gonum panics on degenerate geometry; that
// is turned into an error so no file gets written.
func drawPlot(p *plot.Plot, hm *heatmap, dc draw.Canvas) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New(fmt.Sprint("draw barcode plot: ", r))
		}
	}()
	def := p.Y.Tick.Label.Color
	if def == nil {
		def = color.Black
	}
	p.Y.Tick.Label.Color = color.Transparent
	p.Draw(dc)
	hm.drawRowLabels(p, dc, def)
	return nil
}
