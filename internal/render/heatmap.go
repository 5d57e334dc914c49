// internal/render/heatmap.go
package render

import (
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/andersen-lab/BarcodeForge/internal/barcode"
)

// heatmap is a plot.Plotter drawing the barcode grid. Display row 0 is the
// top row; in data space it spans y ∈ [n-1, n].
type heatmap struct {
	rows      []string      // lineage per display row
	cols      []int         // position per column
	codes     [][]int       // [row][col] → colour index
	labels    [][]string    // [row][col] annotation, "" for Unchanged
	colors    []color.Color // code → fill
	rowColors []color.Color // nil = no separators
	reference bool          // display row 0 is the Reference row

	annot   text.Style
	grid    draw.LineStyle
	sep     vg.Length
	isolate draw.LineStyle
}

var (
	_ plot.Plotter    = (*heatmap)(nil)
	_ plot.DataRanger = (*heatmap)(nil)
)

func newHeatmap(b *barcode.BarcodeMatrix, codes map[string]int, colors []color.Color, cycle []color.Color) *heatmap {
	order := OrderRows(b.Lineages)
	h := &heatmap{
		rows:   make([]string, len(order)),
		cols:   append([]int(nil), b.Positions...),
		codes:  make([][]int, len(order)),
		labels: make([][]string, len(order)),
		colors: colors,
		grid:   draw.LineStyle{Color: color.White, Width: vg.Points(2)},
		sep:    vg.Points(2),
		isolate: draw.LineStyle{
			Color: color.White,
			Width: vg.Points(4),
		},
	}
	for i, j := range order {
		h.rows[i] = b.Lineages[j]
		h.codes[i] = make([]int, len(b.Positions))
		h.labels[i] = make([]string, len(b.Positions))
		for p := range b.Positions {
			sym := b.Cells[p][j]
			h.codes[i][p] = codes[sym]
			if sym != barcode.Unchanged {
				h.labels[i][p] = sym
			}
		}
	}
	h.reference = len(h.rows) > 0 && h.rows[0] == barcode.ReferenceLineage
	h.rowColors = RowColors(h.rows, cycle)
	return h
}

// DataRange implements plot.DataRanger.
func (h *heatmap) DataRange() (xmin, xmax, ymin, ymax float64) {
	return 0, float64(len(h.cols)), 0, float64(len(h.rows))
}

// rowBase is the lower data-space y of display row i.
func (h *heatmap) rowBase(i int) float64 { return float64(len(h.rows) - 1 - i) }

// Plot implements plot.Plotter.
func (h *heatmap) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	nr, nc := len(h.rows), len(h.cols)

	for i := 0; i < nr; i++ {
		y0, y1 := trY(h.rowBase(i)), trY(h.rowBase(i)+1)
		for j := 0; j < nc; j++ {
			x0, x1 := trX(float64(j)), trX(float64(j+1))
			fill := h.colors[h.codes[i][j]]
			c.FillPolygon(fill, []vg.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}})
			if s := h.labels[i][j]; s != "" {
				sty := h.annot
				sty.Color = inkFor(fill)
				c.FillText(sty, vg.Point{X: (x0 + x1) / 2, Y: (y0 + y1) / 2}, s)
			}
		}
	}

	for j := 0; j <= nc; j++ {
		x := trX(float64(j))
		c.StrokeLine2(h.grid, x, trY(0), x, trY(float64(nr)))
	}
	for i := 0; i <= nr; i++ {
		y := trY(float64(i))
		c.StrokeLine2(h.grid, trX(0), y, trX(float64(nc)), y)
	}

	for i, clr := range h.rowColors {
		if clr == nil {
			continue
		}
		sty := draw.LineStyle{Color: clr, Width: h.sep}
		top := h.rowBase(i) + 1
		for j := 0; j < nc; j++ {
			x := trX(float64(j) + separatorOffset)
			c.StrokeLine2(sty, x, trY(top-separatorInset), x, trY(top-1+separatorInset))
		}
	}

	if h.reference && nr > 1 {
		y := trY(h.rowBase(0))
		c.StrokeLine2(h.isolate, trX(0), y, trX(float64(nc)), y)
	}
}

func (h *heatmap) xTicks() plot.ConstantTicks {
	ticks := make([]plot.Tick, len(h.cols))
	for j, p := range h.cols {
		ticks[j] = plot.Tick{Value: float64(j) + 0.5, Label: strconv.Itoa(p)}
	}
	return ticks
}

func (h *heatmap) yTicks() plot.ConstantTicks {
	ticks := make([]plot.Tick, len(h.rows))
	for i, name := range h.rows {
		ticks[i] = plot.Tick{Value: h.rowBase(i) + 0.5, Label: name}
	}
	return ticks
}

// drawRowLabels paints the row tick labels in their row colours. The axis
// itself draws them transparent so it still reserves their width.
func (h *heatmap) drawRowLabels(p *plot.Plot, dc draw.Canvas, def color.Color) {
	da := p.DataCanvas(dc)
	_, trY := p.Transforms(&da)
	sty := p.Y.Tick.Label
	sty.XAlign = draw.XRight
	sty.YAlign = draw.YCenter
	x := da.Min.X - p.Y.Padding - p.Y.Tick.Length - sty.Width(" ")
	for i, name := range h.rows {
		sty.Color = def
		if c := h.rowColors[i]; c != nil {
			sty.Color = c
		}
		da.FillText(sty, vg.Point{X: x, Y: trY(h.rowBase(i) + 0.5)}, name)
	}
}

// inkFor picks black or white annotation text for legibility on fill.
func inkFor(fill color.Color) color.Color {
	if relativeLuminance(fill) < 0.408 {
		return color.White
	}
	return color.Black
}

func relativeLuminance(c color.Color) float64 {
	r, g, b, _ := color.NRGBAModel.Convert(c).RGBA()
	lin := func(v uint32) float64 {
		s := float64(v) / 0xffff
		if s <= 0.03928 {
			return s / 12.92
		}
		return math.Pow((s+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(r) + 0.7152*lin(g) + 0.0722*lin(b)
}
