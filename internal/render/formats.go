// internal/render/formats.go
package render

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// canvasFactory builds a fresh canvas of size w×h. dpi only applies to raster
// formats.
type canvasFactory func(w, h vg.Length, dpi int) vg.CanvasWriterTo

func raster(w, h vg.Length, dpi int) *vgimg.Canvas {
	return vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
}

// Image formats, keyed by lower-case file extension without the dot.
var canvasFormats = map[string]canvasFactory{
	"png":  func(w, h vg.Length, dpi int) vg.CanvasWriterTo { return vgimg.PngCanvas{Canvas: raster(w, h, dpi)} },
	"jpg":  func(w, h vg.Length, dpi int) vg.CanvasWriterTo { return vgimg.JpegCanvas{Canvas: raster(w, h, dpi)} },
	"jpeg": func(w, h vg.Length, dpi int) vg.CanvasWriterTo { return vgimg.JpegCanvas{Canvas: raster(w, h, dpi)} },
	"tif":  func(w, h vg.Length, dpi int) vg.CanvasWriterTo { return vgimg.TiffCanvas{Canvas: raster(w, h, dpi)} },
	"tiff": func(w, h vg.Length, dpi int) vg.CanvasWriterTo { return vgimg.TiffCanvas{Canvas: raster(w, h, dpi)} },
	"svg":  func(w, h vg.Length, _ int) vg.CanvasWriterTo { return vgsvg.New(w, h) },
	"pdf":  func(w, h vg.Length, _ int) vg.CanvasWriterTo { return pinned{vgpdf.New(w, h), pdfDates, []byte("$1(D:19700101000000)")} },
	"eps":  func(w, h vg.Length, _ int) vg.CanvasWriterTo { return pinned{vgeps.New(w, h), epsDate, nil} },
}

// Wall-clock stamps the vector backends write. PDF dates are replaced with a
// value of the same length so the xref offsets stay valid.
var (
	epsDate  = regexp.MustCompile(`(?m)^%%CreationDate:[^\n]*\n`)
	pdfDates = regexp.MustCompile(`(/(?:CreationDate|ModDate) )\(D:\d{14}\)`)
)

// pinned rewrites the timestamp matched by re so identical plots give
// identical files.
type pinned struct {
	vg.CanvasWriterTo
	re   *regexp.Regexp
	repl []byte
}

func (c pinned) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if _, err := c.CanvasWriterTo.WriteTo(&buf); err != nil {
		return 0, err
	}
	n, err := w.Write(c.re.ReplaceAll(buf.Bytes(), c.repl))
	return int64(n), err
}

// FormatFor returns the image format implied by path's extension.
func FormatFor(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "", fmt.Errorf("output %q has no extension (want one of %s)", path, strings.Join(SupportedFormats(), ", "))
	}
	if _, ok := canvasFormats[ext]; !ok {
		return "", fmt.Errorf("unsupported image format %q (want one of %s)", ext, strings.Join(SupportedFormats(), ", "))
	}
	return ext, nil
}

// SupportedFormats lists the accepted output extensions, sorted.
func SupportedFormats() []string {
	out := make([]string, 0, len(canvasFormats))
	for k := range canvasFormats {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
