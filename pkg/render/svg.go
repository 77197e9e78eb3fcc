package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/FraserParlane/road-names/pkg/roadview"

	svg "github.com/ajstarks/svgo/float"
)

// defaultPalette cycles per view, so each view reads as one road class on
// the finished plot.
var defaultPalette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

type Options struct {
	Background  string
	StrokeWidth float64
	Palette     []string
}

func DefaultOptions() Options {
	return Options{
		Background:  "#ffffff",
		StrokeWidth: 1.5,
		Palette:     defaultPalette,
	}
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
		return len(p), nil
	}
	return n, nil
}

// SVG draws every view's polylines onto one canvas, one stroke color per
// view. Out-of-canvas points are written as-is, the viewBox crops them.
func SVG(w io.Writer, results []roadview.ViewResult, canvas roadview.Canvas, opts Options) error {
	if len(opts.Palette) == 0 {
		opts.Palette = defaultPalette
	}

	ew := &errWriter{w: w}
	c := svg.New(ew)

	width := float64(canvas.Width)
	height := float64(canvas.Height)

	c.Start(width, height)
	c.Rect(0, 0, width, height, fmt.Sprintf("fill:%s", opts.Background))

	for i, result := range results {
		color := opts.Palette[i%len(opts.Palette)]
		style := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%.2f;stroke-linecap:round",
			color, opts.StrokeWidth)

		c.Group(fmt.Sprintf(`id="%s"`, escapeAttr(result.Name)))
		for _, line := range result.Lines {
			xs := make([]float64, len(line.Points))
			ys := make([]float64, len(line.Points))
			for j, p := range line.Points {
				xs[j] = p.X
				ys[j] = p.Y
			}
			c.Polyline(xs, ys, style)
		}
		c.Gend()
	}

	c.End()
	return ew.err
}

// escapeAttr makes a view name safe inside an XML attribute. Names can
// carry request-supplied tag values, so they must never break out of the
// quoted id.
func escapeAttr(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
