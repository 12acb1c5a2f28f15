// 19 Oct 2026
// A still picture of the heatmap, for putting in a document.
// go-chart gives us a raster renderer and freetype reads the font.

package heatmap

import (
	"io"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/andrew-torda/mutheat/pkg/colorscale"
	"github.com/andrew-torda/mutheat/pkg/scoremat"
)

const (
	fontSize      = 9.
	titleFontSize = 13.
)

var pngFont *truetype.Font

// loadFont parses the Go regular font once.
func loadFont() (*truetype.Font, error) {
	if pngFont != nil {
		return pngFont, nil
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parsing font")
	}
	pngFont = f
	return f, nil
}

// fillRect paints a rectangle with corners x0, y0 and x1, y1.
func fillRect(r chart.Renderer, x0, y0, x1, y1 int, c drawing.Color) {
	r.SetFillColor(c)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.Close()
	r.Fill()
}

// centreText puts s with its middle at x, y.
func centreText(r chart.Renderer, s string, x, y int) {
	b := r.MeasureText(s)
	r.Text(s, x-b.Width()/2, y+b.Height()/2)
}

// rightText puts s so that it ends at x, middle at y.
func rightText(r chart.Renderer, s string, x, y int) {
	b := r.MeasureText(s)
	r.Text(s, x-b.Width(), y+b.Height()/2)
}

// WritePNG draws the heatmap and writes it to w as a png.
func WritePNG(w io.Writer, m *scoremat.Matrix, s *colorscale.Scale, opts *Options) error {
	opts = opts.orDefault()
	lo := newLayout(m)
	r, err := chart.PNG(lo.width, lo.height)
	if err != nil {
		return errors.Wrap(err, "png renderer")
	}
	font, err := loadFont()
	if err != nil {
		return err
	}
	r.SetFont(font)
	fillRect(r, 0, 0, lo.width, lo.height, white)

	r.SetFontSize(fontSize)
	for i := range m.Rows {
		for j := range m.Cols {
			v, ok := m.At(i, j)
			if !ok {
				continue
			}
			x, y := lo.cellXY(i, j)
			c := s.ColorAt(float64(v))
			fillRect(r, x, y, x+cellW, y+cellH, c)
			r.SetFontColor(ink(c))
			centreText(r, scoremat.Label(v), x+cellW/2, y+cellH/2)
		}
	}

	r.SetFontColor(grey)
	for j, c := range m.Cols {
		x, _ := lo.cellXY(0, j)
		centreText(r, c, x+cellW/2, top+lo.gridH+14)
	}
	for i, res := range m.Rows {
		_, y := lo.cellXY(i, 0)
		rightText(r, string(res), left-8, y+cellH/2)
	}

	for y := 0; y < lo.gridH; y++ { // colour bar, one line of pixels at a time
		t := 1 - (float64(y)+0.5)/float64(lo.gridH)
		fillRect(r, lo.barX, top+y, lo.barX+barW, top+y+1, s.ColorAt(s.Min+t*(s.Max-s.Min)))
	}
	for _, t := range lo.barTicks(s) {
		b := r.MeasureText(t.Text)
		r.Text(t.Text, lo.barX+barW+6, t.Y+b.Height()/2)
	}
	r.Text(opts.CTitle, lo.barX, top-10)

	centreText(r, opts.XTitle, left+lo.gridW/2, top+lo.gridH+46)
	b := r.MeasureText(opts.YTitle) // measure before turning, the text runs upwards
	r.SetTextRotation(1.5 * math.Pi)
	r.Text(opts.YTitle, 20+b.Height()/2, top+lo.gridH/2+b.Width()/2)
	r.ClearTextRotation()

	r.SetFontSize(titleFontSize)
	r.SetFontColor(black)
	r.Text(opts.Title, left, 30)

	return errors.Wrap(r.Save(w), "writing png")
}
