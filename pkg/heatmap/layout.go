// 19 Oct 2026

// Package heatmap draws a score matrix as a grid of coloured cells,
// each labelled with its value, next to a colour bar. The same layout
// goes into an html page with an inline svg and into a png.
package heatmap

import (
	"strconv"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/andrew-torda/mutheat/pkg/colorscale"
	"github.com/andrew-torda/mutheat/pkg/scoremat"
)

// Options are the words that go on the picture.
type Options struct {
	Title  string // over the whole plot
	XTitle string // under the position labels
	YTitle string // beside the mutant labels
	CTitle string // over the colour bar
}

// DefaultOptions
func DefaultOptions() *Options {
	return &Options{
		Title:  "Protein Mutation Energy Changes",
		XTitle: "Wildtype Amino Acid",
		YTitle: "Mutated Amino Acid",
		CTitle: "Energy Change",
	}
}

// fill in anything the caller left blank
func (opts *Options) orDefault() *Options {
	d := DefaultOptions()
	if opts == nil {
		return d
	}
	o := *opts
	if o.Title == "" {
		o.Title = d.Title
	}
	if o.XTitle == "" {
		o.XTitle = d.XTitle
	}
	if o.YTitle == "" {
		o.YTitle = d.YTitle
	}
	if o.CTitle == "" {
		o.CTitle = d.CTitle
	}
	return &o
}

// Sizes in pixels.
const (
	cellW   = 46
	cellH   = 26
	left    = 80 // room for the y title and mutant labels
	top     = 60 // room for the title
	bottom  = 70 // x labels and x title
	barGap  = 30
	barW    = 18
	barRoom = 90 // colour bar tick labels and title
	nCTick  = 5
)

var (
	white = drawing.Color{R: 255, G: 255, B: 255, A: 255}
	black = drawing.Color{R: 0, G: 0, B: 0, A: 255}
	grey  = drawing.Color{R: 68, G: 68, B: 68, A: 255}
)

// layout is where everything goes.
type layout struct {
	nrow, ncol    int
	gridW, gridH  int
	barX          int
	width, height int
}

func newLayout(m *scoremat.Matrix) layout {
	var lo layout
	lo.nrow, lo.ncol = m.Size()
	lo.gridW = lo.ncol * cellW
	lo.gridH = lo.nrow * cellH
	lo.barX = left + lo.gridW + barGap
	lo.width = lo.barX + barW + barRoom
	lo.height = top + lo.gridH + bottom
	return lo
}

// cellXY is the top left corner of cell i, j.
func (lo layout) cellXY(i, j int) (x, y int) { return left + j*cellW, top + i*cellH }

// cTick is a colour bar tick. Y is measured down from the top.
type cTick struct {
	Y    int
	Text string
}

// barTicks puts nCTick labels on the colour bar, from max at the top
// to min at the bottom.
func (lo layout) barTicks(s *colorscale.Scale) []cTick {
	vals := colorscale.Linspace(s.Max, s.Min, nCTick)
	ticks := make([]cTick, len(vals))
	for i, v := range vals {
		ticks[i] = cTick{
			Y:    top + int(float64(lo.gridH)*(1-s.Norm(v))+0.5),
			Text: strconv.FormatFloat(scoremat.Round(v, 2), 'f', -1, 64),
		}
	}
	return ticks
}

// ink picks black or white text, whichever shows up on c.
func ink(c drawing.Color) drawing.Color {
	if colorscale.Luminance(c) < 0.5 {
		return white
	}
	return black
}
