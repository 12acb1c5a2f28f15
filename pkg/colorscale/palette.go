// 19 Oct 2026

package colorscale

import (
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Palette is a list of colours spread evenly over [0, 1].
type Palette []drawing.Color

func rgb(r, g, b uint8) drawing.Color { return drawing.Color{R: r, G: g, B: b, A: 255} }

// Blues and Reds are the nine class sequential ColorBrewer schemes,
// lightest first.
var (
	Blues = Palette{
		rgb(247, 251, 255), rgb(222, 235, 247), rgb(198, 219, 239),
		rgb(158, 202, 225), rgb(107, 174, 214), rgb(66, 146, 198),
		rgb(33, 113, 181), rgb(8, 81, 156), rgb(8, 48, 107),
	}
	Reds = Palette{
		rgb(255, 245, 240), rgb(254, 224, 210), rgb(252, 187, 161),
		rgb(252, 146, 114), rgb(251, 106, 74), rgb(239, 59, 44),
		rgb(203, 24, 29), rgb(165, 15, 21), rgb(103, 0, 13),
	}
)

// lerp mixes a and b, f = 0 gives a.
func lerp(a, b drawing.Color, f float64) drawing.Color {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*f))
	}
	return drawing.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// At interpolates the palette at t, which is clamped to [0, 1].
func (p Palette) At(t float64) drawing.Color {
	n := len(p) - 1
	switch {
	case n < 0:
		return drawing.Color{}
	case n == 0 || t <= 0:
		return p[0]
	case t >= 1:
		return p[n]
	}
	x := t * float64(n)
	i := int(x)
	return lerp(p[i], p[i+1], x-float64(i))
}

// Sample gives the colour at each of ts.
func (p Palette) Sample(ts []float64) []drawing.Color {
	c := make([]drawing.Color, len(ts))
	for i, t := range ts {
		c[i] = p.At(t)
	}
	return c
}

// Linspace returns n evenly spaced values from a to b, both included.
// It is happy with b < a.
func Linspace(a, b float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{a}
	}
	x := make([]float64, n)
	for i := range x {
		x[i] = a + (b-a)*float64(i)/float64(n-1)
	}
	x[n-1] = b
	return x
}

// RGB is the css form of a colour, "rgb(8,48,107)".
func RGB(c drawing.Color) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Luminance is the relative brightness in [0, 1], used to pick a
// readable text colour on top of c.
func Luminance(c drawing.Color) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}
