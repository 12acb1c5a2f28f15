// 19 Oct 2026

// Package colorscale builds a diverging colour scale anchored at zero.
// Negative values get blues, positive values get reds, and the depth
// of colour follows the size of the value on either side. The two
// halves meet at the place zero has between the smallest and largest
// values, so the split is generally not in the middle.
package colorscale

import (
	"math"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// DefaultNStop is how many colours we take from each palette.
const DefaultNStop = 5

// Where we start in the red palette. Starting at 0 would make the
// smallest positive values as white as zero.
const redStart = 0.01

var (
	ErrFlatRange = errors.New("all values are the same, cannot spread a colour scale")
	ErrNStop     = errors.New("need at least two colour stops")
)

// Stop is a colour at a position in [0, 1].
type Stop struct {
	Pos   float64
	Color drawing.Color
}

// Scale maps values in [Min, Max] to colours. Stops runs from the
// deepest blue at 0, up to the lightest blue at ZeroPos, then from
// almost the lightest red at ZeroPos to the deepest red at 1.
type Scale struct {
	Min, Max float64
	ZeroPos  float64
	Stops    []Stop
	nNeg     int // the first nNeg stops are the blue ones
}

// ZeroPos is where zero sits between min and max. If all values are on
// one side of zero, the answer is clamped to 0 or 1.
func ZeroPos(min, max float64) (float64, error) {
	if !(max > min) {
		return 0, errors.Wrapf(ErrFlatRange, "min %g max %g", min, max)
	}
	z := (0 - min) / (max - min)
	return math.Min(1, math.Max(0, z)), nil
}

// Build makes the scale for data running from min to max with nstop
// colours on each side of zero.
func Build(min, max float64, nstop int) (*Scale, error) {
	if nstop < 2 {
		return nil, errors.Wrapf(ErrNStop, "got %d", nstop)
	}
	zeroPos, err := ZeroPos(min, max)
	if err != nil {
		return nil, err
	}
	s := &Scale{Min: min, Max: max, ZeroPos: zeroPos, nNeg: nstop}
	blues := Blues.Sample(Linspace(1, 0, nstop)) // deepest first
	reds := Reds.Sample(Linspace(redStart, 1, nstop))
	last := float64(nstop - 1)
	for i, c := range blues {
		s.Stops = append(s.Stops, Stop{Pos: float64(i) / last * zeroPos, Color: c})
	}
	for i, c := range reds {
		s.Stops = append(s.Stops, Stop{Pos: zeroPos + float64(i)/last*(1-zeroPos), Color: c})
	}
	return s, nil
}

// Negative are the stops used below zero.
func (s *Scale) Negative() []Stop { return s.Stops[:s.nNeg] }

// Positive are the stops used at or above zero.
func (s *Scale) Positive() []Stop { return s.Stops[s.nNeg:] }

// Norm maps v onto [0, 1].
func (s *Scale) Norm(v float64) float64 {
	t := (v - s.Min) / (s.Max - s.Min)
	return math.Min(1, math.Max(0, t))
}

// ColorAt gives the colour for a data value.
func (s *Scale) ColorAt(v float64) drawing.Color {
	if v < 0 {
		return interp(s.Negative(), s.Norm(v))
	}
	return interp(s.Positive(), s.Norm(v))
}

// interp walks along stops, which must be in order, and mixes the
// pair on either side of t.
func interp(stops []Stop, t float64) drawing.Color {
	if t <= stops[0].Pos {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		if t > stops[i].Pos {
			continue
		}
		lo, hi := stops[i-1], stops[i]
		span := hi.Pos - lo.Pos
		if span <= 0 {
			return hi.Color
		}
		return lerp(lo.Color, hi.Color, (t-lo.Pos)/span)
	}
	return stops[len(stops)-1].Color
}
