package colorpick

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidGradient is returned by LinearGradient.Validate.
var ErrInvalidGradient = errors.New("colorpick: invalid gradient")

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// PrimaryColorStops returns the seven-stop hue rainbow used by the spectrum
// and the slider track: red, yellow, green, cyan, blue, magenta, red.
func PrimaryColorStops() []ColorStop {
	return []ColorStop{
		{Offset: 0, Color: Red},
		{Offset: 0.15, Color: Yellow},
		{Offset: 0.3, Color: Green},
		{Offset: 0.45, Color: Cyan},
		{Offset: 0.6, Color: Blue},
		{Offset: 0.75, Color: Magenta},
		{Offset: 1, Color: Red},
	}
}

// BlackAndWhiteStops returns the vertical overlay of the spectrum: opaque
// white fading out over the upper half and black fading in over the lower
// half. Both halves meet transparent at offset 0.5.
func BlackAndWhiteStops() []ColorStop {
	return []ColorStop{
		{Offset: 0, Color: RGBA2(1, 1, 1, 1)},
		{Offset: 0.5, Color: RGBA2(1, 1, 1, 0)},
		{Offset: 0.5, Color: RGBA2(0, 0, 0, 0)},
		{Offset: 1, Color: RGBA2(0, 0, 0, 1)},
	}
}

// LinearGradient is a color transition along the line from (X0, Y0) to
// (X1, Y1). Coordinates are pixel coordinates of the surface it is drawn
// on: the pixel at (X0, Y0) reads offset 0 and the pixel at (X1, Y1) reads
// offset 1. Beyond the ends the edge colors are extended.
//
// Example:
//
//	g := colorpick.NewLinearGradient(0, 0, 249, 0).
//	    AddColorStop(0, colorpick.White).
//	    AddColorStop(1, colorpick.RGBA2(1, 1, 1, 0))
type LinearGradient struct {
	X0, Y0 float64
	X1, Y1 float64
	Stops  []ColorStop
}

// NewLinearGradient creates a new linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// AddColorStop adds a color stop at the specified offset.
// Stops must be added in non-decreasing offset order.
// Returns the gradient for method chaining.
func (g *LinearGradient) AddColorStop(offset float64, c RGBA) *LinearGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// AddColorStops appends all stops in order.
func (g *LinearGradient) AddColorStops(stops []ColorStop) *LinearGradient {
	g.Stops = append(g.Stops, stops...)
	return g
}

// Validate reports whether the stops are usable: at least one stop, every
// offset within [0, 1] and offsets non-decreasing.
func (g *LinearGradient) Validate() error {
	if len(g.Stops) == 0 {
		return fmt.Errorf("%w: no color stops", ErrInvalidGradient)
	}
	ordered := sort.SliceIsSorted(g.Stops, func(i, j int) bool {
		return g.Stops[i].Offset < g.Stops[j].Offset
	})
	if !ordered {
		return fmt.Errorf("%w: offsets must be non-decreasing", ErrInvalidGradient)
	}
	for _, s := range g.Stops {
		if s.Offset < 0 || s.Offset > 1 {
			return fmt.Errorf("%w: offset %v outside [0, 1]", ErrInvalidGradient, s.Offset)
		}
	}
	return nil
}

// Offset returns the gradient parameter t for the point (x, y), clamped
// to [0, 1].
func (g *LinearGradient) Offset(x, y float64) float64 {
	dx := g.X1 - g.X0
	dy := g.Y1 - g.Y0
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return 0
	}
	// t = dot(P - Start, End - Start) / |End - Start|^2
	t := ((x-g.X0)*dx + (y-g.Y0)*dy) / lengthSq
	return clamp01(t)
}

// ColorAt returns the color at the point (x, y).
func (g *LinearGradient) ColorAt(x, y float64) RGBA {
	return colorAtOffset(g.Stops, g.Offset(x, y))
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// colorAtOffset returns the interpolated color at offset t. Stops are used
// in the order given. When several stops share an offset, t values before
// it interpolate toward the first of them and t values at or after it start
// from the last of them.
func colorAtOffset(stops []ColorStop, t float64) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	// First stop strictly after t.
	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset > t
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	s1 := stops[idx-1]
	s2 := stops[idx]
	if s2.Offset == s1.Offset {
		return s1.Color
	}
	localT := (t - s1.Offset) / (s2.Offset - s1.Offset)
	return s1.Color.Lerp(s2.Color, localT)
}
