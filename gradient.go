package ggfx

import (
	"math"
	"sort"
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// Gradient is a two-point color gradient, either linear or radial.
//
// A linear gradient varies along the line from Point1 to Point2.
// A radial gradient is centred on Point1 and reaches its last stop at the
// distance from Point1 to Point2. Outside that range the edge colors are
// extended (pad mode).
//
// Example:
//
//	g := ggfx.NewGradient(ggfx.Black, ggfx.Pt(0, 0), ggfx.Transparent, ggfx.Pt(0, 20), false)
//	g.AddColor(0.5, ggfx.Black.WithAlpha(0.25))
//	gc.SetGradientFill(g)
type Gradient struct {
	Point1   Point
	Point2   Point
	IsRadial bool

	stops []ColorStop
}

// NewGradient creates a gradient from c1 at p1 to c2 at p2.
func NewGradient(c1 RGBA, p1 Point, c2 RGBA, p2 Point, radial bool) *Gradient {
	return &Gradient{
		Point1:   p1,
		Point2:   p2,
		IsRadial: radial,
		stops: []ColorStop{
			{Offset: 0, Color: c1},
			{Offset: 1, Color: c2},
		},
	}
}

// AddColor inserts a color stop. The offset is clamped to [0, 1].
// A stop at the same offset as an existing one is placed after it.
// Returns the index of the new stop.
func (g *Gradient) AddColor(offset float64, c RGBA) int {
	offset = clamp01(offset)
	idx := sort.Search(len(g.stops), func(i int) bool {
		return g.stops[i].Offset > offset
	})
	g.stops = append(g.stops, ColorStop{})
	copy(g.stops[idx+1:], g.stops[idx:])
	g.stops[idx] = ColorStop{Offset: offset, Color: c}
	return idx
}

// Stops returns the color stops in ascending offset order.
func (g *Gradient) Stops() []ColorStop {
	return g.stops
}

// NumColors returns the number of color stops.
func (g *Gradient) NumColors() int {
	return len(g.stops)
}

// ColorAt returns the color at the given point.
func (g *Gradient) ColorAt(x, y float64) RGBA {
	if len(g.stops) == 0 {
		return Transparent
	}

	dx := g.Point2.X - g.Point1.X
	dy := g.Point2.Y - g.Point1.Y

	var t float64
	if g.IsRadial {
		r := math.Hypot(dx, dy)
		if r == 0 {
			return g.stops[0].Color
		}
		t = math.Hypot(x-g.Point1.X, y-g.Point1.Y) / r
	} else {
		lengthSq := dx*dx + dy*dy
		if lengthSq == 0 {
			return g.stops[0].Color
		}
		// t = dot(P - P1, P2 - P1) / |P2 - P1|^2
		t = ((x-g.Point1.X)*dx + (y-g.Point1.Y)*dy) / lengthSq
	}

	return g.ColorAtPosition(t)
}

// ColorAtPosition returns the interpolated color at offset t.
// Offsets outside [0, 1] take the nearest edge color.
func (g *Gradient) ColorAtPosition(t float64) RGBA {
	if len(g.stops) == 0 {
		return Transparent
	}
	if len(g.stops) == 1 {
		return g.stops[0].Color
	}

	t = clamp01(t)

	idx := sort.Search(len(g.stops), func(i int) bool {
		return g.stops[i].Offset >= t
	})
	if idx == 0 {
		return g.stops[0].Color
	}
	if idx >= len(g.stops) {
		return g.stops[len(g.stops)-1].Color
	}

	s1 := g.stops[idx-1]
	s2 := g.stops[idx]

	// Coincident stops
	if s2.Offset == s1.Offset {
		return s1.Color
	}

	return s1.Color.Lerp(s2.Color, (t-s1.Offset)/(s2.Offset-s1.Offset))
}

// Clone returns an independent copy of the gradient.
func (g *Gradient) Clone() *Gradient {
	c := *g
	c.stops = make([]ColorStop, len(g.stops))
	copy(c.stops, g.stops)
	return &c
}
