package ggfx

import (
	"math"
	"testing"
)

// tolerance for floating point comparisons
const gradientEpsilon = 0.01

func colorsEqual(c1, c2 RGBA, epsilon float64) bool {
	return math.Abs(c1.R-c2.R) < epsilon &&
		math.Abs(c1.G-c2.G) < epsilon &&
		math.Abs(c1.B-c2.B) < epsilon &&
		math.Abs(c1.A-c2.A) < epsilon
}

func TestGradient_AddColorKeepsOrder(t *testing.T) {
	g := NewGradient(Red, Pt(0, 0), Blue, Pt(10, 0), false)

	g.AddColor(0.5, Green)
	g.AddColor(0.25, White)
	g.AddColor(2, Black) // clamped to 1, after the existing end stop
	g.AddColor(0.5, Red) // tie goes after Green

	want := []float64{0, 0.25, 0.5, 0.5, 1, 1}
	stops := g.Stops()
	if len(stops) != len(want) {
		t.Fatalf("len(Stops()) = %d, want %d", len(stops), len(want))
	}
	for i, s := range stops {
		if s.Offset != want[i] {
			t.Errorf("stop %d offset = %v, want %v", i, s.Offset, want[i])
		}
	}
	if stops[2].Color != Green || stops[3].Color != Red {
		t.Errorf("tied stops out of insertion order: %+v, %+v", stops[2].Color, stops[3].Color)
	}
	if stops[5].Color != Black {
		t.Errorf("clamped stop = %+v, want Black last", stops[5].Color)
	}
}

func TestGradient_Linear(t *testing.T) {
	g := NewGradient(Black, Pt(0, 0), White, Pt(10, 0), false)

	tests := []struct {
		name string
		x, y float64
		want RGBA
	}{
		{"start", 0, 0, Black},
		{"middle", 5, 3, RGB(0.5, 0.5, 0.5)},
		{"end", 10, -4, White},
		{"before start pads", -5, 0, Black},
		{"after end pads", 50, 0, White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.ColorAt(tt.x, tt.y); !colorsEqual(got, tt.want, gradientEpsilon) {
				t.Errorf("ColorAt(%v, %v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestGradient_Radial(t *testing.T) {
	g := NewGradient(Black, Pt(5, 5), Transparent, Pt(15, 5), true)

	if got := g.ColorAt(5, 5); !colorsEqual(got, Black, gradientEpsilon) {
		t.Errorf("centre = %+v, want Black", got)
	}
	// Distance 5 in any direction is half way.
	for _, p := range []Point{{10, 5}, {5, 0}, {5 + 3, 5 + 4}} {
		got := g.ColorAt(p.X, p.Y)
		if math.Abs(got.A-0.5) > gradientEpsilon {
			t.Errorf("ColorAt(%v).A = %v, want 0.5", p, got.A)
		}
	}
	if got := g.ColorAt(30, 30); got.A != 0 {
		t.Errorf("outside radius alpha = %v, want 0", got.A)
	}
}

func TestGradient_Degenerate(t *testing.T) {
	for _, radial := range []bool{false, true} {
		g := NewGradient(Red, Pt(3, 3), Blue, Pt(3, 3), radial)
		if got := g.ColorAt(100, 100); got != Red {
			t.Errorf("radial=%v: degenerate ColorAt = %+v, want first stop", radial, got)
		}
	}
}

func TestGradient_CloneIsIndependent(t *testing.T) {
	g := NewGradient(Red, Pt(0, 0), Blue, Pt(1, 0), false)
	c := g.Clone()
	c.AddColor(0.5, Green)
	c.Point2 = Pt(5, 5)

	if g.NumColors() != 2 {
		t.Errorf("original has %d stops after modifying clone, want 2", g.NumColors())
	}
	if g.Point2 != Pt(1, 0) {
		t.Errorf("original Point2 changed to %v", g.Point2)
	}
}
