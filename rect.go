package ggfx

import (
	"image"
	"math"
)

// Rect is an axis-aligned rectangle with float coordinates.
// Integer rectangles use image.Rectangle.
type Rect struct {
	X, Y, W, H float64
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromInt converts an integer rectangle.
func RectFromInt(r image.Rectangle) Rect {
	return Rect{
		X: float64(r.Min.X),
		Y: float64(r.Min.Y),
		W: float64(r.Dx()),
		H: float64(r.Dy()),
	}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Area returns W*H, or 0 for an empty rectangle.
func (r Rect) Area() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.W * r.H
}

// Translated returns the rectangle moved by (dx, dy).
func (r Rect) Translated(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Reduced shrinks the rectangle by d on every side.
// The size never goes below zero.
func (r Rect) Reduced(d float64) Rect {
	return Rect{
		X: r.X + d,
		Y: r.Y + d,
		W: math.Max(0, r.W-2*d),
		H: math.Max(0, r.H-2*d),
	}
}

// Expanded grows the rectangle by d on every side.
func (r Rect) Expanded(d float64) Rect {
	return r.Reduced(-d)
}

// Intersect returns the overlap of two rectangles, or an empty rectangle.
func (r Rect) Intersect(o Rect) Rect {
	x0 := math.Max(r.X, o.X)
	y0 := math.Max(r.Y, o.Y)
	x1 := math.Min(r.Right(), o.Right())
	y1 := math.Min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// RemoveFromTop cuts a strip of the given height off the top of r and
// returns it. The amount is limited to the height of r.
func (r *Rect) RemoveFromTop(amount float64) Rect {
	amount = math.Max(0, math.Min(amount, r.H))
	removed := Rect{X: r.X, Y: r.Y, W: r.W, H: amount}
	r.Y += amount
	r.H -= amount
	return removed
}

// RemoveFromBottom cuts a strip of the given height off the bottom of r.
func (r *Rect) RemoveFromBottom(amount float64) Rect {
	amount = math.Max(0, math.Min(amount, r.H))
	removed := Rect{X: r.X, Y: r.Bottom() - amount, W: r.W, H: amount}
	r.H -= amount
	return removed
}

// RemoveFromLeft cuts a strip of the given width off the left of r.
func (r *Rect) RemoveFromLeft(amount float64) Rect {
	amount = math.Max(0, math.Min(amount, r.W))
	removed := Rect{X: r.X, Y: r.Y, W: amount, H: r.H}
	r.X += amount
	r.W -= amount
	return removed
}

// RemoveFromRight cuts a strip of the given width off the right of r.
func (r *Rect) RemoveFromRight(amount float64) Rect {
	amount = math.Max(0, math.Min(amount, r.W))
	removed := Rect{X: r.Right() - amount, Y: r.Y, W: amount, H: r.H}
	r.W -= amount
	return removed
}

// RelativePoint returns the point at the given fraction of the width and
// height, measured from the top-left corner.
func (r Rect) RelativePoint(rx, ry float64) Point {
	return Point{X: r.X + r.W*rx, Y: r.Y + r.H*ry}
}

// SmallestIntegerContainer returns the smallest integer rectangle that
// contains r.
func (r Rect) SmallestIntegerContainer() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)),
		int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())),
		int(math.Ceil(r.Bottom())),
	)
}
