package ggfx

import (
	"image"
)

// DropShadow describes a soft shadow cast by an image, a path or a
// rectangle.
//
// Radius is the blur strength in pixels and must be positive; a shadow
// with Radius <= 0 draws nothing. Offset moves the shadow relative to the
// shape that casts it.
//
// The draw methods leave the fill and opacity of the Graphics unchanged.
type DropShadow struct {
	Color  RGBA
	Radius int
	Offset image.Point
}

// NewDropShadow creates a shadow description.
func NewDropShadow(c RGBA, radius int, offset image.Point) DropShadow {
	return DropShadow{Color: c, Radius: radius, Offset: offset}
}

// DefaultDropShadow returns a black shadow at 50% alpha with radius 6 and
// no offset.
func DefaultDropShadow() DropShadow {
	return DropShadow{Color: Black.WithAlpha(0.5), Radius: 6}
}

func (s DropShadow) usable(op string) bool {
	if s.Radius <= 0 {
		Logger().Debug("shadow: skipped, radius must be positive", "op", op, "radius", s.Radius)
		return false
	}
	return true
}

// DrawForImage draws the shadow of src's alpha channel, blurred and
// tinted with the shadow color, at Offset.
// An invalid src draws nothing.
func (s DropShadow) DrawForImage(g *Graphics, src *Image) {
	if !s.usable("image") {
		return
	}
	if !src.IsValid() {
		Logger().Debug("shadow: skipped, invalid source image")
		return
	}

	shadow := src.ConvertedToFormat(FormatSingleChannel)
	shadow.DuplicateIfShared()
	blurImage(shadow, s.Radius)

	g.SaveState()
	g.SetColor(s.Color)
	g.DrawImageAt(shadow, s.Offset.X, s.Offset.Y, true)
	g.RestoreState()

	shadow.Release()
}

// DrawForPath draws the shadow of a filled path.
//
// Only the part of the shadow that can reach the clip region is rendered.
// If that area is 2 pixels or less in either direction nothing is drawn.
func (s DropShadow) DrawForPath(g *Graphics, path *Path) {
	if !s.usable("path") || path.IsEmpty() {
		return
	}

	clip := g.ClipBounds()
	if clip.Empty() {
		Logger().Debug("shadow: skipped, clip region is empty")
		return
	}

	grow := s.Radius + 1
	area := path.Bounds().SmallestIntegerContainer().
		Add(s.Offset).
		Inset(-grow).
		Intersect(clip.Inset(-grow))

	if area.Dx() <= 2 || area.Dy() <= 2 {
		Logger().Debug("shadow: skipped, path area too small", "area", area)
		return
	}

	pool := g.ScratchPool()
	mask := pool.Get(FormatSingleChannel, area.Dx(), area.Dy())
	if !mask.IsValid() {
		return
	}
	defer pool.Put(mask)

	mg := NewGraphics(mask, WithScratchPool(pool))
	mg.SetColor(White)
	mg.FillPath(path, Translate(
		float64(s.Offset.X-area.Min.X),
		float64(s.Offset.Y-area.Min.Y)))

	blurImage(mask, s.Radius)

	g.SaveState()
	g.SetColor(s.Color)
	g.DrawImageAt(mask, area.Min.X, area.Min.Y, true)
	g.RestoreState()
}

// DrawForRectangle draws the shadow of a rectangle without rasterizing a
// blur. The edges and corners are gradient fills whose falloff follows
// the square of the distance from the outer edge.
func (s DropShadow) DrawForRectangle(g *Graphics, rect image.Rectangle) {
	if !s.usable("rectangle") {
		return
	}

	grad := s.falloffGradient()
	regions := s.rectangleShadowRegions(rect)

	g.SaveState()
	for _, r := range regions {
		if r.flat {
			g.SetColor(s.Color)
			g.FillRect(r.area)
			continue
		}
		grad.Point1 = r.area.RelativePoint(r.centre.X, r.centre.Y)
		grad.Point2 = r.area.RelativePoint(r.edge.X, r.edge.Y)
		grad.IsRadial = r.corner
		g.SetGradientFill(grad)
		g.FillRect(r.area)
	}
	g.RestoreState()
}

// falloffGradient fades from the shadow color to transparent.
// Stops sit at 1-i with alpha scaled by i*i for i = 0.05, 0.15 ... 0.95.
func (s DropShadow) falloffGradient() *Gradient {
	grad := NewGradient(s.Color, Point{}, s.Color.WithAlpha(0), Point{}, false)
	for i := 0; i < 10; i++ {
		f := 0.05 + 0.1*float64(i)
		grad.AddColor(1-f, s.Color.WithMultipliedAlpha(f*f))
	}
	return grad
}

// shadowRegion is one cell of the 3x3 rectangle shadow layout.
// centre and edge are relative positions inside area; the gradient runs
// from the shadow color at centre to transparent at edge.
type shadowRegion struct {
	area   Rect
	corner bool
	flat   bool
	centre Point
	edge   Point
}

// rectangleShadowRegions splits the shadow of rect into eight gradient
// cells around a solid core, in drawing order. The inset is truncated to
// whole pixels so every cell edge falls on the pixel grid.
func (s DropShadow) rectangleShadowRegions(rect image.Rectangle) []shadowRegion {
	inset := float64(s.Radius / 2)
	expanded := float64(s.Radius) + inset

	core := RectFromInt(rect).Reduced(inset).Translated(float64(s.Offset.X), float64(s.Offset.Y))

	r := core.Expanded(expanded)
	top := r.RemoveFromTop(expanded)
	bottom := r.RemoveFromBottom(expanded)

	section := func(area Rect, corner bool, cx, cy, ex, ey float64) shadowRegion {
		return shadowRegion{area: area, corner: corner, centre: Pt(cx, cy), edge: Pt(ex, ey)}
	}

	return []shadowRegion{
		section(top.RemoveFromLeft(expanded), true, 1, 1, 0, 1),
		section(top.RemoveFromRight(expanded), true, 0, 1, 1, 1),
		section(top, false, 0, 1, 0, 0),

		section(bottom.RemoveFromLeft(expanded), true, 1, 0, 0, 0),
		section(bottom.RemoveFromRight(expanded), true, 0, 0, 1, 0),
		section(bottom, false, 0, 0, 0, 1),

		section(r.RemoveFromLeft(expanded), false, 1, 0, 0, 0),
		section(r.RemoveFromRight(expanded), false, 0, 0, 1, 0),

		{area: core, flat: true},
	}
}
