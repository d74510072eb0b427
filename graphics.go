package ggfx

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/gogpu/ggfx/internal/blend"
)

// Graphics draws into an Image.
//
// Fills are painted with either a solid color or a gradient, scaled by the
// current opacity, and composited source-over. On a SingleChannel target
// only the alpha channel is written. All drawing is limited to the clip
// rectangle.
//
// A Graphics is not safe for concurrent use.
type Graphics struct {
	target  *Image
	scratch *ScratchPool

	state graphicsState
	stack []graphicsState

	rast *vector.Rasterizer
	mask *image.Alpha

	drawCount int
}

// graphicsState is the part of Graphics saved by SaveState.
type graphicsState struct {
	color    RGBA
	gradient *Gradient
	opacity  float64
	clip     image.Rectangle
}

// NewGraphics creates a drawing context that renders into img.
// The target is unshared first so other handles keep their pixels.
func NewGraphics(img *Image, opts ...GraphicsOption) *Graphics {
	options := defaultGraphicsOptions()
	for _, opt := range opts {
		opt(&options)
	}

	img.DuplicateIfShared()

	clip := img.Bounds()
	if options.clip != nil {
		clip = clip.Intersect(*options.clip)
	}

	scratch := options.scratch
	if scratch == nil {
		scratch = DefaultScratchPool()
	}

	return &Graphics{
		target:  img,
		scratch: scratch,
		state: graphicsState{
			color:   Black,
			opacity: options.opacity,
			clip:    clip,
		},
	}
}

// Target returns the image being drawn into.
func (g *Graphics) Target() *Image {
	return g.target
}

// ScratchPool returns the pool supplying temporary images.
func (g *Graphics) ScratchPool() *ScratchPool {
	return g.scratch
}

// SetColor sets a solid fill color, replacing any gradient.
func (g *Graphics) SetColor(c RGBA) {
	g.state.color = c
	g.state.gradient = nil
}

// SetGradientFill sets a gradient fill. The gradient is copied.
// A nil gradient reverts to the current solid color.
func (g *Graphics) SetGradientFill(grad *Gradient) {
	if grad == nil {
		g.state.gradient = nil
		return
	}
	g.state.gradient = grad.Clone()
}

// SetOpacity sets the opacity applied to everything drawn, clamped to [0, 1].
func (g *Graphics) SetOpacity(opacity float64) {
	g.state.opacity = clamp01(opacity)
}

// Opacity returns the current opacity.
func (g *Graphics) Opacity() float64 {
	return g.state.opacity
}

// ClipBounds returns the current clip rectangle in target coordinates.
func (g *Graphics) ClipBounds() image.Rectangle {
	return g.state.clip
}

// ReduceClipRegion intersects the clip with r and reports whether
// anything is left to draw into.
func (g *Graphics) ReduceClipRegion(r image.Rectangle) bool {
	g.state.clip = g.state.clip.Intersect(r)
	return !g.state.clip.Empty()
}

// SaveState pushes the fill, opacity and clip onto a stack.
func (g *Graphics) SaveState() {
	g.stack = append(g.stack, g.state)
}

// RestoreState pops the last saved state. It does nothing when the stack
// is empty.
func (g *Graphics) RestoreState() {
	if len(g.stack) == 0 {
		return
	}
	g.state = g.stack[len(g.stack)-1]
	g.stack = g.stack[:len(g.stack)-1]
}

// DrawCount returns the number of draw operations that reached at least
// one pixel inside the clip.
func (g *Graphics) DrawCount() int {
	return g.drawCount
}

// FillAll fills the whole clip region.
func (g *Graphics) FillAll() {
	g.FillRectInt(g.state.clip)
}

// FillRectInt fills a pixel-aligned rectangle.
func (g *Graphics) FillRectInt(r image.Rectangle) {
	area := r.Intersect(g.state.clip)
	if area.Empty() || !g.target.IsValid() {
		return
	}
	g.drawCount++

	dst := g.target.BitmapData(ReadWrite)
	p := g.newPainter()
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			sr, sg, sb, sa := p.at(x, y)
			compositePixel(dst, x, y, sr, sg, sb, sa, 255)
		}
	}
}

// FillRect fills a rectangle with anti-aliased edges.
func (g *Graphics) FillRect(r Rect) {
	if r.IsEmpty() {
		return
	}
	p := NewPath()
	p.Rectangle(r.X, r.Y, r.W, r.H)
	g.FillPath(p, Identity())
}

// FillPath fills a path, transformed by m, using the non-zero winding rule.
func (g *Graphics) FillPath(path *Path, m Matrix) {
	if path.IsEmpty() || !g.target.IsValid() {
		return
	}
	if !m.IsIdentity() {
		path = path.Transform(m)
	}

	area := path.Bounds().SmallestIntegerContainer().Intersect(g.state.clip)
	if area.Empty() {
		return
	}

	mask, err := FromAlpha(g.rasterize(path, area))
	if err != nil {
		Logger().Warn("graphics: coverage mask unusable", "area", area, "err", err)
		return
	}
	g.DrawImageAt(mask, area.Min.X, area.Min.Y, true)
}

// rasterize computes path coverage over area. The returned mask is
// reused by the next call.
func (g *Graphics) rasterize(path *Path, area image.Rectangle) *image.Alpha {
	w, h := area.Dx(), area.Dy()
	if g.rast == nil {
		g.rast = vector.NewRasterizer(w, h)
	} else {
		g.rast.Reset(w, h)
	}
	g.rast.DrawOp = draw.Src

	if g.mask == nil || g.mask.Rect.Dx() != w || g.mask.Rect.Dy() != h {
		g.mask = image.NewAlpha(image.Rect(0, 0, w, h))
	}

	ox, oy := float32(area.Min.X), float32(area.Min.Y)
	open := false
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			if open {
				g.rast.ClosePath()
			}
			g.rast.MoveTo(float32(e.Point.X)-ox, float32(e.Point.Y)-oy)
			open = true
		case LineTo:
			if !open {
				g.rast.MoveTo(float32(e.Point.X)-ox, float32(e.Point.Y)-oy)
				open = true
				continue
			}
			g.rast.LineTo(float32(e.Point.X)-ox, float32(e.Point.Y)-oy)
		case QuadTo:
			g.rast.QuadTo(
				float32(e.Control.X)-ox, float32(e.Control.Y)-oy,
				float32(e.Point.X)-ox, float32(e.Point.Y)-oy)
		case CubicTo:
			g.rast.CubeTo(
				float32(e.Control1.X)-ox, float32(e.Control1.Y)-oy,
				float32(e.Control2.X)-ox, float32(e.Control2.Y)-oy,
				float32(e.Point.X)-ox, float32(e.Point.Y)-oy)
		case Close:
			if open {
				g.rast.ClosePath()
				open = false
			}
		}
	}
	if open {
		g.rast.ClosePath()
	}

	g.rast.Draw(g.mask, g.mask.Bounds(), image.Opaque, image.Point{})
	return g.mask
}

// DrawImageAt draws img with its top-left corner at (x, y).
//
// When fillAlphaChannelWithCurrentBrush is set, or img is SingleChannel,
// the image's alpha is used as a mask for the current fill. Otherwise its
// premultiplied pixels are composited, scaled by the opacity.
func (g *Graphics) DrawImageAt(img *Image, x, y int, fillAlphaChannelWithCurrentBrush bool) {
	if !img.IsValid() || !g.target.IsValid() {
		return
	}
	area := image.Rect(x, y, x+img.Width(), y+img.Height()).Intersect(g.state.clip)
	if area.Empty() {
		return
	}
	g.drawCount++

	src := img.BitmapData(ReadOnly)
	dst := g.target.BitmapData(ReadWrite)
	useBrush := fillAlphaChannelWithCurrentBrush || src.Format == FormatSingleChannel

	if useBrush {
		p := g.newPainter()
		aoff := 0
		if src.Format == FormatARGB {
			aoff = 3
		}
		for ty := area.Min.Y; ty < area.Max.Y; ty++ {
			for tx := area.Min.X; tx < area.Max.X; tx++ {
				c := src.Data[src.PixelOffset(tx-x, ty-y)+aoff]
				if c == 0 {
					continue
				}
				sr, sg, sb, sa := p.at(tx, ty)
				compositePixel(dst, tx, ty, sr, sg, sb, sa, c)
			}
		}
		return
	}

	op := byte(clamp255(g.state.opacity*255 + 0.5))
	for ty := area.Min.Y; ty < area.Max.Y; ty++ {
		for tx := area.Min.X; tx < area.Max.X; tx++ {
			i := src.PixelOffset(tx-x, ty-y)
			sa := src.Data[i+3]
			if sa == 0 {
				continue
			}
			compositePixel(dst, tx, ty, src.Data[i], src.Data[i+1], src.Data[i+2], sa, op)
		}
	}
}

// painter yields premultiplied fill pixels for the current state.
type painter struct {
	gradient *Gradient
	opacity  float64
	r, g, b  byte
	a        byte
}

func (g *Graphics) newPainter() painter {
	p := painter{gradient: g.state.gradient, opacity: g.state.opacity}
	if p.gradient == nil {
		p.r, p.g, p.b, p.a = g.state.color.WithMultipliedAlpha(p.opacity).Premultiplied8()
	}
	return p
}

// at returns the fill at the centre of pixel (x, y).
func (p painter) at(x, y int) (r, g, b, a byte) {
	if p.gradient == nil {
		return p.r, p.g, p.b, p.a
	}
	c := p.gradient.ColorAt(float64(x)+0.5, float64(y)+0.5)
	return c.WithMultipliedAlpha(p.opacity).Premultiplied8()
}

// compositePixel blends a premultiplied source pixel, scaled by coverage,
// over the target pixel at (x, y).
func compositePixel(dst BitmapData, x, y int, sr, sg, sb, sa, cov byte) {
	sr, sg, sb, sa = blend.Scale(sr, sg, sb, sa, cov)
	if sa == 0 {
		return
	}
	i := dst.PixelOffset(x, y)
	if dst.Format == FormatSingleChannel {
		dst.Data[i] = blend.SourceOverAlpha(sa, dst.Data[i])
		return
	}
	d := dst.Data[i : i+4 : i+4]
	d[0], d[1], d[2], d[3] = blend.SourceOver(sr, sg, sb, sa, d[0], d[1], d[2], d[3])
}
