package typeface

import (
	"math"
	"slices"

	"github.com/gogpu/ggfx"
)

// Hinting is applied to font heights strictly between these bounds.
const (
	minHintHeight = 3
	maxHintHeight = 25
)

// Characters whose outlines define the reference lines.
const (
	capTopChars   = "BDEFPRTZOQ"
	xHeightChars  = "acegmnopqrsuvwxy"
	baselineChars = "BDELZOC"
)

// hintingParams holds the cap-height, x-height and baseline of a typeface
// at unit height, plus the scaling for the most recently used font height.
// Guarded by Base.mu.
type hintingParams struct {
	top, middle, bottom float64

	cachedHeight float64
	cachedScale  hintScaling
}

func newHintingParams(tf Typeface) *hintingParams {
	return &hintingParams{
		top:    averageY(tf, capTopChars, true),
		middle: averageY(tf, xHeightChars, true),
		bottom: averageY(tf, baselineChars, false),
	}
}

// averageY returns the mean top (or bottom) of the outlines of chars,
// ignoring glyphs more than 0.05 away from the median. It returns 0 when
// fewer than 4 glyphs agree.
func averageY(tf Typeface, chars string, top bool) float64 {
	glyphs, _ := tf.GlyphPositions(chars)

	ys := make([]float64, 0, len(glyphs))
	for _, id := range glyphs {
		p, ok := tf.OutlineForGlyph(id)
		if !ok {
			continue
		}
		b := p.Bounds()
		if top {
			ys = append(ys, b.Y)
		} else {
			ys = append(ys, b.Bottom())
		}
	}
	if len(ys) == 0 {
		return 0
	}

	slices.Sort(ys)
	median := ys[len(ys)/2]

	total, n := 0.0, 0
	for _, y := range ys {
		if math.Abs(median-y) < 0.05 {
			total += y
			n++
		}
	}
	if n < 4 {
		return 0
	}
	return total / float64(n)
}

func (h *hintingParams) apply(fontHeight float64, p *ggfx.Path) *ggfx.Path {
	if h.cachedHeight != fontHeight {
		h.cachedHeight = fontHeight
		h.cachedScale = newHintScaling(h.top, h.middle, h.bottom, fontHeight)
	}

	if h.bottom < h.top+3/fontHeight {
		return p
	}

	s := h.cachedScale
	out := ggfx.NewPath()
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case ggfx.MoveTo:
			out.MoveTo(e.Point.X, s.apply(e.Point.Y))
		case ggfx.LineTo:
			out.LineTo(e.Point.X, s.apply(e.Point.Y))
		case ggfx.QuadTo:
			out.QuadraticTo(e.Control.X, s.apply(e.Control.Y), e.Point.X, s.apply(e.Point.Y))
		case ggfx.CubicTo:
			out.CubicTo(
				e.Control1.X, s.apply(e.Control1.Y),
				e.Control2.X, s.apply(e.Control2.Y),
				e.Point.X, s.apply(e.Point.Y))
		case ggfx.Close:
			out.Close()
		}
	}
	return out
}

// hintScaling maps y piecewise linearly so that the reference lines land
// on whole pixels: one segment above the x-height, one below it.
type hintScaling struct {
	middle                  float64
	upperScale, upperOffset float64
	lowerScale, lowerOffset float64
}

func newHintScaling(t, m, b, fontHeight float64) hintScaling {
	newT := math.Floor(fontHeight*t+0.5) / fontHeight
	newB := math.Floor(fontHeight*b+0.5) / fontHeight
	// Biased so lower-case letters tend to grow rather than shrink.
	newM := math.Floor(fontHeight*m+0.3) / fontHeight

	upper := limitScale(newM-newT, m-t)
	lower := limitScale(newB-newM, b-m)

	return hintScaling{
		middle:      m,
		upperScale:  upper,
		upperOffset: newM - m*upper,
		lowerScale:  lower,
		lowerOffset: newB - b*lower,
	}
}

func limitScale(num, den float64) float64 {
	if den == 0 {
		return 1
	}
	return min(max(num/den, 0.9), 1.1)
}

func (s hintScaling) apply(y float64) float64 {
	if y < s.middle {
		return y*s.upperScale + s.upperOffset
	}
	return y*s.lowerScale + s.lowerOffset
}
