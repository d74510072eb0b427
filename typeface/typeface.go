package typeface

import (
	"sync"

	"github.com/gogpu/ggfx"
)

// GlyphID identifies a glyph within a typeface.
type GlyphID uint16

// DefaultStyle is the style assumed when a Font names none.
const DefaultStyle = "Regular"

// Font is the lookup key used to find a Typeface.
// Height is in pixels and does not take part in matching.
type Font struct {
	Family string
	Style  string
	Height float64
}

// Typeface is a font face normalized to a height of 1.0.
//
// Implementations are shared between goroutines and must be safe for
// concurrent use.
type Typeface interface {
	// Name returns the font family.
	Name() string

	// Style returns the style, such as "Regular" or "Bold Italic".
	Style() string

	// Ascent returns the part of the unit height above the baseline.
	Ascent() float64

	// Descent returns the part of the unit height below the baseline.
	Descent() float64

	// HeightToPointsFactor converts a font height to a point size.
	HeightToPointsFactor() float64

	// StringWidth returns the advance width of text at unit height.
	StringWidth(text string) float64

	// GlyphPositions shapes text at unit height. It returns the glyphs and
	// one x offset per glyph plus a final offset holding the total width.
	// Empty text returns nil slices.
	GlyphPositions(text string) ([]GlyphID, []float64)

	// OutlineForGlyph returns the glyph outline at unit height with the
	// baseline at y = 0 and y growing downwards. It reports false when the
	// glyph has no outline, as for a space.
	OutlineForGlyph(id GlyphID) (*ggfx.Path, bool)

	// IsSuitableForFont reports whether the typeface can render f. The
	// family and style have already been matched when it is called.
	IsSuitableForFont(f Font) bool

	// IsHinted reports whether outlines should be hinted before drawing.
	IsHinted() bool

	// ApplyVerticalHintingTransform returns a copy of a unit-height
	// outline distorted so that its main horizontal features fall on the
	// pixel grid at fontHeight.
	ApplyVerticalHintingTransform(fontHeight float64, p *ggfx.Path) *ggfx.Path
}

// Base carries the identity and hinting state shared by Typeface
// implementations. Embed it and call HintPath from
// ApplyVerticalHintingTransform.
type Base struct {
	name  string
	style string

	mu      sync.Mutex
	hinting *hintingParams
}

// NewBase creates a Base. An empty style becomes DefaultStyle.
func NewBase(name, style string) *Base {
	if style == "" {
		style = DefaultStyle
	}
	return &Base{name: name, style: style}
}

// Name returns the font family.
func (b *Base) Name() string { return b.name }

// Style returns the font style.
func (b *Base) Style() string { return b.style }

// IsSuitableForFont returns true.
func (b *Base) IsSuitableForFont(Font) bool { return true }

// IsHinted returns false.
func (b *Base) IsHinted() bool { return false }

// HintPath applies the vertical hinting transform of owner to p.
//
// Hinting only happens for 3 < fontHeight < 25; otherwise p is returned
// unchanged. The reference lines of owner are measured once, on first use.
func (b *Base) HintPath(owner Typeface, fontHeight float64, p *ggfx.Path) *ggfx.Path {
	if p.IsEmpty() || fontHeight <= minHintHeight || fontHeight >= maxHintHeight {
		return p
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.hinting == nil {
		b.hinting = newHintingParams(owner)
	}
	return b.hinting.apply(fontHeight, p)
}
