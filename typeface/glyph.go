package typeface

import "github.com/gogpu/ggfx"

// GlyphPath returns the outline of a glyph scaled to fontHeight pixels,
// with the baseline at y = 0. Hinted typefaces get the vertical hinting
// transform first. It reports false when the glyph has no outline.
func GlyphPath(tf Typeface, id GlyphID, fontHeight float64) (*ggfx.Path, bool) {
	p, ok := tf.OutlineForGlyph(id)
	if !ok {
		return nil, false
	}
	if tf.IsHinted() {
		p = tf.ApplyVerticalHintingTransform(fontHeight, p)
	}
	return p.Transform(ggfx.Scale(fontHeight, fontHeight)), true
}

// TextPath shapes text and returns the outlines of all its glyphs at
// fontHeight pixels, with the baseline starting at (x, y).
func TextPath(tf Typeface, text string, fontHeight, x, y float64) *ggfx.Path {
	out := ggfx.NewPath()
	glyphs, offsets := tf.GlyphPositions(text)
	for i, id := range glyphs {
		p, ok := GlyphPath(tf, id, fontHeight)
		if !ok {
			continue
		}
		out.Append(p.Transform(ggfx.Translate(x+offsets[i]*fontHeight, y)))
	}
	return out
}
