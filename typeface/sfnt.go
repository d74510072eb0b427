package typeface

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/ggfx"
)

// SFNT is a Typeface backed by TrueType or OpenType font data.
//
// The unit height is ascent + descent + line gap in font units, where the
// line gap is at least a tenth of ascent + descent. Ascent and Descent are
// therefore always below 1 and so is their sum.
//
// SFNT is safe for concurrent use.
type SFNT struct {
	*Base

	font   *sfnt.Font
	hinted bool
	shaper *goTextShaper // nil if go-text could not read the data

	upem       fixed.Int26_6 // shaping and outline size: one unit per font unit
	unitHeight float64       // in font units
	ascent     float64
	descent    float64
	ptsFactor  float64

	bufPool sync.Pool
}

var _ Typeface = (*SFNT)(nil)

// Parse reads font data into a Typeface. Family and style come from the
// font's name table unless overridden with WithName and WithStyle.
//
// The data must not be modified afterwards.
func Parse(data []byte, opts ...Option) (*SFNT, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	cfg := defaultParseConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, &FontError{Reason: "parse font", Err: err}
	}
	f, err := coll.Font(cfg.index)
	if err != nil {
		return nil, &FontError{Reason: "select collection font", Err: err}
	}

	var buf sfnt.Buffer
	upem := fixed.I(int(f.UnitsPerEm()))
	m, err := f.Metrics(&buf, upem, font.HintingNone)
	if err != nil {
		return nil, &FontError{Reason: "read metrics", Err: err}
	}

	asc := fixedToFloat(m.Ascent)
	desc := fixedToFloat(m.Descent)
	if asc <= 0 || desc <= 0 {
		return nil, &FontError{Reason: "invalid vertical metrics"}
	}
	gap := max(fixedToFloat(m.Height)-asc-desc, (asc+desc)/10)
	unitHeight := asc + desc + gap

	name := cfg.name
	if name == "" {
		name, _ = f.Name(&buf, sfnt.NameIDFamily)
	}
	if name == "" {
		return nil, ErrNoFamilyName
	}
	style := cfg.style
	if style == "" {
		style, _ = f.Name(&buf, sfnt.NameIDSubfamily)
	}

	t := &SFNT{
		Base:       NewBase(name, style),
		font:       f,
		hinted:     cfg.hinting,
		upem:       upem,
		unitHeight: unitHeight,
		ascent:     asc / unitHeight,
		descent:    desc / unitHeight,
		ptsFactor:  float64(f.UnitsPerEm()) / unitHeight,
	}
	t.bufPool.New = func() any { return new(sfnt.Buffer) }

	if coll.NumFonts() == 1 {
		s, err := newGoTextShaper(data)
		if err != nil {
			Logger().Warn("typeface: shaping falls back to cmap lookup", "family", name, "err", err)
		} else {
			t.shaper = s
		}
	}

	return t, nil
}

// Ascent implements Typeface.
func (t *SFNT) Ascent() float64 { return t.ascent }

// Descent implements Typeface.
func (t *SFNT) Descent() float64 { return t.descent }

// HeightToPointsFactor implements Typeface.
func (t *SFNT) HeightToPointsFactor() float64 { return t.ptsFactor }

// IsHinted implements Typeface.
func (t *SFNT) IsHinted() bool { return t.hinted }

// NumGlyphs returns the number of glyphs in the font.
func (t *SFNT) NumGlyphs() int { return t.font.NumGlyphs() }

// ApplyVerticalHintingTransform implements Typeface.
func (t *SFNT) ApplyVerticalHintingTransform(fontHeight float64, p *ggfx.Path) *ggfx.Path {
	return t.HintPath(t, fontHeight, p)
}

// StringWidth implements Typeface.
func (t *SFNT) StringWidth(text string) float64 {
	_, offsets := t.GlyphPositions(text)
	if len(offsets) == 0 {
		return 0
	}
	return offsets[len(offsets)-1]
}

// GlyphPositions implements Typeface. Text is NFC-normalized before
// shaping.
func (t *SFNT) GlyphPositions(text string) ([]GlyphID, []float64) {
	if text == "" {
		return nil, nil
	}
	runes := []rune(norm.NFC.String(text))

	var run glyphRun
	if t.shaper != nil {
		run = t.shaper.shape(runes, t.upem)
	} else {
		run = t.shapeSimple(runes)
	}

	offsets := make([]float64, len(run.offsets))
	for i, o := range run.offsets {
		offsets[i] = fixedToFloat(o) / t.unitHeight
	}
	return run.glyphs, offsets
}

// shapeSimple maps runes through the cmap and applies advances and kerning.
func (t *SFNT) shapeSimple(runes []rune) glyphRun {
	buf := t.getBuffer()
	defer t.bufPool.Put(buf)

	run := glyphRun{
		glyphs:  make([]GlyphID, 0, len(runes)),
		offsets: make([]fixed.Int26_6, 0, len(runes)+1),
	}
	var pen fixed.Int26_6
	prev, hasPrev := sfnt.GlyphIndex(0), false
	for _, r := range runes {
		gid, err := t.font.GlyphIndex(buf, r)
		if err != nil {
			gid = 0
		}
		if hasPrev {
			if k, err := t.font.Kern(buf, prev, gid, t.upem, font.HintingNone); err == nil {
				pen += k
			}
		}
		adv, err := t.font.GlyphAdvance(buf, gid, t.upem, font.HintingNone)
		if err != nil {
			adv = 0
		}
		run.glyphs = append(run.glyphs, GlyphID(gid))
		run.offsets = append(run.offsets, pen)
		pen += adv
		prev, hasPrev = gid, true
	}
	run.offsets = append(run.offsets, pen)
	return run
}

// OutlineForGlyph implements Typeface.
func (t *SFNT) OutlineForGlyph(id GlyphID) (*ggfx.Path, bool) {
	buf := t.getBuffer()
	defer t.bufPool.Put(buf)

	segs, err := t.font.LoadGlyph(buf, sfnt.GlyphIndex(id), t.upem, nil)
	if err != nil || len(segs) == 0 {
		return nil, false
	}

	scale := 1 / t.unitHeight
	pt := func(p fixed.Point26_6) (float64, float64) {
		return fixedToFloat(p.X) * scale, fixedToFloat(p.Y) * scale
	}

	p := ggfx.NewPath()
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p.Close()
			}
			x, y := pt(seg.Args[0])
			p.MoveTo(x, y)
			open = true
		case sfnt.SegmentOpLineTo:
			x, y := pt(seg.Args[0])
			p.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := pt(seg.Args[0])
			x, y := pt(seg.Args[1])
			p.QuadraticTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := pt(seg.Args[0])
			c2x, c2y := pt(seg.Args[1])
			x, y := pt(seg.Args[2])
			p.CubicTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		p.Close()
	}
	return p, true
}

func (t *SFNT) getBuffer() *sfnt.Buffer {
	return t.bufPool.Get().(*sfnt.Buffer)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
