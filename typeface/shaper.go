package typeface

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// glyphRun is shaped text: glyph ids with pen offsets in 26.6 units.
// offsets has one more entry than glyphs; the last is the run width.
type glyphRun struct {
	glyphs  []GlyphID
	offsets []fixed.Int26_6
}

// goTextShaper shapes text with the HarfBuzz port from go-text/typesetting.
//
// The parsed font.Font is read-only and shared. font.Face and
// HarfbuzzShaper are not safe for concurrent use, so every call gets its
// own Face and borrows a shaper from the pool.
type goTextShaper struct {
	font       *gtfont.Font
	shaperPool sync.Pool
}

func newGoTextShaper(data []byte) (*goTextShaper, error) {
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &goTextShaper{
		font: face.Font,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}, nil
}

// shape lays out runes left to right at the given size.
func (s *goTextShaper) shape(runes []rune, size fixed.Int26_6) glyphRun {
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(s.font),
		Size:      size,
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	run := glyphRun{
		glyphs:  make([]GlyphID, len(output.Glyphs)),
		offsets: make([]fixed.Int26_6, len(output.Glyphs)+1),
	}
	var pen fixed.Int26_6
	for i, g := range output.Glyphs {
		run.glyphs[i] = GlyphID(uint16(g.GlyphID)) //nolint:gosec // sfnt glyph ids are 16-bit
		run.offsets[i] = pen + g.XOffset
		pen += g.Advance
	}
	run.offsets[len(output.Glyphs)] = pen
	return run
}

// detectScript returns the first script in runes that is not shared
// between scripts, such as punctuation and digits.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if s := language.LookupScript(r); s != language.Common && s != language.Inherited {
			return s
		}
	}
	return language.Latin
}
