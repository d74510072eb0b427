// Package typeface provides size-independent fonts for ggfx.
//
// A Typeface describes one font face normalized to a height of 1.0: ascent
// and descent are fractions of that height, and glyph positions and
// outlines are expressed in the same units. Callers scale by the font
// height they actually draw with.
//
// # Loading
//
//   - Parse: read TTF/OTF data into a Typeface (no registration)
//   - Register: parse and make the face available to ForFont
//   - ForFont: find a typeface for a Font, falling back to the built-in Go fonts
//
// # Example usage
//
//	tf := typeface.ForFont(typeface.Font{Family: "Go", Style: "Bold", Height: 32})
//
//	// Outline of "Hi" at 32px, baseline at (10, 40)
//	p := typeface.TextPath(tf, "Hi", 32, 10, 40)
//	shadow.DrawForPath(gc, p)
//
// # Caching
//
// ForFont keeps recently used typefaces in a bounded, process-wide LRU
// cache. SetCacheSize changes its capacity and ClearCache empties it. A
// typeface stays usable after eviction, but a later lookup may return a
// different value for the same Font.
//
// # Hinting
//
// ApplyVerticalHintingTransform snaps the cap-height, x-height and baseline
// of an outline to whole pixels for small sizes. Typefaces created with
// WithHinting(true) have it applied by GlyphPath and TextPath.
package typeface
