// Package ggfx renders soft drop shadows in pure Go.
//
// # Overview
//
// ggfx draws blurred shadows behind images, vector paths and rectangles,
// and composites them into a software Graphics context. The typeface
// sub-package supplies size-independent fonts whose glyph outlines can be
// shadowed like any other path.
//
// # Quick Start
//
//	img, _ := ggfx.NewImage(ggfx.FormatARGB, 400, 300)
//	gc := ggfx.NewGraphics(img)
//
//	// Shadow of a card, then the card itself
//	shadow := ggfx.NewDropShadow(ggfx.Black.WithAlpha(0.6), 8, image.Pt(4, 6))
//	shadow.DrawForRectangle(gc, image.Rect(40, 40, 240, 160))
//	gc.SetColor(ggfx.White)
//	gc.FillRectInt(image.Rect(40, 40, 240, 160))
//
//	_ = imaging.Save(img, "card.png")
//
// # Shadows
//
// DropShadow has three ways of drawing:
//   - DrawForImage blurs the alpha channel of an image
//   - DrawForPath rasterizes a path into a scratch mask and blurs that
//   - DrawForRectangle approximates the blur with gradient fills
//
// The blur is a repeated 3-tap box filter, 2*radius passes along rows and
// then along columns. It approximates a Gaussian at a fraction of the cost.
//
// DropShadowEffect wraps a DropShadow as an ImageEffect that draws an image
// together with its shadow at a given scale and opacity.
//
// # Images
//
// Image handles share reference-counted pixel buffers. Share creates a new
// handle onto the same pixels; writing through a Graphics or a ReadWrite
// BitmapData copies the pixels first when they are shared.
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package ggfx
