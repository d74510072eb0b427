package ggfx

import "image"

// GraphicsOption configures a Graphics during creation.
//
// Example:
//
//	// Draw only into the top half, at half strength
//	gc := ggfx.NewGraphics(img,
//	    ggfx.WithClip(image.Rect(0, 0, img.Width(), img.Height()/2)),
//	    ggfx.WithOpacity(0.5))
type GraphicsOption func(*graphicsOptions)

// graphicsOptions holds optional configuration for Graphics creation.
type graphicsOptions struct {
	clip    *image.Rectangle
	opacity float64
	scratch *ScratchPool
}

// defaultGraphicsOptions returns the default graphics options.
func defaultGraphicsOptions() graphicsOptions {
	return graphicsOptions{
		clip:    nil, // whole target
		opacity: 1,
		scratch: nil, // DefaultScratchPool
	}
}

// WithClip sets the initial clip rectangle. It is intersected with the
// bounds of the target image.
func WithClip(r image.Rectangle) GraphicsOption {
	return func(o *graphicsOptions) {
		o.clip = &r
	}
}

// WithOpacity sets the initial opacity, clamped to [0, 1].
func WithOpacity(opacity float64) GraphicsOption {
	return func(o *graphicsOptions) {
		o.opacity = clamp01(opacity)
	}
}

// WithScratchPool sets the pool that supplies temporary shadow masks.
func WithScratchPool(p *ScratchPool) GraphicsOption {
	return func(o *graphicsOptions) {
		o.scratch = p
	}
}
