package ggfx

import (
	intImage "github.com/gogpu/ggfx/internal/image"
)

// defaultScratchBuffers bounds how many idle buffers of one size are kept.
const defaultScratchBuffers = 4

// ScratchPool recycles the transient images used while rendering shadows.
// It is safe for concurrent use.
type ScratchPool struct {
	pool *intImage.Pool
}

// NewScratchPool creates a pool keeping at most maxPerSize idle images of
// each size and format. Zero means unlimited.
func NewScratchPool(maxPerSize int) *ScratchPool {
	return &ScratchPool{pool: intImage.NewPool(maxPerSize)}
}

var defaultScratch = NewScratchPool(defaultScratchBuffers)

// DefaultScratchPool returns the pool used by a Graphics created without
// WithScratchPool.
func DefaultScratchPool() *ScratchPool {
	return defaultScratch
}

// Get returns a cleared image, or an invalid image for bad dimensions.
func (p *ScratchPool) Get(format Format, width, height int) *Image {
	f, ok := format.internal()
	if !ok {
		return &Image{}
	}
	buf := p.pool.Get(width, height, f)
	if buf == nil {
		return &Image{}
	}
	return &Image{buf: buf}
}

// Put hands the image's pixels back to the pool. The image becomes invalid.
// Images still shared with another handle are released instead.
func (p *ScratchPool) Put(img *Image) {
	if !img.IsValid() {
		return
	}
	if img.IsShared() {
		img.Release()
		return
	}
	p.pool.Put(img.buf)
	img.buf = nil
}

// Len returns the number of idle images held by the pool.
func (p *ScratchPool) Len() int {
	return p.pool.Len()
}
