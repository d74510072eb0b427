package image

import (
	"errors"
	"sync/atomic"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")
)

// ImageBuf is a reference-counted pixel buffer.
//
// Every handle that shares the buffer holds one reference. A freshly created
// buffer starts with a single reference. Writers must check Shared and clone
// before mutating; ImageBuf itself never copies on its own.
//
// Thread safety: the reference count is atomic. Pixel access requires
// external synchronization.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	stride int
	format Format

	refs atomic.Int32
}

// NewImageBuf creates a new zeroed buffer with the given dimensions and format.
func NewImageBuf(width, height int, format Format) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	b := &ImageBuf{
		data:   make([]byte, format.ImageBytes(width, height)),
		width:  width,
		height: height,
		stride: format.RowBytes(width),
		format: format,
	}
	b.refs.Store(1)
	return b, nil
}

// FromRaw creates an ImageBuf from existing data without copying.
// The caller must ensure data remains valid for the lifetime of the ImageBuf.
//
// The last row only needs width pixels, so a sub-rectangle of a larger
// buffer can be wrapped in place.
func FromRaw(data []byte, width, height int, format Format, stride int) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if stride < format.RowBytes(width) {
		return nil, ErrInvalidStride
	}
	n := stride*(height-1) + format.RowBytes(width)
	if len(data) < n {
		return nil, ErrDataTooSmall
	}

	b := &ImageBuf{
		data:   data[:n],
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}
	b.refs.Store(1)
	return b, nil
}

// Clone creates a deep copy of the buffer with a single reference.
func (b *ImageBuf) Clone() *ImageBuf {
	newData := make([]byte, len(b.data))
	copy(newData, b.data)

	c := &ImageBuf{
		data:   newData,
		width:  b.width,
		height: b.height,
		stride: b.stride,
		format: b.format,
	}
	c.refs.Store(1)
	return c
}

// Retain adds a reference and returns the buffer.
func (b *ImageBuf) Retain() *ImageBuf {
	b.refs.Add(1)
	return b
}

// Release drops a reference and returns the remaining count.
func (b *ImageBuf) Release() int32 {
	return b.refs.Add(-1)
}

// Shared reports whether more than one handle references the buffer.
func (b *ImageBuf) Shared() bool {
	return b.refs.Load() > 1
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Stride returns the number of bytes per row (including padding).
func (b *ImageBuf) Stride() int {
	return b.stride
}

// Format returns the pixel format.
func (b *ImageBuf) Format() Format {
	return b.format
}

// Data returns the raw pixel data slice.
func (b *ImageBuf) Data() []byte {
	return b.data
}

// RowBytes returns a slice of the pixel data for row y.
// Returns nil if y is out of bounds.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.format.RowBytes(b.width)]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *ImageBuf) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*b.format.BytesPerPixel()
}

// Clear sets all pixels to zero.
func (b *ImageBuf) Clear() {
	clear(b.data)
}
