// Package image provides the pixel buffers behind ggfx images.
//
// Buffers are shared between image handles by reference count. A handle
// that wants to write must first make sure it is the only owner, which is
// what makes copy-on-write sharing safe.
package image

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatAlpha8 is a single 8-bit alpha channel (1 byte per pixel).
	// It is the scratch format for shadow masks.
	FormatAlpha8 Format = iota

	// FormatRGBAPremul is 32-bit RGBA with premultiplied alpha (4 bytes per pixel).
	FormatRGBAPremul

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of channels.
	Channels int

	// AlphaOffset is the byte offset of the alpha channel inside a pixel.
	AlphaOffset int
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatAlpha8: {
		BytesPerPixel: 1,
		Channels:      1,
		AlphaOffset:   0,
	},
	FormatRGBAPremul: {
		BytesPerPixel: 4,
		Channels:      4,
		AlphaOffset:   3,
	},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// AlphaOffset returns the byte offset of alpha within a pixel.
func (f Format) AlphaOffset() int {
	return f.Info().AlphaOffset
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatAlpha8:
		return "Alpha8"
	case FormatRGBAPremul:
		return "RGBAPremul"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}
