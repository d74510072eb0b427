package ggfx

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/gogpu/ggfx/internal/blend"
	intImage "github.com/gogpu/ggfx/internal/image"
)

// Format is the pixel format of an Image.
type Format int

const (
	// FormatARGB stores four 8-bit channels with premultiplied alpha,
	// in R, G, B, A byte order.
	FormatARGB Format = iota

	// FormatSingleChannel stores one 8-bit alpha channel.
	FormatSingleChannel
)

// String returns a human-readable format name.
func (f Format) String() string {
	switch f {
	case FormatARGB:
		return "ARGB"
	case FormatSingleChannel:
		return "SingleChannel"
	default:
		return "Unknown"
	}
}

func (f Format) internal() (intImage.Format, bool) {
	switch f {
	case FormatARGB:
		return intImage.FormatRGBAPremul, true
	case FormatSingleChannel:
		return intImage.FormatAlpha8, true
	default:
		return 0, false
	}
}

func formatFromInternal(f intImage.Format) Format {
	if f == intImage.FormatAlpha8 {
		return FormatSingleChannel
	}
	return FormatARGB
}

// AccessMode selects how BitmapData may be used.
type AccessMode int

const (
	// ReadOnly returns a view that must not be written to.
	ReadOnly AccessMode = iota

	// ReadWrite makes the image the sole owner of its pixels before
	// returning the view, so writes never leak into shared copies.
	ReadWrite
)

// BitmapData is a view onto the pixels of an Image.
type BitmapData struct {
	Data        []byte
	Width       int
	Height      int
	Stride      int // bytes per row
	PixelStride int // bytes per pixel
	Format      Format
}

// Row returns the bytes of row y.
func (bd BitmapData) Row(y int) []byte {
	start := y * bd.Stride
	return bd.Data[start : start+bd.Width*bd.PixelStride]
}

// PixelOffset returns the byte offset of pixel (x, y).
func (bd BitmapData) PixelOffset(x, y int) int {
	return y*bd.Stride + x*bd.PixelStride
}

// Image is a handle onto a reference-counted pixel buffer.
//
// Handles created with Share point at the same pixels. Writing through
// BitmapData(ReadWrite) or a Graphics first gives this handle its own
// copy when the pixels are shared, so other handles never observe the
// change.
//
// The zero value and nil are invalid images.
type Image struct {
	buf *intImage.ImageBuf
}

// NewImage creates a zeroed image.
func NewImage(format Format, width, height int) (*Image, error) {
	f, ok := format.internal()
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFormat, int(format))
	}
	buf, err := intImage.NewImageBuf(width, height, f)
	if err != nil {
		if errors.Is(err, intImage.ErrInvalidDimensions) {
			return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
		}
		return nil, fmt.Errorf("ggfx: new image: %w", err)
	}
	return &Image{buf: buf}, nil
}

// FromAlpha wraps the pixels of a as a SingleChannel image without
// copying. The image and a share storage until the image is unshared,
// so writes through either are visible in the other.
func FromAlpha(a *image.Alpha) (*Image, error) {
	if a == nil {
		return nil, ErrNilImage
	}
	r := a.Rect
	if r.Empty() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, r.Dx(), r.Dy())
	}
	buf, err := intImage.FromRaw(a.Pix[a.PixOffset(r.Min.X, r.Min.Y):], r.Dx(), r.Dy(), intImage.FormatAlpha8, a.Stride)
	if err != nil {
		return nil, fmt.Errorf("ggfx: wrap alpha: %w", err)
	}
	return &Image{buf: buf}, nil
}

// FromImage copies any image.Image into a new ARGB image.
func FromImage(src image.Image) (*Image, error) {
	if src == nil {
		return nil, ErrNilImage
	}
	if a, ok := src.(*image.Alpha); ok {
		mask, err := FromAlpha(a)
		if err != nil {
			return nil, err
		}
		defer mask.Release()
		return mask.ConvertedToFormat(FormatARGB), nil
	}

	b := src.Bounds()
	img, err := NewImage(FormatARGB, b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	// imaging.Clone normalizes any source model to NRGBA at origin (0, 0).
	nrgba := imaging.Clone(src)
	for y := 0; y < b.Dy(); y++ {
		srcRow := nrgba.Pix[y*nrgba.Stride:]
		dstRow := img.buf.RowBytes(y)
		for x := 0; x < b.Dx(); x++ {
			i := x * 4
			a := srcRow[i+3]
			dstRow[i+0] = blend.MulDiv255(srcRow[i+0], a)
			dstRow[i+1] = blend.MulDiv255(srcRow[i+1], a)
			dstRow[i+2] = blend.MulDiv255(srcRow[i+2], a)
			dstRow[i+3] = a
		}
	}
	return img, nil
}

// IsValid reports whether the image has pixels.
func (img *Image) IsValid() bool {
	return img != nil && img.buf != nil
}

// Width returns the width in pixels, or 0 for an invalid image.
func (img *Image) Width() int {
	if !img.IsValid() {
		return 0
	}
	return img.buf.Width()
}

// Height returns the height in pixels, or 0 for an invalid image.
func (img *Image) Height() int {
	if !img.IsValid() {
		return 0
	}
	return img.buf.Height()
}

// Format returns the pixel format.
func (img *Image) Format() Format {
	if !img.IsValid() {
		return FormatARGB
	}
	return formatFromInternal(img.buf.Format())
}

// Share returns a second handle onto the same pixels.
func (img *Image) Share() *Image {
	if !img.IsValid() {
		return &Image{}
	}
	return &Image{buf: img.buf.Retain()}
}

// IsShared reports whether another handle references the same pixels.
func (img *Image) IsShared() bool {
	return img.IsValid() && img.buf.Shared()
}

// Release drops this handle's reference. The image becomes invalid.
func (img *Image) Release() {
	if !img.IsValid() {
		return
	}
	img.buf.Release()
	img.buf = nil
}

// DuplicateIfShared gives this handle a private copy of its pixels when
// they are shared with another handle.
func (img *Image) DuplicateIfShared() {
	if !img.IsShared() {
		return
	}
	c := img.buf.Clone()
	img.buf.Release()
	img.buf = c
}

// BitmapData returns a view onto the pixels. In ReadWrite mode the image
// is unshared first.
func (img *Image) BitmapData(mode AccessMode) BitmapData {
	if !img.IsValid() {
		return BitmapData{}
	}
	if mode == ReadWrite {
		img.DuplicateIfShared()
	}
	return BitmapData{
		Data:        img.buf.Data(),
		Width:       img.buf.Width(),
		Height:      img.buf.Height(),
		Stride:      img.buf.Stride(),
		PixelStride: img.buf.Format().BytesPerPixel(),
		Format:      img.Format(),
	}
}

// ConvertedToFormat returns the image in another format.
//
// Converting ARGB to SingleChannel keeps the alpha channel. Converting
// SingleChannel to ARGB gives white pixels carrying that alpha. When the
// format already matches, a shared handle is returned.
func (img *Image) ConvertedToFormat(format Format) *Image {
	if !img.IsValid() {
		return &Image{}
	}
	if img.Format() == format {
		return img.Share()
	}

	out, err := NewImage(format, img.Width(), img.Height())
	if err != nil {
		return &Image{}
	}

	src := img.BitmapData(ReadOnly)
	dst := out.BitmapData(ReadWrite)
	for y := 0; y < src.Height; y++ {
		srow := src.Row(y)
		drow := dst.Row(y)
		for x := 0; x < src.Width; x++ {
			switch format {
			case FormatSingleChannel:
				drow[x] = srow[x*4+3]
			case FormatARGB:
				a := srow[x]
				drow[x*4+0] = a
				drow[x*4+1] = a
				drow[x*4+2] = a
				drow[x*4+3] = a
			}
		}
	}
	return out
}

// AlphaAt returns the alpha of pixel (x, y), or 0 outside the image.
func (img *Image) AlphaAt(x, y int) byte {
	if !img.IsValid() {
		return 0
	}
	off := img.buf.PixelOffset(x, y)
	if off < 0 {
		return 0
	}
	return img.buf.Data()[off+img.buf.Format().AlphaOffset()]
}

// PixelAt returns the premultiplied components of pixel (x, y).
// A single-channel pixel reads as white with its alpha.
func (img *Image) PixelAt(x, y int) (r, g, b, a byte) {
	if !img.IsValid() {
		return 0, 0, 0, 0
	}
	off := img.buf.PixelOffset(x, y)
	if off < 0 {
		return 0, 0, 0, 0
	}
	d := img.buf.Data()
	if img.buf.Format() == intImage.FormatAlpha8 {
		a = d[off]
		return a, a, a, a
	}
	return d[off], d[off+1], d[off+2], d[off+3]
}

// Clear sets every pixel to transparent. The image is unshared first.
func (img *Image) Clear() {
	if !img.IsValid() {
		return
	}
	img.DuplicateIfShared()
	img.buf.Clear()
}

// ToNRGBA converts the image to a standard non-premultiplied image.
func (img *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(img.Bounds())
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			out.SetNRGBA(x, y, color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA))
		}
	}
	return out
}

// At implements the image.Image interface.
func (img *Image) At(x, y int) color.Color {
	if img.Format() == FormatSingleChannel {
		return color.Alpha{A: img.AlphaAt(x, y)}
	}
	r, g, b, a := img.PixelAt(x, y)
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// Bounds implements the image.Image interface.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width(), img.Height())
}

// ColorModel implements the image.Image interface.
func (img *Image) ColorModel() color.Model {
	if img.Format() == FormatSingleChannel {
		return color.AlphaModel
	}
	return color.RGBAModel
}
