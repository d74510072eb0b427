package ggfx

import (
	"errors"
	"image"
	"image/color"
	"testing"

	intImage "github.com/gogpu/ggfx/internal/image"
)

func mustImage(t testing.TB, f Format, w, h int) *Image {
	t.Helper()
	img, err := NewImage(f, w, h)
	if err != nil {
		t.Fatalf("NewImage(%v, %d, %d) = %v", f, w, h, err)
	}
	return img
}

func TestNewImage(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		w, h    int
		wantErr error
	}{
		{"argb", FormatARGB, 10, 5, nil},
		{"single channel", FormatSingleChannel, 3, 3, nil},
		{"zero width", FormatARGB, 0, 5, ErrInvalidDimensions},
		{"negative height", FormatSingleChannel, 4, -1, ErrInvalidDimensions},
		{"unknown format", Format(42), 4, 4, ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := NewImage(tt.format, tt.w, tt.h)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewImage() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewImage() error = %v", err)
			}
			if img.Width() != tt.w || img.Height() != tt.h || img.Format() != tt.format {
				t.Errorf("got %dx%d %v, want %dx%d %v",
					img.Width(), img.Height(), img.Format(), tt.w, tt.h, tt.format)
			}
			bd := img.BitmapData(ReadOnly)
			for _, b := range bd.Data {
				if b != 0 {
					t.Fatal("new image is not cleared")
				}
			}
		})
	}
}

func TestImage_Invalid(t *testing.T) {
	var nilImg *Image
	for _, img := range []*Image{nilImg, {}} {
		if img.IsValid() {
			t.Error("IsValid() = true for an image without pixels")
		}
		if img.Width() != 0 || img.Height() != 0 {
			t.Error("invalid image should have zero size")
		}
		if bd := img.BitmapData(ReadWrite); bd.Data != nil {
			t.Error("invalid image should have no bitmap data")
		}
		img.DuplicateIfShared()
		img.Release()
	}
}

func TestImage_CopyOnWrite(t *testing.T) {
	a := mustImage(t, FormatARGB, 4, 4)
	b := a.Share()

	if !a.IsShared() || !b.IsShared() {
		t.Fatal("shared handles should report IsShared")
	}

	// Read-only access keeps sharing.
	_ = b.BitmapData(ReadOnly)
	if !a.IsShared() {
		t.Fatal("ReadOnly access must not unshare")
	}

	bd := b.BitmapData(ReadWrite)
	bd.Data[0] = 200

	if a.IsShared() || b.IsShared() {
		t.Error("ReadWrite access should leave both handles unshared")
	}
	if r, _, _, _ := a.PixelAt(0, 0); r != 0 {
		t.Errorf("write leaked into the other handle: r = %d", r)
	}
	if r, _, _, _ := b.PixelAt(0, 0); r != 200 {
		t.Errorf("write lost: r = %d, want 200", r)
	}
}

func TestImage_GraphicsUnsharesTarget(t *testing.T) {
	a := mustImage(t, FormatARGB, 4, 4)
	b := a.Share()

	gc := NewGraphics(b)
	gc.SetColor(Red)
	gc.FillAll()

	if _, _, _, alpha := a.PixelAt(1, 1); alpha != 0 {
		t.Errorf("drawing into a shared image changed the other handle: alpha = %d", alpha)
	}
	if r, _, _, alpha := b.PixelAt(1, 1); r != 255 || alpha != 255 {
		t.Errorf("target pixel = (%d, alpha %d), want opaque red", r, alpha)
	}
}

func TestImage_Release(t *testing.T) {
	a := mustImage(t, FormatSingleChannel, 3, 3)
	b := a.Share()
	b.Release()

	if b.IsValid() {
		t.Error("released handle should be invalid")
	}
	if a.IsShared() {
		t.Error("remaining handle should no longer be shared")
	}
}

func TestImage_ConvertedToFormat(t *testing.T) {
	argb := mustImage(t, FormatARGB, 2, 1)
	bd := argb.BitmapData(ReadWrite)
	copy(bd.Data, []byte{10, 20, 30, 40, 0, 0, 0, 255})

	alpha := argb.ConvertedToFormat(FormatSingleChannel)
	if alpha.Format() != FormatSingleChannel {
		t.Fatalf("Format() = %v, want SingleChannel", alpha.Format())
	}
	if got := []byte{alpha.AlphaAt(0, 0), alpha.AlphaAt(1, 0)}; got[0] != 40 || got[1] != 255 {
		t.Errorf("alpha = %v, want [40 255]", got)
	}

	back := alpha.ConvertedToFormat(FormatARGB)
	if r, g, b, a := back.PixelAt(0, 0); r != 40 || g != 40 || b != 40 || a != 40 {
		t.Errorf("PixelAt(0, 0) = (%d, %d, %d, %d), want premultiplied white at 40", r, g, b, a)
	}

	same := argb.ConvertedToFormat(FormatARGB)
	if !same.IsShared() {
		t.Error("conversion to the same format should share pixels")
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	src.SetNRGBA(5, 5, color.NRGBA{R: 255, G: 0, B: 0, A: 128})
	src.SetNRGBA(6, 5, color.NRGBA{R: 0, G: 0, B: 255, A: 255})

	img, err := FromImage(src)
	if err != nil {
		t.Fatalf("FromImage() = %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 2, 1) {
		t.Fatalf("Bounds() = %v", img.Bounds())
	}
	if r, g, b, a := img.PixelAt(0, 0); r != 128 || g != 0 || b != 0 || a != 128 {
		t.Errorf("PixelAt(0, 0) = (%d, %d, %d, %d), want (128, 0, 0, 128)", r, g, b, a)
	}

	out := img.ToNRGBA()
	if got := out.NRGBAAt(1, 0); got != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("ToNRGBA().NRGBAAt(1, 0) = %v", got)
	}

	if _, err := FromImage(nil); !errors.Is(err, ErrNilImage) {
		t.Errorf("FromImage(nil) error = %v, want ErrNilImage", err)
	}

	mask := image.NewAlpha(image.Rect(0, 0, 3, 2))
	mask.SetAlpha(2, 1, color.Alpha{A: 90})
	argb, err := FromImage(mask)
	if err != nil {
		t.Fatalf("FromImage(*image.Alpha) = %v", err)
	}
	if argb.Format() != FormatARGB {
		t.Errorf("Format() = %v, want ARGB", argb.Format())
	}
	if r, g, b, a := argb.PixelAt(2, 1); r != 90 || g != 90 || b != 90 || a != 90 {
		t.Errorf("PixelAt(2, 1) = (%d, %d, %d, %d), want white at alpha 90", r, g, b, a)
	}
	argb.Clear()
	if mask.AlphaAt(2, 1).A != 90 {
		t.Error("FromImage must not share pixels with the source")
	}
}

func TestFromAlpha(t *testing.T) {
	parent := image.NewAlpha(image.Rect(0, 0, 8, 6))
	parent.SetAlpha(3, 5, color.Alpha{A: 200})

	// The sub-image ends on the parent's last row.
	sub := parent.SubImage(image.Rect(2, 3, 5, 6)).(*image.Alpha)
	img, err := FromAlpha(sub)
	if err != nil {
		t.Fatalf("FromAlpha() = %v", err)
	}
	if img.Format() != FormatSingleChannel || img.Bounds() != image.Rect(0, 0, 3, 3) {
		t.Fatalf("got %v %v, want SingleChannel 3x3", img.Format(), img.Bounds())
	}
	if a := img.AlphaAt(1, 2); a != 200 {
		t.Errorf("AlphaAt(1, 2) = %d, want 200", a)
	}

	img.BitmapData(ReadWrite).Data[0] = 7
	if parent.AlphaAt(2, 3).A != 7 {
		t.Error("FromAlpha must wrap the pixels without copying")
	}

	tests := []struct {
		name    string
		src     *image.Alpha
		wantErr error
	}{
		{"nil", nil, ErrNilImage},
		{"empty", image.NewAlpha(image.Rect(4, 4, 4, 9)), ErrInvalidDimensions},
		{"short stride", &image.Alpha{Pix: make([]byte, 16), Stride: 2, Rect: image.Rect(0, 0, 4, 4)}, intImage.ErrInvalidStride},
		{"short pixels", &image.Alpha{Pix: make([]byte, 10), Stride: 4, Rect: image.Rect(0, 0, 4, 4)}, intImage.ErrDataTooSmall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromAlpha(tt.src); !errors.Is(err, tt.wantErr) {
				t.Errorf("FromAlpha() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestScratchPool(t *testing.T) {
	pool := NewScratchPool(2)

	a := pool.Get(FormatSingleChannel, 8, 8)
	if !a.IsValid() {
		t.Fatal("Get() returned an invalid image")
	}
	a.BitmapData(ReadWrite).Data[3] = 99
	pool.Put(a)

	if a.IsValid() {
		t.Error("Put() should invalidate the handle")
	}
	if pool.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", pool.Len())
	}

	b := pool.Get(FormatSingleChannel, 8, 8)
	if b.AlphaAt(3, 0) != 0 {
		t.Error("recycled image was not cleared")
	}

	if bad := pool.Get(FormatARGB, 0, 8); bad.IsValid() {
		t.Error("Get() with zero width should return an invalid image")
	}

	// Shared images are never recycled.
	c := pool.Get(FormatSingleChannel, 8, 8)
	keep := c.Share()
	pool.Put(c)
	if pool.Len() != 0 {
		t.Errorf("Len() = %d after putting a shared image, want 0", pool.Len())
	}
	if !keep.IsValid() || keep.IsShared() {
		t.Error("other handle should stay valid and become unshared")
	}
}
