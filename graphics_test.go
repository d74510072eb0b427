package ggfx

import (
	"bytes"
	"image"
	"testing"
)

func TestGraphics_FillRectInt(t *testing.T) {
	img := mustImage(t, FormatARGB, 10, 10)
	gc := NewGraphics(img)
	gc.SetColor(Blue)
	gc.FillRectInt(image.Rect(2, 3, 5, 7))

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := image.Pt(x, y).In(image.Rect(2, 3, 5, 7))
			_, _, b, a := img.PixelAt(x, y)
			if inside && (b != 255 || a != 255) {
				t.Fatalf("pixel (%d,%d) inside = (%d, %d), want opaque blue", x, y, b, a)
			}
			if !inside && a != 0 {
				t.Fatalf("pixel (%d,%d) outside has alpha %d", x, y, a)
			}
		}
	}
	if gc.DrawCount() != 1 {
		t.Errorf("DrawCount() = %d, want 1", gc.DrawCount())
	}
}

func TestGraphics_Clip(t *testing.T) {
	img := mustImage(t, FormatSingleChannel, 10, 10)
	gc := NewGraphics(img, WithClip(image.Rect(5, 0, 20, 10)))

	if got := gc.ClipBounds(); got != image.Rect(5, 0, 10, 10) {
		t.Fatalf("ClipBounds() = %v, want clip limited to the image", got)
	}

	gc.SetColor(White)
	gc.FillAll()
	if img.AlphaAt(4, 4) != 0 || img.AlphaAt(5, 4) != 255 {
		t.Errorf("clip not honoured: alpha(4,4)=%d alpha(5,4)=%d", img.AlphaAt(4, 4), img.AlphaAt(5, 4))
	}

	if gc.ReduceClipRegion(image.Rect(0, 0, 2, 2)) {
		t.Error("ReduceClipRegion to a disjoint area should report nothing left")
	}
	before := gc.DrawCount()
	gc.FillRectInt(image.Rect(0, 0, 10, 10))
	if gc.DrawCount() != before {
		t.Error("drawing with an empty clip should not count as a draw")
	}
}

func TestGraphics_SaveRestoreState(t *testing.T) {
	gc := NewGraphics(mustImage(t, FormatARGB, 8, 8))
	gc.SetColor(Red)
	gc.SetOpacity(0.5)

	gc.SaveState()
	gc.SetGradientFill(NewGradient(Black, Pt(0, 0), White, Pt(8, 0), false))
	gc.SetOpacity(1)
	gc.ReduceClipRegion(image.Rect(0, 0, 2, 2))
	gc.RestoreState()

	if gc.Opacity() != 0.5 {
		t.Errorf("Opacity() = %v after restore, want 0.5", gc.Opacity())
	}
	if gc.ClipBounds() != image.Rect(0, 0, 8, 8) {
		t.Errorf("ClipBounds() = %v after restore", gc.ClipBounds())
	}
	if gc.state.gradient != nil || gc.state.color != Red {
		t.Error("fill was not restored")
	}

	// Unbalanced restore is harmless.
	gc.RestoreState()
	gc.RestoreState()
}

func TestGraphics_FillPathCoverage(t *testing.T) {
	img := mustImage(t, FormatSingleChannel, 20, 20)
	gc := NewGraphics(img)
	gc.SetColor(White)

	p := NewPath()
	p.Rectangle(4, 4, 8, 8)
	gc.FillPath(p, Translate(2.5, 0))

	// x from 6.5 to 14.5
	tests := []struct {
		x, y int
		want byte
	}{
		{10, 8, 255},
		{6, 8, 127},
		{14, 8, 127},
		{5, 8, 0},
		{15, 8, 0},
		{10, 3, 0},
	}
	for _, tt := range tests {
		got := img.AlphaAt(tt.x, tt.y)
		if d := int(got) - int(tt.want); d < -2 || d > 2 {
			t.Errorf("alpha(%d,%d) = %d, want about %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestGraphics_FillPathMatchesMaskDraw(t *testing.T) {
	p := NewPath()
	p.Circle(10, 9, 6.3)

	mask := mustImage(t, FormatSingleChannel, 20, 20)
	mg := NewGraphics(mask)
	mg.SetColor(White)
	mg.FillPath(p, Identity())

	viaPath := mustImage(t, FormatARGB, 20, 20)
	gc := NewGraphics(viaPath)
	gc.SetColor(Blue.WithAlpha(0.6))
	gc.FillPath(p, Identity())

	viaMask := mustImage(t, FormatARGB, 20, 20)
	mc := NewGraphics(viaMask)
	mc.SetColor(Blue.WithAlpha(0.6))
	mc.DrawImageAt(mask, 0, 0, true)

	if !bytes.Equal(viaPath.BitmapData(ReadOnly).Data, viaMask.BitmapData(ReadOnly).Data) {
		t.Error("FillPath differs from drawing its coverage mask with the same brush")
	}
	if gc.DrawCount() != 1 {
		t.Errorf("DrawCount() = %d, want 1", gc.DrawCount())
	}
}

func TestGraphics_FillPathOutsideClip(t *testing.T) {
	gc := NewGraphics(mustImage(t, FormatARGB, 10, 10))
	p := NewPath()
	p.Circle(100, 100, 5)
	gc.FillPath(p, Identity())
	gc.FillPath(NewPath(), Identity())

	if gc.DrawCount() != 0 {
		t.Errorf("DrawCount() = %d, want 0", gc.DrawCount())
	}
}

func TestGraphics_Opacity(t *testing.T) {
	img := mustImage(t, FormatARGB, 4, 4)
	gc := NewGraphics(img, WithOpacity(0.5))
	gc.SetColor(White)
	gc.FillAll()

	r, _, _, a := img.PixelAt(0, 0)
	if r != 128 || a != 128 {
		t.Errorf("half-opaque white = (%d, alpha %d), want (128, 128)", r, a)
	}

	gc.SetOpacity(7)
	if gc.Opacity() != 1 {
		t.Errorf("SetOpacity(7) should clamp to 1, got %v", gc.Opacity())
	}
}

func TestGraphics_GradientFill(t *testing.T) {
	img := mustImage(t, FormatARGB, 11, 1)
	gc := NewGraphics(img)
	gc.SetGradientFill(NewGradient(Black, Pt(0.5, 0), Black.WithAlpha(0), Pt(10.5, 0), false))
	gc.FillAll()

	prev := byte(255)
	for x := 0; x < 11; x++ {
		a := img.AlphaAt(x, 0)
		if a > prev {
			t.Fatalf("alpha should fall along the gradient: x=%d alpha=%d prev=%d", x, a, prev)
		}
		prev = a
	}
	if img.AlphaAt(0, 0) != 255 || img.AlphaAt(10, 0) != 0 {
		t.Errorf("gradient ends = %d, %d, want 255, 0", img.AlphaAt(0, 0), img.AlphaAt(10, 0))
	}
}

func TestGraphics_DrawImageAt(t *testing.T) {
	src := mustImage(t, FormatARGB, 2, 2)
	copy(src.BitmapData(ReadWrite).Data, []byte{
		0, 0, 255, 255, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 128, 0, 128,
	})

	t.Run("pixels", func(t *testing.T) {
		dst := mustImage(t, FormatARGB, 4, 4)
		gc := NewGraphics(dst)
		gc.DrawImageAt(src, 1, 1, false)

		if _, _, b, a := dst.PixelAt(1, 1); b != 255 || a != 255 {
			t.Errorf("(1,1) = blue %d alpha %d, want opaque blue", b, a)
		}
		if _, g, _, a := dst.PixelAt(2, 2); g != 128 || a != 128 {
			t.Errorf("(2,2) = green %d alpha %d, want half green", g, a)
		}
		if _, _, _, a := dst.PixelAt(0, 0); a != 0 {
			t.Errorf("(0,0) alpha = %d, want untouched", a)
		}
	})

	t.Run("alpha as brush", func(t *testing.T) {
		dst := mustImage(t, FormatARGB, 4, 4)
		gc := NewGraphics(dst)
		gc.SetColor(Red)
		gc.DrawImageAt(src, 0, 0, true)

		if r, _, b, a := dst.PixelAt(0, 0); r != 255 || b != 0 || a != 255 {
			t.Errorf("(0,0) = (%d, _, %d, %d), want opaque red", r, b, a)
		}
		if r, g, _, a := dst.PixelAt(1, 1); r != 128 || g != 0 || a != 128 {
			t.Errorf("(1,1) = (%d, %d, _, %d), want half red", r, g, a)
		}
	})

	t.Run("partially clipped", func(t *testing.T) {
		dst := mustImage(t, FormatARGB, 4, 4)
		gc := NewGraphics(dst)
		gc.DrawImageAt(src, -1, -1, false)
		if _, g, _, a := dst.PixelAt(0, 0); g != 128 || a != 128 {
			t.Errorf("(0,0) = green %d alpha %d, want half green", g, a)
		}
	})

	t.Run("fully clipped", func(t *testing.T) {
		gc := NewGraphics(mustImage(t, FormatARGB, 4, 4))
		gc.DrawImageAt(src, 10, 10, false)
		gc.DrawImageAt(&Image{}, 0, 0, false)
		if gc.DrawCount() != 0 {
			t.Errorf("DrawCount() = %d, want 0", gc.DrawCount())
		}
	})
}

func TestGraphicsOptions(t *testing.T) {
	pool := NewScratchPool(1)
	gc := NewGraphics(mustImage(t, FormatARGB, 4, 4), WithScratchPool(pool), WithOpacity(-3))

	if gc.ScratchPool() != pool {
		t.Error("WithScratchPool was not applied")
	}
	if gc.Opacity() != 0 {
		t.Errorf("Opacity() = %v, want 0", gc.Opacity())
	}
	if NewGraphics(mustImage(t, FormatARGB, 4, 4)).ScratchPool() != DefaultScratchPool() {
		t.Error("default graphics should use DefaultScratchPool")
	}
}
