package image

import (
	"sync"
	"testing"
)

func TestPool_GetPut(t *testing.T) {
	pool := NewPool(4)

	buf1 := pool.Get(16, 8, FormatAlpha8)
	if buf1 == nil {
		t.Fatal("Get returned nil")
	}
	if buf1.Width() != 16 || buf1.Height() != 8 {
		t.Errorf("got dimensions %dx%d, want 16x8", buf1.Width(), buf1.Height())
	}
	buf1.Data()[3] = 200

	pool.Put(buf1)
	if pool.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", pool.Len())
	}

	buf2 := pool.Get(16, 8, FormatAlpha8)
	if buf2 != buf1 {
		t.Error("expected the pooled buffer to be reused")
	}
	if buf2.Data()[3] != 0 {
		t.Error("reused buffer was not cleared")
	}
	if buf2.Shared() {
		t.Error("reused buffer must hold a single reference")
	}
}

func TestPool_DifferentKeys(t *testing.T) {
	pool := NewPool(4)

	a := pool.Get(4, 4, FormatAlpha8)
	pool.Put(a)

	b := pool.Get(4, 4, FormatRGBAPremul)
	if b == a {
		t.Error("buffers of different formats must not be mixed")
	}
	c := pool.Get(5, 4, FormatAlpha8)
	if c == a {
		t.Error("buffers of different sizes must not be mixed")
	}
}

func TestPool_SharedNotRecycled(t *testing.T) {
	pool := NewPool(4)

	buf := pool.Get(4, 4, FormatAlpha8)
	buf.Retain()
	pool.Put(buf)
	if pool.Len() != 0 {
		t.Error("a shared buffer must not enter the pool")
	}
}

func TestPool_MaxPerBucket(t *testing.T) {
	pool := NewPool(2)
	for range 5 {
		buf, _ := NewImageBuf(3, 3, FormatAlpha8)
		pool.Put(buf)
	}
	if pool.Len() != 2 {
		t.Errorf("Len() = %d, want 2", pool.Len())
	}
}

func TestPool_InvalidDimensions(t *testing.T) {
	pool := NewPool(2)
	if buf := pool.Get(0, 3, FormatAlpha8); buf != nil {
		t.Error("Get with zero width must return nil")
	}
	pool.Put(nil)
}

func TestPool_Concurrent(t *testing.T) {
	pool := NewPool(8)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				buf := pool.Get(8, 8, FormatAlpha8)
				buf.Data()[0] = 1
				pool.Put(buf)
			}
		}()
	}
	wg.Wait()

	if pool.Len() > 8 {
		t.Errorf("Len() = %d exceeds bucket limit", pool.Len())
	}
}
