package server

import (
	"errors"
	"sync"
	"testing"

	"github.com/ironsheep/region-decoder/internal/decoder"
)

func TestDecoderCache_ReusesDecoder(t *testing.T) {
	c := NewDecoderCache(decoder.Config{}, nil)
	path := createTestImageFile(t, 30, 20)

	var first, second *decoder.Decoder
	if err := c.With(path, func(d *decoder.Decoder) error { first = d; return nil }); err != nil {
		t.Fatalf("With failed: %v", err)
	}
	if err := c.With(path, func(d *decoder.Decoder) error { second = d; return nil }); err != nil {
		t.Fatalf("With failed: %v", err)
	}
	if first != second {
		t.Error("second call should reuse the cached decoder")
	}
	if c.Len() != 1 {
		t.Errorf("Len: got %d, want 1", c.Len())
	}
}

func TestDecoderCache_PropagatesErrors(t *testing.T) {
	c := NewDecoderCache(decoder.Config{}, nil)

	err := c.With("/nonexistent/image.png", func(*decoder.Decoder) error {
		t.Error("fn should not run when the image cannot be opened")
		return nil
	})
	if err == nil {
		t.Fatal("expected an error")
	}

	path := createTestImageFile(t, 10, 10)
	errBoom := errors.New("boom")
	if err := c.With(path, func(*decoder.Decoder) error { return errBoom }); !errors.Is(err, errBoom) {
		t.Errorf("got %v, want errBoom", err)
	}
}

func TestDecoderCache_EvictRecycles(t *testing.T) {
	c := NewDecoderCache(decoder.Config{}, nil)
	path := createTestImageFile(t, 10, 10)

	var d *decoder.Decoder
	c.With(path, func(got *decoder.Decoder) error { d = got; return nil })

	if !c.Evict(path) {
		t.Error("Evict should report a cached decoder")
	}
	if !d.IsRecycled() {
		t.Error("evicted decoder should be recycled")
	}
	if c.Evict(path) {
		t.Error("second Evict should report nothing cached")
	}
}

func TestDecoderCache_Clear(t *testing.T) {
	c := NewDecoderCache(decoder.Config{}, nil)
	var decoders []*decoder.Decoder
	for _, size := range []int{8, 16, 24} {
		path := createTestImageFile(t, size, size)
		c.With(path, func(d *decoder.Decoder) error { decoders = append(decoders, d); return nil })
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear: got %d, want 0", c.Len())
	}
	for i, d := range decoders {
		if !d.IsRecycled() {
			t.Errorf("decoder %d not recycled", i)
		}
	}
}

func TestDecoderCache_Concurrent(t *testing.T) {
	c := NewDecoderCache(decoder.Config{}, nil)
	paths := []string{createTestImageFile(t, 40, 40), createTestImageFile(t, 50, 30)}

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- c.With(paths[i%2], func(d *decoder.Decoder) error {
				_, err := d.DecodeBestRegion(10, 10)
				return err
			})
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("concurrent decode failed: %v", err)
		}
	}
	if c.Len() != 2 {
		t.Errorf("Len: got %d, want 2", c.Len())
	}
}
