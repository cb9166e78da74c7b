package decoder

import (
	"errors"
	"image"
	"testing"

	"github.com/ironsheep/region-decoder/internal/imaging"
	"github.com/ironsheep/region-decoder/internal/region"
)

func TestConfig_Selector(t *testing.T) {
	small := imaging.Header{Width: 100, Height: 100, Format: "png"}
	large := imaging.Header{Width: 5000, Height: 4000, Format: "jpeg"}

	tests := []struct {
		name   string
		cfg    Config
		header imaging.Header
		want   string
	}{
		{"default small", Config{}, small, "retained"},
		{"default large", Config{}, large, "retained"},
		{"forced fallback", Config{ForceFallback: true}, small, "naive"},
		{"under pixel limit", Config{MaxRetainedPixels: 10_000}, small, "retained"},
		{"over pixel limit", Config{MaxRetainedPixels: 10_000_000}, large, "naive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.cfg.Selector()(tt.header)(&Input{header: tt.header})
			if err != nil {
				t.Fatalf("factory failed: %v", err)
			}
			if b.Name() != tt.want {
				t.Errorf("backend: got %s, want %s", b.Name(), tt.want)
			}
			if b.Bounds() != (Bounds{Width: tt.header.Width, Height: tt.header.Height}) {
				t.Errorf("bounds: got %+v", b.Bounds())
			}
		})
	}
}

func TestOpen_SelectsBackend(t *testing.T) {
	path := writePatternPNG(t, 100, 100)

	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{"default", nil, "retained"},
		{"force fallback", []Option{WithConfig(Config{ForceFallback: true})}, "naive"},
		{"pixel limit", []Option{WithConfig(Config{MaxRetainedPixels: 9_999})}, "naive"},
		{"explicit backend wins", []Option{WithConfig(Config{ForceFallback: true}), WithBackend(NewRetained)}, "retained"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Open(FromPath(path), true, tt.opts...)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			defer d.Recycle()
			if d.Backend() != tt.want {
				t.Errorf("Backend: got %s, want %s", d.Backend(), tt.want)
			}
		})
	}
}

// TestBackends_SameOutputContract checks that both variants return the same
// size and broadly the same content for a spread of regions and sample sizes.
func TestBackends_SameOutputContract(t *testing.T) {
	data := encodePatternPNG(t, 123, 77)

	open := func(opt Option) *Decoder {
		d, err := Open(FromBytes(data, 0, len(data)), true, opt)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		t.Cleanup(d.Recycle)
		return d
	}
	fast := open(WithBackend(NewRetained))
	slow := open(WithBackend(NewNaive))

	rects := []image.Rectangle{
		image.Rect(0, 0, 123, 77),
		image.Rect(0, 0, 61, 38),
		image.Rect(61, 38, 123, 77),
		image.Rect(5, 7, 100, 70),
		image.Rect(122, 76, 123, 77),
	}
	for _, r := range rects {
		for _, s := range []int{1, 2, 4, 8, 32} {
			a, err := fast.DecodeRegion(r, &Options{SampleSize: s})
			if err != nil {
				t.Fatalf("retained %v/%d: %v", r, s, err)
			}
			b, err := slow.DecodeRegion(r, &Options{SampleSize: s})
			if err != nil {
				t.Fatalf("naive %v/%d: %v", r, s, err)
			}
			want := region.ScaledSize(r, s)
			if a.Bounds() != b.Bounds() || a.Bounds().Size() != want {
				t.Errorf("rect %v sample %d: retained %v, naive %v, want size %v",
					r, s, a.Bounds(), b.Bounds(), want)
			}
		}
	}
}

// fakeBackend records calls for lifecycle tests.
type fakeBackend struct {
	bounds   Bounds
	released int
	decoded  []image.Rectangle
	samples  []int
}

func (f *fakeBackend) Name() string   { return "fake" }
func (f *fakeBackend) Bounds() Bounds { return f.bounds }
func (f *fakeBackend) Release()       { f.released++ }

func (f *fakeBackend) DecodeRegion(rect image.Rectangle, sampleSize int) (image.Image, error) {
	f.decoded = append(f.decoded, rect)
	f.samples = append(f.samples, sampleSize)
	size := region.ScaledSize(rect, sampleSize)
	return image.NewRGBA(image.Rectangle{Max: size}), nil
}

func TestOpen_CustomBackend(t *testing.T) {
	data := encodePatternPNG(t, 400, 300)
	fake := &fakeBackend{bounds: Bounds{Width: 4000, Height: 3000}}

	d, err := Open(FromBytes(data, 0, len(data)), true, WithBackend(func(*Input) (Backend, error) {
		return fake, nil
	}))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	// bounds come from the backend, not from the header
	if _, err := d.DecodeBestRegion(800, 600); err != nil {
		t.Fatalf("DecodeBestRegion failed: %v", err)
	}
	if len(fake.decoded) != 1 || fake.decoded[0] != image.Rect(400, 300, 3600, 2700) || fake.samples[0] != 4 {
		t.Errorf("backend got rects %v samples %v, want [(400,300)-(3600,2700)] [4]", fake.decoded, fake.samples)
	}

	d.Recycle()
	d.Recycle()
	if fake.released != 1 {
		t.Errorf("Release called %d times, want 1", fake.released)
	}

	if _, err := d.DecodeRegion(image.Rect(0, 0, 1, 1), nil); !errors.Is(err, ErrRecycled) {
		t.Errorf("got %v, want ErrRecycled", err)
	}
	if len(fake.decoded) != 1 {
		t.Error("backend reached after recycle")
	}
}

func TestOpen_BackendErrors(t *testing.T) {
	data := encodePatternPNG(t, 10, 10)
	errBoom := errors.New("boom")

	t.Run("factory error", func(t *testing.T) {
		_, err := Open(FromBytes(data, 0, len(data)), true, WithBackend(func(*Input) (Backend, error) {
			return nil, errBoom
		}))
		if !errors.Is(err, errBoom) {
			t.Errorf("got %v, want errBoom", err)
		}
	})

	t.Run("no bounds", func(t *testing.T) {
		fake := &fakeBackend{}
		_, err := Open(FromBytes(data, 0, len(data)), true, WithBackend(func(*Input) (Backend, error) {
			return fake, nil
		}))
		if !errors.Is(err, ErrBoundsUnavailable) {
			t.Errorf("got %v, want ErrBoundsUnavailable", err)
		}
		if fake.released != 1 {
			t.Errorf("rejected backend released %d times, want 1", fake.released)
		}
	})
}
