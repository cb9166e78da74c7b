package decoder

import (
	"image"

	"github.com/ironsheep/region-decoder/internal/imaging"
)

// Bounds is the pixel size of the full original image.
type Bounds struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect returns the bounds as a rectangle anchored at (0,0).
func (b Bounds) Rect() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// Backend is one region-decoding implementation bound to one opened image.
//
// DecodeRegion receives a rectangle already validated against Bounds and a
// sample size that is a power of two. The result must have bounds
// (0,0)-region.ScaledSize(rect, sampleSize), whatever strategy the backend
// uses to produce it.
type Backend interface {
	// Name identifies the implementation, e.g. "retained" or "naive".
	Name() string

	Bounds() Bounds

	DecodeRegion(rect image.Rectangle, sampleSize int) (image.Image, error)

	// Release frees everything the backend holds. It is called exactly once.
	Release()
}

// BackendFactory constructs a Backend for captured input.
type BackendFactory func(in *Input) (Backend, error)

// Selector chooses the backend variant for an image, given its header.
type Selector func(h imaging.Header) BackendFactory

// Config controls which backend variant Open selects.
type Config struct {
	// ForceFallback always selects the naive backend. Intended for debugging
	// and for comparing the two variants.
	ForceFallback bool

	// MaxRetainedPixels is the largest width*height the retained backend is
	// used for. Larger images fall back to the naive backend, which holds no
	// decoded pixels between calls. Zero means no limit.
	MaxRetainedPixels int
}

// Selector returns the selection strategy described by c.
func (c Config) Selector() Selector {
	return func(h imaging.Header) BackendFactory {
		if c.ForceFallback {
			return NewNaive
		}
		if c.MaxRetainedPixels > 0 && int64(h.Width)*int64(h.Height) > int64(c.MaxRetainedPixels) {
			return NewNaive
		}
		return NewRetained
	}
}
