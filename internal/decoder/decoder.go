package decoder

import (
	"fmt"
	"image"
	"log"

	"github.com/ironsheep/region-decoder/internal/region"
)

// Decoder decodes rectangular regions of one opened image.
//
// A Decoder is not safe for concurrent use. Callers sharing one across
// goroutines must serialize all calls, including Recycle.
type Decoder struct {
	backend  Backend
	bounds   Bounds
	format   string
	name     string
	logger   *log.Logger
	recycled bool
}

// Open reads the header of src and binds a backend to it.
//
// If shareable is true the decoder may keep a shallow reference to the input
// (a byte slice, a file, or a path it reads again later). If false it copies
// the encoded data once during Open.
//
// Open fails with ErrBoundsUnavailable when the image format is unknown or its
// dimensions cannot be read, and with ErrInvalidSource for unusable sources.
func Open(src Source, shareable bool, opts ...Option) (*Decoder, error) {
	o := defaultOpenOptions()
	for _, opt := range opts {
		opt(&o)
	}

	in, err := capture(src, shareable)
	if err != nil {
		return nil, err
	}

	h := in.Header()
	b, err := o.selector(h)(in)
	if err != nil {
		in.Release()
		return nil, err
	}

	bounds := b.Bounds()
	if bounds.Width <= 0 || bounds.Height <= 0 {
		b.Release()
		return nil, fmt.Errorf("%w: %s backend reports %dx%d",
			ErrBoundsUnavailable, b.Name(), bounds.Width, bounds.Height)
	}

	o.logger.Printf("opened %s (%s %dx%d) with %s backend",
		in.Name(), h.Format, bounds.Width, bounds.Height, b.Name())

	return &Decoder{
		backend: b,
		bounds:  bounds,
		format:  h.Format,
		name:    in.Name(),
		logger:  o.logger,
	}, nil
}

// DecodeRegion decodes rect, given in original-image coordinates, and
// downsamples it according to opts. The result's bounds start at (0,0).
func (d *Decoder) DecodeRegion(rect image.Rectangle, opts *Options) (image.Image, error) {
	if d.recycled {
		return nil, ErrRecycled
	}
	if rect.Empty() || !rect.In(d.bounds.Rect()) {
		return nil, fmt.Errorf("%w: %v not inside %dx%d", ErrInvalidRegion, rect, d.bounds.Width, d.bounds.Height)
	}
	return d.backend.DecodeRegion(rect, opts.sampleSize())
}

// PlanBestRegion computes the region and sample size DecodeBestRegion would
// use, without decoding.
func (d *Decoder) PlanBestRegion(requiredWidth, requiredHeight int, gravity region.Gravity) (region.RegionPlan, error) {
	if d.recycled {
		return region.RegionPlan{}, ErrRecycled
	}
	return region.Plan(d.bounds.Width, d.bounds.Height, requiredWidth, requiredHeight, gravity)
}

// DecodeBestRegion decodes the largest region of the image that, downsampled
// by a power of two, fills a requiredWidth x requiredHeight box anchored by
// gravity. Gravity defaults to region.Center. A box larger than the image is
// first shrunk to the largest box of the same aspect ratio that fits.
func (d *Decoder) DecodeBestRegion(requiredWidth, requiredHeight int, gravity ...region.Gravity) (image.Image, error) {
	g := region.Center
	if len(gravity) > 0 {
		g = gravity[0]
	}

	plan, err := d.PlanBestRegion(requiredWidth, requiredHeight, g)
	if err != nil {
		return nil, err
	}
	return d.DecodeRegion(plan.Crop, &Options{SampleSize: plan.SampleSize})
}

// Width returns the original image width.
func (d *Decoder) Width() (int, error) {
	if d.recycled {
		return 0, ErrRecycled
	}
	return d.bounds.Width, nil
}

// Height returns the original image height.
func (d *Decoder) Height() (int, error) {
	if d.recycled {
		return 0, ErrRecycled
	}
	return d.bounds.Height, nil
}

// Bounds returns the original image size.
func (d *Decoder) Bounds() (Bounds, error) {
	if d.recycled {
		return Bounds{}, ErrRecycled
	}
	return d.bounds, nil
}

// Format returns the format name reported while opening, e.g. "jpeg".
func (d *Decoder) Format() (string, error) {
	if d.recycled {
		return "", ErrRecycled
	}
	return d.format, nil
}

// Backend returns the name of the backend variant in use. It remains
// available after Recycle for diagnostics.
func (d *Decoder) Backend() string {
	if d.backend == nil {
		return ""
	}
	return d.backend.Name()
}

// IsRecycled reports whether Recycle has been called.
func (d *Decoder) IsRecycled() bool {
	return d.recycled
}

// Recycle releases the backend and marks the decoder as dead. Every later
// call except IsRecycled and Recycle fails with ErrRecycled. Calling Recycle
// again has no effect.
func (d *Decoder) Recycle() {
	if d.recycled {
		return
	}
	d.recycled = true
	d.backend.Release()
	d.bounds = Bounds{}
	d.format = ""
	d.logger.Printf("recycled %s", d.name)
}
