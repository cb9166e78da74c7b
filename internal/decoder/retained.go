package decoder

import (
	"image"

	"github.com/ironsheep/region-decoder/internal/imaging"
)

// retained decodes the image once, on the first region request, and keeps the
// decoded pixels. Every region is cropped before it is downsampled, so the
// per-call cost is proportional to the region rather than the image.
type retained struct {
	in     *Input
	bounds Bounds
	img    image.Image
}

// NewRetained is the accelerated BackendFactory.
func NewRetained(in *Input) (Backend, error) {
	h := in.Header()
	return &retained{in: in, bounds: Bounds{Width: h.Width, Height: h.Height}}, nil
}

func (r *retained) Name() string   { return "retained" }
func (r *retained) Bounds() Bounds { return r.bounds }

func (r *retained) DecodeRegion(rect image.Rectangle, sampleSize int) (image.Image, error) {
	if r.img == nil {
		img, err := r.in.decode()
		if err != nil {
			return nil, err
		}
		r.img = img
		// pixels are resident now; the encoded copy is no longer needed
		r.in.Release()
	}
	return imaging.CropThenDownsample(r.img, rect.Add(r.img.Bounds().Min), sampleSize), nil
}

func (r *retained) Release() {
	r.img = nil
	r.in.Release()
}
