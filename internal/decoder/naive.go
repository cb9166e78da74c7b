package decoder

import (
	"image"

	"github.com/ironsheep/region-decoder/internal/imaging"
)

// naive holds only the encoded image. Each region request decodes the whole
// image, downsamples all of it and then crops in memory. Output is identical
// in size and placement to retained; only the cost differs.
type naive struct {
	in     *Input
	bounds Bounds
}

// NewNaive is the fallback BackendFactory.
func NewNaive(in *Input) (Backend, error) {
	h := in.Header()
	return &naive{in: in, bounds: Bounds{Width: h.Width, Height: h.Height}}, nil
}

func (n *naive) Name() string   { return "naive" }
func (n *naive) Bounds() Bounds { return n.bounds }

func (n *naive) DecodeRegion(rect image.Rectangle, sampleSize int) (image.Image, error) {
	img, err := n.in.decode()
	if err != nil {
		return nil, err
	}
	return imaging.DownsampleThenCrop(img, rect.Add(img.Bounds().Min), sampleSize), nil
}

func (n *naive) Release() {
	n.in.Release()
}
