package region

import (
	"fmt"
	"image"
	"math"
)

// RegionPlan is the result of Plan.
type RegionPlan struct {
	// SampleSize is the power-of-two downsample factor applied while decoding.
	SampleSize int `json:"sample_size"`

	// Crop is the region to decode, in original-image coordinates.
	Crop image.Rectangle `json:"crop"`
}

// OutputSize returns the size of the pixel grid produced by decoding Crop at
// SampleSize.
func (p RegionPlan) OutputSize() image.Point {
	return ScaledSize(p.Crop, p.SampleSize)
}

// ScaledSize maps r into a grid downsampled by sampleSize and returns the
// size of the mapped rectangle. Edges are divided individually, so adjacent
// regions tile without gaps. The result is never smaller than 1x1 for a
// non-empty r.
func ScaledSize(r image.Rectangle, sampleSize int) image.Point {
	if sampleSize < 1 {
		sampleSize = 1
	}
	w := r.Max.X/sampleSize - r.Min.X/sampleSize
	h := r.Max.Y/sampleSize - r.Min.Y/sampleSize
	if w < 1 && r.Dx() > 0 {
		w = 1
	}
	if h < 1 && r.Dy() > 0 {
		h = 1
	}
	return image.Pt(w, h)
}

// Plan computes the largest region of an originalW x originalH image that,
// decoded at the returned sample size, produces a requiredW x requiredH
// result anchored according to g.
//
// A required box that does not fit inside the original is first shrunk,
// keeping its aspect ratio, to the largest box that does. The sample size is
// then the largest power of two for which the downsampled original still
// covers the required box on both axes.
func Plan(originalW, originalH, requiredW, requiredH int, g Gravity) (RegionPlan, error) {
	if originalW <= 0 || originalH <= 0 || requiredW <= 0 || requiredH <= 0 {
		return RegionPlan{}, fmt.Errorf("%w: original %dx%d, required %dx%d",
			ErrInvalidDimensions, originalW, originalH, requiredW, requiredH)
	}

	requiredW, requiredH = ClampToFit(originalW, originalH, requiredW, requiredH)
	sampleSize := SampleSize(originalW, originalH, requiredW, requiredH)

	extentW := requiredW * sampleSize
	extentH := requiredH * sampleSize
	fromLeft := g.offsetX(originalW - extentW)
	fromTop := g.offsetY(originalH - extentH)

	return RegionPlan{
		SampleSize: sampleSize,
		Crop:       image.Rect(fromLeft, fromTop, fromLeft+extentW, fromTop+extentH),
	}, nil
}

// ClampToFit returns the required box unchanged when it fits inside the
// original. Otherwise the box is scaled down by the larger of its
// width and height overflow ratios and rounded to the nearest pixel, with each
// side kept at least 1.
func ClampToFit(originalW, originalH, requiredW, requiredH int) (int, int) {
	if requiredW <= originalW && requiredH <= originalH {
		return requiredW, requiredH
	}

	widthRatio := float64(requiredW) / float64(originalW)
	heightRatio := float64(requiredH) / float64(originalH)
	ratio := math.Max(widthRatio, heightRatio)

	w := int(math.Round(float64(requiredW) / ratio))
	h := int(math.Round(float64(requiredH) / ratio))
	return min(max(w, 1), originalW), min(max(h, 1), originalH)
}

// SampleSize returns the largest power of two s such that the original
// downsampled by s (integer division) still holds requiredW x requiredH.
// The required box must already fit inside the original; otherwise 1 is
// returned.
func SampleSize(originalW, originalH, requiredW, requiredH int) int {
	s := 1
	for {
		next := s * 2
		if requiredW > originalW/next || requiredH > originalH/next {
			return s
		}
		s = next
	}
}
