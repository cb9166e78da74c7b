package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/region-decoder/internal/region"
)

// CropThenDownsample extracts rect from img and reduces it by sampleSize.
//
// Only the pixels inside rect are resampled, which makes this the cheap path
// when the full image is already decoded and retained. The result has the
// size given by region.ScaledSize(rect, sampleSize) and its bounds start at
// (0,0).
//
// Parameters:
//   - img: The decoded source image.
//   - rect: Region to extract, in img's coordinate space. Must lie within
//     img.Bounds().
//   - sampleSize: Downsample factor; values below 1 are treated as 1.
//
// A box filter is used so each output pixel averages the sampleSize x
// sampleSize source pixels it replaces.
func CropThenDownsample(img image.Image, rect image.Rectangle, sampleSize int) *image.NRGBA {
	cropped := imaging.Crop(img, rect)
	size := region.ScaledSize(rect, sampleSize)
	if size.X == cropped.Bounds().Dx() && size.Y == cropped.Bounds().Dy() {
		return cropped
	}
	return imaging.Resize(cropped, size.X, size.Y, imaging.Box)
}

// DownsampleThenCrop reduces the whole of img by sampleSize and then extracts
// rect, mapped into the downsampled grid.
//
// This is the order a plain full-image decoder with a subsampling option
// works in: the entire image is resampled before anything is discarded. The
// result has the same size as CropThenDownsample for the same arguments.
//
// Parameters:
//   - img: The decoded source image.
//   - rect: Region to extract, in img's coordinate space (before downsampling).
//   - sampleSize: Downsample factor; values below 1 are treated as 1.
func DownsampleThenCrop(img image.Image, rect image.Rectangle, sampleSize int) *image.NRGBA {
	if sampleSize < 1 {
		sampleSize = 1
	}
	b := img.Bounds()
	rect = rect.Sub(b.Min)

	var scaled image.Image = img
	if sampleSize > 1 {
		w := max(b.Dx()/sampleSize, 1)
		h := max(b.Dy()/sampleSize, 1)
		scaled = transform.Resize(img, w, h, transform.Linear)
	}

	sb := scaled.Bounds()
	size := region.ScaledSize(rect, sampleSize)
	origin := image.Pt(rect.Min.X/sampleSize, rect.Min.Y/sampleSize)
	// Keep the mapped rectangle inside the downsampled grid when the
	// region touches a partial sample at the right or bottom edge.
	origin.X = max(min(origin.X, sb.Dx()-size.X), 0)
	origin.Y = max(min(origin.Y, sb.Dy()-size.Y), 0)

	return imaging.Crop(scaled, image.Rectangle{Min: origin, Max: origin.Add(size)}.Add(sb.Min))
}
