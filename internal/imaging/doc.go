// Package imaging provides the pixel-level helpers behind region decoding.
//
// It registers the supported image formats, reads image headers without
// decoding pixel data, resamples decoded images into cropped and downsampled
// regions, encodes results for transport and summarizes the average color of
// a region. All operations work with standard Go image.Image types.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, Min is inclusive (top-left) and Max is exclusive (bottom-right)
//
// Results produced by the resampling functions always have bounds starting at
// (0,0), whatever the bounds of the source image.
//
// # Supported Formats
//
// JPEG, PNG and GIF are registered from the standard library; BMP, TIFF and WebP
// from golang.org/x/image. Any other format registered with image.RegisterFormat
// by the program is accepted as well.
//
// # Resampling Order
//
// CropThenDownsample touches only the pixels of the requested region.
// DownsampleThenCrop resamples the entire image first. Both return results of
// identical size for identical arguments; the second exists for decoders that
// can only subsample whole images.
//
// # Thread Safety
//
// All functions are stateless and can be called concurrently on different
// images. Operations on the same image should be synchronized by the caller if
// the image is mutable.
package imaging
