package decoder

import "errors"

// Errors returned by Open and by Decoder methods. Callers should compare with
// errors.Is; most are wrapped with additional context.
var (
	// ErrBoundsUnavailable is returned by Open when the image width and height
	// cannot be determined, typically because the format is unknown or the
	// header is corrupt.
	ErrBoundsUnavailable = errors.New("unable to decode image bounds")

	// ErrRecycled is returned by every operation other than IsRecycled and
	// Recycle once the decoder has been recycled.
	ErrRecycled = errors.New("region decoder has been recycled")

	// ErrUnsupportedFormat is returned when a backend fails to decode pixel
	// data.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrInvalidRegion is returned by DecodeRegion for an empty rectangle or one
	// not contained in the image bounds.
	ErrInvalidRegion = errors.New("invalid region")

	// ErrInvalidSource is returned by Open for a nil reader or file or an
	// out-of-range byte slice.
	ErrInvalidSource = errors.New("invalid image source")
)
