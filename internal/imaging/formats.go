package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Header describes an encoded image as read from its header, without
// decoding pixel data.
type Header struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the registered format name reported by the decoder:
	// "jpeg", "png", "gif", "bmp", "tiff" or "webp".
	Format string `json:"format"`
}

// ReadHeader reads only as much of r as needed to learn the image format and
// dimensions.
//
// Parameters:
//   - r: Reader positioned at the start of the encoded image.
//
// Returns:
//   - Header: Format and dimensions.
//   - error: Non-nil if the format is not registered or the header is corrupt.
//
// # Partial Reads
//
// DecodeConfig consumes an unspecified prefix of r. Callers that need to
// decode the same bytes afterwards must supply a fresh reader.
func ReadHeader(r io.Reader) (Header, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return Header{}, fmt.Errorf("failed to read image header: %w", err)
	}
	return Header{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}

// Decode fully decodes an image from r.
//
// The concrete type depends on the format and color model (e.g., *image.YCbCr
// for most JPEGs, *image.NRGBA for PNGs with alpha).
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}

// FormatFromExtension guesses a format name from a file extension.
//
// # Format Detection
//
//   - ".png" -> "png"
//   - ".jpg", ".jpeg" -> "jpeg"
//   - ".gif" -> "gif"
//   - ".bmp" -> "bmp"
//   - ".tif", ".tiff" -> "tiff"
//   - ".webp" -> "webp"
//   - Other extensions -> "unknown"
//
// Detection is based on the name only. Decoders identify formats by content,
// so this is used for messages and output-format selection, not decoding.
func FormatFromExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	case ".webp":
		return "webp"
	}
	return "unknown"
}
