package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// RegionResult contains a decoded region encoded for transport.
type RegionResult struct {
	Width        int          `json:"width"`
	Height       int          `json:"height"`
	ImageBase64  string       `json:"image_base64"`
	MimeType     string       `json:"mime_type"`
	AverageColor ColorSummary `json:"average_color"`
}

// EncodeRegion encodes img as base64 PNG together with its size and average
// color.
func EncodeRegion(img image.Image) (*RegionResult, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode region: %w", err)
	}

	return &RegionResult{
		Width:        img.Bounds().Dx(),
		Height:       img.Bounds().Dy(),
		ImageBase64:  base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:     "image/png",
		AverageColor: Summarize(AverageColor(img)),
	}, nil
}

// Write encodes img to w in the format implied by name's extension
// (".png", ".jpg", ".gif", ".bmp", ".tif"). Quality applies to JPEG only;
// values outside 1-100 select the library default.
func Write(w io.Writer, img image.Image, name string, quality int) error {
	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		return fmt.Errorf("unsupported output format for %s: %w", name, err)
	}

	var opts []imaging.EncodeOption
	if quality >= 1 && quality <= 100 {
		opts = append(opts, imaging.JPEGQuality(quality))
	}
	if err := imaging.Encode(w, img, format, opts...); err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	return nil
}
