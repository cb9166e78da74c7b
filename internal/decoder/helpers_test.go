package decoder

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

var (
	red   = [3]uint8{255, 0, 0}
	green = [3]uint8{0, 255, 0}
	blue  = [3]uint8{0, 0, 255}
	white = [3]uint8{255, 255, 255}
)

// createPatternImage creates an image with a different color in each quadrant:
// red top-left, green top-right, blue bottom-left, white bottom-right.
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255}
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255}
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255}
			} else {
				c = color.RGBA{255, 255, 255, 255}
			}
			img.Set(x, y, c)
		}
	}
	return img
}

// encodePatternPNG returns the PNG encoding of a pattern image.
func encodePatternPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, createPatternImage(width, height)); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return buf.Bytes()
}

// writePatternPNG writes a pattern PNG into the test's temp dir and returns
// its path.
func writePatternPNG(t *testing.T, width, height int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pattern.png")
	if err := os.WriteFile(path, encodePatternPNG(t, width, height), 0o644); err != nil {
		t.Fatalf("failed to write image: %v", err)
	}
	return path
}

func rgbAt(img image.Image, x, y int) [3]uint8 {
	b := img.Bounds()
	r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
	return [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8)}
}

// backendVariants opens decoders with each built-in backend.
var backendVariants = []struct {
	name string
	opt  Option
}{
	{"retained", WithBackend(NewRetained)},
	{"naive", WithConfig(Config{ForceFallback: true})},
}

// sameColor allows for rounding in the resampling filters.
func sameColor(a, b [3]uint8) bool {
	for i := range a {
		d := int(a[i]) - int(b[i])
		if d < -2 || d > 2 {
			return false
		}
	}
	return true
}
