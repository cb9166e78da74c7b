package imaging

import (
	"image"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components (0-255).
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorSummary describes a single color in several notations.
type ColorSummary struct {
	Hex string   `json:"hex"` // Hex format "#RRGGBB"
	RGB RGBColor `json:"rgb"`
	HSL HSLColor `json:"hsl"`
}

// maxAverageSamples bounds the number of pixels read by AverageColor.
const maxAverageSamples = 1 << 16

// AverageColor returns the mean color of img.
//
// Pixels are averaged in linear RGB, not in gamma-encoded sRGB, so the result
// matches what a box downsample to a single pixel would look like. Fully
// transparent pixels are ignored; partially transparent ones contribute their
// un-premultiplied color. Large images are sampled on a regular grid of at most
// maxAverageSamples points.
//
// An image with no opaque pixels averages to black.
func AverageColor(img image.Image) colorful.Color {
	b := img.Bounds()
	step := 1
	if n := b.Dx() * b.Dy(); n > maxAverageSamples {
		step = int(math.Ceil(math.Sqrt(float64(n) / maxAverageSamples)))
	}

	var sr, sg, sb float64
	count := 0
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			r, g, bl := c.LinearRgb()
			sr += r
			sg += g
			sb += bl
			count++
		}
	}
	if count == 0 {
		return colorful.Color{}
	}
	n := float64(count)
	return colorful.LinearRgb(sr/n, sg/n, sb/n).Clamped()
}

// Summarize renders c as hex, 8-bit RGB and HSL.
func Summarize(c colorful.Color) ColorSummary {
	c = c.Clamped()
	r, g, b := c.RGB255()
	h, s, l := c.Hsl()
	return ColorSummary{
		Hex: strings.ToUpper(c.Hex()),
		RGB: RGBColor{R: r, G: g, B: b},
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
	}
}
