// Command region-decode reads image bounds and decodes image regions from the
// command line.
//
//	region-decode [options] bounds input.jpg
//	region-decode [options] region input.jpg output.png x1 y1 x2 y2
//	region-decode [options] -width W -height H best input.jpg output.png
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/ironsheep/region-decoder/internal/decoder"
	"github.com/ironsheep/region-decoder/internal/imaging"
	"github.com/ironsheep/region-decoder/internal/region"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("region-decode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	width := fs.Int("width", 0, "Required output width for best")
	height := fs.Int("height", 0, "Required output height for best")
	gravity := fs.String("gravity", "center", "Anchor for best, e.g. center, top-left, bottom|right")
	sample := fs.Int("sample", 1, "Downsample factor for region (rounded down to a power of two)")
	fallback := fs.Bool("fallback", false, "Always use the naive backend")
	quality := fs.Int("quality", 0, "JPEG quality 1-100 (0 for the default)")
	verbose := fs.Bool("v", false, "Log backend selection to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: region-decode [options] bounds input\n")
		fmt.Fprintf(stderr, "       region-decode [options] region input output x1 y1 x2 y2\n")
		fmt.Fprintf(stderr, "       region-decode [options] best input output\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 2 {
		fs.Usage()
		return 1
	}

	opts := []decoder.Option{decoder.WithConfig(decoder.Config{ForceFallback: *fallback})}
	if *verbose {
		opts = append(opts, decoder.WithLogger(log.New(stderr, "", 0)))
	}

	cmd, input := fs.Arg(0), fs.Arg(1)
	rest := fs.Args()[2:]

	d, err := decoder.Open(decoder.FromPath(input), true, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "Error opening input file: %v\n", err)
		return 1
	}
	defer d.Recycle()

	switch cmd {
	case "bounds":
		b, _ := d.Bounds()
		format, _ := d.Format()
		fmt.Fprintf(stdout, "%s: %dx%d %s (%s backend)\n", input, b.Width, b.Height, format, d.Backend())
		return 0

	case "region":
		if len(rest) != 5 {
			fs.Usage()
			return 1
		}
		var c [4]int
		for i, s := range rest[1:] {
			if c[i], err = strconv.Atoi(s); err != nil {
				fmt.Fprintf(stderr, "Error parsing coordinate %q: %v\n", s, err)
				return 1
			}
		}
		rect := image.Rectangle{Min: image.Pt(c[0], c[1]), Max: image.Pt(c[2], c[3])}
		img, err := d.DecodeRegion(rect, &decoder.Options{SampleSize: *sample})
		if err != nil {
			fmt.Fprintf(stderr, "Error decoding region: %v\n", err)
			return 1
		}
		return writeOutput(stdout, stderr, rest[0], img, *quality)

	case "best":
		if len(rest) != 1 {
			fs.Usage()
			return 1
		}
		g, err := region.ParseGravity(*gravity)
		if err != nil {
			fmt.Fprintf(stderr, "Error parsing gravity: %v\n", err)
			return 1
		}
		plan, err := d.PlanBestRegion(*width, *height, g)
		if err != nil {
			fmt.Fprintf(stderr, "Error planning region: %v\n", err)
			return 1
		}
		img, err := d.DecodeRegion(plan.Crop, &decoder.Options{SampleSize: plan.SampleSize})
		if err != nil {
			fmt.Fprintf(stderr, "Error decoding region: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Planned crop %v at sample size %d\n", plan.Crop, plan.SampleSize)
		return writeOutput(stdout, stderr, rest[0], img, *quality)
	}

	fmt.Fprintf(stderr, "Unknown command %q\n", cmd)
	fs.Usage()
	return 1
}

func writeOutput(stdout, stderr io.Writer, name string, img image.Image, quality int) int {
	out, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating output file: %v\n", err)
		return 1
	}
	if err := imaging.Write(out, img, name, quality); err != nil {
		out.Close()
		fmt.Fprintf(stderr, "Error encoding output: %v\n", err)
		return 1
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(stderr, "Error writing output file: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Wrote %s (%dx%d)\n", name, img.Bounds().Dx(), img.Bounds().Dy())
	return 0
}
