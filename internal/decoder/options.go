package decoder

import (
	"io"
	"log"

	"github.com/ironsheep/region-decoder/internal/imaging"
)

// Options control how DecodeRegion downsamples. A nil *Options decodes at
// full resolution.
type Options struct {
	// SampleSize reduces each axis by this factor: 2 returns an image a
	// quarter of the pixel count. Values below 1 are treated as 1 and other
	// values are rounded down to the nearest power of two.
	SampleSize int
}

func (o *Options) sampleSize() int {
	if o == nil {
		return 1
	}
	return NormalizeSampleSize(o.SampleSize)
}

// NormalizeSampleSize returns the sample size DecodeRegion uses for n: the
// largest power of two not above n, and 1 for n < 2.
func NormalizeSampleSize(n int) int {
	s := 1
	for s*2 <= n {
		s *= 2
	}
	return s
}

// Option configures Open.
type Option func(*openOptions)

type openOptions struct {
	selector Selector
	logger   *log.Logger
}

func defaultOpenOptions() openOptions {
	return openOptions{
		selector: Config{}.Selector(),
		logger:   log.New(io.Discard, "", 0),
	}
}

// WithConfig selects the backend according to cfg.
func WithConfig(cfg Config) Option {
	return func(o *openOptions) { o.selector = cfg.Selector() }
}

// WithBackend skips capability selection and always uses f.
func WithBackend(f BackendFactory) Option {
	return func(o *openOptions) {
		o.selector = func(_ imaging.Header) BackendFactory { return f }
	}
}

// WithLogger sends backend selection and lifecycle messages to l.
func WithLogger(l *log.Logger) Option {
	return func(o *openOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
