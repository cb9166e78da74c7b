package decoder

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/ironsheep/region-decoder/internal/imaging"
)

type sourceKind int

const (
	kindPath sourceKind = iota + 1
	kindBytes
	kindReader
	kindFile
)

// Source identifies where encoded image data comes from. Use FromPath,
// FromBytes, FromReader or FromFile to construct one; the zero value is
// invalid.
type Source struct {
	kind   sourceKind
	path   string
	data   []byte
	offset int
	length int
	r      io.Reader
	f      *os.File
}

// FromPath reads the image from the named file.
func FromPath(path string) Source {
	return Source{kind: kindPath, path: path}
}

// FromBytes reads the image from data[offset:offset+length].
func FromBytes(data []byte, offset, length int) Source {
	return Source{kind: kindBytes, data: data, offset: offset, length: length}
}

// FromReader reads the image from a stream. The stream's position is left
// wherever reading the encoded data left it.
func FromReader(r io.Reader) Source {
	return Source{kind: kindReader, r: r}
}

// FromFile reads the image from an open file, starting at offset 0. The file's
// own offset is not changed, so f can be used again as is.
func FromFile(f *os.File) Source {
	return Source{kind: kindFile, f: f}
}

func (s Source) String() string {
	switch s.kind {
	case kindPath:
		return s.path
	case kindBytes:
		return fmt.Sprintf("bytes[%d:%d]", s.offset, s.offset+s.length)
	case kindReader:
		return "stream"
	case kindFile:
		if s.f != nil {
			return s.f.Name()
		}
		return "file"
	}
	return "invalid source"
}

// Input is encoded image data captured from a Source by Open, together with
// the header read from it. Backends re-read the pixel data through Open as
// often as they need.
type Input struct {
	name   string
	header imaging.Header

	// exactly one of path, file or buffered data is set until Release
	path     string
	file     *os.File
	size     int64
	data     []byte
	buffered bool
}

// capture resolves src into an Input and reads its header.
//
// With shareable set, paths and files are re-read on demand and byte slices
// are referenced rather than copied. Otherwise the encoded bytes are copied
// once and the source is no longer touched. Streams are always buffered,
// since they cannot be read twice.
func capture(src Source, shareable bool) (*Input, error) {
	in := &Input{name: src.String()}

	switch src.kind {
	case kindPath:
		if src.path == "" {
			return nil, fmt.Errorf("%w: empty path", ErrInvalidSource)
		}
		if shareable {
			in.path = src.path
			break
		}
		data, err := os.ReadFile(src.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read image: %w", err)
		}
		in.data, in.buffered = data, true

	case kindBytes:
		if src.offset < 0 || src.length < 0 || src.offset+src.length > len(src.data) {
			return nil, fmt.Errorf("%w: range [%d:%d] outside %d bytes",
				ErrInvalidSource, src.offset, src.offset+src.length, len(src.data))
		}
		data := src.data[src.offset : src.offset+src.length]
		if !shareable {
			data = bytes.Clone(data)
		}
		in.data, in.buffered = data, true

	case kindReader:
		if src.r == nil {
			return nil, fmt.Errorf("%w: nil reader", ErrInvalidSource)
		}
		data, err := io.ReadAll(src.r)
		if err != nil {
			return nil, fmt.Errorf("failed to read image stream: %w", err)
		}
		in.data, in.buffered = data, true

	case kindFile:
		if src.f == nil {
			return nil, fmt.Errorf("%w: nil file", ErrInvalidSource)
		}
		stat, err := src.f.Stat()
		if err != nil {
			return nil, fmt.Errorf("failed to stat file: %w", err)
		}
		if shareable {
			in.file, in.size = src.f, stat.Size()
			break
		}
		data, err := io.ReadAll(io.NewSectionReader(src.f, 0, stat.Size()))
		if err != nil {
			return nil, fmt.Errorf("failed to read image file: %w", err)
		}
		in.data, in.buffered = data, true

	default:
		return nil, fmt.Errorf("%w: zero Source", ErrInvalidSource)
	}

	rc, err := in.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	h, err := imaging.ReadHeader(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBoundsUnavailable, in.name, err)
	}
	if h.Width <= 0 || h.Height <= 0 {
		return nil, fmt.Errorf("%w: %s reports %dx%d", ErrBoundsUnavailable, in.name, h.Width, h.Height)
	}
	in.header = h
	return in, nil
}

// Name describes where the data came from, for messages.
func (in *Input) Name() string { return in.name }

// Header returns the format and dimensions read at open time.
func (in *Input) Header() imaging.Header { return in.header }

// Open returns a reader over the complete encoded image.
func (in *Input) Open() (io.ReadCloser, error) {
	switch {
	case in.path != "":
		f, err := os.Open(in.path)
		if err != nil {
			return nil, fmt.Errorf("failed to open image: %w", err)
		}
		return f, nil
	case in.file != nil:
		return io.NopCloser(io.NewSectionReader(in.file, 0, in.size)), nil
	case in.buffered:
		return io.NopCloser(bytes.NewReader(in.data)), nil
	}
	return nil, fmt.Errorf("%w: input released", ErrInvalidSource)
}

// decode fully decodes the encoded image.
func (in *Input) decode() (image.Image, error) {
	rc, err := in.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	img, _, err := imaging.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnsupportedFormat, in.name, err)
	}
	return img, nil
}

// Release drops the references to the encoded data. A shared file is not
// closed; it still belongs to the caller.
func (in *Input) Release() {
	in.path = ""
	in.file = nil
	in.size = 0
	in.data = nil
	in.buffered = false
}
