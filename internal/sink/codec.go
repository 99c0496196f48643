package sink

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// ErrUnknownCodec is returned by ParseCodec for unsupported names.
var ErrUnknownCodec = errors.New("unknown codec")

// Codec selects how decoded blocks are stored on disk.
type Codec string

// Supported codecs.
const (
	CodecNone   Codec = "none"
	CodecZstd   Codec = "zstd"
	CodecLZ4    Codec = "lz4"
	CodecSnappy Codec = "snappy"
	CodecBrotli Codec = "brotli"
	CodecGzip   Codec = "gzip"
)

// Codecs lists every supported codec.
var Codecs = []Codec{CodecNone, CodecZstd, CodecLZ4, CodecSnappy, CodecBrotli, CodecGzip}

// ParseCodec maps a codec name to a Codec. Empty means CodecNone.
func ParseCodec(s string) (Codec, error) {
	if s == "" {
		return CodecNone, nil
	}

	c := Codec(strings.ToLower(s))
	for _, known := range Codecs {
		if c == known {
			return c, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownCodec, s)
}

// Ext returns the file name suffix for the codec, including the dot.
func (c Codec) Ext() string {
	switch c {
	case CodecZstd:
		return ".zst"
	case CodecLZ4:
		return ".lz4"
	case CodecSnappy:
		return ".sz"
	case CodecBrotli:
		return ".br"
	case CodecGzip:
		return ".gz"
	default:
		return ""
	}
}

// NewWriter wraps w. Closing the returned writer flushes the codec but does
// not close w.
func (c Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	switch c {
	case CodecNone, "":
		return nopCloser{w}, nil
	case CodecZstd:
		return zstd.NewWriter(w)
	case CodecLZ4:
		return lz4.NewWriter(w), nil
	case CodecSnappy:
		return snappy.NewBufferedWriter(w), nil
	case CodecBrotli:
		return brotli.NewWriterLevel(w, brotli.DefaultCompression), nil
	case CodecGzip:
		return gzip.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, string(c))
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
