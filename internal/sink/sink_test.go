package sink

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

func readBack(t *testing.T, c Codec, r io.Reader) []byte {
	t.Helper()

	var dec io.Reader
	switch c {
	case CodecNone:
		dec = r
	case CodecZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			t.Fatal(err)
		}
		defer zr.Close()
		dec = zr
	case CodecLZ4:
		dec = lz4.NewReader(r)
	case CodecSnappy:
		dec = snappy.NewReader(r)
	case CodecBrotli:
		dec = brotli.NewReader(r)
	case CodecGzip:
		gr, err := gzip.NewReader(r)
		if err != nil {
			t.Fatal(err)
		}
		dec = gr
	default:
		t.Fatalf("no reader for %q", c)
	}

	out, err := io.ReadAll(dec)
	if err != nil {
		t.Fatal(err)
	}

	return out
}

func TestWriteFileCodecs(t *testing.T) {
	data := bytes.Repeat([]byte("RARC decoded payload "), 200)
	dir := t.TempDir()

	for _, c := range Codecs {
		t.Run(string(c), func(t *testing.T) {
			path := NewNamer("in/FlagObj01.arc", dir, c).Name(3)
			if err := WriteFile(path, data, c); err != nil {
				t.Fatal(err)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()

			if got := readBack(t, c, f); !bytes.Equal(got, data) {
				t.Fatalf("got %d bytes back, want %d", len(got), len(data))
			}
		})
	}

	// Only final files remain.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != len(Codecs) {
		t.Fatalf("found %d files, want %d", len(entries), len(Codecs))
	}
}

func TestWriteFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "x.rarc")
	if err := WriteFile(path, []byte("x"), CodecNone); err == nil {
		t.Fatal("expected error")
	}
}

func TestNamer(t *testing.T) {
	n := NewNamer("/data/FlagObj01.arc", "out", CodecZstd)
	if got, want := n.Name(1), filepath.Join("out", "FlagObj01_1.rarc.zst"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	n = NewNamer("archive", "", CodecNone)
	if got := n.Name(0); got != "archive_0.rarc" {
		t.Fatalf("got %q", got)
	}
}

func TestParseCodec(t *testing.T) {
	for _, c := range Codecs {
		got, err := ParseCodec(string(c))
		if err != nil || got != c {
			t.Fatalf("ParseCodec(%q) = %q, %v", c, got, err)
		}
	}

	if got, err := ParseCodec("ZSTD"); err != nil || got != CodecZstd {
		t.Fatalf("case-insensitive parse failed: %q, %v", got, err)
	}
	if got, err := ParseCodec(""); err != nil || got != CodecNone {
		t.Fatalf("empty parse: %q, %v", got, err)
	}
	if _, err := ParseCodec("rar"); !errors.Is(err, ErrUnknownCodec) {
		t.Fatalf("want ErrUnknownCodec, got %v", err)
	}
}

func TestWriteFileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}

	path := filepath.Join(t.TempDir(), "a_0.rarc")
	if err := WriteFile(path, []byte("rarc"), CodecNone); err != nil {
		t.Fatal(err)
	}

	st, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if st.Mode().Perm() != FileMode {
		t.Fatalf("mode %v, want %v", st.Mode().Perm(), FileMode)
	}
}
