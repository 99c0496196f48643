package yaz0

import (
	"context"
	"fmt"
	"io"
)

// Decompress decodes the Yaz0 block at the beginning of src.
// Bytes after the end of the block are ignored.
func Decompress(src []byte) ([]byte, error) {
	h, err := ParseHeader(src, 0)
	if err != nil {
		return nil, err
	}

	return DecodeBlock(src, HeaderSize, h.Size)
}

// DecodeBlock decodes one payload starting at src[payloadStart] into a new
// buffer of exactly size bytes. No partial output is returned on failure.
func DecodeBlock(src []byte, payloadStart int, size uint32) ([]byte, error) {
	out, _, err := DecodeBlockN(src, payloadStart, size)
	return out, err
}

// DecodeBlockN is like DecodeBlock but also returns the source position just
// past the last byte of the payload.
func DecodeBlockN(src []byte, payloadStart int, size uint32) ([]byte, int, error) {
	if payloadStart < 0 {
		return nil, 0, ErrNegativeOffset
	}
	if err := checkSize(src, payloadStart, size); err != nil {
		return nil, payloadStart, err
	}

	out := make([]byte, size)
	end, err := decode(src, payloadStart, out, int(size))
	if err != nil {
		return nil, end, err
	}

	return out, end, nil
}

// MeasureBlock walks a payload without producing output and returns the
// source position just past its end. It fails exactly where DecodeBlock would.
func MeasureBlock(src []byte, payloadStart int, size uint32) (int, error) {
	if payloadStart < 0 {
		return 0, ErrNegativeOffset
	}
	if err := checkSize(src, payloadStart, size); err != nil {
		return payloadStart, err
	}

	return decode(src, payloadStart, nil, int(size))
}

// checkSize rejects a declared size the remaining source cannot produce.
// Every 3 payload bytes yield at most MaxRun output bytes, so this never
// refuses a well-formed block, and it runs before the output is allocated.
func checkSize(src []byte, payloadStart int, size uint32) error {
	left := uint64(max(len(src)-payloadStart, 0))
	if limit := (left/3 + 1) * MaxRun; uint64(size) > limit {
		return fmt.Errorf("%w: declared size %d needs more than the %d bytes left", ErrTruncatedStream, size, left)
	}

	return nil
}

// DecompressFromReader reads r to EOF and decodes every Yaz0 block in it.
// Options nil means DefaultOptions().
func DecompressFromReader(r io.Reader, opts *Options) ([][]byte, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	results, err := DecodeAll(context.Background(), src, opts)
	if err != nil {
		return nil, err
	}

	out := make([][]byte, len(results))
	for i := range results {
		out[i] = results[i].Data
	}

	return out, nil
}

// decode runs the flag/back-reference loop until size output bytes exist.
// With out == nil only positions are tracked.
func decode(src []byte, payloadStart int, out []byte, size int) (int, error) {
	c := cursor{data: src, pos: payloadStart}
	var flags flagReader
	pos := 0

	for pos < size {
		literal, ok := flags.next()
		if !ok {
			b, err := c.readByte()
			if err != nil {
				return c.pos, fmt.Errorf("%w: control byte at 0x%X, %d of %d bytes decoded", err, c.pos, pos, size)
			}
			flags.reset(b)
			literal, _ = flags.next()
		}

		// Literal: one byte straight from the source.
		if literal {
			b, err := c.readByte()
			if err != nil {
				return c.pos, fmt.Errorf("%w: literal at 0x%X, %d of %d bytes decoded", err, c.pos, pos, size)
			}
			if out != nil {
				out[pos] = b
			}
			pos++
			continue
		}

		at := c.pos
		ref, err := resolveBackRef(&c, pos)
		if err != nil {
			return c.pos, fmt.Errorf("%w: back-reference at 0x%X", err, at)
		}
		if ref.Length > size-pos {
			return c.pos, fmt.Errorf("%w: back-reference at 0x%X runs %d bytes past the declared size %d",
				ErrCorruptStream, at, pos+ref.Length-size, size)
		}

		if out != nil {
			copyRun(out, pos, ref)
		}
		pos += ref.Length
	}

	return c.pos, nil
}
