package yaz0

import (
	"fmt"
	"iter"
)

// Block is one Yaz0 block discovered inside a source buffer.
type Block struct {
	Index        int    // Sequence number among the blocks found so far.
	Offset       int    // Position of the magic.
	PayloadStart int    // Position of the first control byte.
	End          int    // Position just past the payload.
	Header       Header // Parsed header.
}

// Decode decodes the block payload from src, the buffer it was located in.
func (b Block) Decode(src []byte) ([]byte, error) {
	return DecodeBlock(src, b.PayloadStart, b.Header.Size)
}

// CompressedSize returns the number of source bytes the block occupies, header included.
func (b Block) CompressedSize() int {
	return b.End - b.Offset
}

// FindMagic returns the position of the first magic at or after from.
// It returns ErrNoBlockFound when fewer than four bytes remain without a match.
func FindMagic(src []byte, from int) (int, error) {
	if from < 0 {
		return 0, ErrNegativeOffset
	}

	for i := from; i+len(Magic) <= len(src); i++ {
		if hasMagic(src, i) {
			return i, nil
		}
	}

	return 0, ErrNoBlockFound
}

// Locate yields every Yaz0 block in src in file order. Each block is walked
// to find its end, and the next scan starts there. A failing candidate is
// yielded with a *BlockError; with opts.SkipCorrupt the scan then resumes one
// byte after its magic, otherwise the sequence ends.
// The sequence ends without an error once no further magic is found, so an
// input without blocks yields nothing; use FindMagic or DecodeAll to get
// ErrNoBlockFound.
// Options nil means DefaultOptions().
func Locate(src []byte, opts *Options) iter.Seq2[Block, error] {
	opts = opts.orDefault()

	return func(yield func(Block, error) bool) {
		walk(src, opts, false, func(blk Block, _ []byte, err error) bool {
			return yield(blk, err)
		})
	}
}

// walk drives the scan behind Locate. With decodeData set each block is decoded
// in the same pass that finds its end and the data is handed to yield.
func walk(src []byte, opts *Options, decodeData bool, yield func(Block, []byte, error) bool) {
	scan, index := 0, 0
	for {
		off, err := FindMagic(src, scan)
		if err != nil {
			return
		}

		blk, data, err := locateAt(src, off, index, opts.MaxBlockSize, decodeData)
		if err != nil {
			if !yield(blk, nil, &BlockError{Index: index, Offset: off, Err: err}) || !opts.SkipCorrupt {
				return
			}
			scan = off + 1
			continue
		}

		if !yield(blk, data, nil) {
			return
		}
		index++
		scan = blk.End
	}
}

// locateAt parses the header at off and walks the payload behind it,
// decoding it when decodeData is set.
func locateAt(src []byte, off, index int, maxSize uint32, decodeData bool) (Block, []byte, error) {
	blk := Block{Index: index, Offset: off, PayloadStart: off + HeaderSize}

	h, err := ParseHeader(src, off)
	if err != nil {
		return blk, nil, err
	}
	blk.Header = h

	if maxSize != 0 && h.Size > maxSize {
		return blk, nil, fmt.Errorf("%w: declared size %d exceeds limit %d", ErrCorruptStream, h.Size, maxSize)
	}

	var data []byte
	var end int
	if decodeData {
		data, end, err = DecodeBlockN(src, blk.PayloadStart, h.Size)
	} else {
		end, err = MeasureBlock(src, blk.PayloadStart, h.Size)
	}
	if err != nil {
		return blk, nil, err
	}
	blk.End = end

	return blk, data, nil
}
