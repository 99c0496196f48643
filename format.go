package yaz0

import "encoding/binary"

// Yaz0 format constants.
const (
	Magic       = "Yaz0" // Block tag, stored without terminator.
	HeaderSize  = 16     // Magic + uncompressed size + two reserved words.
	FlagBits    = 8      // Instruction units per control byte.
	WindowSize  = 4096   // Largest back-reference distance (12-bit field + 1).
	MinRun      = 2      // Shortest back-reference run.
	MaxShortRun = 17     // Longest run encoded in the high nibble.
	MaxRun      = 273    // Longest run encoded with the extra length byte.
)

// Header is the fixed part that precedes every Yaz0 payload.
type Header struct {
	Size     uint32    // Uncompressed size of the payload.
	Reserved [2]uint32 // Not interpreted by the decoder.
}

// ParseHeader parses the header of the block whose magic starts at src[off].
func ParseHeader(src []byte, off int) (Header, error) {
	if off < 0 {
		return Header{}, ErrNegativeOffset
	}
	if !hasMagic(src, off) {
		return Header{}, ErrBadMagic
	}
	if len(src)-off < HeaderSize {
		return Header{}, ErrTruncatedStream
	}

	p := src[off+len(Magic) : off+HeaderSize]
	return Header{
		Size: binary.BigEndian.Uint32(p[0:4]),
		Reserved: [2]uint32{
			binary.BigEndian.Uint32(p[4:8]),
			binary.BigEndian.Uint32(p[8:12]),
		},
	}, nil
}

// AppendBinary appends the 16-byte encoded header to b.
func (h Header) AppendBinary(b []byte) ([]byte, error) {
	b = append(b, Magic...)
	b = binary.BigEndian.AppendUint32(b, h.Size)
	b = binary.BigEndian.AppendUint32(b, h.Reserved[0])
	b = binary.BigEndian.AppendUint32(b, h.Reserved[1])

	return b, nil
}

func hasMagic(src []byte, off int) bool {
	return off >= 0 && len(src)-off >= len(Magic) && string(src[off:off+len(Magic)]) == Magic
}
