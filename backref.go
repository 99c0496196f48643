package yaz0

import "fmt"

// BackRef describes one copy run inside the decoded buffer.
type BackRef struct {
	Start  int // Index of the first byte to copy.
	Length int // Number of bytes to copy.
}

// Distance returns how far behind pos the run starts.
func (r BackRef) Distance(pos int) int {
	return pos - r.Start
}

// resolveBackRef reads a 2- or 3-byte descriptor at the cursor. The distance
// is measured from pos, the output index of the first byte the run writes.
func resolveBackRef(c *cursor, pos int) (BackRef, error) {
	b1, b2, err := c.read2()
	if err != nil {
		return BackRef{}, err
	}

	dist := (int(b1&0x0F)<<8 | int(b2)) + 1

	var length int
	if b1>>4 != 0 {
		length = int(b1>>4) + MinRun
	} else {
		b3, err := c.readByte()
		if err != nil {
			return BackRef{}, err
		}
		length = int(b3) + MaxShortRun + 1
	}

	start := pos - dist
	if start < 0 {
		return BackRef{}, fmt.Errorf("%w: distance %d exceeds %d decoded bytes", ErrCorruptStream, dist, pos)
	}

	return BackRef{Start: start, Length: length}, nil
}

// DecodeBackRef decodes the descriptor at the beginning of p for a run that
// starts writing at output index pos. It returns the descriptor and the
// number of bytes of p it occupies (2 or 3).
func DecodeBackRef(p []byte, pos int) (BackRef, int, error) {
	c := cursor{data: p}
	ref, err := resolveBackRef(&c, pos)

	return ref, c.pos, err
}

// copyRun copies ref into out at pos. Overlapping runs are copied one byte at
// a time so the run can repeat bytes it has just written.
func copyRun(out []byte, pos int, ref BackRef) {
	if ref.Distance(pos) >= ref.Length {
		copy(out[pos:pos+ref.Length], out[ref.Start:ref.Start+ref.Length])
		return
	}

	for k := 0; k < ref.Length; k++ {
		out[pos+k] = out[ref.Start+k]
	}
}
