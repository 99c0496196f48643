package yaz0

// flagReader hands out the flags of one control byte, most significant bit first.
type flagReader struct {
	b byte // Remaining flags, next one in bit 7.
	n int  // Number of flags left in b.
}

// reset installs a fresh control byte.
func (f *flagReader) reset(b byte) {
	f.b = b
	f.n = FlagBits
}

// next pops the next flag. ok is false once all eight are used.
func (f *flagReader) next() (literal, ok bool) {
	if f.n == 0 {
		return false, false
	}

	literal = f.b&0x80 != 0
	f.b <<= 1
	f.n--

	return literal, true
}

// Flags expands a control byte into its eight instructions, MSB first.
// True means literal, false means back-reference.
func Flags(b byte) [FlagBits]bool {
	var out [FlagBits]bool
	for i := range out {
		out[i] = b&(0x80>>i) != 0
	}

	return out
}
