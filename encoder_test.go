package yaz0

import "testing"

// encode builds a Yaz0 block from src with a greedy match search over the
// whole window. It exists only to produce round-trip inputs for tests.
func encode(tb testing.TB, src []byte) []byte {
	tb.Helper()

	out, err := Header{Size: uint32(len(src))}.AppendBinary(nil) // #nosec G115
	if err != nil {
		tb.Fatal(err)
	}

	flagPos := 0
	bit := 0
	i := 0
	for i < len(src) {
		if bit == 0 {
			flagPos = len(out)
			out = append(out, 0)
		}

		// Find longest match ending no further than WindowSize bytes back.
		bestLen, bestDist := 0, 0
		lo := max(0, i-WindowSize)
		for j := i - 1; j >= lo; j-- {
			n := 0
			for n < MaxRun && i+n < len(src) && src[j+n] == src[i+n] {
				n++
			}
			if n > bestLen {
				bestLen, bestDist = n, i-j
				if n == MaxRun {
					break
				}
			}
		}

		if bestLen >= 3 {
			d := bestDist - 1
			if bestLen <= MaxShortRun {
				out = append(out, byte(bestLen-MinRun)<<4|byte(d>>8), byte(d))
			} else {
				out = append(out, byte(d>>8), byte(d), byte(bestLen-MaxShortRun-1))
			}
			i += bestLen
		} else {
			out[flagPos] |= 0x80 >> bit
			out = append(out, src[i])
			i++
		}

		bit = (bit + 1) % FlagBits
	}

	return out
}

// block prepends a header declaring size to a hand-written payload.
func block(tb testing.TB, size uint32, payload ...byte) []byte {
	tb.Helper()

	out, err := Header{Size: size}.AppendBinary(nil)
	if err != nil {
		tb.Fatal(err)
	}

	return append(out, payload...)
}
