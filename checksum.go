package yaz0

import "github.com/pierrec/xxHash/xxHash32"

// Digest returns the xxHash32 (seed 0) of decoded block data.
func Digest(data []byte) uint32 {
	return xxHash32.Checksum(data, 0)
}
