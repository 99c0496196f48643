package yaz0

import (
	"encoding/binary"
	"math/bits"
)

var nativeBigEndian = func() bool {
	var b [4]byte
	binary.NativeEndian.PutUint32(b[:], 1)
	return b[3] == 1
}()

// BigEndianToNative converts a 32-bit value loaded raw from big-endian
// storage into host byte order.
func BigEndianToNative(v uint32) uint32 {
	if nativeBigEndian {
		return v
	}

	return bits.ReverseBytes32(v)
}

// NativeToBigEndian is the inverse of BigEndianToNative.
func NativeToBigEndian(v uint32) uint32 {
	return BigEndianToNative(v)
}
