package crypto

import "encoding/binary"

// PAE implements Pre-Authentication Encoding: it serializes an ordered list
// of byte strings into a single buffer that unambiguously encodes the count
// and the content of each element. The element count and each element length
// are emitted as 8-byte little-endian integers, so no two distinct input
// sequences produce the same output.
//
// The result is the value fed to the AEAD as associated data and to the
// signature scheme as the signed message.
func PAE(pieces ...[]byte) []byte {
	size := 8 + 8*len(pieces)
	for _, p := range pieces {
		size += len(p)
	}

	buf := make([]byte, size)
	le64(buf[:8], len(pieces))
	off := 8
	for _, p := range pieces {
		le64(buf[off:off+8], len(p))
		off += 8
		off += copy(buf[off:], p)
	}
	return buf
}

// le64 writes n as an unsigned 64-bit little-endian integer with the most
// significant bit cleared, as the protocol requires.
func le64(dst []byte, n int) {
	binary.LittleEndian.PutUint64(dst, uint64(n)<<1>>1)
}
