package hash

import "encoding/hex"

// Hex32 renders a 32-bit digest as 8 lowercase, zero-padded hex digits
// (big-endian, i.e. the most significant nibble first).
func Hex32(v uint32) string {
	var b [4]byte
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
	return hex.EncodeToString(b[:])
}

// sum32 appends the big-endian representation of v to in.
func sum32(in []byte, v uint32) []byte {
	return append(in, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
