package provider

import "github.com/hupe1980/hashgo/internal/conv"

// Integer is the set of element types accepted by Bytes.
type Integer interface {
	conv.Integer
}

// Bytes returns the memory backing s as bytes, without copying, so that a
// []uint16 or []uint32 view over some buffer digests exactly like the []byte
// view over the same buffer. The result aliases s.
func Bytes[T Integer](s []T) []byte {
	return conv.AsBytes(s)
}
