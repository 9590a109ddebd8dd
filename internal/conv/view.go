package conv

import "unsafe"

// Integer is the set of fixed-size integer element types AsBytes accepts.
type Integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// AsBytes returns the memory backing s as a byte slice without copying.
// The result aliases s and must be treated as read-only.
func AsBytes[T Integer](s []T) []byte {
	if len(s) == 0 {
		return []byte{}
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(zero)))
}
