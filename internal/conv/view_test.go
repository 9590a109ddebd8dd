package conv

import "unsafe"

// unsafeView reinterprets raw as a slice of T. len(raw) must be a multiple of
// the element size and raw must be suitably aligned.
func unsafeView[T Integer](raw []byte) []T {
	var zero T
	n := len(raw) / int(unsafe.Sizeof(zero))
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(raw))), n)
}
