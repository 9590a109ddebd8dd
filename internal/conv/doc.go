// Package conv provides safe integer conversions and zero-copy byte views.
//
// The conversions perform bounds checking to prevent overflow when values
// coming from configuration files are narrowed to fixed-width types (e.g. a
// murmur3 seed read from YAML as int).
//
// AsBytes reinterprets a slice of fixed-size integers as the bytes backing it,
// so a []uint16 or []uint32 view over some memory hashes exactly like the
// []byte view over the same memory.
package conv
