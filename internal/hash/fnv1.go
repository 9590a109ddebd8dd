package hash

import "hash"

const (
	fnv32Offset uint32 = 2166136261
	fnv32Prime         = 16777619.0
)

// FNV1 computes the 32-bit FNV-1 hash (multiply, then XOR) as produced by
// the reference digests this package must match.
//
// The reference performs the multiply in IEEE-754 double precision and only
// then reduces modulo 2^32, keeping the running state as a signed 32-bit
// integer between rounds. Products above 2^53 lose their low bits, so the
// output differs from textbook FNV-1 (hash/fnv) for most non-empty inputs:
// FNV1("a") is 0x050c5d41, not 0x050c5d7e.
func FNV1(data []byte) uint32 {
	h := int64(fnv32Offset)
	for _, c := range data {
		h = fnv1Round(h, c)
	}
	return uint32(h)
}

// fnv1Round multiplies in float64, reduces mod 2^32 and XORs c, returning
// the state as a signed 32-bit value. The product is integral and below
// 2^56 in magnitude, so the int64 conversion is exact.
func fnv1Round(h int64, c byte) int64 {
	p := uint32(int64(float64(h) * fnv32Prime))
	return int64(int32(p ^ uint32(c)))
}

type fnv1 int64

// NewFNV1 returns a streaming hash.Hash32 computing FNV1.
func NewFNV1() hash.Hash32 {
	f := fnv1(fnv32Offset)
	return &f
}

func (f *fnv1) Write(p []byte) (int, error) {
	h := int64(*f)
	for _, c := range p {
		h = fnv1Round(h, c)
	}
	*f = fnv1(h)
	return len(p), nil
}

func (f *fnv1) Sum(in []byte) []byte { return sum32(in, uint32(*f)) }
func (f *fnv1) Sum32() uint32        { return uint32(*f) }
func (f *fnv1) Reset()               { *f = fnv1(fnv32Offset) }
func (f *fnv1) Size() int            { return 4 }
func (f *fnv1) BlockSize() int       { return 1 }
