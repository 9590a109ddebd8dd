package hash

import "hash"

const djb2Seed uint32 = 5381

// DJB2 computes Bernstein's djb2 hash: h = h*33 + c (mod 2^32).
func DJB2(data []byte) uint32 {
	h := djb2Seed
	for _, c := range data {
		h = h*33 + uint32(c)
	}
	return h
}

type djb2 uint32

// NewDJB2 returns a streaming hash.Hash32 computing DJB2.
func NewDJB2() hash.Hash32 {
	d := djb2(djb2Seed)
	return &d
}

func (d *djb2) Write(p []byte) (int, error) {
	h := uint32(*d)
	for _, c := range p {
		h = h*33 + uint32(c)
	}
	*d = djb2(h)
	return len(p), nil
}

func (d *djb2) Sum(in []byte) []byte { return sum32(in, uint32(*d)) }
func (d *djb2) Sum32() uint32        { return uint32(*d) }
func (d *djb2) Reset()               { *d = djb2(djb2Seed) }
func (d *djb2) Size() int            { return 4 }
func (d *djb2) BlockSize() int       { return 1 }
