package hash

import (
	"hash"
	"hash/crc32"
)

// crc32Poly is the bit-reversed IEEE 802.3 polynomial.
const crc32Poly uint32 = 0xEDB88320

// CRC32 computes the IEEE CRC-32 checksum of data without a lookup table.
func CRC32(data []byte) uint32 {
	return ^crc32Update(0xFFFFFFFF, data)
}

func crc32Update(crc uint32, data []byte) uint32 {
	for _, c := range data {
		crc ^= uint32(c)
		for range 8 {
			crc = (crc >> 1) ^ (crc32Poly & -(crc & 1))
		}
	}
	return crc
}

type crc32Digest uint32

// NewCRC32 returns a streaming hash.Hash32 computing the table-free IEEE CRC-32.
func NewCRC32() hash.Hash32 {
	d := crc32Digest(0xFFFFFFFF)
	return &d
}

func (d *crc32Digest) Write(p []byte) (int, error) {
	*d = crc32Digest(crc32Update(uint32(*d), p))
	return len(p), nil
}

func (d *crc32Digest) Sum(in []byte) []byte { return sum32(in, d.Sum32()) }
func (d *crc32Digest) Sum32() uint32        { return ^uint32(*d) }
func (d *crc32Digest) Reset()               { *d = crc32Digest(0xFFFFFFFF) }
func (d *crc32Digest) Size() int            { return 4 }
func (d *crc32Digest) BlockSize() int       { return 1 }

// castagnoliTable is built once; hash/crc32 picks SSE4.2/ARM CRC
// instructions for it when available.
var castagnoliTable = crc32.MakeTable(crc32.Castagnoli)

// CRC32C computes the CRC-32 Castagnoli checksum of data.
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, castagnoliTable)
}
