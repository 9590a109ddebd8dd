package hash

import (
	"encoding/hex"
	stdhash "hash"
	"hash/crc32"
	"hash/fnv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnownVectors(t *testing.T) {
	tests := []struct {
		name string
		fn   func([]byte) uint32
		in   string
		want string
	}{
		{"djb2 empty", DJB2, "", "00001505"},
		{"djb2 hello", DJB2, "hello", "0f923099"},
		{"fnv1 empty", FNV1, "", "811c9dc5"},
		{"fnv1 a", FNV1, "a", "050c5d41"},
		{"fnv1 hello", FNV1, "hello", "a9b7cf6f"},
		{"fnv1 foobar", FNV1, "foobar", "ebcfccfb"},
		{"fnv1 json", FNV1, `{"a":1,"b":2}`, "87b0e37d"},
		{"fnv1 digits", FNV1, "123456789", "0d923051"},
		{"crc32 empty", CRC32, "", "00000000"},
		{"crc32 check", CRC32, "123456789", "cbf43926"},
		{"crc32c check", CRC32C, "123456789", "e3069283"},
		{"murmur3 empty", func(b []byte) uint32 { return Murmur3(b, 0) }, "", "00000000"},
		{"murmur3 hello", func(b []byte) uint32 { return Murmur3(b, 0) }, "hello", "248bfa47"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Hex32(tt.fn([]byte(tt.in))))
		})
	}
}

func TestMurmur3(t *testing.T) {
	t.Run("seeded empty", func(t *testing.T) {
		assert.Equal(t, uint32(0x514e28b7), Murmur3(nil, 1))
	})

	t.Run("reference vectors", func(t *testing.T) {
		assert.Equal(t, uint32(0x81f16f39), Murmur3(nil, 0xffffffff))
		assert.Equal(t, uint32(0xba6bd213), Murmur3([]byte("test"), 0))
		assert.Equal(t, uint32(0xc0363e43), Murmur3([]byte("Hello, world!"), 0))
		assert.Equal(t, uint32(0x2e4ff723), Murmur3([]byte("The quick brown fox jumps over the lazy dog"), 0))
	})

	t.Run("tail lengths", func(t *testing.T) {
		assert.Equal(t, uint32(0x2362f9de), Murmur3([]byte{0x00, 0x00, 0x00, 0x00}, 0))
		assert.Equal(t, uint32(0xf55b516b), Murmur3([]byte{0x21, 0x43, 0x65, 0x87}, 0))
		assert.Equal(t, uint32(0x7e4a8634), Murmur3([]byte{0x21, 0x43, 0x65}, 0))
		assert.Equal(t, uint32(0xa0f7b07a), Murmur3([]byte{0x21, 0x43}, 0))
		assert.Equal(t, uint32(0x72661cf4), Murmur3([]byte{0x21}, 0))
	})

	t.Run("seed changes output", func(t *testing.T) {
		assert.NotEqual(t, Murmur3([]byte("hello"), 0), Murmur3([]byte("hello"), 42))
	})
}

func TestAgainstStandardLibrary(t *testing.T) {
	inputs := []string{"", "a", "hello", "The quick brown fox jumps over the lazy dog", "123456789"}

	for _, in := range inputs {
		assert.Equal(t, crc32.ChecksumIEEE([]byte(in)), CRC32([]byte(in)), "crc32 %q", in)
	}
}

func TestFNV1DiffersFromTextbook(t *testing.T) {
	// Rounding of the float64 multiply only kicks in once the product
	// exceeds 2^53, which already happens for the first byte.
	h := fnv.New32()
	_, _ = h.Write([]byte("a"))
	assert.Equal(t, uint32(0x050c5d7e), h.Sum32())
	assert.Equal(t, uint32(0x050c5d41), FNV1([]byte("a")))

	// The state before any byte is the offset basis in both.
	assert.Equal(t, fnv.New32().Sum32(), FNV1(nil))
}

func TestStreaming(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog")

	tests := []struct {
		name    string
		oneShot func([]byte) uint32
		stream  func() stdhash.Hash32
	}{
		{"djb2", DJB2, NewDJB2},
		{"fnv1", FNV1, NewFNV1},
		{"crc32", CRC32, NewCRC32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := tt.stream()
			_, _ = h.Write(data[:10])
			_, _ = h.Write(data[10:])
			assert.Equal(t, tt.oneShot(data), h.Sum32())
			assert.Equal(t, 4, h.Size())

			sum := h.Sum([]byte{0xaa})
			assert.Len(t, sum, 5)
			assert.Equal(t, Hex32(h.Sum32()), hex.EncodeToString(sum[1:]))

			h.Reset()
			assert.Equal(t, tt.oneShot(nil), h.Sum32())
		})
	}
}

func TestHex32(t *testing.T) {
	assert.Equal(t, "00000000", Hex32(0))
	assert.Equal(t, "0000000f", Hex32(15))
	assert.Equal(t, "ffffffff", Hex32(0xffffffff))
}
