package provider

import (
	"context"

	"github.com/hupe1980/hashgo/internal/hash"
)

// Names of the built-in non-cryptographic providers.
const (
	NameDJB2    = "djb2"
	NameFNV1    = "fnv1"
	NameMurmur3 = "murmur3"
	NameCRC32   = "crc32"
	NameCRC32C  = "crc32c"
)

// checksum32 adapts a one-shot 32-bit hash function to a SyncProvider.
type checksum32 struct {
	name string
	sum  func([]byte) uint32
}

func (c *checksum32) Name() string { return c.name }

func (c *checksum32) Digest(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return hash.Hex32(c.sum(data)), nil
}

func (c *checksum32) DigestSync(data []byte) (string, error) {
	return hash.Hex32(c.sum(data)), nil
}

// DJB2 returns the djb2 provider (8 hex digits).
func DJB2() SyncProvider { return &checksum32{name: NameDJB2, sum: hash.DJB2} }

// FNV1 returns the 32-bit FNV-1 provider (8 hex digits).
func FNV1() SyncProvider { return &checksum32{name: NameFNV1, sum: hash.FNV1} }

// CRC32 returns the IEEE CRC-32 provider (8 hex digits).
func CRC32() SyncProvider { return &checksum32{name: NameCRC32, sum: hash.CRC32} }

// CRC32C returns the Castagnoli CRC-32 provider (8 hex digits).
func CRC32C() SyncProvider { return &checksum32{name: NameCRC32C, sum: hash.CRC32C} }

// Murmur3 is the MurmurHash3 x86_32 provider.
type Murmur3 struct {
	seed uint32
}

// NewMurmur3 returns a MurmurHash3 x86_32 provider using seed.
func NewMurmur3(seed uint32) *Murmur3 { return &Murmur3{seed: seed} }

// Name returns "murmur3".
func (m *Murmur3) Name() string { return NameMurmur3 }

// Seed returns the configured seed.
func (m *Murmur3) Seed() uint32 { return m.seed }

// Digest implements Provider.
func (m *Murmur3) Digest(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return m.DigestSync(data)
}

// DigestSync implements SyncProvider.
func (m *Murmur3) DigestSync(data []byte) (string, error) {
	return hash.Hex32(hash.Murmur3(data, m.seed)), nil
}

var _ SyncProvider = (*Murmur3)(nil)
