package provider

import (
	"context"
	"encoding/binary"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// NameXXHash64 is the name of the XXH64 provider.
const NameXXHash64 = "xxhash64"

type xxhash64 struct{}

// XXHash64 returns an XXH64 provider (16 hex digits, seed 0).
func XXHash64() SyncProvider { return xxhash64{} }

func (xxhash64) Name() string { return NameXXHash64 }

func (x xxhash64) Digest(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return x.DigestSync(data)
}

func (xxhash64) DigestSync(data []byte) (string, error) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64(data))
	return hex.EncodeToString(b[:]), nil
}
