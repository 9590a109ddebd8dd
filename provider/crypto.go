package provider

import (
	"context"
	"crypto/sha1" //nolint:gosec // offered for interoperability, not security
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// ErrUnknownAlgorithm is returned when a name matches no built-in algorithm.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Canonical names of the cryptographic digests.
const (
	NameSHA1       = "SHA-1"
	NameSHA224     = "SHA-224"
	NameSHA256     = "SHA-256"
	NameSHA384     = "SHA-384"
	NameSHA512     = "SHA-512"
	NameSHA512_256 = "SHA-512/256"
	NameSHA3_256   = "SHA3-256"
	NameSHA3_384   = "SHA3-384"
	NameSHA3_512   = "SHA3-512"
	NameBLAKE2b256 = "BLAKE2b-256"
	NameBLAKE2b512 = "BLAKE2b-512"
)

type cryptoAlgorithm struct {
	name string
	new  func() hash.Hash
}

func mustBlake2b(fn func([]byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		h, err := fn(nil)
		if err != nil {
			// Only a key longer than 64 bytes fails; we never pass one.
			panic(err)
		}
		return h
	}
}

// cryptoAlgorithms is keyed by normalizeCrypto(name).
var cryptoAlgorithms = func() map[string]cryptoAlgorithm {
	algs := []cryptoAlgorithm{
		{NameSHA1, sha1.New},
		{NameSHA224, sha256.New224},
		{NameSHA256, sha256.New},
		{NameSHA384, sha512.New384},
		{NameSHA512, sha512.New},
		{NameSHA512_256, sha512.New512_256},
		{NameSHA3_256, sha3.New256},
		{NameSHA3_384, sha3.New384},
		{NameSHA3_512, sha3.New512},
		{NameBLAKE2b256, mustBlake2b(blake2b.New256)},
		{NameBLAKE2b512, mustBlake2b(blake2b.New512)},
	}
	m := make(map[string]cryptoAlgorithm, len(algs))
	for _, a := range algs {
		m[normalizeCrypto(a.name)] = a
	}
	return m
}()

// normalizeCrypto folds "SHA-256", "sha256" and "Sha_256" onto one key.
func normalizeCrypto(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "", "_", "", "/", "").Replace(name)
}

// Crypto is a provider backed by a cryptographic digest.
type Crypto struct {
	alg cryptoAlgorithm
}

// NewCrypto returns the cryptographic provider for name. Matching is
// case-insensitive and ignores '-', '_' and '/', so "sha256" and "SHA-256"
// both select SHA-256. The provider is named with the canonical spelling.
func NewCrypto(name string) (*Crypto, error) {
	alg, ok := cryptoAlgorithms[normalizeCrypto(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return &Crypto{alg: alg}, nil
}

// MustCrypto is like NewCrypto but panics on an unknown name.
func MustCrypto(name string) *Crypto {
	c, err := NewCrypto(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the canonical algorithm name.
func (c *Crypto) Name() string { return c.alg.name }

// Size returns the digest size in bytes.
func (c *Crypto) Size() int { return c.alg.new().Size() }

// Digest implements Provider.
func (c *Crypto) Digest(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return c.DigestSync(data)
}

// DigestSync implements SyncProvider.
func (c *Crypto) DigestSync(data []byte) (string, error) {
	h := c.alg.new()
	_, _ = h.Write(data) // hash.Hash.Write never returns an error
	return hex.EncodeToString(h.Sum(nil)), nil
}

var _ SyncProvider = (*Crypto)(nil)
