package provider

import (
	"fmt"
	"strings"
)

// Base returns fresh instances of the base provider set, in registration
// order: SHA-256, SHA-384, SHA-512, djb2, fnv1, murmur3 (seed 0), crc32.
func Base() []Provider {
	return []Provider{
		MustCrypto(NameSHA256),
		MustCrypto(NameSHA384),
		MustCrypto(NameSHA512),
		DJB2(),
		FNV1(),
		NewMurmur3(0),
		CRC32(),
	}
}

// Extended returns the opt-in providers that are not part of Base.
func Extended() []Provider {
	return []Provider{
		XXHash64(),
		CRC32C(),
		MustCrypto(NameSHA1),
		MustCrypto(NameSHA224),
		MustCrypto(NameSHA512_256),
		MustCrypto(NameSHA3_256),
		MustCrypto(NameSHA3_384),
		MustCrypto(NameSHA3_512),
		MustCrypto(NameBLAKE2b256),
		MustCrypto(NameBLAKE2b512),
	}
}

// ByName builds any built-in provider by name. Non-cryptographic names are
// matched after lowercasing and trimming; cryptographic names follow
// NewCrypto's rules. murmur3 is created with seed 0, use NewMurmur3 for others.
func ByName(name string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameDJB2:
		return DJB2(), nil
	case NameFNV1, "fnv-1":
		return FNV1(), nil
	case NameMurmur3:
		return NewMurmur3(0), nil
	case NameCRC32, "crc-32":
		return CRC32(), nil
	case NameCRC32C, "crc-32c":
		return CRC32C(), nil
	case NameXXHash64, "xxh64":
		return XXHash64(), nil
	}
	p, err := NewCrypto(name)
	if err != nil {
		return nil, fmt.Errorf("provider %q: %w", name, ErrUnknownAlgorithm)
	}
	return p, nil
}
