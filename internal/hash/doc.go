// Package hash implements the non-cryptographic 32-bit hash functions used by
// the built-in providers.
//
// # Algorithms
//
//   - DJB2: h = h*33 + c, seeded with 5381
//   - FNV-1 (32-bit): multiply by the FNV prime in float64, reduce, XOR the byte
//   - MurmurHash3 x86_32: 4-byte little-endian blocks, tail mix, fmix32
//   - CRC-32 (IEEE 802.3): reflected polynomial 0xEDB88320, table-free
//   - CRC-32C (Castagnoli): table driven, hardware accelerated by hash/crc32
//
// None of these are suitable for security purposes. They exist for fast,
// well-distributed fingerprints that must be bit-exact across platforms.
//
// # Usage
//
// For one-shot digests:
//
//	sum := hash.DJB2(data)
//	hex := hash.Hex32(sum) // "0f923099" for "hello"
//
// For streaming digests:
//
//	h := hash.NewFNV1()
//	h.Write(chunk1)
//	h.Write(chunk2)
//	sum := h.Sum32()
package hash
