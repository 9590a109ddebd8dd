// Package provider defines the hash provider capability and the registry that
// resolves algorithm names to providers.
//
// A Provider maps bytes to a lowercase hex digest. Providers that can digest
// without a context (every built-in one) also implement SyncProvider and are
// usable from the blocking Hasher methods.
//
// # Built-in providers
//
// Base set (registered by hashgo.New unless disabled):
//
//	SHA-256, SHA-384, SHA-512   crypto digests
//	djb2, fnv1, murmur3, crc32  32-bit non-cryptographic digests
//
// Extended set (opt-in, see Extended and ByName):
//
//	xxhash64, crc32c, SHA-1, SHA-224, SHA-512/256, SHA3-256, SHA3-384,
//	SHA3-512, BLAKE2b-256, BLAKE2b-512
//
// The non-cryptographic providers are for distribution and speed only and must
// never be used where collision resistance matters.
//
// # Name resolution
//
// Registry.Get tries the trimmed name verbatim, then (with fuzzy matching) its
// lowercase form, then the lowercase form with every '-' removed:
//
//	r := provider.NewRegistry(provider.NewSyncFunc("sha256", fn))
//	r.Get("  SHA-256  ") // resolves to "sha256"
package provider
