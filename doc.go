// Package hashgo computes deterministic fingerprints of arbitrary values and
// maps them onto bounded integer ranges.
//
// A Hasher serializes a value (JSON by default), hashes the text with a
// pluggable provider and memoizes the full-length digest in a bounded FIFO
// cache keyed by algorithm and serialized value.
//
// # Quick Start
//
//	h := hashgo.New()
//
//	// Context-aware path, default algorithm SHA-256.
//	fp, err := h.Hash(ctx, map[string]any{"user": 42})
//
//	// Blocking path, default algorithm djb2.
//	fp, err = h.HashSync(order, hashgo.WithAlgorithm("murmur3"), hashgo.WithMaxLength(6))
//
//	// Stable bucketing, e.g. for A/B splits.
//	bucket, err := h.NumberSync(userID, hashgo.WithRange(1, 10))
//
// # Algorithms
//
// The base providers are SHA-256, SHA-384, SHA-512, djb2, fnv1, murmur3 and
// crc32. More are available in package provider (xxhash64, crc32c, SHA-3,
// BLAKE2b) and custom ones can be registered with WithProviders or through
// Registry().Add. Names resolve exactly first and then, with fuzzy matching
// (the default), case-insensitively and ignoring '-'.
//
// An unknown algorithm is not an error: a warning containing
// "Invalid algorithm ... not found. Falling back to ..." is logged and sent to
// the WarningHandler, and the default algorithm of the path is used instead.
//
// # Hooks
//
// Callbacks registered for hook.BeforeHash / hook.AfterHash (Hash, Number)
// and hook.BeforeHashSync / hook.AfterHashSync (HashSync, NumberSync) run in
// registration order and share one *hook.Context, so they can rewrite the
// value, the algorithm or the resulting hash. After hooks also run for
// cached digests.
//
// # Security
//
// djb2, fnv1, murmur3, crc32, crc32c and xxhash64 are not cryptographic
// hashes. Use them for distribution and change detection only.
package hashgo
