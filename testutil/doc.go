// Package testutil provides testing utilities for hashgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG for generating reproducible inputs.
//
// # Random Values
//
//	rng := testutil.NewRNG(seed)
//	s := rng.String(16)          // random ASCII string
//	b := rng.Bytes(64)           // random bytes
//	v := rng.Value(3)            // random JSON-compatible value, nesting depth <= 3
//	lo, hi := rng.Range(-1e6, 1e6)
package testutil
