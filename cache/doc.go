// Package cache provides the bounded digest cache used by hashgo.Hasher.
//
// # FIFO eviction
//
// FIFO keeps an insertion-order queue of keys next to the key->digest map.
// When a new key arrives at capacity, exactly one entry, the oldest inserted
// key still present, is evicted before the new key is admitted. Overwriting
// an existing key keeps its place in the queue and never evicts.
//
// Stored values are always full-length digests; truncation happens on read in
// the caller, so differing output lengths share one entry.
package cache
