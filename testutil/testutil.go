package testutil

import (
	"math/rand"
	"sync"
)

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_ "

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int63n returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Int63n(n int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Int63n(n)
}

// Range returns a random pair lo <= hi, both within [minVal, maxVal).
func (r *RNG) Range(minVal, maxVal int64) (lo, hi int64) {
	span := maxVal - minVal
	a := minVal + r.Int63n(span)
	b := minVal + r.Int63n(span)
	if a > b {
		a, b = b, a
	}
	return a, b
}

// Bytes returns n pseudo-random bytes.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := make([]byte, n)
	_, _ = r.rand.Read(b)
	return b
}

// String returns a pseudo-random string of n characters from a fixed
// ASCII alphabet.
func (r *RNG) String(n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.rand.Intn(len(alphabet))]
	}
	return string(b)
}

// Value returns a pseudo-random JSON-compatible value (string, float64, bool,
// nil, []any or map[string]any) nested at most depth levels deep.
func (r *RNG) Value(depth int) any {
	kinds := 4
	if depth > 0 {
		kinds = 6
	}
	switch r.Intn(kinds) {
	case 0:
		return r.String(r.Intn(12))
	case 1:
		return float64(r.Int63n(1<<40)) / 8
	case 2:
		return r.Intn(2) == 1
	case 3:
		return nil
	case 4:
		s := make([]any, r.Intn(4))
		for i := range s {
			s[i] = r.Value(depth - 1)
		}
		return s
	default:
		m := make(map[string]any, 4)
		for range r.Intn(4) {
			m[r.String(1+r.Intn(6))] = r.Value(depth - 1)
		}
		return m
	}
}

// Values returns n random values, see Value.
func (r *RNG) Values(n, depth int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = r.Value(depth)
	}
	return out
}
