package hashgo

import (
	"context"
	"fmt"
	"math/big"

	"github.com/hupe1980/hashgo/hook"
)

// Number maps v onto the inclusive range set by WithRange (default [0, 100]).
//
// It hashes v like Hash, truncated to WithHashLength hex characters (default
// 16), parses the digest as an unsigned integer n and returns
// min + n mod (max-min+1). The result depends only on the value, algorithm,
// range and hash length. A range with min > max fails before any hashing.
func (h *Hasher) Number(ctx context.Context, v any, opts ...CallOption) (int64, error) {
	c := h.newCall(modeAsync)
	o := applyCallOptions(c.fallback, opts)
	if o.min > o.max {
		return 0, &InvalidRangeError{Min: o.min, Max: o.max}
	}

	digest, err := h.observe(ctx, c, o.algorithm, func() (string, error) {
		return c.compute(ctx, &hook.Context{Value: v, Algorithm: o.algorithm, MaxLength: o.hashLength})
	})
	if err != nil {
		return 0, err
	}
	return mapToRange(digest, o.min, o.max)
}

// NumberSync is the blocking form of Number.
func (h *Hasher) NumberSync(v any, opts ...CallOption) (int64, error) {
	c := h.newCall(modeSync)
	o := applyCallOptions(c.fallback, opts)
	if o.min > o.max {
		return 0, &InvalidRangeError{Min: o.min, Max: o.max}
	}

	ctx := context.Background()
	digest, err := h.observe(ctx, c, o.algorithm, func() (string, error) {
		return c.compute(ctx, &hook.Context{Value: v, Algorithm: o.algorithm, MaxLength: o.hashLength})
	})
	if err != nil {
		return 0, err
	}
	return mapToRange(digest, o.min, o.max)
}

// mapToRange folds the hex digest into [lo, hi]. Big integers keep the
// arithmetic exact for any digest length and for spans up to 2^64.
func mapToRange(digest string, lo, hi int64) (int64, error) {
	if lo == hi {
		return lo, nil
	}

	n, ok := new(big.Int).SetString(digest, 16)
	if !ok || n.Sign() < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDigest, digest)
	}

	span := new(big.Int).Sub(big.NewInt(hi), big.NewInt(lo))
	span.Add(span, big.NewInt(1))

	n.Mod(n, span)
	n.Add(n, big.NewInt(lo))
	return n.Int64(), nil
}
