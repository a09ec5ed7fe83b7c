package mutengine

import mutengineerrors "github.com/fuzzforge/mutengine/internal/errors"

// getLen returns an integer in [1, max] biased toward small values, via
// an x²-shaped construction: draw rnd uniform on [1, max²-1], then
// ret = rnd²/max³ + 1. max == 1 short-circuits to 1;
// max == 0 is a programmer error (the dispatcher never computes a
// zero-length bound), so it panics rather than returning a sentinel.
func getLen(r *rng, max uint64) uint64 {
	if max == 0 {
		panic(mutengineerrors.InvalidLength(max))
	}

	if max == 1 {
		return 1
	}

	max2 := max * max
	max3 := max2 * max

	rnd := r.rndGet(1, max2-1)

	ret := (rnd * rnd) / max3
	ret++

	return ret
}

// getOffset returns a size-clamped offset biased toward the buffer head:
// getLen(size) - 1, so it lands in [0, size-1].
func getOffset(r *rng, b *Buffer) int {
	return int(getLen(r, uint64(b.Size())) - 1)
}
