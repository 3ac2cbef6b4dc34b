package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. If lo > hi, the bounds are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FitsBits reports whether v is representable in an unsigned field of
// width bits.
func FitsBits[T constraints.Integer](v T, width uint8) bool {
	if v < 0 {
		return false
	}
	return uint64(v) < uint64(1)<<width
}
