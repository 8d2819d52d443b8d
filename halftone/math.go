package halftone

import "golang.org/x/exp/constraints"

// clamp restricts the value to the [lo, hi] interval.
func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ceilDiv returns the number of steps of size step needed to cover n.
func ceilDiv[T constraints.Integer](n, step T) T {
	return (n + step - 1) / step
}
