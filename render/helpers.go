package render

import "golang.org/x/exp/constraints"

// clamp pins v into [lo, hi].
func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
