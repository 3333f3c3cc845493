package vhzmath

import "golang.org/x/exp/constraints"

// Clamp bounds v to [lo, hi], used wherever a computed value must be
// pinned back into a hardware-meaningful range (duty ratios, PWM
// register counts) after floating-point rounding nudges it past a
// boundary that was already satisfied in exact arithmetic.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
