package utils

import "golang.org/x/exp/constraints"

// Clamp bounds value to the closed interval [low, high].
func Clamp[T constraints.Ordered](value, low, high T) T {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
