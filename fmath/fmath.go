// Package fmath provides the float helpers shared by the simulation
// systems: clamping and drift-tolerant comparisons.
package fmath

import "math"

// Epsilon is the tolerance used for threshold and equality checks on
// accumulated simulation time and progress values.
const Epsilon = 1e-9

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to the range [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Approx reports whether a and b differ by less than Epsilon.
func Approx(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// AtLeast reports whether a has reached b, tolerating accumulated float
// drift just below the threshold.
func AtLeast(a, b float64) bool {
	return a >= b-Epsilon
}
