package gmath

import (
	"fmt"
	"math"
)

// Tolerance used by ApproxEqual.
const approxEqualTolerance = 0.0001

// ApproxEqual reports whether two floats are within the package tolerance.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < approxEqualTolerance
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampHi restricts val to at most hi.
func ClampHi(val, hi float64) float64 {
	if val > hi {
		return hi
	}
	return val
}

// ClampLo restricts val to at least lo.
func ClampLo(val, lo float64) float64 {
	if val < lo {
		return lo
	}
	return val
}

// Lerp linearly interpolates between a and b. u=0 yields a, u=1 yields b;
// values of u outside [0,1] extrapolate.
func Lerp(a, b, u float64) float64 {
	return a + (b-a)*u
}

// LerpVec2 linearly interpolates between two vectors.
func LerpVec2(a, b Vec2, u float64) Vec2 {
	return a.Add(b.Sub(a).Scale(u))
}

// InverseLerp returns the normalized position of val within [lo, hi]:
// (val-lo)/(hi-lo). The result is outside [0,1] when val is outside the
// range. A degenerate range (lo == hi) is a precondition violation and
// panics rather than producing Inf or NaN.
func InverseLerp(val, lo, hi float64) float64 {
	if lo == hi {
		panic(fmt.Sprintf("gmath: InverseLerp(%v, %v, %v): degenerate range, lo == hi", val, lo, hi))
	}
	return (val - lo) / (hi - lo)
}

// NearestMultiple rounds num to the nearest multiple of target. Exact
// halfway values round up: NearestMultiple(6, 4) == 8. Useful as a snap
// to a regular grid.
func NearestMultiple(num, target int) int {
	if target == 0 {
		panic("gmath: NearestMultiple with target 0")
	}
	return int(math.Floor(float64(num+target/2)/float64(target))) * target
}
