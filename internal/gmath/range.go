package gmath

import "fmt"

// Range is a closed interval [lo, hi] with a distinct uninitialized state.
// A zero-value Range is empty: it can be populated with Include, but reading
// any bound before the first Include is a precondition violation and panics.
// Once initialized, lo <= hi holds after every operation.
type Range struct {
	lo, hi      float64
	initialized bool
}

// NewRange creates an initialized range spanning both given values
// (the arguments do not need to be ordered).
func NewRange(a, b float64) Range {
	var r Range
	r.Include(a)
	r.Include(b)
	return r
}

// Initialized reports whether the range has been given at least one value.
func (r Range) Initialized() bool {
	return r.initialized
}

func (r Range) mustInit(op string) {
	if !r.initialized {
		panic(fmt.Sprintf("gmath: %s called on an uninitialized Range", op))
	}
}

// Lo returns the lower bound.
func (r Range) Lo() float64 {
	r.mustInit("Range.Lo")
	return r.lo
}

// Hi returns the upper bound.
func (r Range) Hi() float64 {
	r.mustInit("Range.Hi")
	return r.hi
}

// Span returns the distance between the bounds.
func (r Range) Span() float64 {
	r.mustInit("Range.Span")
	return r.hi - r.lo
}

// Mid returns the midpoint between the bounds.
func (r Range) Mid() float64 {
	r.mustInit("Range.Mid")
	return (r.lo + r.hi) / 2.0
}

// Include expands the range to contain val. The first Include on an empty
// range collapses both bounds onto val.
func (r *Range) Include(val float64) {
	if !r.initialized {
		r.lo = val
		r.hi = val
		r.initialized = true
		return
	}
	if val < r.lo {
		r.lo = val
	}
	if val > r.hi {
		r.hi = val
	}
}

// IncludeRange expands the range to contain the extents of other.
func (r *Range) IncludeRange(other Range) {
	r.mustInit("Range.IncludeRange")
	other.mustInit("Range.IncludeRange (argument)")
	r.Include(other.lo)
	r.Include(other.hi)
}

// Contains reports whether val lies inside the range, bounds included.
func (r Range) Contains(val float64) bool {
	r.mustInit("Range.Contains")
	return val >= r.lo && val <= r.hi
}

// Clamp restricts val to the range.
func (r Range) Clamp(val float64) float64 {
	r.mustInit("Range.Clamp")
	return Clamp(val, r.lo, r.hi)
}

// ClampHi restricts val to the upper bound only.
func (r Range) ClampHi(val float64) float64 {
	r.mustInit("Range.ClampHi")
	return ClampHi(val, r.hi)
}

// ClampLo restricts val to the lower bound only.
func (r Range) ClampLo(val float64) float64 {
	r.mustInit("Range.ClampLo")
	return ClampLo(val, r.lo)
}

// String formats the range for debug output.
func (r Range) String() string {
	if !r.initialized {
		return "(<empty range>)"
	}
	return fmt.Sprintf("(%f -> %f)", r.lo, r.hi)
}
