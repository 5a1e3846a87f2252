// Package gmath provides the 2D vector, range and interpolation primitives
// used by the simulation core. It contains no external dependencies so the
// math stays pure and testable.
package gmath

import (
	"fmt"
	"math"
	"math/rand"
)

// Vec2 is a 2D vector. It is a value type: operations return new vectors
// and never mutate their receiver.
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a vector from its components.
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromPolar creates a vector from an angle (radians) and a length.
func FromPolar(angle, length float64) Vec2 {
	return Vec2{
		X: math.Cos(angle) * length,
		Y: math.Sin(angle) * length,
	}
}

// Add returns v + rhs.
func (v Vec2) Add(rhs Vec2) Vec2 {
	return Vec2{v.X + rhs.X, v.Y + rhs.Y}
}

// Sub returns v - rhs.
func (v Vec2) Sub(rhs Vec2) Vec2 {
	return Vec2{v.X - rhs.X, v.Y - rhs.Y}
}

// Neg returns the negation of v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div returns v divided by s.
func (v Vec2) Div(s float64) Vec2 {
	return v.Scale(1.0 / s)
}

// Dot returns the dot product of v and rhs.
func (v Vec2) Dot(rhs Vec2) float64 {
	return v.X*rhs.X + v.Y*rhs.Y
}

// Magnitude returns the length of v.
func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit-length copy of v.
// Normalizing a zero-magnitude vector is a precondition violation and panics;
// use NormalizeSafe when the input may be zero.
func (v Vec2) Normalize() Vec2 {
	m := v.Magnitude()
	if m == 0 {
		panic("gmath: attempt to normalize a zero-magnitude vector")
	}
	return v.Div(m)
}

// NormalizeSafe returns a unit-length copy of v, or v unchanged when it is
// the zero vector.
func (v Vec2) NormalizeSafe() Vec2 {
	if v.X == 0 && v.Y == 0 {
		return v
	}
	return v.Normalize()
}

// WithMagnitude returns a vector with the direction of v and the given length.
func (v Vec2) WithMagnitude(length float64) Vec2 {
	return v.Normalize().Scale(length)
}

// Rotate returns v rotated by angle radians (counter-clockwise in standard
// math orientation).
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.Y*cos + v.X*sin,
	}
}

// AngleBetween returns the unsigned angle between v and rhs, in radians.
func (v Vec2) AngleBetween(rhs Vec2) float64 {
	return math.Acos(v.Dot(rhs) / (v.Magnitude() * rhs.Magnitude()))
}

// AsPolar converts v to polar coordinates.
func (v Vec2) AsPolar() Polar2 {
	return Polar2{T: math.Atan2(v.Y, v.X), R: v.Magnitude()}
}

// AsInts returns the components truncated to integers, ready for a cell surface.
func (v Vec2) AsInts() (int, int) {
	return int(v.X), int(v.Y)
}

// ApproxEqual reports whether both components of v and rhs are within the
// package tolerance of each other.
func (v Vec2) ApproxEqual(rhs Vec2) bool {
	return ApproxEqual(v.X, rhs.X) && ApproxEqual(v.Y, rhs.Y)
}

// String formats the vector for debug output.
func (v Vec2) String() string {
	return fmt.Sprintf("(%f, %f)", v.X, v.Y)
}

// Polar2 is a 2D polar coordinate (theta in radians, radius).
type Polar2 struct {
	T, R float64
}

// AsVec2 converts the polar coordinate to a cartesian vector.
func (p Polar2) AsVec2() Vec2 {
	return FromPolar(p.T, p.R)
}

// String formats the polar coordinate for debug output.
func (p Polar2) String() string {
	return fmt.Sprintf("(%f, %f)", p.T, p.R)
}

// RandVec2InRect returns a uniformly distributed point inside the rectangle
// with top-left corner (x, y) and the given width and height.
func RandVec2InRect(rng *rand.Rand, x, y, w, h float64) Vec2 {
	return Vec2{
		X: x + rng.Float64()*w,
		Y: y + rng.Float64()*h,
	}
}

// RandVec2InCircle returns a random point inside the circle around center.
// The radius is sampled uniformly in [0, radius), which makes points denser
// toward the center rather than uniform by area. Callers rely on this
// distribution; do not switch to sqrt-radius sampling.
func RandVec2InCircle(rng *rand.Rand, center Vec2, radius float64) Vec2 {
	angle := 2 * math.Pi * rng.Float64()
	r := radius * rng.Float64()
	return center.Add(FromPolar(angle, r))
}

// RandDirection returns a unit vector with a uniformly random direction.
func RandDirection(rng *rand.Rand) Vec2 {
	return FromPolar(rng.Float64()*2*math.Pi, 1.0)
}

// RandDirectionSpread returns a unit vector pointing within halfSpread
// radians on either side of the base angle. Both arguments are radians.
func RandDirectionSpread(rng *rand.Rand, base, halfSpread float64) Vec2 {
	offset := -halfSpread + rng.Float64()*(2*halfSpread)
	return FromPolar(base+offset, 1.0)
}
