package particle

import (
	"fmt"
	"math/rand"

	"github.com/ilyakh/tui-sparks/internal/gmath"
)

// Field maps a particle's current kinematic state to an acceleration. Fields
// are pure functions of position and velocity plus their own parameters; the
// emitter applies them to each live particle before integrating positions.
type Field interface {
	Accel(pos, vel gmath.Vec2) gmath.Vec2
}

// ConstantField applies a fixed acceleration, e.g. gravity.
type ConstantField struct {
	A gmath.Vec2
}

func (f ConstantField) Accel(pos, vel gmath.Vec2) gmath.Vec2 {
	return f.A
}

// DragField slows particles down proportionally to their velocity. A
// coefficient of 0 means no drag; larger values decay velocity faster.
// The velocity-proportional acceleration is only first-order accurate per
// step, which makes the decay frame-rate sensitive. That behavior is part
// of the field's contract; do not compensate for dt here.
type DragField struct {
	K float64
}

func (f DragField) Accel(pos, vel gmath.Vec2) gmath.Vec2 {
	return vel.Scale(-f.K)
}

// PointField accelerates particles toward a fixed point. A negative
// magnitude repulses instead. With a falloff radius the magnitude falls off
// linearly to zero at the radius and the field is dead beyond it.
type PointField struct {
	point     gmath.Vec2
	magnitude float64
	falloff   float64 // 0 = no falloff
}

// NewPointField creates an attract (positive magnitude) or repulse
// (negative magnitude) field with no falloff.
func NewPointField(point gmath.Vec2, magnitude float64) *PointField {
	return &PointField{point: point, magnitude: magnitude}
}

// NewPointFieldFalloff creates a point field whose strength falls off
// linearly to zero at the given radius. Returns an error if the radius is
// not positive.
func NewPointFieldFalloff(point gmath.Vec2, magnitude, falloffRadius float64) (*PointField, error) {
	if falloffRadius <= 0 {
		return nil, fmt.Errorf("particle: falloff radius %f must be greater than 0", falloffRadius)
	}
	return &PointField{point: point, magnitude: magnitude, falloff: falloffRadius}, nil
}

// SetPoint moves the field's attraction point.
func (f *PointField) SetPoint(p gmath.Vec2) {
	f.point = p
}

// Accel returns the acceleration toward (or away from) the field's point.
// A particle sitting exactly on the point gets zero acceleration: there is
// no direction to push it in.
func (f *PointField) Accel(pos, vel gmath.Vec2) gmath.Vec2 {
	toPoint := f.point.Sub(pos)
	dir := toPoint.NormalizeSafe()
	if f.falloff == 0 {
		return dir.Scale(f.magnitude)
	}
	distance := toPoint.Magnitude()
	if distance > f.falloff {
		return gmath.Vec2{}
	}
	multiplier := (f.falloff - distance) / f.falloff
	return dir.Scale(multiplier * f.magnitude)
}

// TurbulenceField gives particles random kicks: each query has the given
// probability of returning a randomly directed acceleration of the given
// magnitude, and returns zero otherwise. The kick chance is per call, not
// per second, so the effect strengthens at higher frame rates.
type TurbulenceField struct {
	chance    float64
	magnitude float64
	rng       *rand.Rand
}

// NewTurbulenceField creates a turbulence field. chance is the per-query
// probability of a kick in [0, 1].
func NewTurbulenceField(rng *rand.Rand, chance, magnitude float64) *TurbulenceField {
	return &TurbulenceField{chance: chance, magnitude: magnitude, rng: rng}
}

func (f *TurbulenceField) Accel(pos, vel gmath.Vec2) gmath.Vec2 {
	if f.rng.Float64() < f.chance {
		return gmath.RandDirection(f.rng).Scale(f.magnitude)
	}
	return gmath.Vec2{}
}
