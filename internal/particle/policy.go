package particle

import (
	"errors"
	"math/rand"

	"github.com/ilyakh/tui-sparks/internal/core"
	"github.com/ilyakh/tui-sparks/internal/gmath"
)

// Speed yields the initial scalar speed of a freshly emitted particle.
type Speed interface {
	Speed() float64
}

// SpeedConstant always returns the same speed.
type SpeedConstant struct {
	V float64
}

func (s SpeedConstant) Speed() float64 {
	return s.V
}

// SpeedRange samples the speed uniformly from [lo, hi].
type SpeedRange struct {
	lo, hi float64
	rng    *rand.Rand
}

// NewSpeedRange creates a uniformly random speed policy.
func NewSpeedRange(rng *rand.Rand, lo, hi float64) *SpeedRange {
	return &SpeedRange{lo: lo, hi: hi, rng: rng}
}

func (s *SpeedRange) Speed() float64 {
	return uniform(s.rng, s.lo, s.hi)
}

// Direction yields the initial unit direction of a freshly emitted particle.
type Direction interface {
	Direction() gmath.Vec2
}

// DirectionAny samples a uniformly random direction over the full circle.
type DirectionAny struct {
	rng *rand.Rand
}

// NewDirectionAny creates a full-circle random direction policy.
func NewDirectionAny(rng *rand.Rand) *DirectionAny {
	return &DirectionAny{rng: rng}
}

func (d *DirectionAny) Direction() gmath.Vec2 {
	return gmath.RandDirection(d.rng)
}

// DirectionConstant always emits along the same normalized vector.
type DirectionConstant struct {
	dir gmath.Vec2
}

// NewDirectionConstant creates a fixed-direction policy. The vector is
// normalized on construction; a zero vector is a precondition violation.
func NewDirectionConstant(dir gmath.Vec2) DirectionConstant {
	return DirectionConstant{dir: dir.Normalize()}
}

func (d DirectionConstant) Direction() gmath.Vec2 {
	return d.dir
}

// DirectionSpread samples directions within a half-angle spread on either
// side of a base angle. Both values are radians.
type DirectionSpread struct {
	base, half float64
	rng        *rand.Rand
}

// NewDirectionSpread creates an angle-with-spread direction policy.
func NewDirectionSpread(rng *rand.Rand, baseAngle, halfSpread float64) *DirectionSpread {
	return &DirectionSpread{base: baseAngle, half: halfSpread, rng: rng}
}

func (d *DirectionSpread) Direction() gmath.Vec2 {
	return gmath.RandDirectionSpread(d.rng, d.base, d.half)
}

// Lifetime yields the initial lifetime, in seconds, of a freshly emitted
// particle.
type Lifetime interface {
	Lifetime() float64
}

// LifetimeConstant always returns the same lifetime.
type LifetimeConstant struct {
	Seconds float64
}

func (l LifetimeConstant) Lifetime() float64 {
	return l.Seconds
}

// LifetimeRange samples the lifetime uniformly from [lo, hi].
type LifetimeRange struct {
	lo, hi float64
	rng    *rand.Rand
}

// NewLifetimeRange creates a uniformly random lifetime policy.
func NewLifetimeRange(rng *rand.Rand, lo, hi float64) *LifetimeRange {
	return &LifetimeRange{lo: lo, hi: hi, rng: rng}
}

func (l *LifetimeRange) Lifetime() float64 {
	return uniform(l.rng, l.lo, l.hi)
}

// ColorPolicy yields the color of a freshly emitted particle.
type ColorPolicy interface {
	Color() core.Color
}

// ColorConstant always returns the same color.
type ColorConstant struct {
	C core.Color
}

func (c ColorConstant) Color() core.Color {
	return c.C
}

// ColorChoice picks uniformly from a fixed set of colors.
type ColorChoice struct {
	choices []core.Color
	rng     *rand.Rand
}

// ErrNoColorChoices is returned when a ColorChoice is built from an empty set.
var ErrNoColorChoices = errors.New("particle: color choice set is empty")

// NewColorChoice creates a random-choice color policy. The set must not be
// empty.
func NewColorChoice(rng *rand.Rand, choices ...core.Color) (*ColorChoice, error) {
	if len(choices) == 0 {
		return nil, ErrNoColorChoices
	}
	owned := make([]core.Color, len(choices))
	copy(owned, choices)
	return &ColorChoice{choices: owned, rng: rng}, nil
}

func (c *ColorChoice) Color() core.Color {
	return c.choices[c.rng.Intn(len(c.choices))]
}
