package particle

import (
	"github.com/ilyakh/tui-sparks/internal/core"
	"github.com/ilyakh/tui-sparks/internal/gmath"
)

// Particle is a single simulated point: position, velocity, remaining
// lifetime, color and visual size. Particles are created exclusively by an
// Emitter and owned exclusively by the emitter's internal group; they are
// never shared between collections.
type Particle struct {
	pos       gmath.Vec2
	vel       gmath.Vec2
	remaining float64
	color     core.Color
	size      int
}

// newParticle builds a particle at the emission origin. Size 0 draws as a
// single point, larger sizes as a filled circle.
func newParticle(pos, vel gmath.Vec2, lifetime float64, color core.Color, size int) *Particle {
	return &Particle{
		pos:       pos,
		vel:       vel,
		remaining: lifetime,
		color:     color,
		size:      size,
	}
}

// Pos returns the particle's current position.
func (p *Particle) Pos() gmath.Vec2 {
	return p.pos
}

// Vel returns the particle's current velocity.
func (p *Particle) Vel() gmath.Vec2 {
	return p.vel
}

// Remaining returns the particle's remaining lifetime in seconds.
func (p *Particle) Remaining() float64 {
	return p.remaining
}

// Step integrates the particle's position and counts down its lifetime,
// clamping at zero.
func (p *Particle) Step(dt float64) {
	p.pos = p.pos.Add(p.vel.Scale(dt))
	p.remaining -= dt
	if p.remaining < 0 {
		p.remaining = 0
	}
}

// Draw renders the particle as a point or a filled circle depending on size.
func (p *Particle) Draw(dst core.Surface) {
	x, y := p.pos.AsInts()
	if p.size == 0 {
		dst.SetPoint(x, y, p.color)
	} else {
		dst.FillCircle(x, y, p.size, p.color)
	}
}

// CanReap reports whether the particle's lifetime has run out.
func (p *Particle) CanReap() bool {
	return p.remaining <= 0
}

// Reap kills the particle immediately.
func (p *Particle) Reap() {
	p.remaining = 0
}
