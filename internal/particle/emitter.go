package particle

import (
	"fmt"

	"github.com/ilyakh/tui-sparks/internal/actor"
	"github.com/ilyakh/tui-sparks/internal/core"
	"github.com/ilyakh/tui-sparks/internal/gmath"
)

// Params bundles the policies an Emitter is composed from. Every policy
// except Fields is mandatory; construction fails loudly on a nil policy
// so a miswired preset never emits garbage silently.
type Params struct {
	Pos      gmath.Vec2
	Rate     Rate
	Speed    Speed
	Dir      Direction
	Lifetime Lifetime
	Color    ColorPolicy
	Size     int
	Fields   []Field
}

func (p Params) validate() error {
	switch {
	case p.Rate == nil:
		return fmt.Errorf("particle: emitter requires a rate policy")
	case p.Speed == nil:
		return fmt.Errorf("particle: emitter requires a speed policy")
	case p.Dir == nil:
		return fmt.Errorf("particle: emitter requires a direction policy")
	case p.Lifetime == nil:
		return fmt.Errorf("particle: emitter requires a lifetime policy")
	case p.Color == nil:
		return fmt.Errorf("particle: emitter requires a color policy")
	case p.Size < 0:
		return fmt.Errorf("particle: emitter size must be >= 0, got %d", p.Size)
	}
	return nil
}

// Emitter spawns particles at its position according to its rate policy
// and owns them until they expire. It is itself an actor: once the rate
// is complete and every spawned particle is gone the emitter reports
// reapable and its owner can drop it.
type Emitter struct {
	params   Params
	pos      gmath.Vec2
	group    actor.Group
	emitting bool
	reaped   bool
	emitted  int
}

// NewEmitter builds an emitter from params. It panics on a nil mandatory
// policy; presets built from user input must validate before reaching here.
func NewEmitter(params Params) *Emitter {
	if err := params.validate(); err != nil {
		panic(err)
	}
	return &Emitter{
		params:   params,
		pos:      params.Pos,
		emitting: true,
	}
}

// Position returns the current spawn point.
func (e *Emitter) Position() gmath.Vec2 { return e.pos }

// SetPosition moves the spawn point. Already-live particles are unaffected.
func (e *Emitter) SetPosition(p gmath.Vec2) { e.pos = p }

// Start resumes emission. The rate policy keeps its own completion state,
// so restarting a completed burst emits nothing.
func (e *Emitter) Start() { e.emitting = true }

// Stop suspends emission without touching live particles. While stopped
// the rate policy is not queried, so no emission time accrues.
func (e *Emitter) Stop() { e.emitting = false }

// Emitting reports whether the emitter spawns on Step.
func (e *Emitter) Emitting() bool { return e.emitting }

// EmittedTotal returns the number of particles spawned over the emitter's
// whole life, including ones that have since expired.
func (e *Emitter) EmittedTotal() int { return e.emitted }

// Live returns the number of particles currently alive.
func (e *Emitter) Live() int { return e.group.Len() }

// Step advances the emitter by dt seconds: spawn new particles per the
// rate policy, apply force fields to every live particle's velocity, then
// step the particles themselves. Fields adjust velocity before positions
// integrate, so a particle's position update always sees the velocity of
// the end of the frame.
func (e *Emitter) Step(dt float64) {
	if e.emitting && !e.params.Rate.Complete() {
		n := e.params.Rate.HowMany(dt)
		for i := 0; i < n; i++ {
			e.spawn()
		}
	}
	for _, f := range e.params.Fields {
		e.group.Each(func(a actor.Actor) {
			p := a.(*Particle)
			p.vel = p.vel.Add(f.Accel(p.pos, p.vel).Scale(dt))
		})
	}
	e.group.Step(dt)
}

func (e *Emitter) spawn() {
	vel := e.params.Dir.Direction().Scale(e.params.Speed.Speed())
	p := newParticle(e.pos, vel, e.params.Lifetime.Lifetime(), e.params.Color.Color(), e.params.Size)
	e.group.Append(p)
	e.emitted++
}

// EachParticle calls fn for every live particle in emission order. Scenes
// use it to read particle state; mutating velocity from here is allowed.
func (e *Emitter) EachParticle(fn func(*Particle)) {
	e.group.Each(func(a actor.Actor) {
		fn(a.(*Particle))
	})
}

// Draw renders all live particles. The emitter itself has no visual.
func (e *Emitter) Draw(dst core.Surface) {
	e.group.Draw(dst)
}

// CanReap reports true once the rate policy is complete and no spawned
// particle remains alive.
func (e *Emitter) CanReap() bool {
	if e.reaped {
		return true
	}
	return e.params.Rate.Complete() && e.group.Len() == 0
}

// Reap kills every live particle and marks the emitter reapable
// regardless of rate completion.
func (e *Emitter) Reap() {
	e.group.Reap()
	e.reaped = true
}
