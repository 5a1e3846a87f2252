package particle

import (
	"testing"

	"github.com/ilyakh/tui-sparks/internal/core"
	"github.com/ilyakh/tui-sparks/internal/gmath"
)

func testParams() Params {
	return Params{
		Rate:     NewBurst(1),
		Speed:    SpeedConstant{V: 10},
		Dir:      NewDirectionConstant(gmath.Vec2{X: 1, Y: 0}),
		Lifetime: LifetimeConstant{Seconds: 1},
		Color:    ColorConstant{C: core.ColorWhite},
	}
}

func TestNewEmitterRejectsNilPolicies(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Params)
	}{
		{"rate", func(p *Params) { p.Rate = nil }},
		{"speed", func(p *Params) { p.Speed = nil }},
		{"direction", func(p *Params) { p.Dir = nil }},
		{"lifetime", func(p *Params) { p.Lifetime = nil }},
		{"color", func(p *Params) { p.Color = nil }},
		{"size", func(p *Params) { p.Size = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := testParams()
			tc.mutate(&params)
			defer func() {
				if recover() == nil {
					t.Fatalf("%s: expected panic", tc.name)
				}
			}()
			NewEmitter(params)
		})
	}
}

func TestEmitterBurstLifecycle(t *testing.T) {
	params := testParams()
	params.Rate = NewBurst(3)
	e := NewEmitter(params)

	if e.CanReap() {
		t.Fatal("fresh emitter reports reapable")
	}
	e.Step(0.016)
	if got := e.Live(); got != 3 {
		t.Fatalf("live after burst = %d, want 3", got)
	}
	if got := e.EmittedTotal(); got != 3 {
		t.Fatalf("EmittedTotal = %d, want 3", got)
	}
	if e.CanReap() {
		t.Fatal("emitter reapable while particles live")
	}

	// One big step exhausts every particle's 1s lifetime.
	e.Step(1.0)
	if got := e.Live(); got != 0 {
		t.Fatalf("live after lifetime elapsed = %d, want 0", got)
	}
	if !e.CanReap() {
		t.Fatal("emitter not reapable with complete rate and no particles")
	}
}

func TestEmitterSemiImplicitEuler(t *testing.T) {
	// A constant field must update velocity first and integrate position
	// with the updated velocity: v1 = v0 + a*dt, p1 = p0 + v1*dt.
	params := testParams()
	params.Pos = gmath.Vec2{X: 5, Y: 5}
	params.Dir = NewDirectionConstant(gmath.Vec2{X: 1, Y: 0})
	params.Speed = SpeedConstant{V: 4}
	params.Fields = []Field{ConstantField{A: gmath.Vec2{X: 0, Y: 10}}}
	e := NewEmitter(params)

	e.Step(0.5) // emits at (5,5) with v0 = (4,0), then field + integrate
	var p *Particle
	e.EachParticle(func(q *Particle) { p = q })
	if p == nil {
		t.Fatal("no particle emitted")
	}
	wantVel := gmath.Vec2{X: 4, Y: 5}   // v0 + a*dt
	wantPos := gmath.Vec2{X: 7, Y: 7.5} // p0 + v1*dt
	if !p.Vel().ApproxEqual(wantVel) {
		t.Fatalf("velocity = %v, want %v", p.Vel(), wantVel)
	}
	if !p.Pos().ApproxEqual(wantPos) {
		t.Fatalf("position = %v, want %v", p.Pos(), wantPos)
	}
}

func TestEmitterStopSuspendsEmission(t *testing.T) {
	params := testParams()
	params.Rate = NewDelayConstant(0.1)
	e := NewEmitter(params)

	e.Stop()
	for i := 0; i < 10; i++ {
		e.Step(0.1)
	}
	if got := e.EmittedTotal(); got != 0 {
		t.Fatalf("emitted %d while stopped, want 0", got)
	}

	// While stopped the rate is never queried, so no time accrues: the
	// first step after Start emits for that step only.
	e.Start()
	e.Step(0.1)
	if got := e.EmittedTotal(); got != 1 {
		t.Fatalf("emitted %d on first step after restart, want 1", got)
	}
}

func TestEmitterSetPositionMovesSpawnOnly(t *testing.T) {
	params := testParams()
	params.Rate = NewDelayConstant(0.5)
	params.Lifetime = LifetimeConstant{Seconds: 5}
	e := NewEmitter(params)

	e.Step(0.5) // particle 1 at origin
	e.SetPosition(gmath.Vec2{X: 20, Y: 0})
	e.Step(0.5) // particle 2 at the new spot

	var positions []gmath.Vec2
	e.EachParticle(func(p *Particle) { positions = append(positions, p.Pos()) })
	if len(positions) != 2 {
		t.Fatalf("live particles = %d, want 2", len(positions))
	}
	// Particle 1 kept moving from the origin; particle 2 starts near x=20.
	if positions[1].X < 20 {
		t.Fatalf("second particle spawned at %v, want x >= 20", positions[1])
	}
}

func TestEmitterReapKillsEverything(t *testing.T) {
	params := testParams()
	params.Rate = NewDelayConstant(0.01)
	e := NewEmitter(params)

	e.Step(0.1)
	if e.Live() == 0 {
		t.Fatal("no particles to reap")
	}
	e.Reap()
	if e.Live() != 0 {
		t.Fatalf("live after Reap = %d, want 0", e.Live())
	}
	if !e.CanReap() {
		t.Fatal("reaped emitter not reapable")
	}
}

func TestEmitterDrawRendersParticles(t *testing.T) {
	params := testParams()
	params.Pos = gmath.Vec2{X: 3, Y: 2}
	params.Speed = SpeedConstant{V: 0}
	e := NewEmitter(params)
	e.Step(0.016)

	s := core.NewScreen(10, 5)
	e.Draw(s)
	if got := s.Get(3, 2); got != '•' {
		t.Fatalf("cell (3,2) = %q, want particle point", got)
	}
}
