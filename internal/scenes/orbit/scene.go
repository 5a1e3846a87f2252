// Package orbit implements a gravity-well scene: particles spawn on a ring
// around a movable well and swing around it until the feed runs dry.
package orbit

import (
	"fmt"
	"math/rand"

	"github.com/ilyakh/tui-sparks/internal/config"
	"github.com/ilyakh/tui-sparks/internal/core"
	"github.com/ilyakh/tui-sparks/internal/gmath"
	"github.com/ilyakh/tui-sparks/internal/particle"
	"github.com/ilyakh/tui-sparks/internal/scene"
)

const wellChar = '◉'

// burstCount is how many particles an encore burst injects.
const burstCount = 40

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Scene implements the gravity-well simulation.
type Scene struct {
	cfg      config.OrbitConfig
	runtime  core.RuntimeConfig
	rng      *rand.Rand
	well     gmath.Vec2
	field    *particle.PointField
	emitters []*particle.Emitter // feed emitter plus encore bursts
	paused   bool
}

// New creates a new orbit scene instance.
func New() *Scene {
	return &Scene{}
}

// ID returns the unique identifier for this scene.
func (s *Scene) ID() string {
	return "orbit"
}

// Title returns the display name for this scene.
func (s *Scene) Title() string {
	return "Gravity Well"
}

// Reset initializes or restarts the scene.
func (s *Scene) Reset(runtime core.RuntimeConfig) {
	s.runtime = runtime

	cfg, err := config.LoadOrbit(configPath)
	if err != nil {
		cfg = config.DefaultOrbitConfig()
	}
	s.cfg = cfg

	s.rng = rand.New(rand.NewSource(runtime.Seed))
	s.well = gmath.Vec2{
		X: float64(runtime.ScreenW) / 2,
		Y: float64(runtime.ScreenH) / 2,
	}
	s.paused = false

	if cfg.Falloff > 0 {
		s.field, err = particle.NewPointFieldFalloff(s.well, cfg.Attract, cfg.Falloff)
		if err != nil {
			s.field = particle.NewPointField(s.well, cfg.Attract)
		}
	} else {
		s.field = particle.NewPointField(s.well, cfg.Attract)
	}

	s.emitters = nil
	s.emitters = append(s.emitters, s.newEmitter(nil))
}

// newEmitter builds an emitter bound to the well's field. A non-nil rate
// overrides the configured one; encore bursts use that.
func (s *Scene) newEmitter(rate particle.Rate) *particle.Emitter {
	params, err := config.Build(s.cfg.Emitter, s.rng)
	if err != nil {
		params, _ = config.Build(config.DefaultOrbitConfig().Emitter, s.rng)
	}
	if rate != nil {
		params.Rate = rate
	}
	params.Pos = s.ringPoint()
	params.Fields = []particle.Field{s.field}
	return particle.NewEmitter(params)
}

// ringPoint picks a random point on the spawn ring around the well.
func (s *Scene) ringPoint() gmath.Vec2 {
	return s.well.Add(gmath.RandDirection(s.rng).Scale(s.cfg.SpawnRadius))
}

// Step advances the simulation by dt seconds.
func (s *Scene) Step(dt float64, in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return core.StepResult{State: s.State()}
	}

	if in.Has(core.ActionBurst) {
		s.emitters = append(s.emitters, s.newEmitter(particle.NewBurst(burstCount)))
	}

	s.moveWell(dt, in)

	for _, e := range s.emitters {
		// Spawn from a fresh spot on the ring each frame.
		e.SetPosition(s.ringPoint())
		e.Step(dt)
	}

	return core.StepResult{State: s.State()}
}

func (s *Scene) moveWell(dt float64, in core.InputFrame) {
	step := s.cfg.MoveSpeed * dt
	if in.Has(core.ActionLeft) {
		s.well.X -= step
	}
	if in.Has(core.ActionRight) {
		s.well.X += step
	}
	if in.Has(core.ActionUp) {
		s.well.Y -= step
	}
	if in.Has(core.ActionDown) {
		s.well.Y += step
	}
	s.well.X = gmath.Clamp(s.well.X, 1, float64(s.runtime.ScreenW-2))
	s.well.Y = gmath.Clamp(s.well.Y, 1, float64(s.runtime.ScreenH-2))
	s.field.SetPoint(s.well)
}

// Render draws the current scene state to the screen.
func (s *Scene) Render(dst *core.Screen) {
	dst.Clear()

	for _, e := range s.emitters {
		e.Draw(dst)
	}

	x, y := s.well.AsInts()
	dst.Set(x, y, wellChar)

	state := s.State()
	hud := fmt.Sprintf(" %d in orbit ", state.Particles)
	dst.DrawText(2, 0, hud, core.ColorDefault)

	if state.Finished {
		dst.DrawTextCentered(dst.Height()/2, "WELL DRAINED", core.ColorBrightYellow)
		dst.DrawTextCentered(dst.Height()/2+1, "R to refill, enter for a burst", core.ColorGray)
	}
	if s.paused {
		dst.DrawTextCentered(dst.Height()/2, "PAUSED", core.ColorBrightWhite)
	}
}

// State returns the current scene state.
func (s *Scene) State() core.SceneState {
	particles := 0
	emitters := 0
	emitted := 0
	finished := true
	for _, e := range s.emitters {
		particles += e.Live()
		emitted += e.EmittedTotal()
		if !e.CanReap() {
			emitters++
			finished = false
		}
	}
	return core.SceneState{
		Particles:    particles,
		Emitters:     emitters,
		EmittedTotal: emitted,
		Finished:     finished,
		Paused:       s.paused,
	}
}

// Register the scene with the registry
func init() {
	scene.Register("orbit", func() scene.Scene {
		return New()
	})
}
