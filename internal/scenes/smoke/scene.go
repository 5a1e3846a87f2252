// Package smoke implements a smoke-plume scene: a movable source releases
// drifting puffs that rise on an updraft and wander under turbulence.
package smoke

import (
	"fmt"
	"math/rand"

	"github.com/ilyakh/tui-sparks/internal/config"
	"github.com/ilyakh/tui-sparks/internal/core"
	"github.com/ilyakh/tui-sparks/internal/gmath"
	"github.com/ilyakh/tui-sparks/internal/particle"
	"github.com/ilyakh/tui-sparks/internal/scene"
)

const sourceChar = '▲'

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Scene implements the smoke simulation.
type Scene struct {
	cfg     config.SmokeConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	emitter *particle.Emitter
	pos     gmath.Vec2
	paused  bool
}

// New creates a new smoke scene instance.
func New() *Scene {
	return &Scene{}
}

// ID returns the unique identifier for this scene.
func (s *Scene) ID() string {
	return "smoke"
}

// Title returns the display name for this scene.
func (s *Scene) Title() string {
	return "Smoke"
}

// Reset initializes or restarts the scene.
func (s *Scene) Reset(runtime core.RuntimeConfig) {
	s.runtime = runtime

	cfg, err := config.LoadSmoke(configPath)
	if err != nil {
		cfg = config.DefaultSmokeConfig()
	}
	s.cfg = cfg

	s.rng = rand.New(rand.NewSource(runtime.Seed))
	s.pos = gmath.Vec2{
		X: float64(runtime.ScreenW) / 2,
		Y: float64(runtime.ScreenH - 3),
	}
	s.paused = false

	params, err := config.Build(cfg.Emitter, s.rng)
	if err != nil {
		params, _ = config.Build(config.DefaultSmokeConfig().Emitter, s.rng)
	}
	params.Pos = s.pos
	params.Fields = []particle.Field{
		particle.ConstantField{A: gmath.Vec2{Y: -cfg.Updraft}},
		particle.DragField{K: cfg.Drag},
		particle.NewTurbulenceField(s.rng, cfg.Turbulence.Chance, cfg.Turbulence.Magnitude),
	}
	s.emitter = particle.NewEmitter(params)
}

// Step advances the simulation by dt seconds.
func (s *Scene) Step(dt float64, in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return core.StepResult{State: s.State()}
	}

	if in.Has(core.ActionToggleEmit) {
		if s.emitter.Emitting() {
			s.emitter.Stop()
		} else {
			s.emitter.Start()
		}
	}

	s.moveSource(dt, in)
	s.emitter.Step(dt)

	return core.StepResult{State: s.State()}
}

func (s *Scene) moveSource(dt float64, in core.InputFrame) {
	step := s.cfg.MoveSpeed * dt
	if in.Has(core.ActionLeft) {
		s.pos.X -= step
	}
	if in.Has(core.ActionRight) {
		s.pos.X += step
	}
	if in.Has(core.ActionUp) {
		s.pos.Y -= step
	}
	if in.Has(core.ActionDown) {
		s.pos.Y += step
	}
	s.pos.X = gmath.Clamp(s.pos.X, 1, float64(s.runtime.ScreenW-2))
	s.pos.Y = gmath.Clamp(s.pos.Y, 1, float64(s.runtime.ScreenH-2))
	s.emitter.SetPosition(s.pos)
}

// Render draws the current scene state to the screen.
func (s *Scene) Render(dst *core.Screen) {
	dst.Clear()

	s.emitter.Draw(dst)

	x, y := s.pos.AsInts()
	dst.Set(x, y, sourceChar)

	hud := fmt.Sprintf(" %d puffs ", s.emitter.Live())
	dst.DrawText(2, 0, hud, core.ColorDefault)

	if !s.emitter.Emitting() {
		dst.DrawText(2, 1, " source off (space to resume) ", core.ColorGray)
	}
	if s.paused {
		dst.DrawTextCentered(dst.Height()/2, "PAUSED", core.ColorBrightWhite)
	}
}

// State returns the current scene state.
func (s *Scene) State() core.SceneState {
	return core.SceneState{
		Particles:    s.emitter.Live(),
		Emitters:     1,
		EmittedTotal: s.emitter.EmittedTotal(),
		Paused:       s.paused,
	}
}

// Register the scene with the registry
func init() {
	scene.Register("smoke", func() scene.Scene {
		return New()
	})
}
