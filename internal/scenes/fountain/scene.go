// Package fountain implements a water-fountain scene: a movable spout
// sprays particles upward in a cone and gravity pulls them back down.
package fountain

import (
	"fmt"
	"math/rand"

	"github.com/ilyakh/tui-sparks/internal/config"
	"github.com/ilyakh/tui-sparks/internal/core"
	"github.com/ilyakh/tui-sparks/internal/gmath"
	"github.com/ilyakh/tui-sparks/internal/particle"
	"github.com/ilyakh/tui-sparks/internal/scene"
)

const spoutChar = '╦'

// configPath stores the custom config path set via CLI
var configPath string
var intensityPreset config.IntensityPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetIntensityPreset sets the intensity preset.
func SetIntensityPreset(preset string) {
	switch preset {
	case "calm":
		intensityPreset = config.IntensityCalm
	case "normal":
		intensityPreset = config.IntensityNormal
	case "wild":
		intensityPreset = config.IntensityWild
	case "fixed":
		intensityPreset = config.IntensityFixed
	default:
		intensityPreset = "" // Use config default
	}
}

// Scene implements the fountain simulation.
type Scene struct {
	cfg     config.FountainConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	emitter *particle.Emitter
	pos     gmath.Vec2
	paused  bool
	elapsed float64
}

// New creates a new fountain scene instance.
func New() *Scene {
	return &Scene{}
}

// ID returns the unique identifier for this scene.
func (s *Scene) ID() string {
	return "fountain"
}

// Title returns the display name for this scene.
func (s *Scene) Title() string {
	return "Fountain"
}

// Reset initializes or restarts the scene.
func (s *Scene) Reset(runtime core.RuntimeConfig) {
	s.runtime = runtime

	cfg, err := config.LoadFountain(configPath)
	if err != nil {
		cfg = config.DefaultFountainConfig()
	}
	if intensityPreset != "" {
		config.ApplyPreset(&cfg.Intensity, intensityPreset)
	}
	s.cfg = cfg

	s.rng = rand.New(rand.NewSource(runtime.Seed))
	s.pos = gmath.Vec2{
		X: float64(runtime.ScreenW) / 2,
		Y: float64(runtime.ScreenH - 2),
	}
	s.paused = false
	s.elapsed = 0

	// The fountain applies its intensity once, at the spout: a higher
	// level means faster water.
	scale := config.NewIntensityManager(cfg.Intensity).SpeedScale(0)
	cfg.Emitter.Speed.Min *= scale
	cfg.Emitter.Speed.Max *= scale

	params, err := config.Build(cfg.Emitter, s.rng)
	if err != nil {
		// User preset was broken; the embedded default always builds.
		params, _ = config.Build(config.DefaultFountainConfig().Emitter, s.rng)
	}
	params.Pos = s.pos
	params.Fields = []particle.Field{
		particle.ConstantField{A: gmath.Vec2{Y: cfg.Gravity}},
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

	s.elapsed += dt

	if in.Has(core.ActionToggleEmit) {
		if s.emitter.Emitting() {
			s.emitter.Stop()
		} else {
			s.emitter.Start()
		}
	}

	s.moveSpout(dt, in)
	s.emitter.Step(dt)

	return core.StepResult{State: s.State()}
}

func (s *Scene) moveSpout(dt float64, in core.InputFrame) {
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
	dst.Set(x, y, spoutChar)

	hud := fmt.Sprintf(" %d drops ", s.emitter.Live())
	dst.DrawText(2, 0, hud, core.ColorDefault)

	if !s.emitter.Emitting() {
		dst.DrawText(2, 1, " spout off (space to resume) ", core.ColorGray)
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
	scene.Register("fountain", func() scene.Scene {
		return New()
	})
}
