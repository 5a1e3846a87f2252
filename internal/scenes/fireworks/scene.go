// Package fireworks implements a fireworks show: shells burst at random
// positions on a schedule that speeds up as the show runs, and the scene
// finishes when the last spark fades.
package fireworks

import (
	"fmt"
	"math/rand"

	"github.com/ilyakh/tui-sparks/internal/actor"
	"github.com/ilyakh/tui-sparks/internal/config"
	"github.com/ilyakh/tui-sparks/internal/core"
	"github.com/ilyakh/tui-sparks/internal/gmath"
	"github.com/ilyakh/tui-sparks/internal/particle"
	"github.com/ilyakh/tui-sparks/internal/scene"
)

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

// Scene implements the fireworks show.
type Scene struct {
	cfg       config.FireworksConfig
	runtime   core.RuntimeConfig
	rng       *rand.Rand
	timers    *actor.Timers
	actors    *actor.Group // shells and muzzle flashes
	shells    []*particle.Emitter
	intensity *config.IntensityManager
	launched  int
	paused    bool
	elapsed   float64
}

// New creates a new fireworks scene instance.
func New() *Scene {
	return &Scene{}
}

// ID returns the unique identifier for this scene.
func (s *Scene) ID() string {
	return "fireworks"
}

// Title returns the display name for this scene.
func (s *Scene) Title() string {
	return "Fireworks"
}

// Reset initializes or restarts the scene.
func (s *Scene) Reset(runtime core.RuntimeConfig) {
	s.runtime = runtime

	cfg, err := config.LoadFireworks(configPath)
	if err != nil {
		cfg = config.DefaultFireworksConfig()
	}
	if intensityPreset != "" {
		config.ApplyPreset(&cfg.Intensity, intensityPreset)
	}
	s.cfg = cfg

	s.rng = rand.New(rand.NewSource(runtime.Seed))
	s.timers = actor.NewTimers()
	s.actors = actor.NewGroup()
	s.shells = nil
	s.intensity = config.NewIntensityManager(cfg.Intensity)
	s.launched = 0
	s.paused = false
	s.elapsed = 0

	s.scheduleNext()
}

// scheduleNext queues the next shell. The delay shrinks as the show's
// intensity ramps up.
func (s *Scene) scheduleNext() {
	if s.launched >= s.cfg.Shells {
		return
	}
	delay := s.cfg.ShellDelay.Min + s.rng.Float64()*(s.cfg.ShellDelay.Max-s.cfg.ShellDelay.Min)
	delay /= s.intensity.RateScale(s.elapsed)
	s.timers.Add(delay, func() {
		s.launch(s.randomBurstPoint())
		s.launched++
		s.scheduleNext()
	})
}

// randomBurstPoint picks a spot in the sky: the upper two thirds of the
// screen with a margin so bursts stay visible.
func (s *Scene) randomBurstPoint() gmath.Vec2 {
	w := float64(s.runtime.ScreenW)
	h := float64(s.runtime.ScreenH)
	return gmath.RandVec2InRect(s.rng, w*0.1, h*0.1, w*0.8, h*0.55)
}

// launch explodes one shell at pos.
func (s *Scene) launch(pos gmath.Vec2) {
	params, err := config.Build(s.cfg.Shell, s.rng)
	if err != nil {
		params, _ = config.Build(config.DefaultFireworksConfig().Shell, s.rng)
	}
	params.Pos = pos
	params.Fields = []particle.Field{
		particle.ConstantField{A: gmath.Vec2{Y: s.cfg.Gravity}},
		particle.DragField{K: s.cfg.Drag},
	}
	shell := particle.NewEmitter(params)
	s.actors.Append(shell)
	s.shells = append(s.shells, shell)

	// Muzzle flash: a short-lived expanding ring around the burst point.
	s.actors.Append(actor.NewGrowingCircle(pos, 0, 3, core.ColorBrightWhite, 0.25))
}

// Step advances the show by dt seconds.
func (s *Scene) Step(dt float64, in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return core.StepResult{State: s.State()}
	}

	s.elapsed += dt

	// Manual shells are encores; they do not count toward the show.
	if in.Has(core.ActionBurst) {
		s.launch(s.randomBurstPoint())
	}

	s.timers.Step(dt)
	s.actors.Step(dt)

	return core.StepResult{State: s.State()}
}

// Render draws the current scene state to the screen.
func (s *Scene) Render(dst *core.Screen) {
	dst.Clear()

	s.actors.Draw(dst)

	state := s.State()
	hud := fmt.Sprintf(" shell %d/%d  sparks %d ", s.launched, s.cfg.Shells, state.Particles)
	dst.DrawText(2, 0, hud, core.ColorDefault)

	if state.Finished {
		dst.DrawTextCentered(dst.Height()/2, "SHOW OVER", core.ColorBrightYellow)
		dst.DrawTextCentered(dst.Height()/2+1, "R to replay, enter for an encore", core.ColorGray)
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
	for _, shell := range s.shells {
		particles += shell.Live()
		emitted += shell.EmittedTotal()
		if !shell.CanReap() {
			emitters++
		}
	}
	return core.SceneState{
		Particles:    particles,
		Emitters:     emitters,
		EmittedTotal: emitted,
		Finished:     s.launched >= s.cfg.Shells && s.timers.Pending() == 0 && s.actors.Len() == 0,
		Paused:       s.paused,
	}
}

// Register the scene with the registry
func init() {
	scene.Register("fireworks", func() scene.Scene {
		return New()
	})
}
