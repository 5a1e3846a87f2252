package smoke

import (
	"strings"
	"testing"

	"github.com/ilyakh/tui-sparks/internal/core"
	"github.com/ilyakh/tui-sparks/internal/particle"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestSceneDeterminism(t *testing.T) {
	run := func() core.SceneState {
		s := New()
		s.Reset(testRuntime(555))
		var state core.SceneState
		for i := 0; i < 300; i++ {
			state = s.Step(1.0/60, core.NewInputFrame()).State
		}
		return state
	}

	s1 := run()
	s2 := run()
	if s1 != s2 {
		t.Errorf("Determinism failed: run1=%+v run2=%+v", s1, s2)
	}
}

func TestPuffsRise(t *testing.T) {
	s := New()
	s.Reset(testRuntime(7))

	// Run for a second and check the plume sits above the source on
	// average. The updraft and the upward emission cone both push that
	// way; turbulence only jitters it.
	for i := 0; i < 60; i++ {
		s.Step(1.0/60, core.NewInputFrame())
	}

	sum := 0.0
	n := 0
	s.emitter.EachParticle(func(p *particle.Particle) {
		sum += p.Pos().Y
		n++
	})
	if n == 0 {
		t.Fatal("no puffs after a second")
	}
	if avg := sum / float64(n); avg >= s.pos.Y {
		t.Errorf("plume average y %f is not above the source y %f", avg, s.pos.Y)
	}
}

func TestToggleSourceStopsSpawning(t *testing.T) {
	s := New()
	s.Reset(testRuntime(7))

	toggle := core.NewInputFrame()
	toggle.Set(core.ActionToggleEmit)
	s.Step(1.0/60, toggle)

	emitted := s.State().EmittedTotal
	for i := 0; i < 60; i++ {
		s.Step(1.0/60, core.NewInputFrame())
	}
	if got := s.State().EmittedTotal; got != emitted {
		t.Errorf("source kept spawning while off: %d -> %d", emitted, got)
	}
}

func TestSceneRender(t *testing.T) {
	s := New()
	s.Reset(testRuntime(7))
	for i := 0; i < 60; i++ {
		s.Step(1.0/60, core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	s.Render(screen)

	str := screen.String()
	if !strings.ContainsRune(str, sourceChar) {
		t.Error("Render should draw the source")
	}
	if !strings.Contains(str, "puffs") {
		t.Error("Render should draw the HUD")
	}
}
