package orbit

import (
	"strings"
	"testing"

	"github.com/ilyakh/tui-sparks/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestFeedDrainsAndFinishes(t *testing.T) {
	s := New()
	s.Reset(testRuntime(11))

	// The feed runs 12s and the longest-lived particle another 8s.
	var state core.SceneState
	for i := 0; i < 22*60; i++ {
		state = s.Step(1.0/60, core.NewInputFrame()).State
		if state.Finished {
			break
		}
	}
	if !state.Finished {
		t.Fatal("well never drained")
	}
	if state.EmittedTotal == 0 {
		t.Error("well drained without emitting anything")
	}
	if state.Particles != 0 {
		t.Errorf("finished scene still has %d particles", state.Particles)
	}
}

func TestSceneDeterminism(t *testing.T) {
	run := func() core.SceneState {
		s := New()
		s.Reset(testRuntime(2024))
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

func TestBurstAddsEmitter(t *testing.T) {
	s := New()
	s.Reset(testRuntime(7))

	burst := core.NewInputFrame()
	burst.Set(core.ActionBurst)
	state := s.Step(1.0/60, burst).State

	if len(s.emitters) != 2 {
		t.Fatalf("emitter count = %d, want 2 (feed + burst)", len(s.emitters))
	}
	if state.Particles < burstCount {
		t.Errorf("live particles = %d, want at least the %d burst", state.Particles, burstCount)
	}
}

func TestWellStaysOnScreen(t *testing.T) {
	s := New()
	s.Reset(testRuntime(7))

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	for i := 0; i < 600; i++ {
		s.Step(1.0/60, right)
	}
	if s.well.X > float64(s.runtime.ScreenW-2) {
		t.Errorf("well escaped the screen: x = %f", s.well.X)
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
	if !strings.ContainsRune(str, wellChar) {
		t.Error("Render should draw the well")
	}
	if !strings.Contains(str, "orbit") {
		t.Error("Render should draw the HUD")
	}
}
