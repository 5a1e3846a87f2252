package fireworks

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

func TestShowRunsToCompletion(t *testing.T) {
	s := New()
	s.Reset(testRuntime(99))

	// Worst case: 24 shells at 1.1s apart plus the last sparks fading.
	var state core.SceneState
	for i := 0; i < 3000; i++ {
		state = s.Step(1.0/60, core.NewInputFrame()).State
		if state.Finished {
			break
		}
	}
	if !state.Finished {
		t.Fatal("show never finished")
	}
	if s.launched != s.cfg.Shells {
		t.Errorf("launched %d shells, want %d", s.launched, s.cfg.Shells)
	}
	if state.EmittedTotal == 0 {
		t.Error("show finished without emitting anything")
	}
	if state.Particles != 0 || state.Emitters != 0 {
		t.Errorf("finished show still has %d particles, %d emitters", state.Particles, state.Emitters)
	}
}

func TestSceneDeterminism(t *testing.T) {
	run := func() core.SceneState {
		s := New()
		s.Reset(testRuntime(4242))
		var state core.SceneState
		for i := 0; i < 600; i++ {
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

func TestEncoreBurst(t *testing.T) {
	s := New()
	s.Reset(testRuntime(7))

	launched := s.launched
	burst := core.NewInputFrame()
	burst.Set(core.ActionBurst)
	state := s.Step(1.0/60, burst).State

	if state.EmittedTotal == 0 {
		t.Error("encore burst emitted nothing")
	}
	// Encores are extra; they never advance the show counter.
	if s.launched != launched {
		t.Errorf("encore advanced the shell counter: %d -> %d", launched, s.launched)
	}
}

func TestScenePause(t *testing.T) {
	s := New()
	s.Reset(testRuntime(7))

	// Run until the first shell is in the air.
	for i := 0; i < 120 && s.State().EmittedTotal == 0; i++ {
		s.Step(1.0/60, core.NewInputFrame())
	}
	if s.State().EmittedTotal == 0 {
		t.Fatal("no shell launched in two seconds")
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	if !s.Step(1.0/60, pause).State.Paused {
		t.Fatal("scene should be paused")
	}

	before := s.State()
	for i := 0; i < 60; i++ {
		s.Step(1.0/60, core.NewInputFrame())
	}
	if after := s.State(); after != before {
		t.Errorf("show advanced while paused: %+v -> %+v", before, after)
	}
}

func TestSceneRender(t *testing.T) {
	s := New()
	s.Reset(testRuntime(7))
	for i := 0; i < 120; i++ {
		s.Step(1.0/60, core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	s.Render(screen)
	if !strings.Contains(screen.String(), "shell") {
		t.Error("Render should draw the HUD")
	}
}
