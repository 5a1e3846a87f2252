package particle

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ilyakh/tui-sparks/internal/core"
	"github.com/ilyakh/tui-sparks/internal/gmath"
)

func TestSpeedRangeStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := NewSpeedRange(rng, 2, 6)
	for i := 0; i < 100; i++ {
		if v := p.Speed(); v < 2 || v > 6 {
			t.Fatalf("Speed = %g, want within [2, 6]", v)
		}
	}
}

func TestDirectionConstantNormalizes(t *testing.T) {
	d := NewDirectionConstant(gmath.Vec2{X: 3, Y: 4})
	got := d.Direction()
	if !got.ApproxEqual(gmath.Vec2{X: 0.6, Y: 0.8}) {
		t.Fatalf("Direction = %v, want {0.6 0.8}", got)
	}
}

func TestDirectionConstantPanicsOnZeroVector(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero direction vector")
		}
	}()
	NewDirectionConstant(gmath.Vec2{})
}

func TestDirectionAnyIsUnitLength(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	d := NewDirectionAny(rng)
	for i := 0; i < 50; i++ {
		v := d.Direction()
		if !gmath.ApproxEqual(v.Magnitude(), 1) {
			t.Fatalf("Direction magnitude = %g, want 1", v.Magnitude())
		}
	}
}

func TestDirectionSpreadStaysWithinCone(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	base := math.Pi / 2
	half := math.Pi / 8
	d := NewDirectionSpread(rng, base, half)
	for i := 0; i < 100; i++ {
		v := d.Direction()
		angle := math.Atan2(v.Y, v.X)
		if diff := math.Abs(angle - base); diff > half+1e-9 {
			t.Fatalf("direction angle %g deviates %g from base, spread is %g", angle, diff, half)
		}
	}
}

func TestLifetimeRangeStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	p := NewLifetimeRange(rng, 0.5, 1.5)
	for i := 0; i < 100; i++ {
		if v := p.Lifetime(); v < 0.5 || v > 1.5 {
			t.Fatalf("Lifetime = %g, want within [0.5, 1.5]", v)
		}
	}
}

func TestColorChoicePicksFromSet(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	p, err := NewColorChoice(rng, core.ColorRed, core.ColorYellow)
	if err != nil {
		t.Fatal(err)
	}
	seen := map[core.Color]bool{}
	for i := 0; i < 100; i++ {
		c := p.Color()
		if c != core.ColorRed && c != core.ColorYellow {
			t.Fatalf("Color = %v, not in choice set", c)
		}
		seen[c] = true
	}
	if len(seen) != 2 {
		t.Fatal("100 draws never hit both colors")
	}
}

func TestColorChoiceRejectsEmptySet(t *testing.T) {
	if _, err := NewColorChoice(rand.New(rand.NewSource(6))); err != ErrNoColorChoices {
		t.Fatalf("err = %v, want ErrNoColorChoices", err)
	}
}
