package gmath

import (
	"math"
	"math/rand"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := NewVec2(1, 2)
	b := NewVec2(2, 3)

	if got := a.Add(b); got != (Vec2{3, 5}) {
		t.Errorf("Add() = %v, expected (3, 5)", got)
	}
	if got := b.Sub(a); got != (Vec2{1, 1}) {
		t.Errorf("Sub() = %v, expected (1, 1)", got)
	}
	if got := a.Neg(); got != (Vec2{-1, -2}) {
		t.Errorf("Neg() = %v, expected (-1, -2)", got)
	}
	if got := a.Scale(3); got != (Vec2{3, 6}) {
		t.Errorf("Scale(3) = %v, expected (3, 6)", got)
	}
	if got := a.Div(2); got != (Vec2{0.5, 1}) {
		t.Errorf("Div(2) = %v, expected (0.5, 1)", got)
	}
	if got := a.Dot(b); got != 8 {
		t.Errorf("Dot() = %v, expected 8", got)
	}
}

func TestVec2Magnitude(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		expected float64
	}{
		{"unit x", Vec2{1, 0}, 1},
		{"3-4-5 triangle", Vec2{3, 4}, 5},
		{"zero", Vec2{0, 0}, 0},
		{"negative components", Vec2{-3, -4}, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.Magnitude(); got != tc.expected {
				t.Errorf("Magnitude() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVec2Normalize(t *testing.T) {
	v := NewVec2(1, 1).Normalize()
	want := 1 / math.Sqrt2
	if !ApproxEqual(v.X, want) || !ApproxEqual(v.Y, want) {
		t.Errorf("Normalize() = %v, expected (%v, %v)", v, want, want)
	}
	if !ApproxEqual(v.Magnitude(), 1.0) {
		t.Errorf("normalized magnitude = %v, expected 1", v.Magnitude())
	}
}

func TestVec2NormalizeZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Normalize() on zero vector did not panic")
		}
	}()
	Vec2{}.Normalize()
}

func TestVec2NormalizeSafe(t *testing.T) {
	if got := (Vec2{}).NormalizeSafe(); got != (Vec2{}) {
		t.Errorf("NormalizeSafe() on zero vector = %v, expected zero vector", got)
	}
	got := NewVec2(0, 5).NormalizeSafe()
	if !got.ApproxEqual(Vec2{0, 1}) {
		t.Errorf("NormalizeSafe() = %v, expected (0, 1)", got)
	}
}

func TestVec2Rotate(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		angle    float64
		expected Vec2
	}{
		{"quarter turn", Vec2{1, 0}, math.Pi / 2, Vec2{0, 1}},
		{"half turn", Vec2{1, 0}, math.Pi, Vec2{-1, 0}},
		{"full turn", Vec2{2, 3}, 2 * math.Pi, Vec2{2, 3}},
		{"negative quarter", Vec2{0, 1}, -math.Pi / 2, Vec2{1, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Rotate(tc.angle)
			if !got.ApproxEqual(tc.expected) {
				t.Errorf("Rotate(%v) = %v, expected %v", tc.angle, got, tc.expected)
			}
		})
	}
}

func TestVec2Polar(t *testing.T) {
	v := FromPolar(math.Pi/2, 2)
	if !v.ApproxEqual(Vec2{0, 2}) {
		t.Errorf("FromPolar(pi/2, 2) = %v, expected (0, 2)", v)
	}

	p := NewVec2(0, 3).AsPolar()
	if !ApproxEqual(p.T, math.Pi/2) || !ApproxEqual(p.R, 3) {
		t.Errorf("AsPolar() = %v, expected (pi/2, 3)", p)
	}

	round := p.AsVec2()
	if !round.ApproxEqual(Vec2{0, 3}) {
		t.Errorf("AsVec2() = %v, expected (0, 3)", round)
	}
}

func TestVec2WithMagnitude(t *testing.T) {
	v := NewVec2(3, 4).WithMagnitude(10)
	if !v.ApproxEqual(Vec2{6, 8}) {
		t.Errorf("WithMagnitude(10) = %v, expected (6, 8)", v)
	}
}

func TestVec2AsInts(t *testing.T) {
	x, y := NewVec2(3.7, -1.2).AsInts()
	if x != 3 || y != -1 {
		t.Errorf("AsInts() = (%d, %d), expected (3, -1)", x, y)
	}
}

func TestRandDirectionIsUnit(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		v := RandDirection(rng)
		if !ApproxEqual(v.Magnitude(), 1.0) {
			t.Fatalf("RandDirection() magnitude = %v, expected 1", v.Magnitude())
		}
	}
}

func TestRandDirectionSpreadStaysInSpread(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	base := math.Pi / 4
	half := math.Pi / 8

	for i := 0; i < 200; i++ {
		v := RandDirectionSpread(rng, base, half)
		angle := math.Atan2(v.Y, v.X)
		if angle < base-half-approxEqualTolerance || angle > base+half+approxEqualTolerance {
			t.Fatalf("RandDirectionSpread() angle %v outside [%v, %v]", angle, base-half, base+half)
		}
	}
}

func TestRandVec2InRect(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		v := RandVec2InRect(rng, 10, 20, 30, 40)
		if v.X < 10 || v.X >= 40 || v.Y < 20 || v.Y >= 60 {
			t.Fatalf("RandVec2InRect() = %v outside rect", v)
		}
	}
}

func TestRandVec2InCircle(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	center := NewVec2(5, 5)
	for i := 0; i < 200; i++ {
		v := RandVec2InCircle(rng, center, 3)
		if v.Sub(center).Magnitude() >= 3 {
			t.Fatalf("RandVec2InCircle() = %v outside radius", v)
		}
	}
}
