package actor

import (
	"github.com/ilyakh/tui-sparks/internal/core"
	"github.com/ilyakh/tui-sparks/internal/gmath"
)

// Lifetime is embeddable lifecycle state for actors that simply expire after
// a fixed number of seconds.
type Lifetime struct {
	Remaining float64
}

// Step counts down the remaining lifetime.
func (l *Lifetime) Step(dt float64) {
	l.Remaining -= dt
}

// CanReap reports whether the lifetime has run out.
func (l *Lifetime) CanReap() bool {
	return l.Remaining <= 0
}

// Reap expires the lifetime immediately.
func (l *Lifetime) Reap() {
	l.Remaining = 0
}

// Dot is a single colored cell with a lifetime.
type Dot struct {
	Lifetime
	Pos   gmath.Vec2
	Color core.Color
}

// NewDot creates a dot actor.
func NewDot(pos gmath.Vec2, color core.Color, lifetime float64) *Dot {
	return &Dot{Lifetime: Lifetime{Remaining: lifetime}, Pos: pos, Color: color}
}

func (d *Dot) Draw(dst core.Surface) {
	x, y := d.Pos.AsInts()
	dst.SetPoint(x, y, d.Color)
}

// Circle is a filled circle with a lifetime.
type Circle struct {
	Lifetime
	Pos    gmath.Vec2
	Radius int
	Color  core.Color
}

// NewCircle creates a circle actor.
func NewCircle(pos gmath.Vec2, radius int, color core.Color, lifetime float64) *Circle {
	return &Circle{Lifetime: Lifetime{Remaining: lifetime}, Pos: pos, Radius: radius, Color: color}
}

func (c *Circle) Draw(dst core.Surface) {
	x, y := c.Pos.AsInts()
	dst.FillCircle(x, y, c.Radius, c.Color)
}

// Line is a line segment with a lifetime.
type Line struct {
	Lifetime
	From, To gmath.Vec2
	Color    core.Color
}

// NewLine creates a line actor.
func NewLine(from, to gmath.Vec2, color core.Color, lifetime float64) *Line {
	return &Line{Lifetime: Lifetime{Remaining: lifetime}, From: from, To: to, Color: color}
}

func (l *Line) Draw(dst core.Surface) {
	x0, y0 := l.From.AsInts()
	x1, y1 := l.To.AsInts()
	dst.DrawLine(x0, y0, x1, y1, l.Color)
}

// Rect is a filled rectangle with a lifetime.
type Rect struct {
	Lifetime
	Pos   gmath.Vec2
	W, H  int
	Color core.Color
}

// NewRect creates a rectangle actor.
func NewRect(pos gmath.Vec2, w, h int, color core.Color, lifetime float64) *Rect {
	return &Rect{Lifetime: Lifetime{Remaining: lifetime}, Pos: pos, W: w, H: h, Color: color}
}

func (r *Rect) Draw(dst core.Surface) {
	x, y := r.Pos.AsInts()
	dst.FillRect(x, y, r.W, r.H, r.Color)
}

// GrowingCircle animates its radius from a start to an end value over its
// lifetime. Useful for shockwaves and explosion rings.
type GrowingCircle struct {
	Lifetime
	Pos       gmath.Vec2
	Color     core.Color
	startR    float64
	endR      float64
	radius    float64
	totalLife float64
}

// NewGrowingCircle creates a circle whose radius animates from startRadius
// to endRadius over lifetime seconds.
func NewGrowingCircle(pos gmath.Vec2, startRadius, endRadius float64, color core.Color, lifetime float64) *GrowingCircle {
	return &GrowingCircle{
		Lifetime:  Lifetime{Remaining: lifetime},
		Pos:       pos,
		Color:     color,
		startR:    startRadius,
		endR:      endRadius,
		radius:    startRadius,
		totalLife: lifetime,
	}
}

func (g *GrowingCircle) Step(dt float64) {
	g.Lifetime.Step(dt)
	u := g.Remaining / g.totalLife
	g.radius = gmath.Lerp(g.endR, g.startR, u)
}

func (g *GrowingCircle) Draw(dst core.Surface) {
	x, y := g.Pos.AsInts()
	dst.FillCircle(x, y, int(g.radius), g.Color)
}
