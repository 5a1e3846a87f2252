package actor

import "github.com/ilyakh/tui-sparks/internal/core"

// Group is an ordered collection of actors with automatic garbage collection.
// Step advances every live actor and then marks the ones that report
// CanReap; marked actors are still drawn once by the next Draw and are
// physically removed at the start of the following Step. From the caller's
// perspective removal is immediate: Len and At see live actors only.
//
// Removing an actor from a Group does not destroy it: other code may still
// hold a reference. The Group only guarantees it stops stepping and drawing
// the actor.
type Group struct {
	actors []Actor
	dead   []bool
	nDead  int
}

// NewGroup creates an empty actor group.
func NewGroup() *Group {
	return &Group{}
}

// Append adds an actor to the end of the group.
func (g *Group) Append(a Actor) {
	g.actors = append(g.actors, a)
	g.dead = append(g.dead, false)
}

// Len returns the number of live actors in the group.
func (g *Group) Len() int {
	return len(g.actors) - g.nDead
}

// At returns the i-th live actor in insertion order.
func (g *Group) At(i int) Actor {
	for idx, a := range g.actors {
		if g.dead[idx] {
			continue
		}
		if i == 0 {
			return a
		}
		i--
	}
	panic("actor: Group.At index out of range")
}

// Step removes actors marked dead on the previous step, advances every
// remaining actor by dt, then marks actors whose CanReap reports true.
// Marking happens in a separate pass after all actors were stepped, so the
// sweep never skips or double-processes an entry, and a freshly dead actor
// still gets exactly one more Draw before it disappears.
func (g *Group) Step(dt float64) {
	g.sweep()

	for _, a := range g.actors {
		a.Step(dt)
	}
	for i, a := range g.actors {
		if a.CanReap() {
			g.dead[i] = true
			g.nDead++
		}
	}
}

// sweep compacts the backing store, dropping actors marked on the previous
// step and releasing their references.
func (g *Group) sweep() {
	if g.nDead == 0 {
		return
	}
	keep := g.actors[:0]
	keepDead := g.dead[:0]
	for i, a := range g.actors {
		if !g.dead[i] {
			keep = append(keep, a)
			keepDead = append(keepDead, false)
		}
	}
	for i := len(keep); i < len(g.actors); i++ {
		g.actors[i] = nil
	}
	g.actors = keep
	g.dead = keepDead
	g.nDead = 0
}

// Each calls fn for every live actor in insertion order.
func (g *Group) Each(fn func(Actor)) {
	for i, a := range g.actors {
		if !g.dead[i] {
			fn(a)
		}
	}
}

// Draw renders every actor in insertion order, including actors that died
// during the preceding Step and are awaiting removal.
func (g *Group) Draw(dst core.Surface) {
	for _, a := range g.actors {
		a.Draw(dst)
	}
}

// Reap force-kills every actor and clears the group unconditionally.
func (g *Group) Reap() {
	for i, a := range g.actors {
		a.Reap()
		g.actors[i] = nil
	}
	g.actors = g.actors[:0]
	g.dead = g.dead[:0]
	g.nDead = 0
}
