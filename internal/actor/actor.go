// Package actor provides the update/draw/reap lifecycle contract shared by
// everything the playground simulates, plus the managed collection that
// drives it each frame. Particles, emitters and decorative shapes are all
// actors; a scene owns them through Groups.
package actor

import "github.com/ilyakh/tui-sparks/internal/core"

// Actor is the per-frame lifecycle contract. Anything steppable, drawable
// and reapable can live in a Group.
type Actor interface {
	// Step advances the actor by dt seconds.
	Step(dt float64)

	// Draw renders the actor onto the surface.
	Draw(dst core.Surface)

	// CanReap reports whether the actor's lifetime has ended and it can be
	// removed from its collection.
	CanReap() bool

	// Reap hard-kills the actor so that CanReap returns true on the next
	// check. Most actors die on their own; Reap exists for clients that
	// need to cut a lifetime short.
	Reap()
}
