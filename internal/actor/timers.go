package actor

// Timers manages deferred callbacks on the simulation clock. Add registers
// a callback to fire once the given delay has elapsed; Step advances the
// clock and fires due callbacks in registration order before removing them.
// There is no wall-clock involvement: time only moves when Step is called.
type Timers struct {
	elapsed float64
	entries []timerEntry
}

type timerEntry struct {
	triggerAt float64
	callback  func()
}

// NewTimers creates an empty timer list.
func NewTimers() *Timers {
	return &Timers{}
}

// Add schedules callback to fire once delay seconds of simulation time have
// passed. Callbacks registered with equal delays fire in registration order.
func (t *Timers) Add(delay float64, callback func()) {
	t.entries = append(t.entries, timerEntry{
		triggerAt: t.elapsed + delay,
		callback:  callback,
	})
}

// Step advances the clock by dt and fires every due callback. Fired timers
// are removed; callbacks may safely Add new timers, which are considered
// for firing from the next Step onward.
func (t *Timers) Step(dt float64) {
	t.elapsed += dt

	// Snapshot: callbacks may append new entries while we iterate.
	due := t.entries
	var kept []timerEntry
	for _, e := range due {
		if e.triggerAt < t.elapsed {
			e.callback()
		} else {
			kept = append(kept, e)
		}
	}
	// Entries added by callbacks live past len(due).
	kept = append(kept, t.entries[len(due):]...)
	t.entries = kept
}

// Pending returns the number of timers waiting to fire.
func (t *Timers) Pending() int {
	return len(t.entries)
}

// Elapsed returns the total simulation time the timer list has seen.
func (t *Timers) Elapsed() float64 {
	return t.elapsed
}
