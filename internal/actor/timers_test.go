package actor

import "testing"

func TestTimersFireAfterDelay(t *testing.T) {
	timers := NewTimers()
	fired := false
	timers.Add(1.0, func() { fired = true })

	timers.Step(0.5)
	if fired {
		t.Fatal("timer fired early")
	}

	timers.Step(0.6)
	if !fired {
		t.Fatal("timer did not fire after its delay elapsed")
	}
	if timers.Pending() != 0 {
		t.Errorf("Pending() = %d after firing, expected 0", timers.Pending())
	}
}

func TestTimersFireInRegistrationOrder(t *testing.T) {
	timers := NewTimers()
	var order []int
	timers.Add(1.0, func() { order = append(order, 1) })
	timers.Add(1.0, func() { order = append(order, 2) })
	timers.Add(0.5, func() { order = append(order, 3) })

	// All three are due; equal delays fire in registration order, and the
	// whole list fires in the order entries were added.
	timers.Step(2.0)

	if len(order) != 3 {
		t.Fatalf("fired %d timers, expected 3", len(order))
	}
	if order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("firing order = %v, expected [1 2 3]", order)
	}
}

func TestTimersCallbackMayAddTimers(t *testing.T) {
	timers := NewTimers()
	secondFired := false
	timers.Add(0.5, func() {
		timers.Add(0.5, func() { secondFired = true })
	})

	timers.Step(1.0)
	if secondFired {
		t.Fatal("chained timer fired on the same step it was added")
	}
	if timers.Pending() != 1 {
		t.Fatalf("Pending() = %d, expected 1", timers.Pending())
	}

	timers.Step(1.0)
	if !secondFired {
		t.Fatal("chained timer never fired")
	}
}

func TestTimersElapsedAccumulates(t *testing.T) {
	timers := NewTimers()
	timers.Step(0.25)
	timers.Step(0.25)
	timers.Step(0.5)
	if timers.Elapsed() != 1.0 {
		t.Errorf("Elapsed() = %v, expected 1.0", timers.Elapsed())
	}
}
