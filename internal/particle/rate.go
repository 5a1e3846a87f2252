// Package particle implements the policy-driven particle engine: emission
// rate, speed, direction, lifetime, color and force-field policies, the
// particle itself, and the emitter that composes them. Policies are small
// swappable strategies owned by exactly one emitter; the only stateful ones
// are the rates, which carry fractional time across frames.
package particle

import (
	"fmt"
	"math/rand"
)

// Rate decides how many particles an emitter spawns each frame and when the
// emitter is done emitting for good.
type Rate interface {
	// HowMany returns the number of particles to emit for a frame of dt
	// seconds. Must not be called again once Complete reports true.
	HowMany(dt float64) int

	// Complete reports whether the rate will never emit again.
	Complete() bool
}

// Burst emits all of its particles on the first call and is then complete.
type Burst struct {
	n        int
	complete bool
}

// NewBurst creates a rate that fires n particles once.
func NewBurst(n int) *Burst {
	return &Burst{n: n}
}

// HowMany returns the full burst count and flips the rate to complete.
func (b *Burst) HowMany(dt float64) int {
	b.complete = true
	return b.n
}

// Complete reports true after the single burst has fired.
func (b *Burst) Complete() bool {
	return b.complete
}

// delayAccumulator implements the carryover logic shared by the delay-based
// rates. Each frame the unconsumed remainder of the previous frame is added
// to dt before dividing by the current delay, so the long-run emission rate
// converges to 1/delay even under variable frame deltas. A naive
// int(dt/delay) would drop the fractional time every frame and drift.
type delayAccumulator struct {
	carryover float64
}

func (a *delayAccumulator) howMany(dt, delay float64) int {
	total := dt + a.carryover
	count := int(total / delay)
	a.carryover = total - float64(count)*delay
	return count
}

// DelayConstant emits a particle every fixed number of seconds, forever.
type DelayConstant struct {
	delayAccumulator
	delay float64
}

// NewDelayConstant creates a rate that emits one particle every delay
// seconds (0.25 yields four particles per second). The delay must be
// positive.
func NewDelayConstant(delay float64) *DelayConstant {
	if delay <= 0 {
		panic(fmt.Sprintf("particle: emission delay must be > 0, got %f", delay))
	}
	return &DelayConstant{delay: delay}
}

// HowMany returns the number of whole delays consumed by dt plus carryover.
func (r *DelayConstant) HowMany(dt float64) int {
	return r.howMany(dt, r.delay)
}

// Complete always reports false; a constant-delay rate never finishes.
func (r *DelayConstant) Complete() bool {
	return false
}

// DelayRange emits with a delay redrawn uniformly from [lo, hi] as each
// delay interval is consumed.
type DelayRange struct {
	delayAccumulator
	lo, hi float64
	rng    *rand.Rand
}

// NewDelayRange creates a rate whose inter-emission delay is sampled
// uniformly from [lo, hi]. Both bounds must be positive and ordered.
func NewDelayRange(rng *rand.Rand, lo, hi float64) *DelayRange {
	mustValidDelayRange(lo, hi)
	return &DelayRange{lo: lo, hi: hi, rng: rng}
}

// HowMany returns the number of emissions for this frame under a freshly
// drawn delay.
func (r *DelayRange) HowMany(dt float64) int {
	return r.howMany(dt, uniform(r.rng, r.lo, r.hi))
}

// Complete always reports false; a delay-range rate never finishes.
func (r *DelayRange) Complete() bool {
	return false
}

// DelayRangeLifetime is DelayRange with a countdown: the rate completes once
// its total lifetime has elapsed.
type DelayRangeLifetime struct {
	delayAccumulator
	lo, hi    float64
	remaining float64
	rng       *rand.Rand
}

// NewDelayRangeLifetime creates a randomized-delay rate that stops emitting
// after lifetime seconds.
func NewDelayRangeLifetime(rng *rand.Rand, lo, hi, lifetime float64) *DelayRangeLifetime {
	mustValidDelayRange(lo, hi)
	return &DelayRangeLifetime{lo: lo, hi: hi, remaining: lifetime, rng: rng}
}

// HowMany counts down the rate's lifetime and returns this frame's emission
// count.
func (r *DelayRangeLifetime) HowMany(dt float64) int {
	r.remaining -= dt
	return r.howMany(dt, uniform(r.rng, r.lo, r.hi))
}

// Complete reports true once the rate's lifetime has elapsed.
func (r *DelayRangeLifetime) Complete() bool {
	return r.remaining <= 0
}

// uniform samples a float uniformly from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func mustValidDelayRange(lo, hi float64) {
	if lo <= 0 || hi < lo {
		panic(fmt.Sprintf("particle: emission delay range [%f, %f] must be positive and ordered", lo, hi))
	}
}
