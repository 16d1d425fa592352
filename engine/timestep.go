package engine

import "time"

// DefaultMaxCatchUp bounds the steps a single long frame can trigger.
const DefaultMaxCatchUp = 4

// Timestep turns variable frame times into a steady number of fixed steps.
// Elapsed time accumulates and each step consumes exactly one period, so the
// remainder carries into the next frame instead of being dropped.
type Timestep struct {
	period     time.Duration
	seconds    float64
	acc        float64
	MaxCatchUp int
}

// NewTimestep creates a timestep firing once per period.
func NewTimestep(period time.Duration) *Timestep {
	return &Timestep{
		period:     period,
		seconds:    period.Seconds(),
		MaxCatchUp: DefaultMaxCatchUp,
	}
}

// Period returns the step length.
func (t *Timestep) Period() time.Duration {
	return t.period
}

// PeriodSeconds returns the step length in seconds.
func (t *Timestep) PeriodSeconds() float64 {
	return t.seconds
}

// SetPeriod changes the step length without touching accumulated time.
func (t *Timestep) SetPeriod(period time.Duration) {
	t.period = period
	t.seconds = period.Seconds()
}

// Advance adds dt seconds and returns how many steps are due. Steps beyond
// MaxCatchUp are dropped along with the time they would have consumed.
func (t *Timestep) Advance(dt float64) int {
	if t.seconds <= 0 {
		return 1
	}

	t.acc += dt
	steps := int(t.acc / t.seconds)
	t.acc -= float64(steps) * t.seconds
	if t.acc < 0 {
		t.acc = 0
	}

	if t.MaxCatchUp > 0 && steps > t.MaxCatchUp {
		steps = t.MaxCatchUp
	}
	return steps
}

// Overstep returns how far into the next step the accumulator is, in [0, 1).
func (t *Timestep) Overstep() float64 {
	if t.seconds <= 0 {
		return 0
	}
	return t.acc / t.seconds
}

// Reset drops any accumulated time.
func (t *Timestep) Reset() {
	t.acc = 0
}
