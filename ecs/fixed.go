package ecs

import "time"

// MaxFrameTime caps the time a single Advance call may feed into the fixed
// schedule, so a long stall does not trigger a burst of catch-up ticks.
const MaxFrameTime = 250 * time.Millisecond

// FixedTime is the singleton published by a FixedClock.
type FixedTime struct {
	Step     time.Duration
	Overstep time.Duration // accumulated time not yet simulated, always < Step
	Ticks    uint64
}

// OverstepFraction returns how far the presentation is between the last two
// fixed ticks, in [0, 1).
func (t FixedTime) OverstepFraction() float64 {
	if t.Step <= 0 {
		return 0
	}
	return float64(t.Overstep) / float64(t.Step)
}

// FixedClock drives a scheduler at a fixed step from variable frame times.
type FixedClock struct {
	scheduler *Scheduler
	time      *Singleton[FixedTime]
	paused    bool
}

// NewFixedClock creates a clock running scheduler every step. The FixedTime
// singleton of the scheduler's storage is created or reset.
func NewFixedClock(scheduler *Scheduler, step time.Duration) *FixedClock {
	if step <= 0 {
		panic("fixed step must be positive")
	}
	scheduler.storage.AddSingleton(FixedTime{Step: step})
	return &FixedClock{
		scheduler: scheduler,
		time:      NewSingleton[FixedTime](scheduler.storage),
	}
}

// Time returns the published FixedTime.
func (c *FixedClock) Time() *FixedTime {
	return c.time.Get()
}

// SetPaused stops or resumes accumulation. Step still runs a tick while paused.
func (c *FixedClock) SetPaused(paused bool) {
	c.paused = paused
}

// Paused reports whether the clock is paused.
func (c *FixedClock) Paused() bool {
	return c.paused
}

// Advance adds frame time and runs as many fixed ticks as fit. It returns
// the number of ticks run.
func (c *FixedClock) Advance(frame time.Duration) int {
	if c.paused || frame <= 0 {
		return 0
	}
	frame = min(frame, MaxFrameTime)

	t := c.time.Get()
	t.Overstep += frame

	ticks := 0
	for t.Overstep >= t.Step {
		t.Overstep -= t.Step
		c.tick(t)
		ticks++
	}
	return ticks
}

// Step runs exactly one fixed tick without touching the overstep.
func (c *FixedClock) Step() {
	c.tick(c.time.Get())
}

func (c *FixedClock) tick(t *FixedTime) {
	t.Ticks++
	c.scheduler.Once(t.Step.Seconds())
}
