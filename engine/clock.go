package engine

import "time"

// Clock gates simulation steps: a step may run once at least interval has
// elapsed since the last completed one. At most one step is granted per check,
// lost time is dropped rather than caught up.
type Clock struct {
	interval time.Duration
	lastStep time.Time
	steps    uint64
}

// NewClock starts the clock at start; the first step is due one interval later
func NewClock(start time.Time, interval time.Duration) *Clock {
	return &Clock{
		interval: interval,
		lastStep: start,
	}
}

// Ready reports whether a step may run at now
func (c *Clock) Ready(now time.Time) bool {
	return now.Sub(c.lastStep) >= c.interval
}

// Mark records a completed step at now
func (c *Clock) Mark(now time.Time) {
	c.lastStep = now
	c.steps++
}

func (c *Clock) Interval() time.Duration {
	return c.interval
}

func (c *Clock) LastStep() time.Time {
	return c.lastStep
}

// Steps returns the number of completed steps
func (c *Clock) Steps() uint64 {
	return c.steps
}
