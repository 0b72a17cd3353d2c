// Package clock samples elapsed time and a clamped per-frame delta.
package clock

import "time"

// Clock measures time from its first sample. After a stall (tab hidden,
// debugger pause) the delta is clamped so animations do not jump.
type Clock struct {
	now      func() time.Time
	maxDelta float64

	started bool
	start   time.Time
	last    time.Time
}

// New returns a wall-clock Clock whose deltas never exceed maxDelta seconds.
func New(maxDelta float64) *Clock {
	return NewWithSource(maxDelta, time.Now)
}

// NewWithSource returns a Clock reading time from now.
func NewWithSource(maxDelta float64, now func() time.Time) *Clock {
	return &Clock{now: now, maxDelta: maxDelta}
}

// Sample returns the seconds elapsed since the first sample and the clamped
// delta since the previous one. The first sample is (0, 0).
func (c *Clock) Sample() (t, dt float64) {
	now := c.now()
	if !c.started {
		c.started = true
		c.start = now
		c.last = now
		return 0, 0
	}
	dt = now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		dt = 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		dt = c.maxDelta
	}
	return now.Sub(c.start).Seconds(), dt
}

// Reset makes the next sample the new origin.
func (c *Clock) Reset() {
	c.started = false
}
