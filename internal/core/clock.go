package core

import "time"

// Clock measures the time elapsed between frames.
// Restart is called once per frame and its result is fed to Step.
type Clock struct {
	now  func() time.Time
	last time.Time
}

// NewClock creates a clock that starts measuring immediately.
func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

// NewClockWithSource creates a clock reading time from now.
// Tests use it to drive frames deterministically.
func NewClockWithSource(now func() time.Time) *Clock {
	return &Clock{now: now, last: now()}
}

// Restart returns the time since the last restart and starts a new interval.
// A clock moving backwards yields zero rather than a negative duration.
func (c *Clock) Restart() time.Duration {
	t := c.now()
	dt := t.Sub(c.last)
	c.last = t
	if dt < 0 {
		return 0
	}
	return dt
}
