package steppedtime

import (
	"sync"
)

// Clock is a clock that only moves when told to. Unlike a real monotonic
// clock, it may be set backwards, which makes it useful for exercising how
// callers cope with a clock that misbehaves.
type Clock struct {
	now  Time
	auto Duration

	mu sync.Mutex
}

// NewClock returns a Clock stopped at the zero Time.
func NewClock() *Clock {
	return &Clock{}
}

func (c *Clock) lock()   { c.mu.Lock() }
func (c *Clock) unlock() { c.mu.Unlock() }

// Set moves the clock to now, which may be earlier than the current setting.
func (c *Clock) Set(now Time) {
	c.lock()
	c.now = now
	c.unlock()
}

// Step moves the clock by dt. A negative dt moves it backwards.
func (c *Clock) Step(dt Duration) {
	c.lock()
	c.now = c.now.Add(dt)
	c.unlock()
}

// SetAutoStep makes every subsequent call to Now advance the clock by dt
// after reading it. A zero dt disables it.
func (c *Clock) SetAutoStep(dt Duration) {
	c.lock()
	c.auto = dt
	c.unlock()
}

// Now returns the current setting of the clock.
func (c *Clock) Now() (now Time) {
	c.lock()
	now = c.now
	c.now = c.now.Add(c.auto)
	c.unlock()
	return
}

// Since returns the time elapsed since t, or zero if t is in the future.
func (c *Clock) Since(t Time) Duration {
	return c.Now().SaturatingDurationSince(t)
}
