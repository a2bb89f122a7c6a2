// Package clock supplies the per-frame tick value that drives the engine.
package clock

import "time"

// MaxTick caps a single frame's elapsed milliseconds. A slow frame never
// moves anything further than MaxTick worth of simulation.
const MaxTick = 50

// Clock measures milliseconds between successive Tick calls.
type Clock struct {
	now  func() time.Time
	last time.Time
	tick int
}

// New creates a clock reading the wall clock.
func New() *Clock {
	return NewWithSource(time.Now)
}

// NewWithSource creates a clock reading time from now. Tests pass a fake.
func NewWithSource(now func() time.Time) *Clock {
	c := &Clock{now: now}
	c.Reset()
	return c
}

// Reset restarts measurement from the current instant.
func (c *Clock) Reset() {
	c.last = c.now()
	c.tick = 0
}

// Tick returns the milliseconds elapsed since the previous Tick (or Reset).
// The raw value is returned; use Cap when feeding integrators.
func (c *Clock) Tick() int {
	t := c.now()
	ms := int(t.Sub(c.last) / time.Millisecond)
	if ms < 0 {
		ms = 0
	}
	c.last = t
	c.tick = ms
	return ms
}

// Last returns the value of the most recent Tick.
func (c *Clock) Last() int {
	return c.tick
}

// Cap limits ticks to [0, MaxTick].
func Cap(ticks int) int {
	if ticks < 0 {
		return 0
	}
	if ticks > MaxTick {
		return MaxTick
	}
	return ticks
}

// Seconds converts capped ticks to seconds.
func Seconds(ticks int) float64 {
	return float64(Cap(ticks)) / 1000
}
