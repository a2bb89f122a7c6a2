package event

import "github.com/vovakirdan/tui-lander/internal/core"

// Forever makes a timeout repeat without end.
const Forever = -1

// NewTimeout creates an event fired every delay milliseconds of ticks,
// count times (or Forever). Once the count is exhausted the event disables
// itself and, unless Keepalive was given, leaves its groups.
func NewTimeout(delay, count int, cb Callback, opts ...Option) *Event {
	e := newEvent(Timeout, cb, opts)
	e.delay = delay
	e.initial = count
	e.Reset()
	return e
}

// Reset restores a timeout's delay and count and enables it.
func (e *Event) Reset() {
	e.remaining = e.delay
	e.count = e.initial
	e.Enable()
}

// Remaining returns the milliseconds left before a timeout fires.
func (e *Event) Remaining() int {
	return e.remaining
}

// Count returns the number of firings left, or Forever.
func (e *Event) Count() int {
	return e.count
}

// Tick counts ticks down and fires the timeout once the delay has run out.
// Disabled timeouts do not count down.
func (e *Event) Tick(ticks int) error {
	if e.kind != Timeout || !e.enabled {
		return nil
	}
	e.remaining -= ticks
	if e.remaining <= 0 {
		return e.Call(nil)
	}
	return nil
}

func (e *Event) fire(occ *core.Occurrence) error {
	e.invoke(occ)
	e.remaining = e.delay
	if e.count > 0 {
		e.count--
	}
	if e.count == 0 {
		e.Disable()
		if !e.keepalive {
			e.Kill()
		}
	}
	return nil
}
