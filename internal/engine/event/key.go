package event

import "github.com/vovakirdan/tui-lander/internal/core"

// KeyHandlers are the intents of a composite key event. At least one must
// be set.
type KeyHandlers struct {
	OnChange  Callback // fired on both press and release
	OnPress   Callback
	OnHold    Callback // fired every frame while the key is down
	OnRelease Callback
}

// NewKey creates a composite key event. It owns a private group of
// key-down, key-up and timeout sub-events sharing its key filter. Adding
// the composite to a group adds those sub-events too.
func NewKey(h KeyHandlers, opts ...Option) (*Event, error) {
	if h.OnChange == nil && h.OnPress == nil && h.OnHold == nil && h.OnRelease == nil {
		return nil, ErrNoHandlers
	}

	e := newEvent(Key, nil, opts)
	e.contains = NewGroup()

	sub := func(kind Kind, cb Callback) *Event {
		s := &Event{kind: kind, callback: cb, enabled: true, keys: e.keys, args: e.args}
		e.contains.Add(s)
		return s
	}

	if h.OnChange != nil {
		sub(KeyDown, h.OnChange)
		sub(KeyUp, h.OnChange)
	}
	if h.OnPress != nil {
		sub(KeyDown, h.OnPress)
	}
	if h.OnRelease != nil {
		sub(KeyUp, h.OnRelease)
	}
	if h.OnHold != nil {
		hold := h.OnHold
		t := &Event{kind: Timeout, enabled: true, args: e.args, initial: Forever}
		t.callback = func(occ *core.Occurrence, args Args) {
			if e.held {
				hold(occ, args)
			}
		}
		t.Reset()
		e.contains.Add(t)
		sub(KeyDown, func(*core.Occurrence, Args) { e.held = true })
		sub(KeyUp, func(*core.Occurrence, Args) { e.held = false })
	}
	return e, nil
}

// Held reports whether a composite event with a hold handler currently
// sees its key down.
func (e *Event) Held() bool {
	return e.held
}

// Contains returns the private group of a composite event, or nil.
func (e *Event) Contains() *Group {
	return e.contains
}
