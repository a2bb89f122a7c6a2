// Package event turns raw input occurrences and elapsed time into callbacks.
//
// An Event is a tagged record: its Kind selects how it is matched and
// fired, while enabled state, key filter, callback and bound arguments are
// shared by every kind. Events live in Groups. A Group dispatches each
// drained occurrence to its events in insertion order and then ticks its
// timeout events by the frame's elapsed milliseconds.
package event

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-lander/internal/core"
)

var (
	// ErrMissingKey is returned when a key event is called with an
	// occurrence that carries no key code.
	ErrMissingKey = errors.New("event: occurrence carries no key")

	// ErrNoHandlers is returned when a composite key event is built
	// without any handler.
	ErrNoHandlers = errors.New("event: composite key event has no handlers")
)

// Kind is the variant tag of an Event.
type Kind int

const (
	Quit Kind = iota + 1
	KeyDown
	KeyUp
	Timeout
	Key // composite press/hold/release event
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Quit:
		return "quit"
	case KeyDown:
		return "keydown"
	case KeyUp:
		return "keyup"
	case Timeout:
		return "timeout"
	case Key:
		return "key"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// KindOf maps a raw occurrence kind to the event kind that handles it.
func KindOf(k core.OccurrenceKind) Kind {
	switch k {
	case core.OccurQuit:
		return Quit
	case core.OccurKeyDown:
		return KeyDown
	case core.OccurKeyUp:
		return KeyUp
	default:
		return 0
	}
}

// interests returns the raw occurrence kinds an event of kind k consumes.
func (k Kind) interests() []core.OccurrenceKind {
	switch k {
	case Quit:
		return []core.OccurrenceKind{core.OccurQuit}
	case KeyDown:
		return []core.OccurrenceKind{core.OccurKeyDown}
	case KeyUp:
		return []core.OccurrenceKind{core.OccurKeyUp}
	case Key:
		return []core.OccurrenceKind{core.OccurKeyDown, core.OccurKeyUp}
	default:
		return nil
	}
}

// Args are extra values bound to an event and passed to its callback.
type Args map[string]any

// Callback is invoked when an event fires. occ is nil for timeouts.
type Callback func(occ *core.Occurrence, args Args)

// Registrar is told, once per event at construction, which raw occurrence
// kinds are of interest. Kinds nobody registered are filtered upstream.
type Registrar interface {
	Allow(kind core.OccurrenceKind)
}

// Event is one dispatchable callback.
type Event struct {
	kind     Kind
	keys     []core.Key // nil matches any key
	enabled  bool
	callback Callback
	args     Args
	source   Registrar

	// Timeout
	delay     int
	remaining int
	count     int
	initial   int
	keepalive bool

	// Key (composite)
	contains *Group
	held     bool

	owners []*Group
}

// Option configures an event at construction.
type Option func(*Event)

// WithKeys restricts a key event to the given keys.
func WithKeys(keys ...core.Key) Option {
	return func(e *Event) { e.keys = append([]core.Key(nil), keys...) }
}

// WithArgs binds extra arguments passed to the callback.
func WithArgs(args Args) Option {
	return func(e *Event) { e.args = args }
}

// WithSource registers the event's occurrence kinds with r.
func WithSource(r Registrar) Option {
	return func(e *Event) { e.source = r }
}

// Keepalive keeps an exhausted timeout in its groups, disabled, so it can
// be Reset and reused.
func Keepalive() Option {
	return func(e *Event) { e.keepalive = true }
}

func newEvent(kind Kind, cb Callback, opts []Option) *Event {
	e := &Event{kind: kind, callback: cb, enabled: true}
	for _, opt := range opts {
		opt(e)
	}
	if e.source != nil {
		for _, k := range kind.interests() {
			e.source.Allow(k)
		}
	}
	return e
}

// NewQuit creates an event fired by quit occurrences.
func NewQuit(cb Callback, opts ...Option) *Event {
	return newEvent(Quit, cb, opts)
}

// NewKeyDown creates an event fired when a matching key goes down.
func NewKeyDown(cb Callback, opts ...Option) *Event {
	return newEvent(KeyDown, cb, opts)
}

// NewKeyUp creates an event fired when a matching key is released.
func NewKeyUp(cb Callback, opts ...Option) *Event {
	return newEvent(KeyUp, cb, opts)
}

// Kind returns the variant tag.
func (e *Event) Kind() Kind {
	return e.kind
}

// Keys returns the key filter. Nil means any key.
func (e *Event) Keys() []core.Key {
	return e.keys
}

// Args returns the bound arguments.
func (e *Event) Args() Args {
	return e.args
}

// Enabled reports whether the event fires when called.
func (e *Event) Enabled() bool {
	return e.enabled
}

// Enable lets the event fire again.
func (e *Event) Enable() {
	e.enabled = true
	if e.contains != nil {
		e.contains.Enable()
	}
}

// Disable turns calls into no-ops without removing the event.
func (e *Event) Disable() {
	e.enabled = false
	if e.contains != nil {
		e.contains.Disable()
	}
}

// Attached reports whether the event belongs to at least one group.
func (e *Event) Attached() bool {
	return len(e.owners) > 0
}

// Kill disables the event and removes it from every group holding it.
// A composite event takes its internal group down with it.
func (e *Event) Kill() {
	e.enabled = false
	for _, g := range slices.Clone(e.owners) {
		g.Remove(e)
	}
	if e.contains != nil {
		e.contains.Kill()
	}
}

// handles reports whether e is dispatched for raw occurrences of kind k.
func (e *Event) handles(k core.OccurrenceKind) bool {
	return e.kind == KindOf(k) && e.kind != 0
}

func (e *Event) matchesKey(k core.Key) bool {
	return e.keys == nil || slices.Contains(e.keys, k)
}

// Call fires the event for occ. Disabled events do nothing. Key events
// return ErrMissingKey when occ carries no key.
func (e *Event) Call(occ *core.Occurrence) error {
	switch e.kind {
	case Timeout:
		return e.fire(occ)
	case Quit:
		e.invoke(occ)
		return nil
	}

	if occ == nil || !occ.HasKey {
		return fmt.Errorf("%w: %s event", ErrMissingKey, e.kind)
	}
	if !e.matchesKey(occ.Key) {
		return nil
	}
	if e.kind == Key {
		return e.contains.Dispatch(*occ)
	}
	e.invoke(occ)
	return nil
}

func (e *Event) invoke(occ *core.Occurrence) {
	if !e.enabled || e.callback == nil {
		return
	}
	e.callback(occ, e.args)
}
