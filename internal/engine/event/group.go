package event

import (
	"errors"
	"slices"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Source supplies the raw occurrences queued since the previous frame.
type Source interface {
	Drain() []core.Occurrence
}

// Group is an ordered collection of events. Timeout events are also kept
// in a separate list so ticking them does not scan the whole group.
//
// Events may leave a group while it dispatches (a timeout running out,
// a callback killing events). Removal is then deferred: the event is
// skipped for the rest of the pass and the lists are compacted once the
// outermost pass returns.
type Group struct {
	events   []*Event
	timeouts []*Event
	removed  map[*Event]struct{}
	depth    int
}

// NewGroup creates a group holding events.
func NewGroup(events ...*Event) *Group {
	g := &Group{removed: make(map[*Event]struct{})}
	g.Add(events...)
	return g
}

// Add appends events in order. Composite events bring their sub-events
// along. Events already in the group are ignored.
func (g *Group) Add(events ...*Event) {
	for _, e := range events {
		if e == nil {
			continue
		}
		if _, gone := g.removed[e]; gone {
			delete(g.removed, e)
			e.owners = append(e.owners, g)
			continue
		}
		if slices.Contains(g.events, e) {
			continue
		}
		g.events = append(g.events, e)
		if e.kind == Timeout {
			g.timeouts = append(g.timeouts, e)
		}
		e.owners = append(e.owners, g)
		if e.kind == Key && e.contains != nil {
			g.Add(e.contains.Events()...)
		}
	}
}

// AddGroup adds every event of other, flattening it into g.
func (g *Group) AddGroup(other *Group) {
	g.Add(other.Events()...)
}

// Remove detaches e from the group.
func (g *Group) Remove(e *Event) {
	if !g.has(e) {
		return
	}
	e.owners = slices.DeleteFunc(e.owners, func(o *Group) bool { return o == g })
	if g.depth > 0 {
		if g.removed == nil {
			g.removed = make(map[*Event]struct{})
		}
		g.removed[e] = struct{}{}
		return
	}
	g.drop(e)
}

func (g *Group) drop(e *Event) {
	g.events = slices.DeleteFunc(g.events, func(x *Event) bool { return x == e })
	g.timeouts = slices.DeleteFunc(g.timeouts, func(x *Event) bool { return x == e })
}

func (g *Group) has(e *Event) bool {
	if _, gone := g.removed[e]; gone {
		return false
	}
	return slices.Contains(g.events, e)
}

// Has reports whether e belongs to the group.
func (g *Group) Has(e *Event) bool {
	return g.has(e)
}

// Events returns the group's events in insertion order.
func (g *Group) Events() []*Event {
	out := make([]*Event, 0, len(g.events))
	for _, e := range g.events {
		if _, gone := g.removed[e]; !gone {
			out = append(out, e)
		}
	}
	return out
}

// Timeouts returns the group's timeout events.
func (g *Group) Timeouts() []*Event {
	out := make([]*Event, 0, len(g.timeouts))
	for _, e := range g.timeouts {
		if _, gone := g.removed[e]; !gone {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of events in the group.
func (g *Group) Len() int {
	return len(g.events) - len(g.removed)
}

// Enable enables every event.
func (g *Group) Enable() {
	for _, e := range g.Events() {
		e.enabled = true
	}
}

// Disable disables every event without removing it.
func (g *Group) Disable() {
	for _, e := range g.Events() {
		e.enabled = false
	}
}

// Kill disables every event and removes each one from all of its groups,
// recursively through composite events.
func (g *Group) Kill() {
	for _, e := range g.Events() {
		e.Kill()
	}
}

func (g *Group) begin() {
	g.depth++
}

func (g *Group) end() {
	g.depth--
	if g.depth > 0 || len(g.removed) == 0 {
		return
	}
	for e := range g.removed {
		g.drop(e)
	}
	clear(g.removed)
}

// Dispatch calls every event handling occ's kind, in insertion order.
// All failures are returned joined.
func (g *Group) Dispatch(occ core.Occurrence) error {
	g.begin()
	defer g.end()

	var errs []error
	n := len(g.events)
	for i := 0; i < n; i++ {
		e := g.events[i]
		if _, gone := g.removed[e]; gone || !e.handles(occ.Kind) {
			continue
		}
		if err := e.Call(&occ); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Tick advances every timeout by ticks milliseconds.
func (g *Group) Tick(ticks int) error {
	g.begin()
	defer g.end()

	var errs []error
	n := len(g.timeouts)
	for i := 0; i < n; i++ {
		e := g.timeouts[i]
		if _, gone := g.removed[e]; gone {
			continue
		}
		if err := e.Tick(ticks); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Check runs one frame: every occurrence drained from src is dispatched,
// then the timeouts are ticked. src may be nil.
func (g *Group) Check(src Source, ticks int) error {
	var errs []error
	if src != nil {
		for _, occ := range src.Drain() {
			if err := g.Dispatch(occ); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if err := g.Tick(ticks); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
