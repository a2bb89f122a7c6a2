package event

import "github.com/vovakirdan/tui-lander/internal/core"

// Queue buffers raw occurrences between frames. Only kinds some event
// registered interest in are kept; quit is always allowed.
type Queue struct {
	allowed map[core.OccurrenceKind]bool
	pending []core.Occurrence
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{
		allowed: map[core.OccurrenceKind]bool{core.OccurQuit: true},
	}
}

// Allow registers interest in kind.
func (q *Queue) Allow(kind core.OccurrenceKind) {
	q.allowed[kind] = true
}

// Allowed reports whether occurrences of kind are kept.
func (q *Queue) Allowed(kind core.OccurrenceKind) bool {
	return q.allowed[kind]
}

// Push queues occurrences, dropping kinds nobody asked for.
func (q *Queue) Push(occs ...core.Occurrence) {
	for _, o := range occs {
		if q.allowed[o.Kind] {
			q.pending = append(q.pending, o)
		}
	}
}

// Drain returns and clears the queued occurrences.
func (q *Queue) Drain() []core.Occurrence {
	out := q.pending
	q.pending = nil
	return out
}

// Len returns the number of queued occurrences.
func (q *Queue) Len() int {
	return len(q.pending)
}

var (
	_ Source    = (*Queue)(nil)
	_ Registrar = (*Queue)(nil)
)
