package core

// Key identifies a physical key, abstracted from the terminal encoding.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyW
	KeyA
	KeyS
	KeyD
	KeyP
	KeyQ
	KeyR
)

var keyNames = map[Key]string{
	KeyNone:   "None",
	KeyUp:     "Up",
	KeyDown:   "Down",
	KeyLeft:   "Left",
	KeyRight:  "Right",
	KeySpace:  "Space",
	KeyEnter:  "Enter",
	KeyEscape: "Esc",
	KeyTab:    "Tab",
	KeyW:      "W",
	KeyA:      "A",
	KeyS:      "S",
	KeyD:      "D",
	KeyP:      "P",
	KeyQ:      "Q",
	KeyR:      "R",
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// OccurrenceKind is the type of a raw input occurrence.
type OccurrenceKind int

const (
	OccurQuit OccurrenceKind = iota + 1
	OccurKeyDown
	OccurKeyUp
)

// String returns a human-readable name for the occurrence kind.
func (k OccurrenceKind) String() string {
	switch k {
	case OccurQuit:
		return "Quit"
	case OccurKeyDown:
		return "KeyDown"
	case OccurKeyUp:
		return "KeyUp"
	default:
		return "Unknown"
	}
}

// Occurrence is one raw input item drained from the platform queue.
// HasKey is false for occurrences that carry no key code (Quit).
type Occurrence struct {
	Kind   OccurrenceKind
	Key    Key
	HasKey bool
}

// QuitOccurrence returns a quit occurrence.
func QuitOccurrence() Occurrence {
	return Occurrence{Kind: OccurQuit}
}

// KeyDownOccurrence returns a key-down occurrence for k.
func KeyDownOccurrence(k Key) Occurrence {
	return Occurrence{Kind: OccurKeyDown, Key: k, HasKey: true}
}

// KeyUpOccurrence returns a key-up occurrence for k.
func KeyUpOccurrence(k Key) Occurrence {
	return Occurrence{Kind: OccurKeyUp, Key: k, HasKey: true}
}

// InputFrame is everything the platform collected for one simulation step:
// the drained occurrence queue and the elapsed milliseconds since the
// previous step.
type InputFrame struct {
	Occurrences []Occurrence
	Elapsed     int
}

// NewInputFrame creates an empty input frame with the given elapsed time.
func NewInputFrame(elapsed int) InputFrame {
	return InputFrame{Elapsed: elapsed}
}

// Push appends an occurrence to the frame.
func (f *InputFrame) Push(o Occurrence) {
	f.Occurrences = append(f.Occurrences, o)
}

// Has reports whether the frame contains an occurrence of the given kind
// for key k. Quit occurrences match any key.
func (f InputFrame) Has(kind OccurrenceKind, k Key) bool {
	for _, o := range f.Occurrences {
		if o.Kind != kind {
			continue
		}
		if kind == OccurQuit || o.Key == k {
			return true
		}
	}
	return false
}

// Clear empties the occurrence list, keeping its storage.
func (f *InputFrame) Clear() {
	f.Occurrences = f.Occurrences[:0]
	f.Elapsed = 0
}
