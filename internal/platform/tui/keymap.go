package tui

import (
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// DefaultRelease is how long a held key may go without a repeat before the
// tracker reports it released.
const DefaultRelease = 500 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game keys.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game key.
// Returns the key (may be KeyNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (k core.Key, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.KeyNone, true
	case "up":
		return core.KeyUp, false
	case "w":
		return core.KeyW, false
	case " ":
		return core.KeySpace, false
	case "down":
		return core.KeyDown, false
	case "s":
		return core.KeyS, false
	case "left":
		return core.KeyLeft, false
	case "a":
		return core.KeyA, false
	case "right":
		return core.KeyRight, false
	case "d":
		return core.KeyD, false
	case "enter":
		return core.KeyEnter, false
	case "esc":
		return core.KeyEscape, false
	case "tab":
		return core.KeyTab, false
	case "p":
		return core.KeyP, false
	case "r":
		return core.KeyR, false
	}
	return core.KeyNone, false
}

// tapKeys have no hold behaviour; they report down and up together.
var tapKeys = map[core.Key]bool{
	core.KeyEnter:  true,
	core.KeyEscape: true,
	core.KeyP:      true,
	core.KeyTab:    true,
	core.KeyR:      true,
}

// KeyTracker turns terminal key presses into down/up pairs. Terminals
// report only presses and auto-repeats, so a held key is released once no
// repeat arrived within the release window.
type KeyTracker struct {
	release time.Duration
	held    map[core.Key]time.Time // last press or repeat
}

// NewKeyTracker creates a tracker. A non-positive release uses
// DefaultRelease.
func NewKeyTracker(release time.Duration) *KeyTracker {
	if release <= 0 {
		release = DefaultRelease
	}
	return &KeyTracker{release: release, held: make(map[core.Key]time.Time)}
}

// Press records a press of k at now and returns the occurrences it
// produces. Repeats of a held key produce nothing.
func (t *KeyTracker) Press(k core.Key, now time.Time) []core.Occurrence {
	if k == core.KeyNone {
		return nil
	}
	if tapKeys[k] {
		return []core.Occurrence{core.KeyDownOccurrence(k), core.KeyUpOccurrence(k)}
	}
	_, held := t.held[k]
	t.held[k] = now
	if held {
		return nil
	}
	return []core.Occurrence{core.KeyDownOccurrence(k)}
}

// Expire releases every held key whose last repeat is older than the
// release window. Keys are released in key order.
func (t *KeyTracker) Expire(now time.Time) []core.Occurrence {
	var gone []core.Key
	for k, last := range t.held {
		if now.Sub(last) >= t.release {
			gone = append(gone, k)
		}
	}
	slices.Sort(gone)

	out := make([]core.Occurrence, 0, len(gone))
	for _, k := range gone {
		delete(t.held, k)
		out = append(out, core.KeyUpOccurrence(k))
	}
	return out
}

// Held reports whether k is currently held.
func (t *KeyTracker) Held(k core.Key) bool {
	_, ok := t.held[k]
	return ok
}

// Reset releases every key without reporting it.
func (t *KeyTracker) Reset() {
	clear(t.held)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
	MenuActionShop
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	case "s":
		return MenuActionShop
	}

	return MenuActionNone
}
