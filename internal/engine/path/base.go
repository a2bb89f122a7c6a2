// Package path moves entities through the world.
//
// A Path owns one entity's position and produces the next position every
// frame from the elapsed ticks passed in by the caller. Three variants
// exist: Complex (velocity, drive, gravity, turning and restrictions),
// Acceleration (velocity plus constant acceleration in px/s) and Velocity
// (a fixed displacement per frame). All of them share Base, which tracks
// the previous position and signals ErrEndOfPath when the path expires.
package path

import (
	"errors"
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
)

var (
	// ErrEndOfPath is returned by Next once the duration has elapsed or the
	// position was set to NoPosition. Callers decide to Reset or stop.
	ErrEndOfPath = errors.New("path: end of path")

	// ErrConflictingOptions is returned when mutually exclusive options
	// are passed to a constructor.
	ErrConflictingOptions = errors.New("path: conflicting options")

	// ErrInvalidRestriction is returned when a restriction has a lower
	// bound above its upper bound or a negative speed cap.
	ErrInvalidRestriction = errors.New("path: invalid restriction")
)

// NoPosition is the sentinel position that ends a path.
var NoPosition = core.Vec{X: math.NaN(), Y: math.NaN()}

// IsNoPosition reports whether v is the NoPosition sentinel.
func IsNoPosition(v core.Vec) bool {
	return math.IsNaN(v.X) && math.IsNaN(v.Y)
}

// Path is the contract shared by every path variant.
type Path interface {
	// Next advances the path by ticks milliseconds and returns the new
	// position, or ErrEndOfPath.
	Next(ticks int) (core.Vec, error)
	Position() core.Vec
	SetPosition(p core.Vec)
	Reset()
	Pause()
	Unpause()
	Paused() bool
}

// Base holds the state common to all paths.
type Base struct {
	pos      core.Vec
	prev     core.Vec
	heading  float64 // last known direction of travel
	duration int     // ms, 0 means unbounded
	elapsed  int
	paused   bool
}

func newBase(start core.Vec) Base {
	return Base{pos: start, prev: start}
}

// Position returns the current position.
func (b *Base) Position() core.Vec {
	return b.pos
}

// Previous returns the position before the last SetPosition.
func (b *Base) Previous() core.Vec {
	return b.prev
}

// SetPosition moves the path and records the previous position.
func (b *Base) SetPosition(p core.Vec) {
	b.prev = b.pos
	b.pos = p
}

// Direction returns the direction of the last move in radians, 0 pointing
// right and positive counter-clockwise on screen. When the path did not
// move the previous direction is returned.
func (b *Base) Direction() float64 {
	d := b.pos.Sub(b.prev)
	if d.X != 0 || d.Y != 0 {
		b.heading = math.Atan2(-d.Y, d.X)
	}
	return b.heading
}

// SetDuration sets the path lifetime in milliseconds and restarts it.
// Zero removes the limit.
func (b *Base) SetDuration(ms int) {
	b.duration = ms
	b.elapsed = 0
}

// Elapsed returns the milliseconds consumed since the last Reset.
func (b *Base) Elapsed() int {
	return b.elapsed
}

// Reset restarts the duration counter.
func (b *Base) Reset() {
	b.elapsed = 0
}

// Pause marks the path as paused. Callers must stop calling Next while
// a path is paused; the flag does not stop integration by itself.
func (b *Base) Pause() {
	b.paused = true
}

// Unpause clears the paused flag.
func (b *Base) Unpause() {
	b.paused = false
}

// Paused reports whether the path is paused.
func (b *Base) Paused() bool {
	return b.paused
}

// Distance returns the distance from the current position to point.
func (b *Base) Distance(point core.Vec) float64 {
	return point.Sub(b.pos).Len()
}

// DirectionTo returns the screen-space direction from the current
// position to point.
func (b *Base) DirectionTo(point core.Vec) float64 {
	d := point.Sub(b.pos)
	return math.Atan2(-d.Y, d.X)
}

// OnScreen reports whether the position lies within a w x h area grown
// by slack on every side.
func (b *Base) OnScreen(w, h, slack float64) bool {
	return b.pos.X >= -slack && b.pos.Y >= -slack &&
		b.pos.X <= w+slack && b.pos.Y <= h+slack
}

// finish consumes ms of the duration and applies the expiry checks.
func (b *Base) finish(ms int) (core.Vec, error) {
	b.elapsed += ms
	if b.duration > 0 && b.elapsed > b.duration {
		return b.pos, ErrEndOfPath
	}
	if IsNoPosition(b.pos) {
		return b.pos, ErrEndOfPath
	}
	return b.pos, nil
}

// normalizeAngle maps a into (-π, π].
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

var (
	_ Path = (*Complex)(nil)
	_ Path = (*Velocity)(nil)
	_ Path = (*Acceleration)(nil)
)
