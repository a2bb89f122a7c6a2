// Package sprite binds a motion path to a sized, collidable body.
package sprite

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/engine/path"
)

// Sprite is a movable body: a path for its top-left corner, a size, and a
// collision rectangle centered on its bounds.
type Sprite struct {
	Path path.Path
	W, H int

	// Inset shrinks the collision rectangle on each axis.
	Inset int
	// Square makes the collision rectangle a square of the smaller side.
	Square bool
}

// New creates a sprite of w x h world pixels following p.
func New(p path.Path, w, h int) *Sprite {
	return &Sprite{Path: p, W: w, H: h}
}

// Position returns the top-left corner.
func (s *Sprite) Position() core.Vec {
	return s.Path.Position()
}

// SetPosition moves the top-left corner.
func (s *Sprite) SetPosition(p core.Vec) {
	s.Path.SetPosition(p)
}

// Move advances the path by ticks. ErrEndOfPath is returned as is so the
// caller can decide to reset or stop; other errors are wrapped.
func (s *Sprite) Move(ticks int) error {
	_, err := s.Path.Next(ticks)
	if err == nil || errors.Is(err, path.ErrEndOfPath) {
		return err
	}
	return fmt.Errorf("sprite: move: %w", err)
}

// Rect returns the sprite bounds rounded to whole pixels.
func (s *Sprite) Rect() core.Rect {
	p := s.Position()
	return core.NewRect(int(math.Round(p.X)), int(math.Round(p.Y)), s.W, s.H)
}

// CollisionRect returns the rectangle used for collision checks.
func (s *Sprite) CollisionRect() core.Rect {
	r := s.Rect()
	if s.Square {
		side := core.Min(r.W, r.H)
		r = r.Inflate(side-r.W, side-r.H)
	}
	return r.Inflate(-s.Inset, -s.Inset)
}

// Collide reports whether the sprite's collision rectangle overlaps r.
func (s *Sprite) Collide(r core.Rect) bool {
	return s.CollisionRect().Intersects(r)
}

// CollideSprite reports whether two sprites' collision rectangles overlap.
func (s *Sprite) CollideSprite(o *Sprite) bool {
	return s.CollisionRect().Intersects(o.CollisionRect())
}

// CollideAny returns the index of the first rect hit, or -1.
func (s *Sprite) CollideAny(rects []core.Rect) int {
	return s.CollisionRect().IntersectsAny(rects)
}

// OnScreen reports whether the whole sprite lies in a w x h world, allowing
// it to stick out by slack pixels on every side.
func (s *Sprite) OnScreen(w, h, slack float64) bool {
	p := s.Position()
	return p.X >= -slack && p.Y >= -slack &&
		p.X <= w-float64(s.W)+slack && p.Y <= h-float64(s.H)+slack
}

// Pause pauses the path.
func (s *Sprite) Pause() { s.Path.Pause() }

// Unpause resumes the path.
func (s *Sprite) Unpause() { s.Path.Unpause() }

// Reset resets the path.
func (s *Sprite) Reset() { s.Path.Reset() }
