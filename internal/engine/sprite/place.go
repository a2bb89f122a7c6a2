package sprite

import (
	"errors"
	"fmt"
)

// ErrConflictingPlacement is returned when an axis gets both an absolute
// and a relative offset.
var ErrConflictingPlacement = errors.New("sprite: conflicting placement")

type placement struct {
	x, y   *int
	dx, dy *int
}

// PlaceOption adjusts where Place puts a box.
type PlaceOption func(*placement)

// AtX places the box x from the left edge, or from the right edge when x
// is negative.
func AtX(x int) PlaceOption { return func(p *placement) { p.x = &x } }

// AtY places the box y from the top edge, or from the bottom edge when y
// is negative.
func AtY(y int) PlaceOption { return func(p *placement) { p.y = &y } }

// OffsetX shifts the centered box horizontally.
func OffsetX(dx int) PlaceOption { return func(p *placement) { p.dx = &dx } }

// OffsetY shifts the centered box vertically.
func OffsetY(dy int) PlaceOption { return func(p *placement) { p.dy = &dy } }

// Place returns the top-left corner of a w x h box inside an areaW x areaH
// area. Without options the box is centered.
func Place(areaW, areaH, w, h int, opts ...PlaceOption) (int, int, error) {
	var p placement
	for _, opt := range opts {
		opt(&p)
	}
	if p.x != nil && p.dx != nil {
		return 0, 0, fmt.Errorf("%w: x and dx", ErrConflictingPlacement)
	}
	if p.y != nil && p.dy != nil {
		return 0, 0, fmt.Errorf("%w: y and dy", ErrConflictingPlacement)
	}
	return place(areaW, w, p.x, p.dx), place(areaH, h, p.y, p.dy), nil
}

func place(area, size int, abs, rel *int) int {
	switch {
	case abs != nil && *abs < 0:
		return area - size + *abs
	case abs != nil:
		return *abs
	case rel != nil:
		return (area-size)/2 + *rel
	default:
		return (area - size) / 2
	}
}
