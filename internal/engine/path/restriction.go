package path

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Default restriction values.
const (
	DefaultMaxSpeed    = 2000.0
	DefaultMaxVelocity = 5000.0
)

// Limit is an optional position bound.
type Limit struct {
	Value float64
	Set   bool
}

// Bound returns a limit set to v.
func Bound(v float64) Limit {
	return Limit{Value: v, Set: true}
}

// Restriction bounds the speed, velocity and position of a Complex path.
// Velocity bounds are always present. Position bounds are optional.
type Restriction struct {
	Speed        float64
	VXMin, VXMax float64
	VYMin, VYMax float64
	XMin, XMax   Limit
	YMin, YMax   Limit
}

// DefaultRestriction returns the restriction every Complex path starts with:
// a 2000 px/s speed cap, ±5000 px/s per axis and no position bounds.
func DefaultRestriction() Restriction {
	return Restriction{
		Speed: DefaultMaxSpeed,
		VXMin: -DefaultMaxVelocity, VXMax: DefaultMaxVelocity,
		VYMin: -DefaultMaxVelocity, VYMax: DefaultMaxVelocity,
	}
}

// RestrictOption modifies a Restriction.
type RestrictOption func(*Restriction)

// MaxSpeed sets the speed cap.
func MaxSpeed(s float64) RestrictOption {
	return func(r *Restriction) { r.Speed = s }
}

// VelocityX sets the horizontal velocity bounds.
func VelocityX(min, max float64) RestrictOption {
	return func(r *Restriction) { r.VXMin, r.VXMax = min, max }
}

// VelocityY sets the vertical velocity bounds.
func VelocityY(min, max float64) RestrictOption {
	return func(r *Restriction) { r.VYMin, r.VYMax = min, max }
}

// MinX bounds the position from the left.
func MinX(v float64) RestrictOption {
	return func(r *Restriction) { r.XMin = Bound(v) }
}

// MaxX bounds the position from the right.
func MaxX(v float64) RestrictOption {
	return func(r *Restriction) { r.XMax = Bound(v) }
}

// MinY bounds the position from the top.
func MinY(v float64) RestrictOption {
	return func(r *Restriction) { r.YMin = Bound(v) }
}

// MaxY bounds the position from the bottom.
func MaxY(v float64) RestrictOption {
	return func(r *Restriction) { r.YMax = Bound(v) }
}

// OnScreen keeps the position inside a w x h world.
func OnScreen(w, h float64) RestrictOption {
	return func(r *Restriction) {
		r.XMin, r.YMin = Bound(0), Bound(0)
		r.XMax, r.YMax = Bound(w), Bound(h)
	}
}

// Validate checks that every bound pair is ordered.
func (r Restriction) Validate() error {
	if r.Speed < 0 {
		return fmt.Errorf("%w: negative speed %v", ErrInvalidRestriction, r.Speed)
	}
	if r.VXMin > r.VXMax {
		return fmt.Errorf("%w: vx min %v > max %v", ErrInvalidRestriction, r.VXMin, r.VXMax)
	}
	if r.VYMin > r.VYMax {
		return fmt.Errorf("%w: vy min %v > max %v", ErrInvalidRestriction, r.VYMin, r.VYMax)
	}
	if r.XMin.Set && r.XMax.Set && r.XMin.Value > r.XMax.Value {
		return fmt.Errorf("%w: x min %v > max %v", ErrInvalidRestriction, r.XMin.Value, r.XMax.Value)
	}
	if r.YMin.Set && r.YMax.Set && r.YMin.Value > r.YMax.Value {
		return fmt.Errorf("%w: y min %v > max %v", ErrInvalidRestriction, r.YMin.Value, r.YMax.Value)
	}
	return nil
}

// ClampVelocity clamps v into the per-axis bounds and then, if the speed
// still exceeds the cap, rescales it to the cap along its own direction.
func (r Restriction) ClampVelocity(v core.Vec) core.Vec {
	v = r.clampAxes(v)
	if v.Len() > r.Speed {
		d := math.Atan2(-v.Y, v.X)
		v = core.V(r.Speed*math.Cos(d), -r.Speed*math.Sin(d))
		v = r.clampAxes(v)
	}
	return v
}

func (r Restriction) clampAxes(v core.Vec) core.Vec {
	return core.V(core.ClampF(v.X, r.VXMin, r.VXMax), core.ClampF(v.Y, r.VYMin, r.VYMax))
}

// ClampPosition clamps p into the configured position bounds.
// Unset bounds leave the axis unbounded.
func (r Restriction) ClampPosition(p core.Vec) core.Vec {
	if r.XMax.Set {
		p.X = math.Min(p.X, r.XMax.Value)
	}
	if r.XMin.Set {
		p.X = math.Max(p.X, r.XMin.Value)
	}
	if r.YMax.Set {
		p.Y = math.Min(p.Y, r.YMax.Value)
	}
	if r.YMin.Set {
		p.Y = math.Max(p.Y, r.YMin.Value)
	}
	return p
}
