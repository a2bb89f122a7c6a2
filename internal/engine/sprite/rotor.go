package sprite

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/engine/clock"
)

// Rotation defaults.
const (
	RotationRate  = 2.0 // rad/s
	RotationSteps = 60
)

// Rotor tracks a body's facing independently of its direction of travel.
// The angle is kept in [0, 2π), 0 pointing right and π/2 pointing up.
type Rotor struct {
	angle float64
	rate  float64
	steps int
}

// NewRotor creates a rotor drawn with steps distinct frames.
func NewRotor(steps int) *Rotor {
	if steps <= 0 {
		steps = RotationSteps
	}
	return &Rotor{steps: steps}
}

// Angle returns the facing in radians.
func (r *Rotor) Angle() float64 {
	return r.angle
}

// SetAngle sets the facing, wrapped into [0, 2π).
func (r *Rotor) SetAngle(a float64) {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	r.angle = a
}

// Rate returns the rotation speed in rad/s.
func (r *Rotor) Rate() float64 {
	return r.rate
}

// SetRate sets the rotation speed in rad/s, positive counter-clockwise.
func (r *Rotor) SetRate(rate float64) {
	r.rate = rate
}

// RotateLeft spins counter-clockwise at RotationRate.
func (r *Rotor) RotateLeft() { r.rate = RotationRate }

// RotateRight spins clockwise at RotationRate.
func (r *Rotor) RotateRight() { r.rate = -RotationRate }

// Stop stops spinning.
func (r *Rotor) Stop() { r.rate = 0 }

// Rotating reports whether the rotor spins.
func (r *Rotor) Rotating() bool {
	return r.rate != 0
}

// RotateTowards spins towards target with a ±0.1 rad deadband.
func (r *Rotor) RotateTowards(target float64) {
	d := Diff(r.angle, target)
	switch {
	case d > 0.1:
		r.RotateRight()
	case d < -0.1:
		r.RotateLeft()
	default:
		r.Stop()
	}
}

// Advance rotates by rate for ticks milliseconds, capped at clock.MaxTick.
func (r *Rotor) Advance(ticks int) {
	if r.rate == 0 {
		return
	}
	r.SetAngle(r.angle + r.rate*clock.Seconds(ticks))
}

// Frame returns the index of the drawing frame closest to the angle.
func (r *Rotor) Frame() int {
	step := 2 * math.Pi / float64(r.steps)
	return int(math.Round(r.angle/step)) % r.steps
}

// Near reports whether the facing is within tol of target.
func (r *Rotor) Near(target, tol float64) bool {
	return math.Abs(Diff(r.angle, target)) <= tol
}

// Diff returns a - b normalized into (-π, π].
func Diff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
