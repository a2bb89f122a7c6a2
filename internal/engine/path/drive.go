package path

import "math"

// Mode tells how a Drive value acts on its axis.
type Mode int

const (
	// Accelerate applies the value as a signed acceleration.
	Accelerate Mode = iota
	// Decelerate applies the value against the current velocity and
	// never moves a body at rest.
	Decelerate
)

// String returns the mode name.
func (m Mode) String() string {
	if m == Decelerate {
		return "decelerate"
	}
	return "accelerate"
}

// Drive is the non-gravity acceleration on one axis.
type Drive struct {
	Mode  Mode
	Value float64
}

// Accel returns an accelerating drive.
func Accel(v float64) Drive {
	return Drive{Mode: Accelerate, Value: v}
}

// Decel returns a decelerating drive with magnitude |m|.
func Decel(m float64) Drive {
	return Drive{Mode: Decelerate, Value: math.Abs(m)}
}

// At returns the signed acceleration the drive produces at velocity v.
func (d Drive) At(v float64) float64 {
	if d.Mode != Decelerate {
		return d.Value
	}
	switch {
	case v > 0:
		return -d.Value
	case v < 0:
		return d.Value
	default:
		return 0
	}
}

// settle stops a decelerating axis at rest instead of letting it cross zero.
func (d Drive) settle(v0, v1 float64) float64 {
	if d.Mode == Decelerate && v0 != 0 && v0*v1 < 0 {
		return 0
	}
	return v1
}
