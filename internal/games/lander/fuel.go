package lander

import "github.com/vovakirdan/tui-lander/internal/config"

// Tank is the lander's fuel gauge. Fuel is measured in whole steps; burning
// accumulates a fractional part until a full step is consumed.
type Tank struct {
	steps   int
	left    int
	seconds int
	rate    float64 // steps per millisecond of burn
	part    float64
	warning int // steps at or below which the gauge is drawn red
}

// NewTank creates a full tank. seconds is how long continuous thrust
// takes to empty it.
func NewTank(cfg config.FuelConfig, seconds int) *Tank {
	t := &Tank{
		steps:   cfg.Steps,
		seconds: seconds,
		warning: cfg.Steps * cfg.WarningPercent / 100,
	}
	t.setRate()
	t.Refuel()
	return t
}

func (t *Tank) setRate() {
	t.rate = float64(t.steps) / (float64(t.seconds) * 1000.0)
}

// SlowBurn stretches a full tank of thrust to seconds.
func (t *Tank) SlowBurn(seconds int) {
	t.seconds = seconds
	t.setRate()
}

// Burn consumes ms worth of fuel.
func (t *Tank) Burn(ms float64) {
	t.part += ms * t.rate
	for t.part >= 1 {
		t.part--
		if t.left > 0 {
			t.left--
		}
	}
}

// Refuel fills the tank.
func (t *Tank) Refuel() {
	t.left = t.steps
	t.part = 0
}

// Empty reports whether no fuel is left.
func (t *Tank) Empty() bool {
	return t.left == 0
}

// Left returns the remaining steps.
func (t *Tank) Left() int {
	return t.left
}

// Steps returns the capacity.
func (t *Tank) Steps() int {
	return t.steps
}

// Low reports whether the gauge should warn.
func (t *Tank) Low() bool {
	return t.left <= t.warning
}

// Fraction returns the fill level in [0, 1].
func (t *Tank) Fraction() float64 {
	if t.steps == 0 {
		return 0
	}
	return float64(t.left) / float64(t.steps)
}
