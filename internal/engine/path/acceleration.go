package path

import (
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/engine/clock"
)

// Acceleration moves by velocity and constant acceleration, both in
// pixels per second. It has no restrictions and no heading.
type Acceleration struct {
	Base
	vel, acc, gravity          core.Vec
	startVel, startAcc, startG core.Vec
}

// NewAcceleration creates an acceleration path at start.
func NewAcceleration(start, vel, acc, gravity core.Vec) *Acceleration {
	p := &Acceleration{
		Base:     newBase(start),
		startVel: vel,
		startAcc: acc,
		startG:   gravity,
	}
	p.Reset()
	return p
}

// Reset restores the start velocity, acceleration and gravity.
// The position is left where it is; callers place the body themselves.
func (p *Acceleration) Reset() {
	p.Base.Reset()
	p.vel = p.startVel
	p.acc = p.startAcc
	p.gravity = p.startG
}

// Velocity returns the velocity in px/s.
func (p *Acceleration) Velocity() core.Vec { return p.vel }

// SetVelocity sets the velocity in px/s.
func (p *Acceleration) SetVelocity(v core.Vec) { p.vel = v }

// Acceleration returns the drive acceleration in px/s².
func (p *Acceleration) Acceleration() core.Vec { return p.acc }

// SetAcceleration sets the drive acceleration in px/s².
func (p *Acceleration) SetAcceleration(a core.Vec) { p.acc = a }

// SetGravity sets the constant acceleration in px/s².
func (p *Acceleration) SetGravity(g core.Vec) { p.gravity = g }

// SetStartVelocity changes the velocity Reset restores.
func (p *Acceleration) SetStartVelocity(v core.Vec) { p.startVel = v }

// SetStartGravity changes the gravity Reset restores.
func (p *Acceleration) SetStartGravity(g core.Vec) { p.startG = g }

// Next advances by ticks milliseconds, capped at clock.MaxTick.
func (p *Acceleration) Next(ticks int) (core.Vec, error) {
	ms := clock.Cap(ticks)
	t := float64(ms) / 1000

	a := p.gravity.Add(p.acc)
	v0 := p.vel
	p.vel = v0.Add(a.Scale(t))

	step := v0.Scale(t).Add(a.Scale(t * t / 2))
	p.SetPosition(p.pos.Add(step))
	return p.finish(ms)
}
