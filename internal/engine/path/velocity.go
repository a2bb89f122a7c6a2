package path

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Velocity moves by a fixed displacement every frame, whatever the elapsed
// time. It suits decorations and simple projectiles.
type Velocity struct {
	Base
	vel      core.Vec // px per frame
	start    core.Vec
	startVel core.Vec
}

// NewVelocity creates a per-frame path starting at start.
func NewVelocity(start, perFrame core.Vec) *Velocity {
	return &Velocity{
		Base:     newBase(start),
		vel:      perFrame,
		start:    start,
		startVel: perFrame,
	}
}

// Next moves one frame. Ticks only count towards the duration.
func (p *Velocity) Next(ticks int) (core.Vec, error) {
	p.SetPosition(p.pos.Add(p.vel))
	return p.finish(ticks)
}

// Reset returns to the start position and velocity.
func (p *Velocity) Reset() {
	p.Base.Reset()
	p.SetPosition(p.start)
	p.vel = p.startVel
}

// Velocity returns the per-frame displacement.
func (p *Velocity) Velocity() core.Vec {
	return p.vel
}

// SetVelocity sets the per-frame displacement.
func (p *Velocity) SetVelocity(v core.Vec) {
	p.vel = v
}

// Accelerate adds dv to the per-frame displacement.
func (p *Velocity) Accelerate(dv core.Vec) {
	p.vel = p.vel.Add(dv)
}

// Speed returns the per-frame distance.
func (p *Velocity) Speed() float64 {
	return p.vel.Len()
}

// Direction returns the screen-space direction of the displacement.
func (p *Velocity) Direction() float64 {
	return math.Atan2(-p.vel.Y, p.vel.X)
}
