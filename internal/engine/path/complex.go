package path

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/engine/clock"
)

// Complex integrates position from velocity, a per-axis drive and gravity,
// honoring a Restriction after every mutation. It also keeps a heading
// that survives axis-aligned or zero velocities and a turn rate that
// rotates the velocity every step.
type Complex struct {
	Base

	vel       core.Vec // velocity along the heading; physical velocity is sign * vel
	sign      float64
	direction float64
	turnRate  float64 // rad/s
	driveX    Drive
	driveY    Drive
	gravity   core.Vec
	restrict  Restriction

	start      core.Vec
	startVel   core.Vec
	startDrive [2]Drive
}

// Option configures a Complex path at construction.
type Option func(*complexBuilder)

type complexBuilder struct {
	vel      core.Vec
	drive    [2]Drive
	accel    bool
	decel    bool
	gravity  core.Vec
	duration int
	restrict []RestrictOption
}

// WithVelocity sets the start velocity in px/s.
func WithVelocity(v core.Vec) Option {
	return func(b *complexBuilder) { b.vel = v }
}

// WithAcceleration sets the start acceleration in px/s².
// It cannot be combined with WithDeceleration.
func WithAcceleration(a core.Vec) Option {
	return func(b *complexBuilder) {
		b.accel = true
		b.drive = [2]Drive{Accel(a.X), Accel(a.Y)}
	}
}

// WithDeceleration sets the start deceleration magnitudes in px/s².
// It cannot be combined with WithAcceleration.
func WithDeceleration(d core.Vec) Option {
	return func(b *complexBuilder) {
		b.decel = true
		b.drive = [2]Drive{Decel(d.X), Decel(d.Y)}
	}
}

// WithGravity sets the constant acceleration applied every step.
func WithGravity(g core.Vec) Option {
	return func(b *complexBuilder) { b.gravity = g }
}

// WithDuration limits the path lifetime to ms milliseconds.
func WithDuration(ms int) Option {
	return func(b *complexBuilder) { b.duration = ms }
}

// WithRestriction applies restriction options on top of DefaultRestriction.
func WithRestriction(opts ...RestrictOption) Option {
	return func(b *complexBuilder) { b.restrict = append(b.restrict, opts...) }
}

// NewComplex creates a Complex path starting at start.
func NewComplex(start core.Vec, opts ...Option) (*Complex, error) {
	var b complexBuilder
	for _, opt := range opts {
		opt(&b)
	}
	if b.accel && b.decel {
		return nil, fmt.Errorf("%w: acceleration and deceleration both set", ErrConflictingOptions)
	}

	r := DefaultRestriction()
	for _, opt := range b.restrict {
		opt(&r)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	p := &Complex{
		Base:       newBase(start),
		sign:       1,
		gravity:    b.gravity,
		restrict:   r,
		start:      start,
		startVel:   b.vel,
		startDrive: b.drive,
	}
	p.duration = b.duration
	p.Reset()
	return p, nil
}

// Reset returns to the start position, velocity and drive with heading 0
// and no turn. Restrictions and gravity are kept.
func (p *Complex) Reset() {
	p.Base.Reset()
	p.direction = 0
	p.sign = 1
	p.turnRate = 0
	p.SetPosition(p.restrict.ClampPosition(p.start))
	p.SetVelocity(p.startVel)
	p.driveX, p.driveY = p.startDrive[0], p.startDrive[1]
}

// SetStart changes the position Reset returns to.
func (p *Complex) SetStart(pos core.Vec) {
	p.start = pos
}

// SetStartVelocity changes the velocity Reset restores.
func (p *Complex) SetStartVelocity(v core.Vec) {
	p.startVel = v
}

// SetStartAcceleration changes the acceleration Reset restores.
func (p *Complex) SetStartAcceleration(a core.Vec) {
	p.startDrive = [2]Drive{Accel(a.X), Accel(a.Y)}
}

// Restriction returns the active restriction.
func (p *Complex) Restriction() Restriction {
	return p.restrict
}

// Restrict applies opts to the active restriction and re-applies it to
// the current velocity and position.
func (p *Complex) Restrict(opts ...RestrictOption) error {
	r := p.restrict
	for _, opt := range opts {
		opt(&r)
	}
	if err := r.Validate(); err != nil {
		return err
	}
	p.restrict = r
	p.store(p.Velocity())
	p.pos = r.ClampPosition(p.pos)
	return nil
}

// Velocity returns the physical velocity in px/s.
func (p *Complex) Velocity() core.Vec {
	return p.vel.Scale(p.sign)
}

// SetVelocity sets the physical velocity, clamped by the restriction.
// It clears a reversed speed.
func (p *Complex) SetVelocity(v core.Vec) {
	p.sign = 1
	p.store(v)
}

// SetVX sets the horizontal velocity and keeps the vertical one.
func (p *Complex) SetVX(vx float64) {
	p.SetVelocity(core.V(vx, p.Velocity().Y))
}

// SetVY sets the vertical velocity and keeps the horizontal one.
func (p *Complex) SetVY(vy float64) {
	p.SetVelocity(core.V(p.Velocity().X, vy))
}

// Axis names a velocity component.
type Axis int

// Velocity axes.
const (
	AxisX Axis = iota
	AxisY
)

// RandomizeVelocity samples the given axes uniformly within their bounds
// and keeps the others. With no axes both are sampled, so a fixed vx with
// a random vy is SetVX followed by RandomizeVelocity(rng, AxisY).
func (p *Complex) RandomizeVelocity(rng *rand.Rand, axes ...Axis) {
	if len(axes) == 0 {
		axes = []Axis{AxisX, AxisY}
	}
	r := p.restrict
	v := p.Velocity()
	for _, a := range axes {
		switch a {
		case AxisX:
			v.X = r.VXMin + rng.Float64()*(r.VXMax-r.VXMin)
		case AxisY:
			v.Y = r.VYMin + rng.Float64()*(r.VYMax-r.VYMin)
		}
	}
	p.SetVelocity(v)
}

// store clamps a physical velocity and keeps it relative to the heading.
func (p *Complex) store(phys core.Vec) {
	phys = p.restrict.ClampVelocity(phys)
	p.vel = phys.Scale(p.sign)
	p.Direction()
}

// Speed returns the magnitude of the velocity.
func (p *Complex) Speed() float64 {
	return p.vel.Len()
}

// SetSpeed changes the speed along the current heading. A negative speed
// moves the body backwards while the heading stays the same.
func (p *Complex) SetSpeed(s float64) {
	d := p.Direction()
	p.sign = 1
	if s < 0 {
		p.sign = -1
		s = -s
	}
	p.store(core.V(s*math.Cos(d), -s*math.Sin(d)).Scale(p.sign))
}

// ChangeSpeed adds delta to the current speed.
func (p *Complex) ChangeSpeed(delta float64) {
	p.SetSpeed(p.sign*p.Speed() + delta)
}

// Direction returns the heading in radians, 0 pointing right and positive
// counter-clockwise on screen. The heading is recomputed only when both
// velocity components are non-zero.
func (p *Complex) Direction() float64 {
	if p.vel.X != 0 && p.vel.Y != 0 {
		p.direction = math.Atan2(-p.vel.Y, p.vel.X)
	}
	return p.direction
}

// SetDirection points the velocity along d, keeping the speed.
func (p *Complex) SetDirection(d float64) {
	s := p.Speed()
	p.direction = normalizeAngle(d)
	p.store(core.V(s*math.Cos(d), -s*math.Sin(d)).Scale(p.sign))
}

// Turn rotates the heading by rad (positive is left).
func (p *Complex) Turn(rad float64) {
	p.SetDirection(p.Direction() + rad)
}

// SetTurnRate sets the continuous turn in rad/s.
func (p *Complex) SetTurnRate(rate float64) {
	p.turnRate = rate
}

// TurnRate returns the continuous turn in rad/s.
func (p *Complex) TurnRate() float64 {
	return p.turnRate
}

// TurnLeft turns counter-clockwise at 1 rad/s.
func (p *Complex) TurnLeft() { p.SetTurnRate(1) }

// TurnRight turns clockwise at 1 rad/s.
func (p *Complex) TurnRight() { p.SetTurnRate(-1) }

// TurnStraight stops turning.
func (p *Complex) TurnStraight() { p.SetTurnRate(0) }

// TurnTowards sets the turn intent towards point with a ±0.1 rad deadband.
func (p *Complex) TurnTowards(point core.Vec) {
	rad := normalizeAngle(p.Direction() - p.DirectionTo(point))
	switch {
	case rad > 0.1:
		p.TurnRight()
	case rad < -0.1:
		p.TurnLeft()
	default:
		p.TurnStraight()
	}
}

// Acceleration returns the raw drive values. For decelerating axes these
// are magnitudes.
func (p *Complex) Acceleration() core.Vec {
	return core.V(p.driveX.Value, p.driveY.Value)
}

// Drives returns the per-axis drives.
func (p *Complex) Drives() (Drive, Drive) {
	return p.driveX, p.driveY
}

// SetAcceleration sets both axes to accelerate.
func (p *Complex) SetAcceleration(a core.Vec) {
	p.driveX, p.driveY = Accel(a.X), Accel(a.Y)
}

// SetAccelerationX sets the horizontal axis to accelerate.
func (p *Complex) SetAccelerationX(ax float64) { p.driveX = Accel(ax) }

// SetAccelerationY sets the vertical axis to accelerate.
func (p *Complex) SetAccelerationY(ay float64) { p.driveY = Accel(ay) }

// SetDeceleration sets both axes to decelerate.
func (p *Complex) SetDeceleration(d core.Vec) {
	p.driveX, p.driveY = Decel(d.X), Decel(d.Y)
}

// SetDecelerationX sets the horizontal axis to decelerate.
func (p *Complex) SetDecelerationX(dx float64) { p.driveX = Decel(dx) }

// SetDecelerationY sets the vertical axis to decelerate.
func (p *Complex) SetDecelerationY(dy float64) { p.driveY = Decel(dy) }

// Accelerate sets an acceleration of magnitude acc along the heading.
func (p *Complex) Accelerate(acc float64) {
	d := p.Direction()
	p.SetAcceleration(core.V(acc*math.Cos(d), -acc*math.Sin(d)))
}

// Decelerate sets a deceleration of magnitude dec split along the heading.
func (p *Complex) Decelerate(dec float64) {
	d := p.Direction()
	p.SetDeceleration(core.V(dec*math.Cos(d), dec*math.Sin(d)))
}

// Gravity returns the constant acceleration.
func (p *Complex) Gravity() core.Vec {
	return p.gravity
}

// SetGravity sets the constant acceleration.
func (p *Complex) SetGravity(g core.Vec) {
	p.gravity = g
}

// Next advances by ticks milliseconds, capped at clock.MaxTick.
func (p *Complex) Next(ticks int) (core.Vec, error) {
	ms := clock.Cap(ticks)
	return p.advance(float64(ms)/1000, ms)
}

// Advance integrates t seconds regardless of the tick cap.
func (p *Complex) Advance(t float64) (core.Vec, error) {
	return p.advance(t, int(math.Round(t*1000)))
}

func (p *Complex) advance(t float64, ms int) (core.Vec, error) {
	if p.turnRate != 0 {
		p.Turn(p.turnRate * t)
	}

	v0 := p.Velocity()
	a := core.V(p.gravity.X+p.driveX.At(v0.X), p.gravity.Y+p.driveY.At(v0.Y))
	v1 := v0.Add(a.Scale(t))
	v1.X = p.driveX.settle(v0.X, v1.X)
	v1.Y = p.driveY.settle(v0.Y, v1.Y)
	p.store(v1)

	// v0*t + a*t²/2, with decelerating axes stopping at rest
	step := v0.Add(v1).Scale(t / 2)
	p.SetPosition(p.restrict.ClampPosition(p.pos.Add(step)))
	return p.finish(ms)
}

// BounceX reverses the horizontal velocity. The result is clamped like
// any other velocity change.
func (p *Complex) BounceX() {
	v := p.Velocity()
	v.X = -v.X
	p.store(v)
}

// BounceY reverses the vertical velocity.
func (p *Complex) BounceY() {
	v := p.Velocity()
	v.Y = -v.Y
	p.store(v)
}
