package lander

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/engine/path"
	"github.com/vovakirdan/tui-lander/internal/engine/sprite"
)

// Upright is the rotation of a ship standing on its legs.
const Upright = math.Pi / 2

// flameFrames is how many held frames the exhaust flame keeps one shape.
const flameFrames = 3

// Ship is the player's lander: a complex path driven by thrust and
// gravity, a rotor for its facing and a fuel tank.
type Ship struct {
	*sprite.Sprite
	path  *path.Complex
	rotor *sprite.Rotor
	fuel  *Tank
	cfg   config.ShipConfig

	engine       bool
	thrusting    bool
	turningLeft  bool
	turningRight bool
	dim          bool // flame flickered off
	held         int

	crashed bool
	landed  bool
}

func newShip(cfg config.ShipConfig, fuel *Tank) (*Ship, error) {
	p, err := path.NewComplex(core.V(0, 0),
		path.WithVelocity(core.V(cfg.StartVelocityX, cfg.StartVelocityY)),
		path.WithAcceleration(core.V(cfg.StartAccelX, cfg.StartAccelY)),
		path.WithGravity(core.V(0, cfg.Gravity)),
		path.WithRestriction(path.MaxSpeed(cfg.MaxSpeed)),
	)
	if err != nil {
		return nil, err
	}

	sp := sprite.New(p, cfg.Width, cfg.Height)
	sp.Square = true
	sp.Inset = cfg.Inset

	rotor := sprite.NewRotor(cfg.RotationSteps)
	rotor.SetAngle(Upright)

	return &Ship{
		Sprite: sp,
		path:   p,
		rotor:  rotor,
		fuel:   fuel,
		cfg:    cfg,
	}, nil
}

// reset puts the ship at pos, upright, with the start velocity and drive
// and no control intents.
func (s *Ship) reset(pos core.Vec) {
	s.crashed = false
	s.landed = false
	s.engine = false
	s.turningLeft = false
	s.turningRight = false
	s.thrusting = false
	s.held = 0
	s.path.SetStart(pos)
	s.path.Reset()
	s.rotor.SetAngle(Upright)
	s.rotor.Stop()
}

func (s *Ship) startEngine() { s.engine = true }

func (s *Ship) stopEngine() {
	s.engine = false
	s.held = 0
}

// flicker animates the flame while the engine key is held.
func (s *Ship) flicker() {
	s.held++
	if s.held%flameFrames == 0 {
		s.dim = !s.dim
	}
}

// Flaps ignore input once the ship has crashed, so a wreck keeps spinning.

func (s *Ship) flapLeft() {
	if !s.crashed {
		s.turningLeft = true
	}
}

func (s *Ship) flapRight() {
	if !s.crashed {
		s.turningRight = true
	}
}

func (s *Ship) flapLeftStop() {
	if !s.crashed {
		s.turningLeft = false
	}
}

func (s *Ship) flapRightStop() {
	if !s.crashed {
		s.turningRight = false
	}
}

// turn sets the rotor from the flaps. With no flap held a ship within the
// snap tolerance rights itself: it swings back towards upright and snaps
// once inside the rotor's deadband.
func (s *Ship) turn() {
	switch {
	case s.turningRight && !s.turningLeft:
		s.rotor.SetRate(-s.cfg.RotationRate)
	case s.turningLeft && !s.turningRight:
		s.rotor.SetRate(s.cfg.RotationRate)
	default:
		s.rotor.Stop()
		if math.Abs(sprite.Diff(s.rotor.Angle(), Upright)) > s.cfg.SnapTolerance {
			return
		}
		s.rotor.RotateTowards(Upright)
		if !s.rotor.Rotating() {
			s.rotor.SetAngle(Upright)
		}
	}
}

// accelerate applies thrust along the facing while the engine runs and
// fuel is left. Cutting the engine drops the drive to zero; until the
// first burn the ship keeps its start drift.
func (s *Ship) accelerate(ticks int) {
	was := s.thrusting
	s.thrusting = s.engine && !s.fuel.Empty() && !s.crashed
	switch {
	case s.thrusting:
		s.fuel.Burn(float64(ticks))
		r := s.rotor.Angle()
		s.path.SetAcceleration(core.V(s.cfg.Thrust*math.Cos(r), -s.cfg.Thrust*math.Sin(r)))
	case was:
		s.path.SetAcceleration(core.Vec{})
	}
}

// move advances the ship one frame. Idle fuel burns even on the pad.
func (s *Ship) move(ticks int, idleDivisor int) error {
	var err error
	if !s.landed && !s.Path.Paused() {
		s.turn()
		s.rotor.Advance(ticks)
		s.accelerate(ticks)
		err = s.Move(ticks)
	}
	if idleDivisor > 0 {
		s.fuel.Burn(float64(ticks) / float64(idleDivisor))
	}
	return err
}

// vertical reports whether the ship is upright within eps radians.
func (s *Ship) vertical(eps float64) bool {
	return s.rotor.Near(Upright, eps)
}

// land parks the ship upright and still on a pad whose top is padY.
func (s *Ship) land(padY float64) {
	s.landed = true
	s.thrusting = false
	s.path.SetVelocity(core.V(0, 0))
	s.path.SetAcceleration(core.V(0, 0))
	s.path.SetDirection(Upright)
	s.rotor.SetAngle(Upright)
	s.rotor.Stop()

	pos := s.Position()
	s.SetPosition(core.V(pos.X, padY-float64(s.H)))
}

// crash wrecks the ship once, costing penaltyMS worth of fuel. It returns
// false if the ship was already wrecked.
func (s *Ship) crash(penaltyMS int) bool {
	if s.crashed {
		return false
	}
	s.fuel.Burn(float64(penaltyMS))
	s.flapLeft()
	s.crashed = true
	s.thrusting = false
	s.path.SetVelocity(core.V(0, 0))
	s.path.SetAcceleration(core.V(0, 0))
	return true
}

// center returns the middle of the ship's bounds.
func (s *Ship) center() core.Vec {
	return center(s.Sprite)
}

// Angle returns the ship's facing.
func (s *Ship) Angle() float64 {
	return s.rotor.Angle()
}

// Crashed reports whether the ship is a wreck.
func (s *Ship) Crashed() bool { return s.crashed }

// Landed reports whether the ship is parked on the pad.
func (s *Ship) Landed() bool { return s.landed }

// Flame reports whether the exhaust should be drawn this frame.
func (s *Ship) Flame() bool { return s.thrusting && !s.dim }
