package lander

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

func newTestShip(t *testing.T) *Ship {
	t.Helper()
	cfg := config.DefaultLanderConfig()
	s, err := newShip(cfg.Lander, NewTank(cfg.Fuel, cfg.Fuel.Seconds))
	if err != nil {
		t.Fatalf("newShip: %v", err)
	}
	s.reset(core.V(300, 100))
	return s
}

func TestShipTurn(t *testing.T) {
	tests := []struct {
		name        string
		left, right bool
		wantRate    float64
	}{
		{"none", false, false, 0},
		{"left", true, false, 2},
		{"right", false, true, -2},
		{"both", true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestShip(t)
			s.turningLeft, s.turningRight = tt.left, tt.right
			s.turn()
			if got := s.rotor.Rate(); got != tt.wantRate {
				t.Errorf("rate = %v, want %v", got, tt.wantRate)
			}
		})
	}
}

func TestShipSnapsUpright(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  float64
	}{
		{"close left", Upright + 0.05, Upright},
		{"close right", Upright - 0.08, Upright},
		{"too far", Upright + 0.3, Upright + 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestShip(t)
			s.rotor.SetAngle(tt.angle)
			s.turn()
			if got := s.Angle(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("angle = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShipRightsItself(t *testing.T) {
	tests := []struct {
		name     string
		angle    float64
		wantRate float64
	}{
		{"leaning left", Upright + 0.3, -2},
		{"leaning right", Upright - 0.3, 2},
		{"beyond tolerance", Upright + 0.6, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestShip(t)
			s.cfg.SnapTolerance = 0.5
			s.rotor.SetAngle(tt.angle)
			s.turn()
			if got := s.rotor.Rate(); got != tt.wantRate {
				t.Errorf("rate = %v, want %v", got, tt.wantRate)
			}
		})
	}

	// Swinging back ends snapped upright and still.
	s := newTestShip(t)
	s.cfg.SnapTolerance = 0.5
	s.rotor.SetAngle(Upright + 0.3)
	for i := 0; i < 10; i++ {
		s.turn()
		s.rotor.Advance(50)
	}
	s.turn()
	if !s.vertical(1e-9) || s.rotor.Rotating() {
		t.Errorf("angle = %v rate = %v, want upright and still", s.Angle(), s.rotor.Rate())
	}
}

func TestWreckKeepsSpinning(t *testing.T) {
	s := newTestShip(t)
	s.crash(0)
	s.flapLeftStop()
	s.flapRight()
	s.turn()
	if s.rotor.Rate() <= 0 {
		t.Errorf("rate = %v, want the wreck spinning left", s.rotor.Rate())
	}
}

func TestShipThrust(t *testing.T) {
	s := newTestShip(t)

	s.accelerate(16)
	if got := s.path.Acceleration(); got != core.V(s.cfg.StartAccelX, s.cfg.StartAccelY) {
		t.Fatalf("acc = %+v, want the start drift before any burn", got)
	}

	s.startEngine()
	s.accelerate(16)
	acc := s.path.Acceleration()
	if math.Abs(acc.X) > 1e-9 || math.Abs(acc.Y+s.cfg.Thrust) > 1e-9 {
		t.Errorf("upright thrust = %+v, want (0, %v)", acc, -s.cfg.Thrust)
	}
	if !s.Flame() {
		t.Error("flame should show while thrusting")
	}

	s.stopEngine()
	s.accelerate(16)
	if got := s.path.Acceleration(); got != (core.Vec{}) {
		t.Errorf("acc = %+v after cut-off, want zero", got)
	}
}

func TestShipNoThrustWhenEmpty(t *testing.T) {
	s := newTestShip(t)
	s.fuel.left = 0
	s.startEngine()
	s.accelerate(16)
	if s.thrusting {
		t.Error("empty tank should not thrust")
	}
}

func TestShipFlicker(t *testing.T) {
	s := newTestShip(t)
	s.startEngine()
	s.accelerate(16)

	var flips int
	last := s.Flame()
	for range flameFrames * 4 {
		s.flicker()
		if s.Flame() != last {
			flips++
			last = s.Flame()
		}
	}
	if flips != 4 {
		t.Errorf("flame flipped %d times, want 4", flips)
	}
}

func TestShipFalls(t *testing.T) {
	s := newTestShip(t)
	y := s.Position().Y
	for range 10 {
		if err := s.move(50, 0); err != nil {
			t.Fatal(err)
		}
	}
	if s.Position().Y <= y {
		t.Error("gravity should pull the ship down")
	}

	s.Pause()
	p := s.Position()
	if err := s.move(50, 0); err != nil {
		t.Fatal(err)
	}
	if s.Position() != p {
		t.Error("paused ship moved")
	}
}
