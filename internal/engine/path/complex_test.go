package path

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-lander/internal/core"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func mustComplex(t *testing.T, start core.Vec, opts ...Option) *Complex {
	t.Helper()
	p, err := NewComplex(start, opts...)
	if err != nil {
		t.Fatalf("NewComplex() error: %v", err)
	}
	return p
}

func TestNewComplexOptions(t *testing.T) {
	_, err := NewComplex(core.V(0, 0),
		WithAcceleration(core.V(1, 0)),
		WithDeceleration(core.V(1, 0)),
	)
	if !errors.Is(err, ErrConflictingOptions) {
		t.Errorf("accel + decel error = %v, expected ErrConflictingOptions", err)
	}

	_, err = NewComplex(core.V(0, 0), WithRestriction(VelocityX(10, -10)))
	if !errors.Is(err, ErrInvalidRestriction) {
		t.Errorf("inverted bounds error = %v, expected ErrInvalidRestriction", err)
	}

	_, err = NewComplex(core.V(0, 0), WithRestriction(MinX(100), MaxX(50)))
	if !errors.Is(err, ErrInvalidRestriction) {
		t.Errorf("inverted position bounds error = %v, expected ErrInvalidRestriction", err)
	}

	p := mustComplex(t, core.V(10, 20), WithVelocity(core.V(3, -4)))
	if p.Position() != core.V(10, 20) || p.Velocity() != core.V(3, -4) {
		t.Errorf("start state = %+v / %+v", p.Position(), p.Velocity())
	}
	if p.Restriction().Speed != DefaultMaxSpeed {
		t.Errorf("default speed cap = %v", p.Restriction().Speed)
	}
}

func TestSetVelocityHonorsBounds(t *testing.T) {
	p := mustComplex(t, core.V(0, 0), WithRestriction(
		MaxSpeed(400),
		VelocityX(-300, 250),
		VelocityY(-100, 350),
	))
	r := p.Restriction()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		v := core.V(rng.Float64()*2000-1000, rng.Float64()*2000-1000)
		p.SetVelocity(v)
		got := p.Velocity()
		if got.X < r.VXMin-eps || got.X > r.VXMax+eps ||
			got.Y < r.VYMin-eps || got.Y > r.VYMax+eps {
			t.Fatalf("SetVelocity(%+v) = %+v outside axis bounds", v, got)
		}
		if got.Len() > r.Speed+1e-6 {
			t.Fatalf("SetVelocity(%+v) speed %v over cap", v, got.Len())
		}
	}

	for i := 0; i < 200; i++ {
		p.RandomizeVelocity(rng)
		got := p.Velocity()
		if got.X < r.VXMin || got.X > r.VXMax || got.Len() > r.Speed+1e-6 {
			t.Fatalf("RandomizeVelocity = %+v outside bounds", got)
		}
	}
}

func TestRandomizeVelocityAxes(t *testing.T) {
	tests := []struct {
		name  string
		axes  []Axis
		keepX bool
		keepY bool
	}{
		{"both by default", nil, false, false},
		{"x only", []Axis{AxisX}, false, true},
		{"y only", []Axis{AxisY}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustComplex(t, core.V(0, 0),
				WithVelocity(core.V(7, -3)), // clamped to (20, 50)
				WithRestriction(VelocityX(20, 40), VelocityY(50, 60), MaxSpeed(1000)),
			)
			before := p.Velocity()
			rng := rand.New(rand.NewSource(3))

			for i := 0; i < 50; i++ {
				p.RandomizeVelocity(rng, tt.axes...)
				got := p.Velocity()
				if tt.keepX && got.X != before.X {
					t.Fatalf("vx changed to %v, want %v", got.X, before.X)
				}
				if tt.keepY && got.Y != before.Y {
					t.Fatalf("vy changed to %v, want %v", got.Y, before.Y)
				}
				if got.X < 20 || got.X > 40 || got.Y < 50 || got.Y > 60 {
					t.Fatalf("velocity %+v outside bounds", got)
				}
			}
			got := p.Velocity()
			if !tt.keepX && got.X == before.X {
				t.Error("vx was not sampled")
			}
			if !tt.keepY && got.Y == before.Y {
				t.Error("vy was not sampled")
			}
		})
	}
}

func TestSpeedCapKeepsDirection(t *testing.T) {
	p := mustComplex(t, core.V(0, 0))
	p.SetVelocity(core.V(3000, 4000))

	got := p.Velocity()
	if !near(got.X, 1200) || !near(got.Y, 1600) {
		t.Errorf("capped velocity = %+v, expected (1200, 1600)", got)
	}

	// Axis aligned velocity keeps its own direction, not the stored heading
	p.SetDirection(math.Pi / 2)
	p.SetVelocity(core.V(4500, 0))
	got = p.Velocity()
	if !near(got.X, DefaultMaxSpeed) || !near(got.Y, 0) {
		t.Errorf("capped horizontal velocity = %+v", got)
	}
}

func TestDirectionRoundTrip(t *testing.T) {
	p := mustComplex(t, core.V(0, 0), WithVelocity(core.V(100, 0)))

	for _, d := range []float64{0, 0.3, math.Pi / 2, 2, math.Pi, -1, -math.Pi / 2, 5, 7.5} {
		p.SetDirection(d)
		got := p.Direction()
		if diff := normalizeAngle(got - d); math.Abs(diff) > 1e-9 {
			t.Errorf("SetDirection(%v) then Direction() = %v", d, got)
		}
		if !near(p.Speed(), 100) {
			t.Errorf("SetDirection(%v) changed speed to %v", d, p.Speed())
		}
	}
}

func TestDirectionKeptWhenAxisIsZero(t *testing.T) {
	p := mustComplex(t, core.V(0, 0), WithVelocity(core.V(10, -10)))
	d := p.Direction()
	if !near(d, math.Pi/4) {
		t.Fatalf("Direction() = %v, expected π/4", d)
	}

	p.SetVelocity(core.V(0, 0))
	if p.Direction() != d {
		t.Errorf("zero velocity lost the heading: %v", p.Direction())
	}
	p.SetVelocity(core.V(5, 0))
	if p.Direction() != d {
		t.Errorf("axis aligned velocity changed the heading: %v", p.Direction())
	}
}

func TestNegativeSpeedReverses(t *testing.T) {
	p := mustComplex(t, core.V(0, 0), WithVelocity(core.V(30, -40)))
	d := p.Direction()

	p.SetSpeed(-50)
	v := p.Velocity()
	if !near(v.X, -30) || !near(v.Y, 40) {
		t.Errorf("reversed velocity = %+v, expected (-30, 40)", v)
	}
	if !near(p.Direction(), d) {
		t.Errorf("heading changed on reverse: %v -> %v", d, p.Direction())
	}

	pos, err := p.Advance(0.1)
	if err != nil {
		t.Fatalf("Advance error: %v", err)
	}
	if !near(pos.X, -3) || !near(pos.Y, 4) {
		t.Errorf("reversed motion position = %+v, expected (-3, 4)", pos)
	}

	p.SetVelocity(core.V(30, -40))
	if p.Velocity() != core.V(30, -40) {
		t.Error("SetVelocity should clear the reversal")
	}
}

func TestDecelerationNeverFlipsSign(t *testing.T) {
	p := mustComplex(t, core.V(0, 0),
		WithVelocity(core.V(5, 0)),
		WithDeceleration(core.V(2, 0)),
	)

	prev := p.Velocity().X
	for i := 0; i < 200; i++ {
		if _, err := p.Next(50); err != nil {
			t.Fatalf("Next error: %v", err)
		}
		vx := p.Velocity().X
		if vx < 0 {
			t.Fatalf("step %d: vx = %v went negative", i, vx)
		}
		if vx > prev {
			t.Fatalf("step %d: vx grew from %v to %v", i, prev, vx)
		}
		prev = vx
	}
	if p.Velocity().X != 0 {
		t.Errorf("vx = %v, expected to settle at 0", p.Velocity().X)
	}

	// A body at rest stays at rest
	x := p.Position().X
	p.Next(50)
	if p.Position().X != x {
		t.Error("deceleration moved a body at rest")
	}
}

func TestDecelerationOpposesNegativeVelocity(t *testing.T) {
	d := Decel(-3)
	if d.Value != 3 {
		t.Errorf("Decel stores magnitude, got %v", d.Value)
	}
	if d.At(-1) != 3 || d.At(1) != -3 || d.At(0) != 0 {
		t.Errorf("Decel.At = %v %v %v", d.At(-1), d.At(1), d.At(0))
	}
	if a := Accel(-3); a.At(5) != -3 || a.At(0) != -3 {
		t.Error("Accel should ignore the velocity")
	}
}

func TestGravityIntegration(t *testing.T) {
	p := mustComplex(t, core.V(100, 100), WithGravity(core.V(0, 100)))

	pos, err := p.Next(50)
	if err != nil {
		t.Fatalf("Next error: %v", err)
	}
	// Δy = ½·g·t² = 0.5 * 100 * 0.0025
	if !near(pos.Y, 100.125) || pos.X != 100 {
		t.Errorf("position = %+v, expected (100, 100.125)", pos)
	}
	if !near(p.Velocity().Y, 5) {
		t.Errorf("vy = %v, expected 5", p.Velocity().Y)
	}
	if p.Previous() != core.V(100, 100) {
		t.Errorf("Previous() = %+v", p.Previous())
	}
}

func TestNextCapsTicks(t *testing.T) {
	a := mustComplex(t, core.V(0, 0), WithVelocity(core.V(100, 0)))
	b := mustComplex(t, core.V(0, 0), WithVelocity(core.V(100, 0)))

	a.Next(1000)
	b.Next(50)
	if a.Position() != b.Position() {
		t.Errorf("Next(1000) = %+v, expected capped %+v", a.Position(), b.Position())
	}
}

func TestPositionClamp(t *testing.T) {
	p := mustComplex(t, core.V(50, 50),
		WithVelocity(core.V(1000, -1000)),
		WithRestriction(MinX(0), MaxX(100), MinY(10), MaxY(90)),
	)
	r := p.Restriction()

	for i := 0; i < 20; i++ {
		pos, _ := p.Next(50)
		if pos.X < 0 || pos.X > 100 || pos.Y < 10 || pos.Y > 90 {
			t.Fatalf("position %+v outside bounds", pos)
		}
		if again := r.ClampPosition(pos); again != pos {
			t.Fatalf("clamping is not idempotent: %+v -> %+v", pos, again)
		}
	}
	if p.Position() != core.V(100, 10) {
		t.Errorf("position = %+v, expected pinned at (100, 10)", p.Position())
	}

	if err := p.Restrict(MaxX(40)); err != nil {
		t.Fatalf("Restrict error: %v", err)
	}
	if p.Position().X != 40 {
		t.Errorf("Restrict should clamp the current position, x = %v", p.Position().X)
	}
}

func TestDurationEndsPath(t *testing.T) {
	p := mustComplex(t, core.V(0, 0), WithDuration(100))

	for i := 0; i < 2; i++ {
		if _, err := p.Next(50); err != nil {
			t.Fatalf("Next #%d error: %v", i, err)
		}
	}
	if _, err := p.Next(50); !errors.Is(err, ErrEndOfPath) {
		t.Errorf("expected ErrEndOfPath after duration, got %v", err)
	}

	p.Reset()
	if _, err := p.Next(50); err != nil {
		t.Errorf("Reset should restart the duration, got %v", err)
	}
}

func TestNoPositionEndsPath(t *testing.T) {
	p := mustComplex(t, core.V(0, 0))
	p.SetPosition(NoPosition)
	if _, err := p.Next(10); !errors.Is(err, ErrEndOfPath) {
		t.Errorf("expected ErrEndOfPath for NoPosition, got %v", err)
	}
}

func TestTurnTowards(t *testing.T) {
	tests := []struct {
		name   string
		target core.Vec
		rate   float64
	}{
		{"ahead", core.V(100, 0), 0},
		{"inside deadband", core.V(100, -5), 0},
		{"left", core.V(0, -100), 1},
		{"right", core.V(0, 100), -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := mustComplex(t, core.V(0, 0), WithVelocity(core.V(10, 0)))
			p.TurnTowards(tc.target)
			if p.TurnRate() != tc.rate {
				t.Errorf("TurnRate() = %v, expected %v", p.TurnRate(), tc.rate)
			}
		})
	}
}

func TestTurnRateRotatesVelocity(t *testing.T) {
	p := mustComplex(t, core.V(0, 0), WithVelocity(core.V(10, 0)))
	p.TurnLeft()
	for i := 0; i < 10; i++ {
		p.Next(50)
	}
	if !near(p.Direction(), 0.5) {
		t.Errorf("Direction() = %v, expected 0.5 after 0.5 s at 1 rad/s", p.Direction())
	}
	if !near(p.Speed(), 10) {
		t.Errorf("turning changed speed to %v", p.Speed())
	}
}

func TestAccelerateAlongHeading(t *testing.T) {
	p := mustComplex(t, core.V(0, 0), WithVelocity(core.V(0, -10)))
	p.SetDirection(math.Pi / 2)
	p.Accelerate(100)

	a := p.Acceleration()
	if !near(a.X, 0) || !near(a.Y, -100) {
		t.Errorf("Accelerate upwards = %+v, expected (0, -100)", a)
	}
}

func TestBounceAndReset(t *testing.T) {
	p := mustComplex(t, core.V(5, 5),
		WithVelocity(core.V(10, 20)),
		WithAcceleration(core.V(1, 2)),
		WithRestriction(MaxSpeed(100)),
	)
	p.BounceX()
	p.BounceY()
	if p.Velocity() != core.V(-10, -20) {
		t.Errorf("after bounces velocity = %+v", p.Velocity())
	}

	p.SetDecelerationX(3)
	p.SetTurnRate(2)
	p.Next(50)
	p.Reset()

	if p.Position() != core.V(5, 5) || p.Velocity() != core.V(10, 20) {
		t.Errorf("Reset state = %+v / %+v", p.Position(), p.Velocity())
	}
	dx, _ := p.Drives()
	if dx != Accel(1) || p.TurnRate() != 0 {
		t.Errorf("Reset drive = %+v, turn = %v", dx, p.TurnRate())
	}
	if p.Restriction().Speed != 100 {
		t.Error("Reset should keep restrictions")
	}
}

func TestBounceHonorsBounds(t *testing.T) {
	tests := []struct {
		name   string
		opts   []Option
		bounce func(*Complex)
		want   core.Vec
		move   core.Vec // displacement over the following 10 ms
	}{
		{
			name:   "x clamped to lower bound",
			opts:   []Option{WithVelocity(core.V(80, 0)), WithRestriction(VelocityX(-10, 100))},
			bounce: (*Complex).BounceX,
			want:   core.V(-10, 0),
			move:   core.V(-0.1, 0),
		},
		{
			name:   "y clamped to upper bound",
			opts:   []Option{WithVelocity(core.V(0, -60)), WithRestriction(VelocityY(-100, 20))},
			bounce: (*Complex).BounceY,
			want:   core.V(0, 20),
			move:   core.V(0, 0.2),
		},
		{
			name:   "inside bounds",
			opts:   []Option{WithVelocity(core.V(5, 0)), WithRestriction(VelocityX(-10, 100))},
			bounce: (*Complex).BounceX,
			want:   core.V(-5, 0),
			move:   core.V(-0.05, 0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustComplex(t, core.V(50, 50), tt.opts...)
			tt.bounce(p)
			if got := p.Velocity(); !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
				t.Fatalf("velocity after bounce = %+v, want %+v", got, tt.want)
			}
			before := p.Position()
			if _, err := p.Next(10); err != nil {
				t.Fatalf("Next() error: %v", err)
			}
			d := p.Position().Sub(before)
			if !near(d.X, tt.move.X) || !near(d.Y, tt.move.Y) {
				t.Errorf("displacement = %+v, want %+v", d, tt.move)
			}
		})
	}
}

func TestBaseHelpers(t *testing.T) {
	p := mustComplex(t, core.V(0, 0))

	if d := p.Distance(core.V(3, 4)); d != 5 {
		t.Errorf("Distance = %v", d)
	}
	if d := p.DirectionTo(core.V(0, -10)); !near(d, math.Pi/2) {
		t.Errorf("DirectionTo up = %v", d)
	}
	if !p.OnScreen(800, 600, 0) {
		t.Error("origin should be on screen")
	}
	p.SetPosition(core.V(-120, 10))
	if p.OnScreen(800, 600, 100) || !p.OnScreen(800, 600, 150) {
		t.Error("OnScreen slack handling is wrong")
	}

	p.Pause()
	if !p.Paused() {
		t.Error("Pause should set Paused")
	}
	p.Unpause()
	if p.Paused() {
		t.Error("Unpause should clear Paused")
	}
}
