package clock

import (
	"testing"
	"time"
)

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time { return f.t }

func (f *fakeTime) advance(ms int) {
	f.t = f.t.Add(time.Duration(ms) * time.Millisecond)
}

func TestClockTick(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewWithSource(ft.now)

	ft.advance(33)
	if got := c.Tick(); got != 33 {
		t.Errorf("Tick() = %d, expected 33", got)
	}

	ft.advance(120)
	if got := c.Tick(); got != 120 {
		t.Errorf("Tick() = %d, expected raw 120", got)
	}
	if c.Last() != 120 {
		t.Errorf("Last() = %d, expected 120", c.Last())
	}

	if got := c.Tick(); got != 0 {
		t.Errorf("Tick() without time passing = %d, expected 0", got)
	}

	ft.advance(10)
	c.Reset()
	ft.advance(5)
	if got := c.Tick(); got != 5 {
		t.Errorf("Tick() after Reset = %d, expected 5", got)
	}
}

func TestCap(t *testing.T) {
	tests := []struct {
		in, expect int
	}{
		{-3, 0},
		{0, 0},
		{16, 16},
		{MaxTick, MaxTick},
		{1000, MaxTick},
	}

	for _, tc := range tests {
		if got := Cap(tc.in); got != tc.expect {
			t.Errorf("Cap(%d) = %d, expected %d", tc.in, got, tc.expect)
		}
	}

	if got := Seconds(1000); got != 0.05 {
		t.Errorf("Seconds(1000) = %f, expected 0.05", got)
	}
}
