package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	cfg := DefaultLanderConfig().Difficulty // landings, max at 10

	tests := []struct {
		name     string
		initial  float64
		enabled  bool
		landings int
		want     float64
	}{
		{"start", 0.0, true, 0, 0.0},
		{"halfway", 0.0, true, 5, 0.5},
		{"capped", 0.0, true, 25, 1.0},
		{"from normal", 0.3, true, 5, 0.65},
		{"disabled keeps initial", 0.7, false, 9, 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cfg
			c.InitialLevel = tt.initial
			c.Enabled = tt.enabled
			dm := NewDifficultyManager(c)
			if got := dm.Level(tt.landings, 0); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Level(%d) = %v, want %v", tt.landings, got, tt.want)
			}
		})
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 60000},
	})
	if got := dm.Level(100, 30000); got != 0.5 {
		t.Errorf("Level = %v, want 0.5", got)
	}
}

func TestDifficultyScaling(t *testing.T) {
	dm := NewDifficultyManager(DefaultLanderConfig().Difficulty)

	if got := dm.Gravity(100, 0, 0); got != 100 {
		t.Errorf("Gravity at level 0 = %v, want 100", got)
	}
	if got := dm.Gravity(100, 10, 0); got != 150 {
		t.Errorf("Gravity at max = %v, want 150", got)
	}
	if got := dm.AsteroidSpeed(10, 0); got != 2 {
		t.Errorf("AsteroidSpeed at max = %v, want 2", got)
	}

	lo, hi := dm.HideWindow(5000, 25000, 10, 0)
	if lo != 2500 || hi != 22000 {
		t.Errorf("HideWindow at max = (%d, %d), want (2500, 22000)", lo, hi)
	}
	lo, hi = dm.HideWindow(5000, 25000, 0, 0)
	if lo != 5000 || hi != 25000 {
		t.Errorf("HideWindow at level 0 = (%d, %d), want (5000, 25000)", lo, hi)
	}
}
