package config

import "math"

// DifficultyManager calculates dynamic game parameters from the number of
// landings and the time played.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on
// landings or elapsed milliseconds.
func (d *DifficultyManager) Level(landings int, elapsedMS int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "landings", "score":
		progress = float64(landings) / maxAt
	case "time":
		progress = float64(elapsedMS) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Gravity returns the gravity for the current level.
func (d *DifficultyManager) Gravity(base float64, landings, elapsedMS int) float64 {
	level := d.Level(landings, elapsedMS)
	return base * (1.0 + level*d.cfg.Scaling.GravityMultiplier)
}

// HideWindow shortens the alien's hidden window as difficulty rises. The
// result never drops below half of minMS.
func (d *DifficultyManager) HideWindow(minMS, maxMS, landings, elapsedMS int) (int, int) {
	level := d.Level(landings, elapsedMS)
	reduction := int(level * float64(d.cfg.Scaling.HideReductionMS))
	lo := max(minMS/2, minMS-reduction)
	hi := max(lo+1000, maxMS-reduction)
	return lo, hi
}

// AsteroidSpeed returns the asteroid speed multiplier for the current level.
func (d *DifficultyManager) AsteroidSpeed(landings, elapsedMS int) float64 {
	level := d.Level(landings, elapsedMS)
	return 1.0 + level*d.cfg.Scaling.AsteroidSpeedup
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
