// Package config provides YAML-based game configuration loading,
// difficulty management and hot reload for the lander.
package config

// LanderConfig contains all configuration for the moon lander.
type LanderConfig struct {
	World      WorldConfig      `yaml:"world"`
	Timing     TimingConfig     `yaml:"timing"`
	Lander     ShipConfig       `yaml:"lander"`
	Fuel       FuelConfig       `yaml:"fuel"`
	Landing    LandingConfig    `yaml:"landing"`
	Terrain    TerrainConfig    `yaml:"terrain"`
	Alien      AlienConfig      `yaml:"alien"`
	Hazards    HazardsConfig    `yaml:"hazards"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the simulated area in world pixels.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines frame pacing.
type TimingConfig struct {
	MaxFPS  int `yaml:"max_fps"`
	MaxTick int `yaml:"max_tick"` // ms, longer frames are capped
}

// ShipConfig defines the lander's flight model.
type ShipConfig struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	Inset          int     `yaml:"inset"` // collision rect shrink per side
	MaxSpeed       float64 `yaml:"max_speed"`
	Thrust         float64 `yaml:"thrust"`
	Gravity        float64 `yaml:"gravity"`
	RotationRate   float64 `yaml:"rotation_rate"` // rad/s
	RotationSteps  int     `yaml:"rotation_steps"`
	SnapTolerance  float64 `yaml:"snap_tolerance"` // rad
	StartVelocityX float64 `yaml:"start_velocity_x"`
	StartVelocityY float64 `yaml:"start_velocity_y"`
	StartAccelX    float64 `yaml:"start_accel_x"`
	StartAccelY    float64 `yaml:"start_accel_y"`
	SpawnMinX      int     `yaml:"spawn_min_x"`
	SpawnMarginX   int     `yaml:"spawn_margin_x"` // spawn x < width - margin
	SpawnY         int     `yaml:"spawn_y"`
	RespawnSlack   int     `yaml:"respawn_slack"`    // px off-screen before respawn
	RespawnDelayMS int     `yaml:"respawn_delay_ms"` // after a crash
}

// FuelConfig defines the fuel gauge.
type FuelConfig struct {
	Steps          int `yaml:"steps"`
	Seconds        int `yaml:"seconds"`
	PackSeconds    int `yaml:"pack_seconds"` // with the Fuel Pack consumable
	IdleDivisor    int `yaml:"idle_divisor"` // idle burn is ticks / divisor
	CrashPenaltyMS int `yaml:"crash_penalty_ms"`
	WarningPercent int `yaml:"warning_percent"`
}

// LandingConfig defines what counts as a successful landing.
type LandingConfig struct {
	Band            int     `yaml:"band"`             // px either side of the pad anchor
	VerticalEpsilon float64 `yaml:"vertical_epsilon"` // rad
	Points          int     `yaml:"points"`
	ExcludeLeft     int     `yaml:"exclude_left"`  // no spawning this far left of the pad
	ExcludeRight    int     `yaml:"exclude_right"` // nor this far right
}

// TerrainConfig defines ground generation.
type TerrainConfig struct {
	Mode           string  `yaml:"mode"` // "random", "rugged" or "flat"
	SegmentWidth   int     `yaml:"segment_width"`
	AirportWidth   int     `yaml:"airport_width"`
	Jitter         int     `yaml:"jitter"`
	MinStars       int     `yaml:"min_stars"`
	MaxStars       int     `yaml:"max_stars"`
	FlatHeight     int     `yaml:"flat_height"` // distance of the slab from the bottom
	RuggedFloor    int     `yaml:"rugged_floor"`
	RuggedDepthMax int     `yaml:"rugged_depth_max"` // start height is in [H-max, H-min)
	RuggedDepthMin int     `yaml:"rugged_depth_min"`
	AirportMinPos  int     `yaml:"airport_min_pos"`
	PlanetDrift    float64 `yaml:"planet_drift"` // px per frame, leftwards
}

// AlienConfig defines the alien ship's visits.
type AlienConfig struct {
	Enabled       bool    `yaml:"enabled"`
	HideMinMS     int     `yaml:"hide_min_ms"`
	HideMaxMS     int     `yaml:"hide_max_ms"`
	ShowMinMS     int     `yaml:"show_min_ms"`
	ShowMaxMS     int     `yaml:"show_max_ms"`
	Approach      float64 `yaml:"approach"` // px/s²
	ResetSlack    int     `yaml:"reset_slack"`
	DroppedSlack  int     `yaml:"dropped_slack"`
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	BombChance    float64 `yaml:"bomb_chance"`
	ShieldMessage int     `yaml:"shield_message_ms"`
}

// HazardsConfig defines falling objects.
type HazardsConfig struct {
	Gravity         float64 `yaml:"gravity"`
	GoneBelow       int     `yaml:"gone_below"` // px past the bottom edge
	Asteroids       bool    `yaml:"asteroids"`
	AsteroidVX      float64 `yaml:"asteroid_vx"`
	AsteroidVY      float64 `yaml:"asteroid_vy"`
	AsteroidMinX    int     `yaml:"asteroid_min_x"`
	AsteroidMarginX int     `yaml:"asteroid_margin_x"`
	AsteroidY       int     `yaml:"asteroid_y"`
	Size            int     `yaml:"size"`
}

// InputConfig defines how terminal key repeats become releases.
type InputConfig struct {
	ReleaseMS   int `yaml:"release_ms"`
	GameOverMS  int `yaml:"game_over_ms"` // delay before the game-over prompt accepts keys
	MessageRows int `yaml:"message_rows"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "landings", "time", or "none"
	MaxAt int    `yaml:"max_at"` // landings/ms at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	GravityMultiplier float64 `yaml:"gravity_multiplier"` // added to gravity at max difficulty
	HideReductionMS   int     `yaml:"hide_reduction_ms"`  // alien hidden window reduction at max
	AsteroidSpeedup   float64 `yaml:"asteroid_speedup"`   // added to asteroid speed at max
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets accepted on the command line.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ValidPreset reports whether p names a known preset. Empty is valid and
// leaves the loaded configuration untouched.
func ValidPreset(p DifficultyPreset) bool {
	if p == "" {
		return true
	}
	for _, known := range Presets() {
		if p == known {
			return true
		}
	}
	return false
}
