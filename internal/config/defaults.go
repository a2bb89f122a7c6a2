package config

import (
	_ "embed"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

// DefaultLanderConfig returns the default lander configuration.
func DefaultLanderConfig() LanderConfig {
	return LanderConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Timing: TimingConfig{
			MaxFPS:  30,
			MaxTick: 50,
		},
		Lander: ShipConfig{
			Width:          20,
			Height:         28,
			Inset:          4,
			MaxSpeed:       400,
			Thrust:         277,
			Gravity:        117,
			RotationRate:   2.0,
			RotationSteps:  60,
			SnapTolerance:  0.1,
			StartVelocityX: 20,
			StartVelocityY: -5,
			StartAccelX:    -10,
			StartAccelY:    0,
			SpawnMinX:      100,
			SpawnMarginX:   150,
			SpawnY:         100,
			RespawnSlack:   150,
			RespawnDelayMS: 900,
		},
		Fuel: FuelConfig{
			Steps:          50,
			Seconds:        10,
			PackSeconds:    30,
			IdleDivisor:    30,
			CrashPenaltyMS: 3000, // 3 seconds of fuel
			WarningPercent: 20,
		},
		Landing: LandingConfig{
			Band:            25,
			VerticalEpsilon: 0.05,
			Points:          1,
			ExcludeLeft:     100,
			ExcludeRight:    180,
		},
		Terrain: TerrainConfig{
			Mode:           "random",
			SegmentWidth:   10,
			AirportWidth:   110,
			Jitter:         17,
			MinStars:       10,
			MaxStars:       70,
			FlatHeight:     60,
			RuggedFloor:    30,
			RuggedDepthMax: 90,
			RuggedDepthMin: 20,
			AirportMinPos:  40,
			PlanetDrift:    0.1,
		},
		Alien: AlienConfig{
			Enabled:       true,
			HideMinMS:     5000,
			HideMaxMS:     25000,
			ShowMinMS:     1000,
			ShowMaxMS:     10000,
			Approach:      4000,
			ResetSlack:    180,
			DroppedSlack:  100,
			Width:         40,
			Height:        20,
			BombChance:    0.5,
			ShieldMessage: 2000,
		},
		Hazards: HazardsConfig{
			Gravity:         130,
			GoneBelow:       200,
			Asteroids:       true,
			AsteroidVX:      100,
			AsteroidVY:      50,
			AsteroidMinX:    20,
			AsteroidMarginX: 100,
			AsteroidY:       -50,
			Size:            16,
		},
		Input: InputConfig{
			ReleaseMS:   500,
			GameOverMS:  1000,
			MessageRows: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "landings",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				GravityMultiplier: 0.5,
				HideReductionMS:   3000,
				AsteroidSpeedup:   1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "lander", "lander_rugged", "lander_flat":
		return defaultLanderYAML
	default:
		return nil
	}
}
