package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LanderFile is the file name searched for in config directories.
const LanderFile = "lander.yaml"

// ErrInvalidConfig is returned when a parsed config cannot drive a game.
var ErrInvalidConfig = errors.New("invalid config")

// LoadLander loads the lander configuration.
// Search order: customPath -> ~/.lander/configs/lander.yaml -> ./configs/lander.yaml -> embedded default
func LoadLander(customPath string) (LanderConfig, error) {
	cfg, _, err := LoadLanderFrom(customPath)
	return cfg, err
}

// LoadLanderFrom is LoadLander that also reports which file was used.
// The path is empty when the embedded default was used.
func LoadLanderFrom(customPath string) (LanderConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return LanderConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseLander(data)
		if err != nil {
			return LanderConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(LanderFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseLander(data); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", LanderFile)
	if data, err := os.ReadFile(local); err == nil {
		if cfg, err := ParseLander(data); err == nil {
			return cfg, local, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseLander(defaultLanderYAML)
	if err != nil {
		return DefaultLanderConfig(), "", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "", nil
}

// ParseLander decodes YAML on top of the defaults, so a file only needs
// the keys it changes.
func ParseLander(data []byte) (LanderConfig, error) {
	cfg := DefaultLanderConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the values a game cannot run without.
func (c LanderConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size %dx%d", ErrInvalidConfig, c.World.Width, c.World.Height)
	case c.Lander.SpawnMinX >= c.World.Width-c.Lander.SpawnMarginX:
		return fmt.Errorf("%w: empty spawn range", ErrInvalidConfig)
	case c.Fuel.Steps <= 0 || c.Fuel.Seconds <= 0:
		return fmt.Errorf("%w: fuel steps and seconds must be positive", ErrInvalidConfig)
	case c.Terrain.SegmentWidth <= 0 || c.Terrain.AirportWidth <= 0:
		return fmt.Errorf("%w: terrain widths must be positive", ErrInvalidConfig)
	case c.Alien.HideMinMS >= c.Alien.HideMaxMS || c.Alien.ShowMinMS >= c.Alien.ShowMaxMS:
		return fmt.Errorf("%w: alien timing ranges are empty", ErrInvalidConfig)
	case c.Lander.MaxSpeed < 0:
		return fmt.Errorf("%w: negative max speed", ErrInvalidConfig)
	}
	switch c.Terrain.Mode {
	case "random", "rugged", "flat":
	default:
		return fmt.Errorf("%w: unknown terrain mode %q", ErrInvalidConfig, c.Terrain.Mode)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lander", "configs", filename)
}

// ApplyLanderPreset modifies the config based on a difficulty preset.
func ApplyLanderPreset(cfg *LanderConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the ship based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Fuel.Seconds = cfg.Fuel.Seconds * 3 / 2
		cfg.Landing.Band += 10
	case DifficultyHard:
		cfg.Fuel.Seconds = max(1, cfg.Fuel.Seconds*3/4)
		cfg.Landing.Band = max(5, cfg.Landing.Band-10)
	}
}

// UserLanderPath returns the per-user lander config file, or "" if the
// home directory is unknown.
func UserLanderPath() string {
	return userConfigPath(LanderFile)
}
