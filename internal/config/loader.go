package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPlatformer loads the platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml ->
// ./configs/platformer.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("platformer.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", "platformer.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPlatformerYAML, &cfg); err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are
// skipped so the next location in the search order is used.
func tryLoad(path string) (PlatformerConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PlatformerConfig{}, false
	}
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PlatformerConfig{}, false
	}
	if cfg.Validate() != nil {
		return PlatformerConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Enemy.Speed = cfg.Enemy.Speed * 0.75
		cfg.Player.HurtImmuneMs = 3000
	case DifficultyHard:
		cfg.Gameplay.Lives = 1
		cfg.Enemy.Speed = cfg.Enemy.Speed * 1.5
		cfg.Player.HurtImmuneMs = 1000
	}
}

// Validate reports the first out-of-range value in the config.
func (c PlatformerConfig) Validate() error {
	switch {
	case c.World.ScreenW <= 0 || c.World.ScreenH <= 0:
		return fmt.Errorf("world: screen size must be positive")
	case c.World.Gravity <= 0:
		return fmt.Errorf("world: gravity must be positive")
	case c.Player.MaxWalkSpeed <= 0 || c.Player.MaxRunSpeed < c.Player.MaxWalkSpeed:
		return fmt.Errorf("player: max_run_speed must be >= max_walk_speed > 0")
	case c.Player.JumpVelocity >= 0:
		return fmt.Errorf("player: jump_velocity must be negative")
	case c.Player.SmallSize.H <= 0 || c.Player.BigSize.H <= c.Player.SmallSize.H:
		return fmt.Errorf("player: big_size must be taller than small_size")
	case c.Blocks.Size <= 0:
		return fmt.Errorf("blocks: size must be positive")
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("gameplay: lives must be positive")
	case c.Render.CellW <= 0 || c.Render.CellH <= 0:
		return fmt.Errorf("render: cell size must be positive")
	}
	return nil
}
