package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadStack loads the stacking game configuration.
// Search order: customPath -> ~/.stackattack/configs/stack.yaml -> ./configs/stack.yaml -> embedded default
func LoadStack(customPath string) (StackConfig, error) {
	var cfg StackConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, validateStack(cfg)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("stack.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && validateStack(cfg) == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/stack.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && validateStack(cfg) == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultStackYAML, &cfg); err != nil {
		return DefaultStackConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// validateStack rejects configurations the simulation cannot run with.
func validateStack(cfg StackConfig) error {
	if cfg.Grid.Size < 4 {
		return fmt.Errorf("grid size %d too small, need at least 4", cfg.Grid.Size)
	}
	if cfg.Blocks.FallSpeed < 1 {
		return fmt.Errorf("block fall speed must be at least 1, got %d", cfg.Blocks.FallSpeed)
	}
	if cfg.Blocks.SpawnRate < 1 {
		return fmt.Errorf("block spawn rate must be at least 1, got %d", cfg.Blocks.SpawnRate)
	}
	if cfg.Timing.RefreshRateMs < 1 {
		return fmt.Errorf("refresh rate must be at least 1ms, got %d", cfg.Timing.RefreshRateMs)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stackattack", "configs", filename)
}
