// Package config provides YAML-based game configuration loading and
// difficulty presets for the platform.
package config

// StackConfig contains all configuration for the block stacking game.
type StackConfig struct {
	Grid   StackGrid   `yaml:"grid"`
	Timing StackTiming `yaml:"timing"`
	Blocks StackBlocks `yaml:"blocks"`
}

// StackGrid defines the playfield dimensions.
type StackGrid struct {
	Size     int `yaml:"size"`      // Grid width and height in cells
	CellSize int `yaml:"cell_size"` // Screen characters per cell edge
}

// StackTiming defines the simulation cadence.
type StackTiming struct {
	RefreshRateMs int `yaml:"refresh_rate_ms"` // Milliseconds between simulation steps
}

// StackBlocks defines block behavior parameters.
type StackBlocks struct {
	FallSpeed int `yaml:"fall_speed"` // Cells a block descends per step
	SpawnRate int `yaml:"spawn_rate"` // Steps between block spawns
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ValidPreset reports whether the given preset name is recognized.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}

// ApplyStackPreset modifies the config based on a difficulty preset.
// Harder presets spawn blocks more often and step the simulation faster.
// The fixed preset leaves the loaded values untouched.
func ApplyStackPreset(cfg *StackConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Blocks.SpawnRate = 14
		cfg.Timing.RefreshRateMs = 250
	case DifficultyNormal:
		cfg.Blocks.SpawnRate = 10
		cfg.Timing.RefreshRateMs = 200
	case DifficultyHard:
		cfg.Blocks.SpawnRate = 6
		cfg.Timing.RefreshRateMs = 150
	}
}
