package config

import (
	_ "embed"
)

//go:embed defaults/stack.yaml
var defaultStackYAML []byte

// DefaultStackConfig returns the default stacking game configuration.
func DefaultStackConfig() StackConfig {
	return StackConfig{
		Grid: StackGrid{
			Size:     16,
			CellSize: 2,
		},
		Timing: StackTiming{
			RefreshRateMs: 200,
		},
		Blocks: StackBlocks{
			FallSpeed: 1,
			SpawnRate: 10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "stack":
		return defaultStackYAML
	default:
		return nil
	}
}
