// Package core provides the core simulation for the Stackattack game.
// This package is UI-agnostic and deterministic: all randomness comes
// from an injected rand source, and every Update call advances the
// simulation by exactly one tick. Timing belongs to the platform layer.
package core

import "fmt"

// Position is a cell on the square grid. The origin is the top-left
// corner and Y grows downward.
type Position struct {
	X, Y int
}

// Direction is a signed horizontal direction.
// The zero value means "no direction".
type Direction int

const (
	DirNone  Direction = 0
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirNone:
		return "none"
	default:
		return "unknown"
	}
}

// InputAction is one resolved player intent per simulation tick.
// Arbitration between concurrently held keys happens outside the core;
// the simulation only ever sees a single action.
type InputAction int

const (
	ActionNone InputAction = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionRestart
)

// String returns a human-readable name for the action.
func (a InputAction) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionRestart:
		return "Restart"
	default:
		return fmt.Sprintf("InputAction(%d)", int(a))
	}
}

// UpdateResult tells the caller what a ProcessInput or Update call did,
// so presentation code can branch without poking at state fields.
type UpdateResult int

const (
	// ResultContinue means the simulation is still running.
	ResultContinue UpdateResult = iota
	// ResultGameOver means the game has ended; only a restart is accepted.
	ResultGameOver
	// ResultRestarted means the call performed a full restart.
	ResultRestarted
)

// Config holds the immutable per-session simulation parameters.
// A restart preserves the config and resets everything else.
type Config struct {
	// GridSize is the side length of the square grid in cells.
	GridSize int
	// CellSize is the width of one grid cell in terminal characters.
	// The simulation never reads it; it is carried for renderers.
	CellSize int
	// BlockFallSpeed is how many rows a falling block descends per tick.
	BlockFallSpeed int
	// BlockSpawnRate is how many ticks pass between block spawns.
	BlockSpawnRate int
}

// DefaultConfig returns the classic game parameters.
func DefaultConfig() Config {
	return Config{
		GridSize:       16,
		CellSize:       2,
		BlockFallSpeed: 1,
		BlockSpawnRate: 10,
	}
}
