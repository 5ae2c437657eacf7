package core

import "math/rand"

// Block is a single one-cell unit that falls, stacks, and can be pushed
// or carried by the player.
type Block struct {
	Pos Position
	// Falling is true while the block descends under gravity or is
	// eligible to resume falling. A carried block keeps Falling set but
	// is skipped by gravity until released.
	Falling bool
	// Carried is true while the block moves horizontally in lock-step
	// with the player instead of by gravity.
	Carried bool
	// CarryDir is the direction the player is carrying the block in.
	// DirNone when the block is not carried.
	CarryDir Direction
}

// NewBlock returns a falling block at the given position.
func NewBlock(pos Position) Block {
	return Block{Pos: pos, Falling: true}
}

// SpawnRandomBlock returns a new falling block at a random column of the
// top row. There is no collision check at spawn time; overlaps at row 0
// are resolved by gravity on later ticks.
func SpawnRandomBlock(rng *rand.Rand, gridSize int) Block {
	return NewBlock(Position{X: rng.Intn(gridSize), Y: 0})
}
