package core

import "math/rand"

// State owns the whole simulation: the player, the flat block
// collection, the spawn counter and the session score. All mutation
// happens synchronously inside ProcessInput and Update; external
// readers must treat every field as read-only.
type State struct {
	GridSize int
	CellSize int

	Player *Player
	Blocks []Block

	BlockFallSpeed int
	BlockSpawnRate int
	spawnCounter   int

	// GameOver is sticky: once set, only Restart clears it.
	GameOver bool
	Score    int

	// LastMoveDir is the direction of the most recent movement input,
	// used to decide when carried blocks get released.
	LastMoveDir Direction

	rng *rand.Rand
}

// NewState creates a fresh session from the config and spawns the first
// block. The seed fully determines the spawn column sequence.
func NewState(cfg Config, seed int64) *State {
	s := &State{
		GridSize:       cfg.GridSize,
		CellSize:       cfg.CellSize,
		Player:         NewPlayer(cfg.GridSize),
		BlockFallSpeed: cfg.BlockFallSpeed,
		BlockSpawnRate: cfg.BlockSpawnRate,
		rng:            rand.New(rand.NewSource(seed)),
	}
	s.SpawnBlock()
	return s
}

// Restart resets the session while preserving the configuration: new
// player, empty grid, zero score, one freshly spawned block. Always
// succeeds, game over or not.
func (s *State) Restart() {
	s.Player = NewPlayer(s.GridSize)
	s.Blocks = s.Blocks[:0]
	s.spawnCounter = 0
	s.GameOver = false
	s.Score = 0
	s.LastMoveDir = DirNone
	s.SpawnBlock()
}

// SpawnBlock adds one falling block at a random top-row column.
func (s *State) SpawnBlock() {
	s.Blocks = append(s.Blocks, SpawnRandomBlock(s.rng, s.GridSize))
}

// CheckForLevitatingBlocks flips every unsupported resting block back
// to falling, repeating until a full pass changes nothing. Removing one
// support can expose blocks further up the column, so a single pass is
// not enough.
func (s *State) CheckForLevitatingBlocks() {
	for {
		changed := false
		for i := range s.Blocks {
			if s.Blocks[i].Falling {
				continue
			}

			pos := s.Blocks[i].Pos
			if pos.Y >= s.GridSize-1 {
				continue
			}

			if !s.hasBlockSupport(pos) {
				s.Blocks[i].Falling = true
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}

func (s *State) hasBlockSupport(pos Position) bool {
	below := Position{X: pos.X, Y: pos.Y + 1}
	for i := range s.Blocks {
		if !s.Blocks[i].Falling && s.Blocks[i].Pos == below {
			return true
		}
	}
	return false
}

// CheckFullRows scans bottom-up for a row completely filled with
// resting blocks, clears it, scores it, and lets the blocks above
// settle. At most one row is cleared per call; a second full row waits
// for the next tick.
func (s *State) CheckFullRows() {
	for row := s.GridSize - 1; row >= 0; row-- {
		count := 0
		for i := range s.Blocks {
			if !s.Blocks[i].Falling && s.Blocks[i].Pos.Y == row {
				count++
			}
		}
		if count != s.GridSize {
			continue
		}

		kept := s.Blocks[:0]
		for _, b := range s.Blocks {
			if b.Pos.Y != row {
				kept = append(kept, b)
			}
		}
		s.Blocks = kept
		s.Score++
		s.CheckForLevitatingBlocks()
		return
	}
}

func (s *State) updateBlocks() {
	s.updateFallingBlocks()
	s.handleBlockSpawning()
	s.CheckForLevitatingBlocks()
	s.CheckFullRows()
}

// updateFallingBlocks advances every falling, non-carried block by the
// fall speed. Check order matters: player collision ends the game and
// aborts the pass; the floor clamp beats block stacking.
func (s *State) updateFallingBlocks() {
	for i := range s.Blocks {
		if s.Blocks[i].Carried || !s.Blocks[i].Falling {
			continue
		}

		x := s.Blocks[i].Pos.X
		newY := s.Blocks[i].Pos.Y + s.BlockFallSpeed

		if x == s.Player.Pos.X && newY == s.Player.Pos.Y {
			s.GameOver = true
			return
		}

		if newY >= s.GridSize {
			s.Blocks[i].Pos.Y = s.GridSize - 1
			s.Blocks[i].Falling = false
			continue
		}

		if s.blockLandsOnBlock(i, x, newY) {
			s.Blocks[i].Falling = false
		} else {
			s.Blocks[i].Pos.Y = newY
		}
	}
}

func (s *State) blockLandsOnBlock(idx, x, newY int) bool {
	for j := range s.Blocks {
		if j != idx && !s.Blocks[j].Falling &&
			s.Blocks[j].Pos.X == x && s.Blocks[j].Pos.Y == newY {
			return true
		}
	}
	return false
}

func (s *State) handleBlockSpawning() {
	s.spawnCounter++
	if s.spawnCounter >= s.BlockSpawnRate {
		s.SpawnBlock()
		s.spawnCounter = 0
	}
}

func (s *State) updatePlayer() {
	s.Player.UpdateJump()
	s.Player.UpdateFallDelay()
	s.Player.UpdateFallingState(s.Blocks)
	if s.Player.IsFalling {
		s.Player.ApplyGravity()
	}
	s.Player.Land(s.Blocks)
}

// ProcessInput applies one resolved input action. It is meant to run
// once per tick, before Update. Movement inputs also drive the
// carried-block release law and a levitation re-check, since a push can
// pull support out from under a stack.
func (s *State) ProcessInput(action InputAction) UpdateResult {
	if s.GameOver {
		if action == ActionRestart {
			s.Restart()
			return ResultRestarted
		}
		return ResultGameOver
	}

	switch action {
	case ActionLeft:
		s.LastMoveDir = DirLeft
		s.Player.MoveLeft(s.Blocks)
	case ActionRight:
		s.LastMoveDir = DirRight
		s.Player.MoveRight(s.Blocks)
	case ActionUp:
		s.Player.Jump()
	case ActionRestart:
		s.Restart()
		return ResultRestarted
	case ActionNone:
		s.Player.ReleaseCarriedBlocks(s.Blocks, DirNone)
		s.LastMoveDir = DirNone
	}

	s.Player.ReleaseCarriedBlocks(s.Blocks, s.LastMoveDir)
	s.CheckForLevitatingBlocks()

	return ResultContinue
}

// Update advances the simulation by one tick: player timers and
// gravity, then landing, then block gravity, spawning, the levitation
// cascade, and finally the row-clear scan. The step order is fixed.
func (s *State) Update() UpdateResult {
	if s.GameOver {
		return ResultGameOver
	}

	s.updatePlayer()
	s.updateBlocks()

	if s.GameOver {
		return ResultGameOver
	}
	return ResultContinue
}
