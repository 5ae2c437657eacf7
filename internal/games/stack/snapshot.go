package stack

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the observable game state for determinism testing
// and replay.
type Snapshot struct {
	Tick           uint64
	Score          int
	PlayerX        int
	PlayerY        int
	InAir          bool
	IsFalling      bool
	BlockCount     int
	FallingBlocks  int
	CarriedBlocks  int
	StepEveryTicks int
	State          GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.sim.GameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	falling, carried := 0, 0
	for i := range g.sim.Blocks {
		if g.sim.Blocks[i].Carried {
			carried++
		}
		if g.sim.Blocks[i].Falling {
			falling++
		}
	}

	return Snapshot{
		Tick:           g.tick,
		Score:          g.sim.Score,
		PlayerX:        g.sim.Player.Pos.X,
		PlayerY:        g.sim.Player.Pos.Y,
		InAir:          g.sim.Player.InAir,
		IsFalling:      g.sim.Player.IsFalling,
		BlockCount:     len(g.sim.Blocks),
		FallingBlocks:  falling,
		CarriedBlocks:  carried,
		StepEveryTicks: g.stepEveryTicks,
		State:          state,
	}
}
