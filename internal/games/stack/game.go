// Package stack provides the Stackattack block-pushing game.
package stack

import (
	"fmt"

	"github.com/pavelh/stackattack-tui/internal/config"
	platformcore "github.com/pavelh/stackattack-tui/internal/core"
	"github.com/pavelh/stackattack-tui/internal/games/stack/core"
	"github.com/pavelh/stackattack-tui/internal/registry"
)

// Game adapts the pure simulation core to the platform interface.
// It owns the tick gating: the platform steps at its frame rate while
// the simulation advances only on its own slower cadence.
type Game struct {
	cfg config.StackConfig
	sim *core.State

	tick           uint64
	stepEveryTicks int
	stepTicker     int

	arbiter *Arbiter

	paused   bool
	tooSmall bool

	// Screen dimensions
	screenW int
	screenH int

	// Rendering config
	cellW     int // Width of each grid cell in terminal chars
	cellH     int // Height of each grid cell in terminal lines
	hudHeight int

	// Calculated offsets
	gridOffsetX int
	gridOffsetY int

	// Restart button area in screen coordinates, valid only while the
	// game over overlay is visible.
	restartButton platformcore.Rect
}

// Package-level variables for config/difficulty
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

func init() {
	registry.Register("stack", func() registry.Game {
		return New()
	})
}

// New creates a new Stackattack game.
func New() *Game {
	return &Game{
		hudHeight: 2,
		cellH:     1,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "stack"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Stackattack"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	loaded, err := config.LoadStack(configPath)
	if err != nil {
		loaded = config.DefaultStackConfig()
	}
	if preset := config.DifficultyPreset(difficultyPreset); config.ValidPreset(preset) {
		config.ApplyStackPreset(&loaded, preset)
	}
	g.cfg = loaded

	g.tick = 0
	g.stepTicker = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.stepEveryTicks = platformcore.Max(1, loaded.Timing.RefreshRateMs*tickRate/1000)

	g.arbiter = NewArbiter(tickRate)

	g.cellW = platformcore.Max(1, loaded.Grid.CellSize)

	g.sim = core.NewState(core.Config{
		GridSize:       loaded.Grid.Size,
		CellSize:       loaded.Grid.CellSize,
		BlockFallSpeed: loaded.Blocks.FallSpeed,
		BlockSpawnRate: loaded.Blocks.SpawnRate,
	}, cfg.Seed)

	g.layout()
}

// layout centers the playfield and checks that it fits the screen.
func (g *Game) layout() {
	gridW := g.sim.GridSize*g.cellW + 2 // Border on both sides
	gridH := g.sim.GridSize*g.cellH + 2

	if g.screenW < gridW || g.screenH < g.hudHeight+gridH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.gridOffsetX = (g.screenW - gridW) / 2
	g.gridOffsetY = g.hudHeight
}

// Step advances the game by one platform tick. Input frames arrive at
// the platform's frame rate; the simulation itself only moves when the
// step ticker fires.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if input.Has(platformcore.ActionPause) && !g.sim.GameOver {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	// Restart fires immediately, not on the simulation cadence.
	if input.Has(platformcore.ActionRestart) && g.sim.GameOver {
		g.sim.ProcessInput(core.ActionRestart)
		g.arbiter.Reset()
		g.stepTicker = 0
		return platformcore.StepResult{State: g.State()}
	}

	g.arbiter.Observe(input)

	g.stepTicker++
	if g.stepTicker >= g.stepEveryTicks {
		g.stepTicker = 0
		g.sim.ProcessInput(g.arbiter.Resolve())
		g.sim.Update()
	}

	g.arbiter.Advance()

	return platformcore.StepResult{State: g.State()}
}

// RestartButton returns the screen area of the restart button shown on
// the game over overlay. The zero rect means no button is visible.
func (g *Game) RestartButton() platformcore.Rect {
	if g.sim == nil || !g.sim.GameOver {
		return platformcore.Rect{}
	}
	return g.restartButton
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue", false)
		return
	}

	g.renderGrid(dst)
	g.renderBlocks(dst)
	g.renderPlayer(dst)

	switch {
	case g.sim.GameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Final Score: %d", g.sim.Score), true)
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue", false)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := fmt.Sprintf(" Stackattack - Score: %d", g.sim.Score)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderGrid draws the playfield border.
func (g *Game) renderGrid(dst *platformcore.Screen) {
	gridW := g.sim.GridSize*g.cellW + 2
	gridH := g.sim.GridSize*g.cellH + 2
	dst.DrawBox(platformcore.NewRect(g.gridOffsetX, g.gridOffsetY, gridW, gridH))
}

// cellRect maps a grid cell to its screen area.
func (g *Game) cellRect(x, y int) platformcore.Rect {
	return platformcore.NewRect(
		g.gridOffsetX+1+x*g.cellW,
		g.gridOffsetY+1+y*g.cellH,
		g.cellW,
		g.cellH,
	)
}

// renderBlocks draws every block. Resting blocks are blue, falling
// blocks yellow, carried blocks magenta.
func (g *Game) renderBlocks(dst *platformcore.Screen) {
	for i := range g.sim.Blocks {
		b := &g.sim.Blocks[i]

		color := platformcore.ColorBlue
		switch {
		case b.Carried:
			color = platformcore.ColorMagenta
		case b.Falling:
			color = platformcore.ColorYellow
		}

		dst.DrawRect(g.cellRect(b.Pos.X, b.Pos.Y), '█', color)
	}
}

// renderPlayer draws the player: head cell on top, body below.
func (g *Game) renderPlayer(dst *platformcore.Screen) {
	p := g.sim.Player
	dst.DrawRect(g.cellRect(p.Pos.X, p.Pos.Y), '▣', platformcore.ColorGreen)
	for part := 1; part < p.BodySize; part++ {
		dst.DrawRect(g.cellRect(p.Pos.X, p.Pos.Y+part), '█', platformcore.ColorGreen)
	}
}

// renderOverlay draws a centered message box. When withRestart is set a
// clickable restart button is added and its area recorded for the
// platform's mouse hit test.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string, withRestart bool) {
	const button = "[ Restart ]"

	maxLen := platformcore.Max(len(line1), len(line2))
	if withRestart {
		maxLen = platformcore.Max(maxLen, len(button))
	}

	boxW := maxLen + 4
	boxH := 5
	if withRestart {
		boxH = 7
	}
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(platformcore.NewRect(boxX, boxY, boxW, boxH), ' ', platformcore.ColorDefault)
	dst.DrawBox(platformcore.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)

	if withRestart {
		btnX := (dst.Width() - len(button)) / 2
		btnY := boxY + 5
		dst.DrawTextColored(btnX, btnY, button, platformcore.ColorBrightYellow)
		g.restartButton = platformcore.NewRect(btnX, btnY, len(button), 1)
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.sim.Score,
		GameOver: g.sim.GameOver,
		Paused:   g.paused,
	}
}
