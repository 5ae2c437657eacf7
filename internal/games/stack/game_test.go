package stack

import (
	"strings"
	"testing"

	platformcore "github.com/pavelh/stackattack-tui/internal/core"
	"github.com/pavelh/stackattack-tui/internal/games/stack/core"
)

func testRuntimeConfig() platformcore.RuntimeConfig {
	return platformcore.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	cfg := testRuntimeConfig()

	g1 := New()
	g1.Reset(cfg)

	g2 := New()
	g2.Reset(cfg)

	input := platformcore.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		if i%50 == 20 {
			input.Set(platformcore.ActionRight)
		}
		if i%70 == 35 {
			input.Set(platformcore.ActionLeft)
		}
		if i == 300 {
			input.Set(platformcore.ActionJump)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1 != snap2 {
		t.Errorf("snapshots diverged:\n%+v\n%+v", snap1, snap2)
	}
}

func TestTickGating(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())

	// 200ms refresh at 60 ticks/sec gives one simulation step every 12 ticks.
	if g.stepEveryTicks != 12 {
		t.Fatalf("stepEveryTicks = %d, expected 12", g.stepEveryTicks)
	}

	input := platformcore.NewInputFrame()
	for i := 0; i < g.stepEveryTicks-1; i++ {
		g.Step(input)
	}
	if g.sim.Blocks[0].Pos.Y != 0 {
		t.Errorf("block moved before the step interval elapsed, y = %d", g.sim.Blocks[0].Pos.Y)
	}

	g.Step(input)
	if g.sim.Blocks[0].Pos.Y != 1 {
		t.Errorf("block y = %d after one full step interval, expected 1", g.sim.Blocks[0].Pos.Y)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())

	pause := platformcore.NewInputFrame()
	pause.Set(platformcore.ActionPause)
	g.Step(pause)

	if !g.State().Paused {
		t.Fatal("pause action should pause the game")
	}

	blockY := g.sim.Blocks[0].Pos.Y
	empty := platformcore.NewInputFrame()
	for i := 0; i < 3*g.stepEveryTicks; i++ {
		g.Step(empty)
	}
	if g.sim.Blocks[0].Pos.Y != blockY {
		t.Error("simulation advanced while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second pause action should resume the game")
	}
}

func TestRestartOnGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())
	g.sim.Score = 5
	g.sim.GameOver = true

	restart := platformcore.NewInputFrame()
	restart.Set(platformcore.ActionRestart)
	g.Step(restart)

	if g.sim.GameOver {
		t.Error("restart should clear game over")
	}
	if g.sim.Score != 0 {
		t.Errorf("score = %d after restart, expected 0", g.sim.Score)
	}
	if len(g.sim.Blocks) != 1 {
		t.Errorf("len(Blocks) = %d after restart, expected 1", len(g.sim.Blocks))
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())
	g.sim.Score = 3

	restart := platformcore.NewInputFrame()
	restart.Set(platformcore.ActionRestart)
	g.Step(restart)

	if g.sim.Score != 3 {
		t.Error("restart should do nothing while the game is running")
	}
}

func TestRestartButtonOnlyOnGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	if g.RestartButton() != (platformcore.Rect{}) {
		t.Error("no restart button should exist while playing")
	}

	g.sim.GameOver = true
	g.Render(screen)

	btn := g.RestartButton()
	if btn.W == 0 || btn.H == 0 {
		t.Fatal("game over overlay should expose a restart button")
	}
	cx, cy := btn.Center()
	if !btn.Contains(cx, cy) {
		t.Error("restart button rect does not contain its own center")
	}
	if screen.Get(btn.X, btn.Y) != '[' {
		t.Errorf("expected button text at %v, got %q", btn, screen.Get(btn.X, btn.Y))
	}
}

func TestTooSmallScreen(t *testing.T) {
	cfg := testRuntimeConfig()
	cfg.ScreenW = 20
	cfg.ScreenH = 10

	g := New()
	g.Reset(cfg)

	if !g.tooSmall {
		t.Fatal("a 20x10 screen cannot fit a 16-cell grid")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("Snapshot().State = %s, expected %s", g.Snapshot().State, StatePausedSmall)
	}

	// Simulation must not run.
	input := platformcore.NewInputFrame()
	for i := 0; i < 3*g.stepEveryTicks; i++ {
		g.Step(input)
	}
	if g.sim.Blocks[0].Pos.Y != 0 {
		t.Error("simulation advanced on a too-small screen")
	}

	screen := platformcore.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("render should show the too-small overlay")
	}
}

func TestRenderHUDAndGrid(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing score, row 0 = %q", screen.Row(0))
	}
	if screen.Get(g.gridOffsetX, g.gridOffsetY) != '┌' {
		t.Error("playfield border not drawn at grid origin")
	}

	// Player head and body are drawn in green.
	head := g.cellRect(g.sim.Player.Pos.X, g.sim.Player.Pos.Y)
	if screen.GetCell(head.X, head.Y).Color != platformcore.ColorGreen {
		t.Error("player head cell should be green")
	}
}

func TestRenderBlockColors(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())
	g.sim.Blocks = []core.Block{
		{Pos: core.Position{X: 0, Y: 15}},
		{Pos: core.Position{X: 2, Y: 3}, Falling: true},
		{Pos: core.Position{X: 4, Y: 5}, Falling: true, Carried: true},
	}

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	resting := g.cellRect(0, 15)
	if screen.GetCell(resting.X, resting.Y).Color != platformcore.ColorBlue {
		t.Error("resting block should be blue")
	}

	falling := g.cellRect(2, 3)
	if screen.GetCell(falling.X, falling.Y).Color != platformcore.ColorYellow {
		t.Error("falling block should be yellow")
	}

	carried := g.cellRect(4, 5)
	if screen.GetCell(carried.X, carried.Y).Color != platformcore.ColorMagenta {
		t.Error("carried block should be magenta")
	}
}
