package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pavelh/stackattack-tui/internal/config"
	"github.com/pavelh/stackattack-tui/internal/core"
	"github.com/pavelh/stackattack-tui/internal/games/stack"
	"github.com/pavelh/stackattack-tui/internal/platform/tui"
	"github.com/pavelh/stackattack-tui/internal/registry"
	"github.com/pavelh/stackattack-tui/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing Stackattack.

Controls:
  A/Left/H   - Move left
  D/Right/L  - Move right
  Space/W/Up - Jump
  P          - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Larger field, slower crate spawns
  normal - Default field and spawn rate
  hard   - Cramped field, crates pour in
  fixed  - Use the config file values untouched

Examples:
  stackattack play
  stackattack play --difficulty hard
  stackattack play --seed 42 --difficulty fixed
  stackattack play --config ./my-stack.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagDifficulty != "" && !config.ValidPreset(config.DifficultyPreset(flagDifficulty)) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, normal, hard, or fixed)\n", flagDifficulty)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before game creation
	stack.SetConfigPath(flagConfig)
	stack.SetDifficultyPreset(flagDifficulty)

	// Create game instance
	game, err := registry.Create("stack")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	difficulty := flagDifficulty
	if difficulty == "" {
		difficulty = "normal"
	}

	// Run the game
	runErr := tui.Run(game, store, cfg, difficulty)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
