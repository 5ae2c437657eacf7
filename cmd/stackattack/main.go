// stackattack is a terminal rendition of the classic falling-block
// stacking game: dodge the crates, shove them into full rows, and
// survive as long as you can.
//
// Usage:
//
//	stackattack play             - Play the game
//	stackattack scores           - Show high scores
//	stackattack serve            - Start SSH server for remote play
//	stackattack list             - List registered games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.stackattack/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/pavelh/stackattack-tui/internal/games/stack"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stackattack",
	Short: "Stackattack - Dodge and stack falling crates in your terminal",
	Long: `Stackattack is a terminal arcade game. Crates fall from the sky and pile
up; push them around, clear full rows for points, and don't get crushed.

Available commands:
  play     - Play the game
  scores   - View high scores
  serve    - Start SSH server for remote play
  list     - List registered games

Examples:
  stackattack play
  stackattack play --difficulty hard
  stackattack scores --interactive
  stackattack serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.stackattack/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
}
