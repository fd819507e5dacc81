// match3 is a match-3 puzzle game for the terminal.
//
// Usage:
//
//	match3 list              - List game modes
//	match3 play [mode]       - Play a mode (default: match3)
//	match3 menu              - Pick a mode and board size interactively
//	match3 serve             - Start SSH server for remote play
//	match3 scores [mode]     - Show high scores per board size
//	match3 autoplay          - Watch the solver play in the terminal
//	match3 ranges            - Report which board shapes and palettes generate
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.match3/scores.db)
//	--config <path> - Use a custom match3.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/vovakirdan/tui-match3/internal/games/match3"
)

var (
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - swap tiles, clear lines, chain cascades",
	Long: `Match-3 is a tile-swapping puzzle for the terminal.

Swap two neighbouring tiles to line up three or more of a kind. Cleared
tiles fall, new ones drop in from the top, and every chained wave scores
a growing bonus.

Available commands:
  list      - Show all game modes
  play      - Play a mode directly
  menu      - Interactive mode and board size picker
  serve     - Start SSH server for remote play
  scores    - View high scores
  autoplay  - Headless solver demo
  ranges    - Board generation sweep

Examples:
  match3 play
  match3 play match3_zen --size 9
  match3 menu
  match3 serve --ssh :2222
  match3 autoplay --turns 10 --seed 42`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.match3/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom match3.yaml")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(autoplayCmd)
	rootCmd.AddCommand(rangesCmd)
}
