package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagSize   int
	flagPreset string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode (default: match3, the time attack).

Controls:
  Arrows/WASD   - Move the cursor
  Space/Enter   - Pick up a tile; an arrow then swaps it
  H             - Hint (the next move scores half)
  T             - Toggle autoplay
  P             - Pause
  R             - New board (when paused or over)
  Esc/B         - Leave (when paused or over)
  Ctrl+S        - Screenshot to ~/.match3/screenshots
  Q/Ctrl+C      - Quit

Difficulty options:
  easy    - One tile kind fewer, 30 seconds more
  normal  - Palette from the board size
  hard    - One tile kind more where the board allows it, 15 seconds less
  fixed   - No time bonus for scoring

Examples:
  match3 play
  match3 play --size 9 --preset hard
  match3 play match3_zen
  match3 play --config ./my-match3.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size (0 = configured default)")
	playCmd.Flags().StringVar(&flagPreset, "preset", "normal", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "match3"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'match3 list' to see available modes.")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	size := flagSize
	if size == 0 {
		size = cfg.Board.DefaultSize
	}

	settings := tui.Settings{
		Player:  tui.LocalPlayer(),
		Prepare: preparer(cfg),
	}

	game, err := tui.NewGame(tui.Selection{GameID: gameID, Size: size, Preset: flagPreset}, settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	settings.Store = store

	runErr := tui.Run(game, settings, runtimeConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
