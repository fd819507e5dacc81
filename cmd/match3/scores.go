package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagScoresSize  int
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores per board size",
	Long: `Display the top scores of a mode, one table per board size.

Examples:
  match3 scores
  match3 scores match3_zen
  match3 scores --size 7 --limit 20
  match3 scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresSize, "size", 0, "Only show this board size")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Scores per board size")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "match3"
	if len(args) > 0 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'match3 list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return
	}

	variants, err := store.Variants(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}
	if flagScoresSize > 0 {
		variants = []string{fmt.Sprintf("%dx%d", flagScoresSize, flagScoresSize)}
	}

	fmt.Printf("High Scores - %s\n", game.Title())

	if len(variants) == 0 {
		fmt.Println()
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'match3 play %s' to set the first high score!\n", gameID)
		return
	}

	for _, variant := range variants {
		printVariant(store, gameID, variant)
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("%d rounds played, average %.0f, best %d\n", stats.GamesCount, stats.AvgScore, stats.HighScore)
	}
}

func printVariant(store *storage.Store, gameID, variant string) {
	scores, err := store.TopVariantScores(gameID, variant, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Printf("Board %s\n", variant)
	if len(scores) == 0 {
		fmt.Println("  No scores recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-*s  %-10s  %s\n", "Rank", storage.MaxPlayerLen, "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-*s  %-10s  %s\n", "----", storage.MaxPlayerLen, "------", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-*s  %-10d  %s\n",
			i+1, storage.MaxPlayerLen, entry.Player, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}
