package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long:  `Shows every registered game mode and the board sizes it offers.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	prepare := preparer(cfg)

	// Play counts are optional; a missing database only hides the column.
	played := map[string]*storage.GameStats{}
	if store, err := storage.Open(flagDBPath); err == nil {
		if stats, err := store.GetAllGamesStats(); err == nil {
			played = stats
		}
		store.Close()
	}

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Println("Available modes:")
	fmt.Println()
	fmt.Printf("  %-*s  %-24s  %-6s  %s\n", maxIDLen, "ID", "Title", "Played", "Sizes")
	fmt.Printf("  %-*s  %-24s  %-6s  %s\n", maxIDLen, "--", "-----", "------", "-----")

	for _, info := range games {
		sizes := "-"
		if g, err := registry.Create(info.ID); err == nil {
			prepare(g)
			if c, ok := g.(registry.Configurable); ok {
				sizes = fmt.Sprint(c.Sizes())
			}
		}
		rounds := 0
		if st, ok := played[info.ID]; ok {
			rounds = st.GamesCount
		}
		fmt.Printf("  %-*s  %-24s  %-6d  %s\n", maxIDLen, info.ID, info.Title, rounds, sizes)
	}

	fmt.Println()
	fmt.Println("Run 'match3 play <id> --size <n>' to play.")
	return nil
}
