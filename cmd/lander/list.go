package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long:  `Shows a list of all registered lander modes.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	// Stats are optional; the list works without a database.
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, _ = store.GetAllGamesStats()
		store.Close()
	}

	fmt.Printf("  %-*s  %-22s  %5s  %4s\n", maxIDLen, "ID", "Title", "Runs", "Best")
	fmt.Printf("  %-*s  %-22s  %5s  %4s\n", maxIDLen, "--", "-----", "----", "----")
	for _, g := range games {
		runs, best := 0, 0
		if st, ok := stats[g.ID]; ok {
			runs, best = st.GamesCount, st.HighScore
		}
		fmt.Printf("  %-*s  %-22s  %5d  %4d\n", maxIDLen, g.ID, g.Title, runs, best)
	}

	fmt.Println()
	fmt.Println("Run 'lander play <id>' to play a mode.")
}
