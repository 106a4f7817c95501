package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/registry"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var (
	flagScoresLimit int
	flagClear       bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [preset]",
	Short: "Show best times",
	Long: `Display the fastest wins and win/loss stats for a preset.
Without a preset, prints a summary of every preset played.

Examples:
  mines scores
  mines scores beginner
  mines scores expert --limit 20
  mines scores custom --clear
  mines scores -i`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of best times to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all results for the preset")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse best times in a table")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown preset %q, run 'mines list' to see presets", gameID)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	switch {
	case flagInteractive:
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, gameID, cfg.ScreenW, cfg.ScreenH)
		return err
	case gameID == "" && flagClear:
		return errors.New("--clear needs a preset")
	case gameID == "":
		return printSummary(store)
	case flagClear:
		if err := store.ClearResults(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared results for %s.\n", gameID)
		return nil
	default:
		return printBestTimes(store, gameID)
	}
}

func printBestTimes(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	times, err := store.BestTimes(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best Times - %s\n", game.Title())
	fmt.Println()

	if len(times) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mines play %s' to set the first time!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-10s  %s\n", "Rank", "Time", "Board", "Date")
	fmt.Printf("  %-4s  %-6s  %-10s  %s\n", "----", "----", "-----", "----")
	for i, r := range times {
		board := fmt.Sprintf("%dx%d/%d", r.Cols, r.Rows, r.Mines)
		fmt.Printf("  %-4d  %-6s  %-10s  %s\n", i+1, formatSeconds(r.Seconds), board, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Played %d, won %d (%.0f%%)\n", stats.Played, stats.Won, stats.WinRate()*100)
	}
	return nil
}

func printSummary(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No games recorded yet.")
		return nil
	}

	fmt.Printf("  %-13s  %6s  %4s  %6s  %7s\n", "Preset", "Played", "Won", "Best", "Avg win")
	for _, g := range registry.List() {
		s, ok := all[g.ID]
		if !ok {
			continue
		}
		best, avg := "-", "-"
		if s.Won > 0 {
			best = formatSeconds(s.BestTime)
			avg = formatSeconds(int(s.AvgWinTime + 0.5))
		}
		fmt.Printf("  %-13s  %6d  %4d  %6s  %7s\n", g.ID, s.Played, s.Won, best, avg)
	}
	return nil
}

func formatSeconds(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
