package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	mines "github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List difficulty presets",
	Long:  `Shows every preset with its board size and mine count.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No presets available.")
		return
	}

	settings := mines.Settings()

	fmt.Println("Available presets:")
	fmt.Println()
	fmt.Printf("  %-13s  %s\n", "ID", "Board")
	fmt.Printf("  %-13s  %s\n", "--", "-----")

	for _, g := range games {
		detail := "--cols/--rows/--mines"
		if g.ID != string(config.PresetCustom) {
			if size, err := settings.Preset(config.DifficultyPreset(g.ID)); err == nil {
				detail = size.String()
			}
		} else {
			lim := settings.Custom
			detail = fmt.Sprintf("%d-%d cols, %d-%d rows", lim.MinCols, lim.MaxCols, lim.MinRows, lim.MaxRows)
		}
		fmt.Printf("  %-13s  %s\n", g.ID, detail)
	}

	fmt.Println()
	fmt.Println("Run 'mines play <id>' to play.")
}
