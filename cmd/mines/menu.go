package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a preset from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a preset.
Leaving a board with Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select preset
  Tab          - Best times
  Q            - Quit

Examples:
  mines menu
  mines menu --fps 60
  mines menu --db ./results.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		switch {
		case menuResult.Quit || (menuResult.GameID == "" && !menuResult.WantsScoreboard):
			return nil

		case menuResult.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, "", cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			back, err := playFromMenu(menuResult.GameID, store, cfg)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}
		}
	}
}
