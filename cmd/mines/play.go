package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	mines "github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/registry"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var (
	flagCols  int
	flagRows  int
	flagMines int
)

var playCmd = &cobra.Command{
	Use:   "play <preset>",
	Short: "Play a board",
	Long: `Start playing the specified preset.

Controls:
  Arrows/hjkl   - Move cursor
  Space/Enter   - Reveal (on a number: chord)
  F             - Toggle flag
  Mouse         - Left click reveals, right click flags
  P             - Pause
  R             - New board
  Esc/B         - Back
  Q/Ctrl+C      - Quit

The custom preset opens a size form unless --cols, --rows or --mines is given.

Examples:
  mines play beginner
  mines play expert --seed 42
  mines play custom
  mines play custom --cols 40 --rows 20 --mines 150`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Custom board width")
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Custom board height")
	playCmd.Flags().IntVar(&flagMines, "mines", 0, "Custom mine count")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown preset %q, run 'mines list' to see presets", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	cfg := runtimeConfig()
	sizeFlags := cmd.Flags().Changed("cols") || cmd.Flags().Changed("rows") || cmd.Flags().Changed("mines")

	if gameID == string(config.PresetCustom) {
		ok, err := chooseCustomSize(game, cfg, sizeFlags)
		if err != nil || !ok {
			return err
		}
	} else if sizeFlags {
		logger.Warn("--cols/--rows/--mines only apply to the custom preset", "preset", gameID)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	_, err = tui.Run(game, store, cfg)
	return err
}

// chooseCustomSize applies the size flags, or shows the size form when none
// were given. ok is false when the player backed out of the form.
func chooseCustomSize(game registry.Game, cfg core.RuntimeConfig, fromFlags bool) (ok bool, err error) {
	settings := mines.Settings()
	want := settings.Custom.Default

	if fromFlags {
		if flagCols > 0 {
			want.Cols = flagCols
		}
		if flagRows > 0 {
			want.Rows = flagRows
		}
		if flagMines > 0 {
			want.Mines = flagMines
		}
	} else {
		size, picked, err := tui.RunCustom(settings, want, cfg.ScreenW, cfg.ScreenH)
		if err != nil || !picked {
			return false, err
		}
		want = size
	}

	got, _ := tui.ApplyBoardSize(game, want)
	if got != want {
		logger.Warn("custom board clamped to limits", "requested", want, "using", got)
	}
	return true, nil
}

// playFromMenu runs one board and reports whether to return to the menu.
func playFromMenu(gameID string, store *storage.Store, cfg core.RuntimeConfig) (back bool, err error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return false, err
	}

	if gameID == string(config.PresetCustom) {
		ok, err := chooseCustomSize(game, cfg, false)
		if err != nil {
			return false, err
		}
		if !ok {
			return true, nil
		}
	}

	return tui.Run(game, store, cfg)
}
