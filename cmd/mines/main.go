// mines is a terminal Minesweeper with mouse support, best times and an SSH server.
//
// Usage:
//
//	mines list               - List difficulty presets
//	mines play <preset>      - Play a board
//	mines menu               - Pick a preset interactively
//	mines serve              - Start SSH server for remote play
//	mines scores <preset>    - Show best times for a preset
//	mines config             - Print the default presets YAML
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible mine layouts
//	--db <path>         - Set database path (default: ~/.mines/results.db)
//	--config <path>     - Load presets from a YAML file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	mines "github.com/vovakirdan/tui-mines/internal/games/minesweeper"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	// configSource is the file the presets came from, or config.SourceEmbedded.
	configSource string

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "mines"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Minesweeper in your terminal",
	Long: `mines is a terminal Minesweeper. The first reveal is always safe,
numbers show adjacent mines, and clearing every safe cell wins.

Available commands:
  list     - Show difficulty presets
  play     - Play a preset directly
  menu     - Interactive preset picker
  serve    - Start SSH server for remote play
  scores   - View best times
  config   - Print the default presets YAML

Examples:
  mines list
  mines play beginner
  mines play custom --cols 24 --rows 20 --mines 90
  mines menu
  mines serve --ssh :2222
  mines scores expert
  mines config > ~/.mines/configs/minesweeper.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mines/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom presets YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup applies the log level and loads presets before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(level)

	cfg, source, err := config.LoadMinesweeperSource(flagConfig)
	if err != nil {
		return err
	}
	mines.SetConfig(cfg)
	configSource = source
	logger.Debug("configuration loaded", "source", source, "presets", len(cfg.Presets))

	if flagFPS <= 0 {
		logger.Warn("invalid tick rate, using default", "fps", flagFPS)
		flagFPS = 30
	}
	return nil
}
