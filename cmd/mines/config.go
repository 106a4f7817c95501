package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
)

var flagConfigSource bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default presets YAML",
	Long: `Prints the built-in presets, custom limits and timer settings as YAML.
Redirect the output to ~/.mines/configs/minesweeper.yaml to start your own.

With --source, prints the file the current settings were loaded from instead.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigSource, "source", false, "Print the config file in use")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigSource {
		fmt.Println(configSource)
		return nil
	}
	_, err := os.Stdout.Write(config.GetDefaultYAML())
	return err
}
