package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultMinesweeperYAML []byte

// DefaultMinesweeperConfig returns the built-in configuration.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{
		Presets: map[DifficultyPreset]BoardSize{
			PresetBeginner:     {Cols: 9, Rows: 9, Mines: 10},
			PresetIntermediate: {Cols: 16, Rows: 16, Mines: 40},
			PresetExpert:       {Cols: 30, Rows: 16, Mines: 99},
		},
		Custom: CustomLimits{
			MinCols: 5,
			MaxCols: 60,
			MinRows: 5,
			MaxRows: 40,
			Default: BoardSize{Cols: 9, Rows: 9, Mines: 10},
		},
		Timer: TimerConfig{
			MaxDisplay: 999,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultMinesweeperYAML
}
