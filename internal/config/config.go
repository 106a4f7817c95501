// Package config provides YAML-based board configuration: difficulty presets,
// custom-board limits and display settings.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// DifficultyPreset names a board size.
type DifficultyPreset string

const (
	PresetBeginner     DifficultyPreset = "beginner"
	PresetIntermediate DifficultyPreset = "intermediate"
	PresetExpert       DifficultyPreset = "expert"
	PresetCustom       DifficultyPreset = "custom"
)

// Presets lists the built-in presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{PresetBeginner, PresetIntermediate, PresetExpert, PresetCustom}
}

// MinesweeperConfig contains all configuration for the game.
type MinesweeperConfig struct {
	Presets map[DifficultyPreset]BoardSize `yaml:"presets"`
	Custom  CustomLimits                   `yaml:"custom"`
	Timer   TimerConfig                    `yaml:"timer"`
}

// BoardSize is a grid size and mine count.
type BoardSize struct {
	Cols  int `yaml:"cols"`
	Rows  int `yaml:"rows"`
	Mines int `yaml:"mines"`
}

// String formats the size as "COLSxROWS, N mines".
func (b BoardSize) String() string {
	return fmt.Sprintf("%dx%d, %d mines", b.Cols, b.Rows, b.Mines)
}

// CustomLimits bounds user-chosen board dimensions.
type CustomLimits struct {
	MinCols int       `yaml:"min_cols"`
	MaxCols int       `yaml:"max_cols"`
	MinRows int       `yaml:"min_rows"`
	MaxRows int       `yaml:"max_rows"`
	Default BoardSize `yaml:"default"`
}

// TimerConfig controls the elapsed-time display.
type TimerConfig struct {
	MaxDisplay int `yaml:"max_display"` // Display caps here; the clock itself keeps counting
}

// Preset returns the board size for a named preset.
// PresetCustom resolves to the clamped custom default.
func (c MinesweeperConfig) Preset(p DifficultyPreset) (BoardSize, error) {
	if p == PresetCustom {
		d := c.Custom.Default
		return c.ClampCustom(d.Cols, d.Rows, d.Mines), nil
	}
	size, ok := c.Presets[p]
	if !ok {
		return BoardSize{}, fmt.Errorf("config: unknown preset %q", p)
	}
	return size, nil
}

// ClampCustom forces user-supplied dimensions into the configured limits.
// Mines are bounded to [1, cols*rows-1].
func (c MinesweeperConfig) ClampCustom(cols, rows, mines int) BoardSize {
	cols = core.Clamp(cols, c.Custom.MinCols, c.Custom.MaxCols)
	rows = core.Clamp(rows, c.Custom.MinRows, c.Custom.MaxRows)
	maxMines := max(1, cols*rows-1)
	mines = core.Clamp(mines, 1, maxMines)
	return BoardSize{Cols: cols, Rows: rows, Mines: mines}
}

// Validate checks that every preset describes a playable board and the
// custom limits are consistent.
func (c MinesweeperConfig) Validate() error {
	for name, p := range c.Presets {
		if p.Cols < 1 || p.Rows < 1 {
			return fmt.Errorf("config: preset %q has a %dx%d grid", name, p.Cols, p.Rows)
		}
		if p.Mines < 1 || p.Mines > p.Cols*p.Rows-1 {
			return fmt.Errorf("config: preset %q has %d mines on a %dx%d grid", name, p.Mines, p.Cols, p.Rows)
		}
	}
	if c.Custom.MinCols < 1 || c.Custom.MinRows < 1 {
		return fmt.Errorf("config: custom minimum must be at least 1x1")
	}
	if c.Custom.MinCols > c.Custom.MaxCols || c.Custom.MinRows > c.Custom.MaxRows {
		return fmt.Errorf("config: custom limits are inverted")
	}
	if c.Custom.MinCols*c.Custom.MinRows < 2 {
		return fmt.Errorf("config: custom minimum board must hold at least one safe cell")
	}
	if c.Timer.MaxDisplay < 0 {
		return fmt.Errorf("config: timer max_display must not be negative")
	}
	return nil
}
