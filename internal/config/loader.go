package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "minesweeper.yaml"

// SourceEmbedded is reported when no file was found and the built-in YAML is used.
const SourceEmbedded = "embedded"

// LoadMinesweeperSource loads presets and limits and reports the file used.
//
// An explicit customPath must exist and parse. Otherwise the first readable
// file of ~/.mines/configs/minesweeper.yaml and ./configs/minesweeper.yaml
// wins; unreadable or invalid candidates are skipped. With no file at all the
// embedded defaults apply.
func LoadMinesweeperSource(customPath string) (MinesweeperConfig, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MinesweeperConfig{}, "", fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return MinesweeperConfig{}, "", fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := parse(defaultMinesweeperYAML)
	if err != nil {
		return DefaultMinesweeperConfig(), SourceEmbedded, nil
	}
	return cfg, SourceEmbedded, nil
}

func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".mines", "configs", configFile))
	}
	return append(paths, filepath.Join("configs", configFile))
}

// parse decodes YAML over the built-in defaults, so a file only needs the
// keys it changes. Unknown keys are rejected.
func parse(data []byte) (MinesweeperConfig, error) {
	cfg := DefaultMinesweeperConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return MinesweeperConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return MinesweeperConfig{}, err
	}
	return cfg, nil
}
