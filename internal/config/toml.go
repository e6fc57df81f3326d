// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Practice PracticeConfig `toml:"practice"`
	Evaluate EvaluateConfig `toml:"evaluate"`
}

// PracticeConfig maps practice-mode settings.
type PracticeConfig struct {
	Method    *string  `toml:"method"`
	TeamSize  *int     `toml:"team-size"`
	LogStdDev *float64 `toml:"log-std-dev"`
	MinAnswer *uint64  `toml:"min-answer"`
	MaxAnswer *uint64  `toml:"max-answer"`
}

// EvaluateConfig maps evaluation-harness settings.
type EvaluateConfig struct {
	Method *string  `toml:"method"`
	Min    *float64 `toml:"min"`
	Max    *float64 `toml:"max"`
	Tests  *int     `toml:"tests"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
