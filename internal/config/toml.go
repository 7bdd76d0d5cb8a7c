// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Defaults DefaultsConfig `toml:"defaults"`
}

// DefaultsConfig maps default values for the global options.
// Nil fields leave the built-in default untouched.
type DefaultsConfig struct {
	CaseInsensitive *bool   `toml:"case-insensitive"`
	Sort            *string `toml:"sort"`
	ReverseSort     *bool   `toml:"reverse-sort"`
	Strip           *bool   `toml:"strip"`
	RemoveEmpty     *bool   `toml:"remove-empty"`
	Transform       *string `toml:"transform"`
	Filter          *string `toml:"filter"`
	Progress        *bool   `toml:"progress"`
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
