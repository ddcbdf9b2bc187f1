package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Meter    MeterConfig    `toml:"meter"`
	Generate GenerateConfig `toml:"generate"`
}

// MeterConfig maps meter-related settings.
type MeterConfig struct {
	Reveal   *bool   `toml:"reveal"`
	Denylist *string `toml:"denylist"`
	History  *bool   `toml:"history"`
	Color    *bool   `toml:"color"`
}

// GenerateConfig maps generator settings.
type GenerateConfig struct {
	Count *int   `toml:"count"`
	Seed  *int64 `toml:"seed"`
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
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
