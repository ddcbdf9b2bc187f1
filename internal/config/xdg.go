// Package config resolves pwmeter's file locations and parses its TOML config.
package config

import (
	"os"
	"path/filepath"
)

const appName = "pwmeter"

// XDGConfigHome returns $XDG_CONFIG_HOME, falling back to ~/.config.
func XDGConfigHome() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// XDGDataHome returns $XDG_DATA_HOME, falling back to ~/.local/share.
func XDGDataHome() string {
	return xdgDir("XDG_DATA_HOME", ".local", "share")
}

func xdgDir(env string, fallback ...string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// DefaultDenylistPath is the optional user word list merged into the common-password check.
func DefaultDenylistPath() string {
	return filepath.Join(XDGConfigHome(), appName, "denylist.txt")
}

// DefaultDBPath is where analysis history is stored.
func DefaultDBPath() string {
	return filepath.Join(XDGDataHome(), appName, "history.db")
}

// DefaultConfigPath is the TOML config file read on every run.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}
