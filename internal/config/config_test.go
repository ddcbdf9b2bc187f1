package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Meter.Reveal != nil || cfg.Generate.Count != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[meter]\nreveal = true\ndenylist = \"/tmp/list.txt\"\n\n[generate]\ncount = 3\nseed = 42\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Meter.Reveal == nil || !*cfg.Meter.Reveal {
		t.Fatalf("expected reveal=true")
	}
	if cfg.Meter.Denylist == nil || *cfg.Meter.Denylist != "/tmp/list.txt" {
		t.Fatalf("unexpected denylist: %v", cfg.Meter.Denylist)
	}
	if cfg.Meter.History != nil {
		t.Fatalf("expected history unset")
	}
	if cfg.Generate.Count == nil || *cfg.Generate.Count != 3 {
		t.Fatalf("unexpected count")
	}
	if cfg.Generate.Seed == nil || *cfg.Generate.Seed != 42 {
		t.Fatalf("unexpected seed")
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[meter]\nshiny = 1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestXDGPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "pwmeter", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "pwmeter", "history.db") {
		t.Fatalf("unexpected db path %q", got)
	}
}
