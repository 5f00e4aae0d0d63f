package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Data.Path == "" {
		t.Error("default data path should be set")
	}
	if cfg.Display.TimeFormat != "2006-01-02 15:04:05" {
		t.Errorf("unexpected default time format %q", cfg.Display.TimeFormat)
	}
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "data:\n  path: /tmp/elsewhere.json\ndisplay:\n  time_format: \"15:04\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Data.Path != "/tmp/elsewhere.json" {
		t.Errorf("data path not parsed, got %q", cfg.Data.Path)
	}
	if cfg.Display.TimeFormat != "15:04" {
		t.Errorf("time format not parsed, got %q", cfg.Display.TimeFormat)
	}
}

func TestEnvOverrideWins(t *testing.T) {
	t.Setenv(DataFileEnv, "/tmp/override.json")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Data.Path != "/tmp/override.json" {
		t.Errorf("env override ignored, got %q", cfg.Data.Path)
	}
}

func TestLockPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Data.Path = "/data/entries.json"
	if got := cfg.LockPath(); got != "/data/entries.json.lock" {
		t.Errorf("unexpected lock path %q", got)
	}
}
