package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DataFileEnv overrides the data file path, mainly for tests and scripting
const DataFileEnv = "ATOMICHRON_DATA_FILE"

type Config struct {
	// Data file settings
	Data DataConfig `yaml:"data"`

	// Display settings
	Display DisplayConfig `yaml:"display"`
}

type DataConfig struct {
	Path string `yaml:"path"` // Path to the entries JSON file
}

type DisplayConfig struct {
	TimeFormat string `yaml:"time_format"` // Timestamp layout for status/log output
}

// DefaultConfigPath returns ~/.config/atomichron/config.yaml
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		return filepath.Join(".", ".config", "atomichron", "config.yaml")
	}
	return filepath.Join(homeDir, ".config", "atomichron", "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return &Config{
		Data: DataConfig{
			Path: filepath.Join(homeDir, ".config", "atomichron", "entries.json"),
		},
		Display: DisplayConfig{
			TimeFormat: "2006-01-02 15:04:05",
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't
// exist. The ATOMICHRON_DATA_FILE environment variable takes precedence over
// the configured data path.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if override := os.Getenv(DataFileEnv); override != "" {
		cfg.Data.Path = override
	}

	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// LockPath returns the lockfile path derived from the data file path
func (c *Config) LockPath() string {
	return c.Data.Path + ".lock"
}

// EnsureDirectories creates the directory holding the data file
func (c *Config) EnsureDirectories() error {
	return os.MkdirAll(filepath.Dir(c.Data.Path), 0o700)
}
