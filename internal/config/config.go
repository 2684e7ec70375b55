package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds gmaps configuration.
type Config struct {
	UI       UIConfig       `toml:"ui"`
	Defaults DefaultsConfig `toml:"defaults"`
	HTTP     HTTPConfig     `toml:"http"`
}

// UIConfig controls display options.
type UIConfig struct {
	Emoji bool `toml:"emoji"`
	Color bool `toml:"color"`
}

// DefaultsConfig supplies request options when flags are absent.
type DefaultsConfig struct {
	Language   string `toml:"language"`
	Region     string `toml:"region"`
	Units      string `toml:"units"` // "metric" or "imperial"
	MaxResults int    `toml:"max_results"`
}

// HTTPConfig controls the API client transport.
type HTTPConfig struct {
	TimeoutSeconds int  `toml:"timeout_seconds"`
	RetryTransient bool `toml:"retry_transient"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI:       UIConfig{Emoji: true, Color: true},
		Defaults: DefaultsConfig{Units: "metric", MaxResults: 10},
		HTTP:     HTTPConfig{TimeoutSeconds: 10, RetryTransient: true},
	}
}

// ConfigDir returns the gmaps config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "gmaps")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, creating defaults if it doesn't exist.
func Load() *Config {
	cfg := Default()
	path := Path()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = toml.Unmarshal(data, cfg)
	return cfg
}

// Save writes the config to disk.
func Save(cfg *Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// EnsureExists creates the config file with defaults if it doesn't exist.
func EnsureExists() error {
	path := Path()
	if _, err := os.Stat(path); err == nil {
		return nil // already exists
	}
	return Save(Default())
}
