package state

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/msalah0e/gmaps/internal/config"
)

// AccountUsage tracks when and how much an account has been used.
type AccountUsage struct {
	LastUsed time.Time `toml:"last_used"`
	Requests int       `toml:"requests"`
}

// State tracks gmaps usage across invocations.
type State struct {
	Usage map[string]AccountUsage `toml:"usage"`
}

func statePath() string {
	return filepath.Join(config.ConfigDir(), "state.toml")
}

// Load reads the state file, returning empty state if it doesn't exist.
func Load() *State {
	s := &State{Usage: make(map[string]AccountUsage)}
	data, err := os.ReadFile(statePath())
	if err != nil {
		return s
	}
	_ = toml.Unmarshal(data, s)
	if s.Usage == nil {
		s.Usage = make(map[string]AccountUsage)
	}
	return s
}

// Save writes the state file to disk.
func Save(s *State) error {
	path := statePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(s)
}

// RecordUse bumps the usage counters for an account.
func RecordUse(name string) error {
	s := Load()
	u := s.Usage[name]
	u.LastUsed = time.Now()
	u.Requests++
	s.Usage[name] = u
	return Save(s)
}

// Forget drops usage tracking for a removed account.
func Forget(name string) error {
	s := Load()
	delete(s.Usage, name)
	return Save(s)
}

// UsageFor returns the tracked usage for an account, if any.
func UsageFor(name string) (AccountUsage, bool) {
	u, ok := Load().Usage[name]
	return u, ok
}
