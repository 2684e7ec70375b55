// Package account persists named Google Maps API credentials and tracks
// which one is active. The set lives in a single human-inspectable TOML
// file owned by the current user.
package account

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/msalah0e/gmaps/internal/apierr"
	"github.com/msalah0e/gmaps/internal/config"
)

// FileEnv overrides the on-disk store location when set.
const FileEnv = "GMAPS_ACCOUNTS_FILE"

// Credential is one named API key. At most one credential in the store is
// active at any time.
type Credential struct {
	Name   string `toml:"name"`
	Key    string `toml:"key"`
	Active bool   `toml:"active"`
}

// Store reads and writes the credential set at a fixed path.
type Store struct {
	path string
}

// Open returns a store at the default location:
// $GMAPS_ACCOUNTS_FILE if set, else $XDG_CONFIG_HOME/gmaps/accounts.toml,
// else ~/.config/gmaps/accounts.toml.
func Open() *Store {
	if path := os.Getenv(FileEnv); path != "" {
		return &Store{path: path}
	}
	return &Store{path: filepath.Join(config.ConfigDir(), "accounts.toml")}
}

// OpenPath returns a store backed by an explicit file path.
func OpenPath(path string) *Store {
	return &Store{path: path}
}

// Path returns the store's file path.
func (s *Store) Path() string {
	return s.path
}

type storeFile struct {
	Accounts []Credential `toml:"accounts"`
}

func (s *Store) load() ([]Credential, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read accounts file: %w", err)
	}

	var f storeFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return f.Accounts, nil
}

func (s *Store) save(creds []Credential) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(storeFile{Accounts: creds}); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o600); err != nil {
		return err
	}
	// The file holds API keys; keep it private even if it predates us.
	return os.Chmod(s.path, 0o600)
}

// Add stores a new credential. The first credential added becomes active;
// adding never changes which credential is active otherwise.
func (s *Store) Add(name, key string) error {
	if name == "" {
		return apierr.New(apierr.InvalidArguments, "account name cannot be empty")
	}
	if key == "" {
		return apierr.New(apierr.InvalidArguments, "API key cannot be empty")
	}

	creds, err := s.load()
	if err != nil {
		return err
	}
	for _, c := range creds {
		if c.Name == name {
			return apierr.New(apierr.DuplicateName, "account %q already exists", name)
		}
	}

	creds = append(creds, Credential{Name: name, Key: key, Active: len(creds) == 0})
	return s.save(creds)
}

// Use marks the named credential active and all others inactive. An unknown
// name leaves the store untouched.
func (s *Store) Use(name string) error {
	creds, err := s.load()
	if err != nil {
		return err
	}

	found := false
	for _, c := range creds {
		if c.Name == name {
			found = true
			break
		}
	}
	if !found {
		return apierr.New(apierr.NotFound, "account %q not found", name)
	}

	for i := range creds {
		creds[i].Active = creds[i].Name == name
	}
	return s.save(creds)
}

// Remove deletes the named credential. Removing the active credential
// leaves the store with no active one; the next dispatch will ask the user
// to pick.
func (s *Store) Remove(name string) error {
	creds, err := s.load()
	if err != nil {
		return err
	}

	kept := creds[:0]
	found := false
	for _, c := range creds {
		if c.Name == name {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return apierr.New(apierr.NotFound, "account %q not found", name)
	}
	return s.save(kept)
}

// Active returns the active credential.
func (s *Store) Active() (Credential, error) {
	creds, err := s.load()
	if err != nil {
		return Credential{}, err
	}
	for _, c := range creds {
		if c.Active {
			return c, nil
		}
	}
	if len(creds) == 0 {
		return Credential{}, apierr.New(apierr.NoActiveCredential, "no accounts configured — run `gmaps init` first")
	}
	return Credential{}, apierr.New(apierr.NoActiveCredential, "no active account — run `gmaps use <name>`")
}

// Get returns the named credential without touching the active flag.
func (s *Store) Get(name string) (Credential, error) {
	creds, err := s.load()
	if err != nil {
		return Credential{}, err
	}
	for _, c := range creds {
		if c.Name == name {
			return c, nil
		}
	}
	return Credential{}, apierr.New(apierr.NotFound, "account %q not found", name)
}

// List returns all credentials in insertion order.
func (s *Store) List() ([]Credential, error) {
	return s.load()
}

// Mask returns a short display form of an API key.
func Mask(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
