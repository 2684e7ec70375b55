package state

import (
	"os"
	"path/filepath"
	"testing"
)

func TestState(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	// Empty state
	s := Load()
	if len(s.Usage) != 0 {
		t.Errorf("expected empty state, got %d entries", len(s.Usage))
	}

	// Record a use
	if err := RecordUse("work"); err != nil {
		t.Fatalf("RecordUse failed: %v", err)
	}

	// Verify it persists
	s = Load()
	if len(s.Usage) != 1 {
		t.Errorf("expected 1 entry, got %d", len(s.Usage))
	}
	u, ok := s.Usage["work"]
	if !ok {
		t.Fatal("work not found in state")
	}
	if u.Requests != 1 {
		t.Errorf("expected 1 request, got %d", u.Requests)
	}
	if u.LastUsed.IsZero() {
		t.Error("LastUsed should be set")
	}

	// Repeated use increments
	RecordUse("work")
	s = Load()
	if s.Usage["work"].Requests != 2 {
		t.Errorf("expected 2 requests, got %d", s.Usage["work"].Requests)
	}

	// UsageFor
	if _, ok := UsageFor("work"); !ok {
		t.Error("work usage should exist")
	}
	if _, ok := UsageFor("nonexistent"); ok {
		t.Error("nonexistent usage should not exist")
	}

	// Forget
	if err := Forget("work"); err != nil {
		t.Fatalf("Forget failed: %v", err)
	}
	if _, ok := UsageFor("work"); ok {
		t.Error("work usage should be forgotten")
	}
}

func TestState_DefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	path := statePath()
	home, _ := os.UserHomeDir()
	if path == "" {
		t.Fatal("statePath should not be empty")
	}
	if path != filepath.Join(home, ".config", "gmaps", "state.toml") {
		t.Errorf("unexpected path: %q", path)
	}
}
