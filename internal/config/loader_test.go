package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBattleshipEmbeddedDefault(t *testing.T) {
	// No custom path and no config files on disk in the test directory, so
	// the embedded YAML applies (the user config dir may exist; accept
	// either source by checking the invariants both satisfy)
	cfg, err := LoadBattleship("")
	if err != nil {
		t.Fatalf("LoadBattleship(\"\") failed: %v", err)
	}
	if cfg.Pacing.EnemyDelayTicks < 0 {
		t.Errorf("EnemyDelayTicks = %d, want >= 0", cfg.Pacing.EnemyDelayTicks)
	}
}

func TestLoadBattleshipCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battleship.yaml")
	data := []byte("pacing:\n  enemy_delay_ticks: 7\ndisplay:\n  show_coordinates: false\n  reveal_on_defeat: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadBattleship(path)
	if err != nil {
		t.Fatalf("LoadBattleship(%q) failed: %v", path, err)
	}
	if cfg.Pacing.EnemyDelayTicks != 7 {
		t.Errorf("EnemyDelayTicks = %d, want 7", cfg.Pacing.EnemyDelayTicks)
	}
	if cfg.Display.ShowCoordinates {
		t.Error("ShowCoordinates = true, want false")
	}
	if !cfg.Display.RevealOnDefeat {
		t.Error("RevealOnDefeat = false, want true")
	}
}

func TestLoadBattleshipMissingCustomPath(t *testing.T) {
	_, err := LoadBattleship(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadBattleship() with a missing explicit path did not fail")
	}
}

func TestLoadBattleshipMalformedCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battleship.yaml")
	if err := os.WriteFile(path, []byte("pacing: [not a mapping"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := LoadBattleship(path); err == nil {
		t.Fatal("LoadBattleship() with malformed YAML did not fail")
	}
}

func TestDefaultBattleshipConfig(t *testing.T) {
	cfg := DefaultBattleshipConfig()
	if cfg.Pacing.EnemyDelayTicks != 20 {
		t.Errorf("default EnemyDelayTicks = %d, want 20", cfg.Pacing.EnemyDelayTicks)
	}
	if !cfg.Display.ShowCoordinates || !cfg.Display.RevealOnDefeat {
		t.Error("default display flags should both be on")
	}
}
