package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultMatchesEmbeddedYAML(t *testing.T) {
	cfg, err := Parse(defaultGameYAML)
	if err != nil {
		t.Fatalf("Failed to parse embedded defaults: %v", err)
	}

	if *cfg != *Default() {
		t.Errorf("Embedded YAML and Default() disagree:\n%+v\n%+v", *cfg, *Default())
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.Player.HP != 4 {
		t.Errorf("Expected player hp 4, got %d", cfg.Player.HP)
	}
	if cfg.FireInterval() != 150*time.Millisecond {
		t.Errorf("Expected fire interval 150ms, got %v", cfg.FireInterval())
	}
	if cfg.SpawnInterval() != time.Second {
		t.Errorf("Expected spawn interval 1s, got %v", cfg.SpawnInterval())
	}
	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("Expected 1280x720 window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("bullet:\n  speed: 750\nplayer:\n  time_scaled: true\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Bullet.Speed != 750 {
		t.Errorf("Expected bullet speed 750, got %v", cfg.Bullet.Speed)
	}
	if !cfg.Player.TimeScaled {
		t.Error("Expected time_scaled true")
	}
	if cfg.Bullet.FireInterval != 0.15 {
		t.Errorf("Expected untouched fire_interval 0.15, got %v", cfg.Bullet.FireInterval)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []string{
		"player:\n  hp: 0\n",
		"collision:\n  radius: -1\n",
		"window:\n  tick_rate: 0\n",
		"input:\n  deadzone: 1.5\n",
		"audio:\n  volume: 2\n",
	}

	for _, doc := range tests {
		_, err := Parse([]byte(doc))
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("Expected ErrInvalid for %q, got %v", doc, err)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("player: [")); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("spawn:\n  interval: 0.5\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SpawnInterval() != 500*time.Millisecond {
		t.Errorf("Expected spawn interval 500ms, got %v", cfg.SpawnInterval())
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing custom config")
	}
}

// isolate points the search path at empty temp directories.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Expected defaults, got %+v", *cfg)
	}
}

func TestLoadSearchPathRejectsBadFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"malformed", "player: [", false},
		{"out of range", "window:\n  tick_rate: 0\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, work := isolate(t)
			dir := filepath.Join(work, "configs")
			if err := os.MkdirAll(dir, 0o755); err != nil {
				t.Fatalf("Failed to create configs dir: %v", err)
			}
			if err := os.WriteFile(filepath.Join(dir, "game.yaml"), []byte(tt.content), 0o644); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}

			_, err := Load("")
			if err == nil {
				t.Fatal("Expected an error instead of silently using defaults")
			}
			if tt.invalid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadUserConfigWins(t *testing.T) {
	home, _ := isolate(t)
	dir := filepath.Join(home, ".spaceshooter")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("player:\n  hp: 7\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Player.HP != 7 {
		t.Errorf("Expected hp 7 from the user config, got %d", cfg.Player.HP)
	}
}
