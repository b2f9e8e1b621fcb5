package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadFrogger("")
	if err != nil {
		t.Fatalf("LoadFrogger: %v", err)
	}
	if cfg.Timing.TickInterval() != 10*time.Millisecond {
		t.Errorf("tick = %v, want 10ms", cfg.Timing.TickInterval())
	}
	if cfg.Difficulty != DifficultyEasy || cfg.StartLevel() != 1 {
		t.Errorf("difficulty = %q start level %d", cfg.Difficulty, cfg.StartLevel())
	}
	if cfg.Server.SSHAddress != ":23234" {
		t.Errorf("ssh address = %q", cfg.Server.SSHAddress)
	}
	if cfg.Server.IdleTimeout() != 30*time.Minute {
		t.Errorf("idle timeout = %v", cfg.Server.IdleTimeout())
	}
}

func TestLoadCustomOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frogger.yaml")
	data := "timing:\n  tick_ms: 5\n  platform_ms: 20\ndifficulty: hard\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrogger(path)
	if err != nil {
		t.Fatalf("LoadFrogger: %v", err)
	}
	if cfg.Timing.PlatformEvery() != 4 {
		t.Errorf("platform every = %d, want 4", cfg.Timing.PlatformEvery())
	}
	if cfg.StartLevel() != 3 {
		t.Errorf("start level = %d, want 3", cfg.StartLevel())
	}
	// untouched keys keep their defaults
	if cfg.Storage.DBPath != "~/.arcade/scores.db" {
		t.Errorf("db path = %q", cfg.Storage.DBPath)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("timing:\n  tick_ms: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "read"},
		{"invalid timing", bad, "tick_ms"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrogger(tt.path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyEasy, false},
		{"easy", DifficultyEasy, false},
		{"Normal", DifficultyNormal, false},
		{" hard ", DifficultyHard, false},
		{"nightmare", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyFroggerPreset(t *testing.T) {
	cfg := DefaultFroggerConfig()
	for i, p := range Presets {
		ApplyFroggerPreset(&cfg, p)
		if cfg.StartLevel() != i+1 {
			t.Errorf("%s: start level = %d, want %d", p, cfg.StartLevel(), i+1)
		}
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := ExpandHome("~/.arcade/scores.db"); got != filepath.Join(home, ".arcade", "scores.db") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := ExpandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed to %q", got)
	}
}
