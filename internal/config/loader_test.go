package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg GobbletConfig
	if err := yaml.Unmarshal(GetDefaultYAML("gobblet"), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultGobbletConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultGobbletConfig())
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("GetDefaultYAML should return nil for unknown games")
	}
}

func TestLoadGobbletCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gobblet.yaml")
	data := []byte("players:\n  player1:\n    name: Alice\nrules:\n  pieces_per_size: 2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGobblet(path)
	if err != nil {
		t.Fatalf("LoadGobblet() error = %v", err)
	}
	if cfg.Players.Player1.Name != "Alice" {
		t.Errorf("Player1.Name = %q, expected Alice", cfg.Players.Player1.Name)
	}
	if cfg.Players.Player2.Name != "Player2" {
		t.Errorf("Player2.Name = %q, expected default Player2", cfg.Players.Player2.Name)
	}
	if cfg.Rules.PiecesPerSize != 2 {
		t.Errorf("PiecesPerSize = %d, expected 2", cfg.Rules.PiecesPerSize)
	}
	if cfg.Display.NoticeTicks != DefaultGobbletConfig().Display.NoticeTicks {
		t.Errorf("NoticeTicks = %d, expected default", cfg.Display.NoticeTicks)
	}
}

func TestLoadGobbletPartialKeepsBoolDefaults(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name  string
		data  string
		hints bool
	}{
		{"key omitted", "players:\n  player1:\n    name: Alice\n", true},
		{"explicitly off", "display:\n  show_hints: false\n", false},
		{"explicitly on", "display:\n  show_hints: true\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0o600); err != nil {
				t.Fatal(err)
			}
			cfg, err := LoadGobblet(path)
			if err != nil {
				t.Fatalf("LoadGobblet() error = %v", err)
			}
			if cfg.Display.ShowHints != tt.hints {
				t.Errorf("ShowHints = %v, expected %v", cfg.Display.ShowHints, tt.hints)
			}
		})
	}
}

func TestLoadGobbletErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "players: [\n"},
		{"pieces out of range", "rules:\n  pieces_per_size: 3\n"},
		{"negative ticks", "display:\n  notice_ticks: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadGobblet(path); err == nil {
				t.Error("LoadGobblet() error = nil, expected an error")
			}
		})
	}

	if _, err := LoadGobblet(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadGobblet() on a missing file should fail")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultGobbletConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}

	cfg.Players.Player2.Name = "  "
	if err := cfg.Validate(); err == nil {
		t.Error("blank player name should be rejected")
	}
}
