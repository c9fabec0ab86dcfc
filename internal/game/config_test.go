package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"zero grid", func(c *GameConfig) { c.GridSize = 0 }},
		{"too many players", func(c *GameConfig) { c.Players = 5 }},
		{"block burns shorter than fire", func(c *GameConfig) { c.SoftBlockTTL = c.FireTTL }},
		{"max below initial", func(c *GameConfig) { c.MaxPower = c.InitialPower - 1 }},
		{"rate above one", func(c *GameConfig) { c.SoftBlockRate = 1.5 }},
		{"no weights", func(c *GameConfig) { c.PowerUpWeights = PowerWeights{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)
			if err := config.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	raw := `
players: 2
bomb_ttl: 200
power_up_weights:
  bomb: 0
  power: 1
  speed: 0
stage:
  - "#####"
  - "#1 2#"
  - "#####"
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Players != 2 || config.BombTTL != 200 {
		t.Errorf("overrides not applied: %+v", config)
	}
	if config.FireTTL != DefaultConfig().FireTTL {
		t.Errorf("missing keys should keep defaults, fire_ttl = %d", config.FireTTL)
	}
	if len(config.Stage) != 3 || config.Stage[1] != "#1 2#" {
		t.Errorf("stage = %q", config.Stage)
	}
	if config.PowerUpWeights != (PowerWeights{Blast: 1}) {
		t.Errorf("weights = %+v", config.PowerUpWeights)
	}

	s, err := New(config, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(s.Players()) != 2 {
		t.Errorf("expected 2 players, got %d", len(s.Players()))
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("players: [1"), 0o644)
	if _, err := LoadConfig(bad); err == nil {
		t.Error("expected a parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("players: 9\n"), 0o644)
	if _, err := LoadConfig(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
