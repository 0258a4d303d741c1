package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sim.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Simulation.FaceKind != FaceKindInt {
		t.Errorf("FaceKind = %q, want %q", cfg.Simulation.FaceKind, FaceKindInt)
	}
	if cfg.TotalDice() != 2 {
		t.Errorf("TotalDice() = %d, want 2", cfg.TotalDice())
	}
}

func TestLoadConfig_FileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/sim.yaml")
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Simulation.Rolls != 1000 {
		t.Errorf("expected default rolls, got %d", cfg.Simulation.Rolls)
	}
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeConfig(t, `
simulation:
  face_kind: string
  rolls: 500
  seed: 42
  layout: narrow
dice:
  - name: fair_coin
    faces: [H, T]
  - name: unfair_coin
    faces: [H, T]
    weights:
      H: 5
  - name: letters
    faces: ["A", "B"]
    weights_file: letters.txt
    normalize: true
    copies: 3
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}

	sim := cfg.Simulation
	if sim.FaceKind != FaceKindString || sim.Rolls != 500 || sim.Seed != 42 || sim.Layout != "narrow" {
		t.Errorf("simulation = %+v", sim)
	}
	if sim.Format != "text" {
		t.Errorf("Format = %q, want default text", sim.Format)
	}
	if len(cfg.Dice) != 3 {
		t.Fatalf("got %d dice, want 3", len(cfg.Dice))
	}
	if cfg.Dice[1].Weights["H"] != "5" {
		t.Errorf("unfair weight H = %q, want 5", cfg.Dice[1].Weights["H"])
	}
	if cfg.TotalDice() != 5 {
		t.Errorf("TotalDice() = %d, want 5", cfg.TotalDice())
	}

	want := filepath.Join(filepath.Dir(path), "letters.txt")
	if got := cfg.ResolvePath(cfg.Dice[2].WeightsFile); got != want {
		t.Errorf("ResolvePath = %q, want %q", got, want)
	}
	if got := cfg.ResolvePath("/abs/w.txt"); got != "/abs/w.txt" {
		t.Errorf("ResolvePath(abs) = %q", got)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "simulation: [broken")

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DICESIM_ROLLS", "77")
	t.Setenv("DICESIM_SEED", "9")
	t.Setenv("DICESIM_LAYOUT", "narrow")
	t.Setenv("DICESIM_FORMAT", "csv")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	sim := cfg.Simulation
	if sim.Rolls != 77 || sim.Seed != 9 || sim.Layout != "narrow" || sim.Format != "csv" {
		t.Errorf("env overrides not applied: %+v", sim)
	}
	if sim.FaceKind != FaceKindInt {
		t.Errorf("unset env var changed FaceKind to %q", sim.FaceKind)
	}
}

func TestLoadConfig_BadEnvOverride(t *testing.T) {
	t.Setenv("DICESIM_ROLLS", "many")

	if _, err := LoadConfig(""); err == nil {
		t.Error("expected error for non-numeric DICESIM_ROLLS")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"face kind", func(c *Config) { c.Simulation.FaceKind = "complex" }},
		{"zero rolls", func(c *Config) { c.Simulation.Rolls = 0 }},
		{"negative limit", func(c *Config) { c.Simulation.Limit = -1 }},
		{"layout", func(c *Config) { c.Simulation.Layout = "tall" }},
		{"format", func(c *Config) { c.Simulation.Format = "xml" }},
		{"no dice", func(c *Config) { c.Dice = nil }},
		{"no faces", func(c *Config) { c.Dice[0].Faces = nil }},
		{"negative copies", func(c *Config) { c.Dice[0].Copies = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want %v", err, ErrInvalidConfig)
			}
		})
	}
}
