// Package config loads simulation settings for the dicesim command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/dicesim/internal/game"
	"github.com/lawnchairsociety/dicesim/internal/report"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// FaceKind selects the Go type faces are parsed into.
type FaceKind string

const (
	FaceKindInt    FaceKind = "int"
	FaceKindFloat  FaceKind = "float"
	FaceKindString FaceKind = "string"
)

// Config is a complete simulation definition.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Dice       []DieConfig      `yaml:"dice"`

	// baseDir resolves relative weights files; it is the config file's directory.
	baseDir string
}

// SimulationConfig holds game-wide settings. Each field can be overridden
// from the environment.
type SimulationConfig struct {
	// FaceKind is int, float or string.
	FaceKind FaceKind `yaml:"face_kind" env:"DICESIM_FACE_KIND"`

	// Rolls is how many times every die is rolled per play.
	Rolls int `yaml:"rolls" env:"DICESIM_ROLLS"`

	// Seed makes plays reproducible. 0 picks a time-based seed.
	Seed uint64 `yaml:"seed" env:"DICESIM_SEED"`

	// Layout is the results layout: wide or narrow.
	Layout string `yaml:"layout" env:"DICESIM_LAYOUT"`

	// Format is the table output format: text or csv.
	Format string `yaml:"format" env:"DICESIM_FORMAT"`

	// Limit caps printed table rows. 0 prints everything.
	Limit int `yaml:"limit" env:"DICESIM_LIMIT"`
}

// DieConfig describes one die of the game.
type DieConfig struct {
	Name  string   `yaml:"name"`
	Faces []string `yaml:"faces"`

	// Weights maps face to weight; unlisted faces keep weight 1.
	Weights map[string]string `yaml:"weights"`

	// WeightsFile is a "face count" table applied before Weights.
	WeightsFile string `yaml:"weights_file"`

	// Normalize rescales WeightsFile counts to probabilities.
	Normalize bool `yaml:"normalize"`

	// Copies places the same die instance this many times in the game.
	// 0 is treated as 1.
	Copies int `yaml:"copies"`
}

// DefaultConfig returns two fair six-sided dice rolled 1000 times.
func DefaultConfig() *Config {
	sixSides := []string{"1", "2", "3", "4", "5", "6"}
	return &Config{
		Simulation: SimulationConfig{
			FaceKind: FaceKindInt,
			Rolls:    1000,
			Layout:   string(game.LayoutWide),
			Format:   string(report.FormatText),
			Limit:    20,
		},
		Dice: []DieConfig{
			{Name: "d6", Faces: sixSides, Copies: 2},
		},
	}
}

// LoadConfig loads a simulation definition from a YAML file, then applies
// environment overrides. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			loaded := &Config{Simulation: config.Simulation}
			if err := yaml.Unmarshal(data, loaded); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
			if len(loaded.Dice) == 0 {
				loaded.Dice = config.Dice
			}
			loaded.baseDir = filepath.Dir(path)
			config = loaded
		}
	}

	if err := env.Parse(&config.Simulation); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	return config, nil
}

// Validate checks the settings without building any dice.
func (c *Config) Validate() error {
	switch c.Simulation.FaceKind {
	case FaceKindInt, FaceKindFloat, FaceKindString:
	default:
		return fmt.Errorf("%w: face_kind %q (want int, float or string)", ErrInvalidConfig, c.Simulation.FaceKind)
	}
	if c.Simulation.Rolls < 1 {
		return fmt.Errorf("%w: rolls must be positive, got %d", ErrInvalidConfig, c.Simulation.Rolls)
	}
	if c.Simulation.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative", ErrInvalidConfig)
	}
	if _, err := game.ParseLayout(c.Simulation.Layout); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := report.ParseFormat(c.Simulation.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if len(c.Dice) == 0 {
		return fmt.Errorf("%w: no dice defined", ErrInvalidConfig)
	}
	for i, d := range c.Dice {
		if len(d.Faces) == 0 {
			return fmt.Errorf("%w: die %d (%s) has no faces", ErrInvalidConfig, i, d.Name)
		}
		if d.Copies < 0 {
			return fmt.Errorf("%w: die %d (%s) has negative copies", ErrInvalidConfig, i, d.Name)
		}
	}
	return nil
}

// ResolvePath interprets p relative to the config file's directory.
func (c *Config) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) || c.baseDir == "" {
		return p
	}
	return filepath.Join(c.baseDir, p)
}

// TotalDice counts dice after expanding copies.
func (c *Config) TotalDice() int {
	n := 0
	for _, d := range c.Dice {
		n += max(d.Copies, 1)
	}
	return n
}
