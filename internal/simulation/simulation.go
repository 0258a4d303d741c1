// Package simulation turns a config into dice and games.
package simulation

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/lawnchairsociety/dicesim/internal/config"
	"github.com/lawnchairsociety/dicesim/internal/die"
	"github.com/lawnchairsociety/dicesim/internal/game"
	"github.com/lawnchairsociety/dicesim/internal/logger"
	"github.com/lawnchairsociety/dicesim/internal/weights"
)

// ParseFunc converts a textual face into a face value.
type ParseFunc[F cmp.Ordered] func(string) (F, error)

// ParseInt parses integer faces.
func ParseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// ParseFloat parses real-valued faces.
func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// ParseString keeps faces as written.
func ParseString(s string) (string, error) {
	return s, nil
}

// Source returns a random source for seed. A zero seed is replaced by a
// time-based one; the seed actually used is returned for logging.
func Source(seed uint64) (die.RandomSource, uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return die.NewSource(seed), seed
}

// ParseFaces converts textual faces, reporting the first one that fails.
func ParseFaces[F cmp.Ordered](raw []string, parse ParseFunc[F]) ([]F, error) {
	faces := make([]F, len(raw))
	for i, s := range raw {
		f, err := parse(s)
		if err != nil {
			return nil, fmt.Errorf("%w: face %q: %v", die.ErrInvalidInput, s, err)
		}
		faces[i] = f
	}
	return faces, nil
}

// BuildDie creates one configured die: faces, weights file, then inline weights.
func BuildDie[F cmp.Ordered](cfg *config.Config, dc config.DieConfig, parse ParseFunc[F]) (*die.Die[F], error) {
	faces, err := ParseFaces(dc.Faces, parse)
	if err != nil {
		return nil, err
	}
	d, err := die.New(faces)
	if err != nil {
		return nil, err
	}

	if dc.WeightsFile != "" {
		entries, err := weights.Load(cfg.ResolvePath(dc.WeightsFile))
		if err != nil {
			return nil, err
		}
		if dc.Normalize {
			entries = weights.Normalize(entries)
		}
		if err := weights.Apply(d, entries, parse); err != nil {
			return nil, err
		}
		logger.Debug("Weights file applied", "die", dc.Name, "path", dc.WeightsFile, "entries", len(entries))
	}

	// Sorted so failures are reported deterministically
	keys := make([]string, 0, len(dc.Weights))
	for k := range dc.Weights {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		face, err := parse(k)
		if err != nil {
			return nil, fmt.Errorf("%w: weight face %q: %v", die.ErrInvalidInput, k, err)
		}
		w, err := die.ParseWeight(dc.Weights[k])
		if err != nil {
			return nil, err
		}
		if err := d.SetWeight(face, w); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// BuildDice creates every configured die, all drawing from src. A die with
// copies > 1 appears that many times as the same instance.
func BuildDice[F cmp.Ordered](cfg *config.Config, parse ParseFunc[F], src die.RandomSource) ([]*die.Die[F], error) {
	dice := make([]*die.Die[F], 0, cfg.TotalDice())
	for i, dc := range cfg.Dice {
		d, err := BuildDie(cfg, dc, parse)
		if err != nil {
			return nil, fmt.Errorf("die %d (%s): %w", i, dc.Name, err)
		}
		d.SetSource(src)
		for n := 0; n < max(dc.Copies, 1); n++ {
			dice = append(dice, d)
		}
	}
	return dice, nil
}

// BuildGame creates the configured dice and binds them into an unplayed game.
func BuildGame[F cmp.Ordered](cfg *config.Config, parse ParseFunc[F], src die.RandomSource) (*game.Game[F], error) {
	dice, err := BuildDice(cfg, parse, src)
	if err != nil {
		return nil, err
	}
	return game.New(dice)
}
