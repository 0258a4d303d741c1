package main

import (
	"cmp"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/lawnchairsociety/dicesim/internal/config"
	"github.com/lawnchairsociety/dicesim/internal/die"
	"github.com/lawnchairsociety/dicesim/internal/simulation"
)

func runRoll(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("roll", flag.ContinueOnError)
	fs.SetOutput(out)

	faces := fs.String("faces", "1,2,3,4,5,6", "Comma-separated face values")
	kind := fs.String("kind", "", "Face kind: int, float or string (default: guessed from faces)")
	weightList := fs.String("weights", "", "Comma-separated face=weight pairs, e.g. '6=2,1=0.5'")
	count := fs.Int("count", 1, "Number of rolls")
	seed := fs.Uint64("seed", 0, "Random seed (0 = time based)")

	if err := parseFlags(fs, args); err != nil {
		return err
	}

	raw := splitList(*faces)
	weights, err := parsePairs(*weightList)
	if err != nil {
		return err
	}

	fk := config.FaceKind(*kind)
	if fk == "" {
		fk = guessKind(raw)
	}

	switch fk {
	case config.FaceKindInt:
		return rollOnce(out, raw, weights, *count, *seed, simulation.ParseInt)
	case config.FaceKindFloat:
		return rollOnce(out, raw, weights, *count, *seed, simulation.ParseFloat)
	case config.FaceKindString:
		return rollOnce(out, raw, weights, *count, *seed, simulation.ParseString)
	default:
		return fmt.Errorf("unknown face kind %q", fk)
	}
}

func rollOnce[F cmp.Ordered](out io.Writer, raw []string, weights map[string]string, count int, seed uint64,
	parse simulation.ParseFunc[F]) error {

	cfg := config.DefaultConfig()
	dc := config.DieConfig{Name: "adhoc", Faces: raw, Weights: weights}
	d, err := simulation.BuildDie(cfg, dc, parse)
	if err != nil {
		return err
	}
	src, _ := simulation.Source(seed)
	d.SetSource(src)

	rolls, err := d.Roll(count)
	if err != nil {
		return err
	}

	parts := make([]string, len(rolls))
	for i, r := range rolls {
		parts[i] = fmt.Sprint(r)
	}
	_, err = fmt.Fprintln(out, strings.Join(parts, " "))
	return err
}

// parseFlags treats -h as success and any other flag error as a usage error.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return errHelp
		}
		return errUsage
	}
	return nil
}

// guessKind picks the narrowest face kind every value parses as.
func guessKind(raw []string) config.FaceKind {
	if _, err := simulation.ParseFaces(raw, simulation.ParseInt); err == nil {
		return config.FaceKindInt
	}
	if _, err := simulation.ParseFaces(raw, simulation.ParseFloat); err == nil {
		return config.FaceKindFloat
	}
	return config.FaceKindString
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parsePairs reads "face=weight,face=weight".
func parsePairs(s string) (map[string]string, error) {
	pairs := make(map[string]string)
	for _, item := range splitList(s) {
		face, weight, ok := strings.Cut(item, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q is not face=weight", die.ErrInvalidWeight, item)
		}
		pairs[strings.TrimSpace(face)] = strings.TrimSpace(weight)
	}
	return pairs, nil
}
