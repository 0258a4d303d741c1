package main

import (
	"cmp"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/lawnchairsociety/dicesim/internal/analyzer"
	"github.com/lawnchairsociety/dicesim/internal/config"
	"github.com/lawnchairsociety/dicesim/internal/game"
	"github.com/lawnchairsociety/dicesim/internal/logger"
	"github.com/lawnchairsociety/dicesim/internal/report"
	"github.com/lawnchairsociety/dicesim/internal/simulation"
	"github.com/lawnchairsociety/dicesim/internal/words"
)

// gameOptions are the flags shared by every config-driven command.
type gameOptions struct {
	command string
	stat    string
	dict    string

	cfg    *config.Config
	layout game.Layout
	format report.Format
}

func runGame(command string, args []string, out io.Writer) error {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(out)

	configFile := fs.String("config", "", "Path to simulation config YAML file (default: two fair d6)")
	loggingConfig := fs.String("logging", "", "Path to logging config YAML file")
	rolls := fs.Int("rolls", 0, "Rolls per play (overrides config)")
	seed := fs.Uint64("seed", 0, "Random seed (overrides config; 0 = time based)")
	layout := fs.String("layout", "", "Results layout: wide or narrow (overrides config)")
	format := fs.String("format", "", "Output format: text or csv (overrides config)")
	limit := fs.Int("limit", -1, "Maximum table rows to print, 0 for all (overrides config)")

	opts := gameOptions{command: command}
	if command == "analyze" {
		fs.StringVar(&opts.stat, "stat", "all", "Statistic: all, jackpot, faces, combos or perms")
	}
	if command == "words" {
		fs.StringVar(&opts.dict, "dict", "", "Path to word list, one word per line (required)")
	}

	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if command == "words" && opts.dict == "" {
		fmt.Fprintln(out, "words requires -dict")
		return errUsage
	}

	logConfig, err := logger.LoadConfig(*loggingConfig)
	if err != nil {
		return err
	}
	closer, err := logger.Initialize(logConfig)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		return err
	}
	if *rolls != 0 {
		cfg.Simulation.Rolls = *rolls
	}
	if *seed != 0 {
		cfg.Simulation.Seed = *seed
	}
	if *layout != "" {
		cfg.Simulation.Layout = *layout
	}
	if *format != "" {
		cfg.Simulation.Format = *format
	}
	if *limit >= 0 {
		cfg.Simulation.Limit = *limit
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Validate has already accepted both values
	opts.cfg = cfg
	opts.layout, _ = game.ParseLayout(cfg.Simulation.Layout)
	opts.format, _ = report.ParseFormat(cfg.Simulation.Format)

	logger.Info("Simulation configured",
		"command", command,
		"config", *configFile,
		"face_kind", cfg.Simulation.FaceKind,
		"dice", cfg.TotalDice(),
		"rolls", cfg.Simulation.Rolls)

	switch cfg.Simulation.FaceKind {
	case config.FaceKindInt:
		return execute(opts, simulation.ParseInt, out)
	case config.FaceKindFloat:
		return execute(opts, simulation.ParseFloat, out)
	default:
		return execute(opts, simulation.ParseString, out)
	}
}

func execute[F cmp.Ordered](opts gameOptions, parse simulation.ParseFunc[F], out io.Writer) error {
	cfg := opts.cfg
	if opts.command == "show" {
		return showDice(opts, parse, out)
	}

	src, seed := simulation.Source(cfg.Simulation.Seed)
	g, err := simulation.BuildGame(cfg, parse, src)
	if err != nil {
		return err
	}
	if err := g.Play(cfg.Simulation.Rolls); err != nil {
		return err
	}
	logger.Info("Simulation complete", "run_id", g.RunID().String(), "seed", seed, "rolls", g.Rolls(), "dice", g.NumDice())

	if opts.format == report.FormatText {
		fmt.Fprintf(out, "=== %s ===\n", opts.command)
		fmt.Fprintf(out, "Played %s rolls of %d dice (seed %d, run %s)\n\n",
			humanize.Comma(int64(g.Rolls())), g.NumDice(), seed, g.RunID())
	}

	switch opts.command {
	case "play":
		table, err := g.Results(opts.layout)
		if err != nil {
			return err
		}
		return report.Render(out, table, opts.format, cfg.Simulation.Limit)
	case "analyze":
		a, err := analyzer.New(g)
		if err != nil {
			return err
		}
		return printAnalysis(opts, a, out)
	case "words":
		a, err := analyzer.New(g)
		if err != nil {
			return err
		}
		return printWords(opts, a, out)
	default:
		return fmt.Errorf("unknown command: %s", opts.command)
	}
}

func printAnalysis[F cmp.Ordered](opts gameOptions, a *analyzer.Analyzer[F], out io.Writer) error {
	limit := opts.cfg.Simulation.Limit
	text := opts.format == report.FormatText

	section := func(title string) {
		if text {
			fmt.Fprintf(out, "\n--- %s ---\n", title)
		}
	}

	switch opts.stat {
	case "all", "jackpot":
		jackpots := a.JackpotCount()
		if text {
			pct := 100 * float64(jackpots) / float64(a.Rolls())
			fmt.Fprintf(out, "Jackpots: %s of %s rolls (%.2f%%)\n",
				humanize.Comma(int64(jackpots)), humanize.Comma(int64(a.Rolls())), pct)
		} else {
			fmt.Fprintf(out, "jackpots,rolls\n%d,%d\n", jackpots, a.Rolls())
		}
		if opts.stat == "jackpot" {
			return nil
		}
	case "faces", "combos", "perms":
	default:
		return fmt.Errorf("unknown statistic %q (want all, jackpot, faces, combos or perms)", opts.stat)
	}

	if opts.stat == "all" || opts.stat == "faces" {
		section("Face counts per roll")
		if err := report.Render(out, a.FaceCounts(), opts.format, limit); err != nil {
			return err
		}
	}
	if opts.stat == "all" || opts.stat == "combos" {
		combos := a.ComboCount()
		section("Combinations (" + humanize.Comma(int64(len(combos.Rows))) + " distinct)")
		if err := report.Render(out, combos, opts.format, limit); err != nil {
			return err
		}
	}
	if opts.stat == "all" || opts.stat == "perms" {
		perms := a.PermCount()
		section("Permutations (" + humanize.Comma(int64(len(perms.Rows))) + " distinct)")
		if err := report.Render(out, perms, opts.format, limit); err != nil {
			return err
		}
	}
	return nil
}

func printWords[F cmp.Ordered](opts gameOptions, a *analyzer.Analyzer[F], out io.Writer) error {
	dict, err := words.Load(opts.dict)
	if err != nil {
		return err
	}

	perms := a.PermCount()
	seqs := make([][]string, len(perms.Rows))
	for i, row := range perms.Rows {
		seq := make([]string, len(row.Key))
		for j, v := range row.Key {
			seq[j] = fmt.Sprint(v)
		}
		seqs[i] = seq
	}

	found := dict.Match(seqs)
	logger.Info("Dictionary matched", "dictionary_words", dict.Len(), "permutations", len(seqs), "matches", len(found))

	if opts.format == report.FormatText {
		fmt.Fprintf(out, "%s of %s distinct permutations are words:\n",
			humanize.Comma(int64(len(found))), humanize.Comma(int64(len(seqs))))
	}
	return report.Render(out, wordTable(found), opts.format, opts.cfg.Simulation.Limit)
}

// wordTable renders a word list as a one-column table.
type wordTable []string

func (w wordTable) Header() []string { return []string{"word"} }

func (w wordTable) Records() [][]string {
	records := make([][]string, len(w))
	for i, word := range w {
		records[i] = []string{word}
	}
	return records
}

func showDice[F cmp.Ordered](opts gameOptions, parse simulation.ParseFunc[F], out io.Writer) error {
	cfg := opts.cfg
	for i, dc := range cfg.Dice {
		d, err := simulation.BuildDie(cfg, dc, parse)
		if err != nil {
			return fmt.Errorf("die %d (%s): %w", i, dc.Name, err)
		}

		if opts.format == report.FormatText {
			name := dc.Name
			if name == "" {
				name = "die " + strconv.Itoa(i)
			}
			fmt.Fprintf(out, "=== %s (x%d) ===\n", name, max(dc.Copies, 1))
		}
		if err := report.Render(out, newWeightTable(d.Snapshot()), opts.format, 0); err != nil {
			return err
		}
		if opts.format == report.FormatText {
			fmt.Fprintln(out)
		}
	}
	return nil
}
