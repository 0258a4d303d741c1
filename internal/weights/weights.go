// Package weights reads tabular face weight data, such as letter frequency
// counts, and applies it to dice.
//
// The format is one "face count" pair per line, separated by whitespace:
//
//	E 21912
//	T 16587
//	# comments and blank lines are skipped
package weights

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lawnchairsociety/dicesim/internal/die"
)

// Entry is one face label and its raw count.
type Entry struct {
	Face  string
	Count decimal.Decimal
}

// Weight returns the count as a float64 weight.
func (e Entry) Weight() float64 {
	return e.Count.InexactFloat64()
}

// Load reads a weight table from a file.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open weights file: %w", err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// Parse reads a weight table. Repeated faces are rejected, as are counts that
// are not non-negative numbers.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	seen := make(map[string]int)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: %w: want \"face count\", got %q", line, die.ErrInvalidInput, text)
		}

		count, err := decimal.NewFromString(fields[1])
		if err != nil || count.IsNegative() {
			return nil, fmt.Errorf("line %d: %w: %q", line, die.ErrInvalidWeight, fields[1])
		}
		if prev, ok := seen[fields[0]]; ok {
			return nil, fmt.Errorf("line %d: %w: %q already on line %d", line, die.ErrDuplicateFace, fields[0], prev)
		}
		seen[fields[0]] = line

		entries = append(entries, Entry{Face: fields[0], Count: count})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read weights: %w", err)
	}

	return entries, nil
}

// Normalize rescales counts so they sum to one. Entries are returned
// unchanged when the total is zero.
func Normalize(entries []Entry) []Entry {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Count)
	}
	if total.IsZero() {
		return append([]Entry(nil), entries...)
	}

	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = Entry{Face: e.Face, Count: e.Count.DivRound(total, 16)}
	}
	return out
}

// Apply sets each entry's weight on d. parse converts the textual face to
// the die's face type.
func Apply[F cmp.Ordered](d *die.Die[F], entries []Entry, parse func(string) (F, error)) error {
	for _, e := range entries {
		face, err := parse(e.Face)
		if err != nil {
			return fmt.Errorf("%w: face %q: %v", die.ErrInvalidInput, e.Face, err)
		}
		if err := d.SetWeight(face, e.Weight()); err != nil {
			return err
		}
	}
	return nil
}
