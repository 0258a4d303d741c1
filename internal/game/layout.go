package game

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Layout selects the shape of a results table.
type Layout string

const (
	// LayoutWide is one row per roll and one column per die.
	LayoutWide Layout = "wide"
	// LayoutNarrow is one row per (roll, die) pair with a single outcome column.
	LayoutNarrow Layout = "narrow"
)

// ParseLayout accepts "wide" or "narrow" in any case. An empty string means wide.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(LayoutWide):
		return LayoutWide, nil
	case string(LayoutNarrow):
		return LayoutNarrow, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidLayout, s)
	}
}

// Table is the read-only view shared by both results layouts.
type Table interface {
	Shape() (rows, cols int)
	Header() []string
	Records() [][]string
}

// WideTable holds outcomes indexed by roll (row) and die position (column).
type WideTable[F cmp.Ordered] struct {
	Rows [][]F
}

// Shape returns rolls x dice.
func (t *WideTable[F]) Shape() (rows, cols int) {
	if len(t.Rows) == 0 {
		return 0, 0
	}
	return len(t.Rows), len(t.Rows[0])
}

// Header names the roll index column followed by one column per die.
func (t *WideTable[F]) Header() []string {
	_, cols := t.Shape()
	header := make([]string, 0, cols+1)
	header = append(header, "roll")
	for i := 0; i < cols; i++ {
		header = append(header, "die_"+strconv.Itoa(i))
	}
	return header
}

// Records renders every row with its roll index first.
func (t *WideTable[F]) Records() [][]string {
	records := make([][]string, len(t.Rows))
	for r, row := range t.Rows {
		rec := make([]string, 0, len(row)+1)
		rec = append(rec, strconv.Itoa(r))
		for _, v := range row {
			rec = append(rec, fmt.Sprint(v))
		}
		records[r] = rec
	}
	return records
}

// NarrowRow is one outcome keyed by roll and die.
type NarrowRow[F cmp.Ordered] struct {
	Roll    int
	Die     int
	Outcome F
}

// NarrowTable is the long-format view: rows ordered by die, then roll.
type NarrowTable[F cmp.Ordered] struct {
	Rows []NarrowRow[F]
}

// Shape counts only the outcome column; roll and die are keys.
func (t *NarrowTable[F]) Shape() (rows, cols int) {
	return len(t.Rows), 1
}

func (t *NarrowTable[F]) Header() []string {
	return []string{"roll", "die", "outcome"}
}

func (t *NarrowTable[F]) Records() [][]string {
	records := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		records[i] = []string{strconv.Itoa(row.Roll), strconv.Itoa(row.Die), fmt.Sprint(row.Outcome)}
	}
	return records
}
