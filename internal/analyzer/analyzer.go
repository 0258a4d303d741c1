// Package analyzer derives jackpot, face frequency, combination and
// permutation statistics from a played game.
package analyzer

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/lawnchairsociety/dicesim/internal/game"
)

// ErrNotAGame is returned when an analyzer is built without a game.
var ErrNotAGame = errors.New("analyzer requires a game")

// Analyzer is a read-only snapshot of one play of a game. Replaying the game
// or changing its dice afterwards does not affect an existing analyzer.
type Analyzer[F cmp.Ordered] struct {
	runID    uuid.UUID
	outcomes [][]F
	numDice  int
	faces    []F
}

// New snapshots the latest outcome table of g.
func New[F cmp.Ordered](g *game.Game[F]) (*Analyzer[F], error) {
	if g == nil {
		return nil, ErrNotAGame
	}

	outcomes, err := g.Outcomes()
	if err != nil {
		return nil, fmt.Errorf("analyzing game: %w", err)
	}

	return &Analyzer[F]{
		runID:    g.RunID(),
		outcomes: outcomes,
		numDice:  g.NumDice(),
		faces:    g.Faces(),
	}, nil
}

// RunID identifies the play this analyzer was built from.
func (a *Analyzer[F]) RunID() uuid.UUID { return a.runID }

// Rolls returns the number of rolls analyzed.
func (a *Analyzer[F]) Rolls() int { return len(a.outcomes) }

// NumDice returns the number of dice per roll.
func (a *Analyzer[F]) NumDice() int { return a.numDice }

// Faces returns the face labels used for frequency tables.
func (a *Analyzer[F]) Faces() []F { return append([]F(nil), a.faces...) }

// JackpotCount returns how many rolls had every die show the same face.
// With a single die every roll counts.
func (a *Analyzer[F]) JackpotCount() int {
	return len(a.JackpotRolls())
}

// JackpotRolls returns the indices of the jackpot rolls in roll order.
func (a *Analyzer[F]) JackpotRolls() []int {
	rolls := []int{}
	for r, row := range a.outcomes {
		if isJackpot(row) {
			rolls = append(rolls, r)
		}
	}
	return rolls
}

func isJackpot[F cmp.Ordered](row []F) bool {
	if len(row) == 0 {
		return false
	}
	for _, v := range row[1:] {
		if v != row[0] {
			return false
		}
	}
	return true
}

// FaceCounts counts, for every roll, how many dice showed each face.
func (a *Analyzer[F]) FaceCounts() *FaceCountTable[F] {
	column := make(map[F]int, len(a.faces))
	for i, f := range a.faces {
		column[f] = i
	}

	counts := make([][]int, len(a.outcomes))
	for r, row := range a.outcomes {
		c := make([]int, len(a.faces))
		for _, v := range row {
			if i, ok := column[v]; ok {
				c[i]++
			}
		}
		counts[r] = c
	}

	return &FaceCountTable[F]{Faces: a.Faces(), Counts: counts}
}

// ComboCount groups rolls by their outcomes regardless of which die showed what.
func (a *Analyzer[F]) ComboCount() *ComboTable[F] {
	keys := make([][]F, len(a.outcomes))
	for r, row := range a.outcomes {
		k := append([]F(nil), row...)
		slices.Sort(k)
		keys[r] = k
	}
	return countKeys(KindCombination, keys, a.numDice)
}

// PermCount groups rolls whose outcomes match die by die.
func (a *Analyzer[F]) PermCount() *ComboTable[F] {
	keys := make([][]F, len(a.outcomes))
	for r, row := range a.outcomes {
		keys[r] = append([]F(nil), row...)
	}
	return countKeys(KindPermutation, keys, a.numDice)
}

// countKeys sorts keys so equal ones are adjacent, counts each run and
// orders the groups by count descending, then key ascending.
func countKeys[F cmp.Ordered](kind Kind, keys [][]F, width int) *ComboTable[F] {
	slices.SortFunc(keys, slices.Compare[[]F])

	var rows []ComboRow[F]
	for i := 0; i < len(keys); {
		j := i + 1
		for j < len(keys) && slices.Equal(keys[i], keys[j]) {
			j++
		}
		rows = append(rows, ComboRow[F]{Key: keys[i], Count: j - i})
		i = j
	}

	// Stable keeps the ascending key order among equal counts
	slices.SortStableFunc(rows, func(x, y ComboRow[F]) int {
		return cmp.Compare(y.Count, x.Count)
	})

	return &ComboTable[F]{Kind: kind, Width: width, Rows: rows}
}
