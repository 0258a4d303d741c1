// Package game rolls a fixed set of weighted dice together and keeps the
// outcome table of the most recent play.
package game

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/lawnchairsociety/dicesim/internal/die"
	"github.com/lawnchairsociety/dicesim/internal/logger"
)

// State is the play lifecycle of a game.
type State int

const (
	StateUnplayed State = iota
	StatePlayed
)

func (s State) String() string {
	switch s {
	case StatePlayed:
		return "played"
	default:
		return "unplayed"
	}
}

// Game is an ordered set of dice sharing one face set.
// Dice are shared with the caller, who may keep changing weights between plays.
type Game[F cmp.Ordered] struct {
	mu    sync.RWMutex
	dice  []*die.Die[F]
	faces []F

	state    State
	runID    uuid.UUID
	outcomes [][]F // rows = rolls, columns = dice
}

// New binds dice into an unplayed game. Every die must expose the same faces.
func New[F cmp.Ordered](dice []*die.Die[F]) (*Game[F], error) {
	if len(dice) == 0 {
		return nil, fmt.Errorf("%w: no dice", ErrInvalidDice)
	}
	for i, d := range dice {
		if d == nil {
			return nil, fmt.Errorf("%w: die %d is nil", ErrInvalidDice, i)
		}
	}

	faces := dice[0].Faces()
	want := sortedCopy(faces)
	for i, d := range dice[1:] {
		if !slices.Equal(want, sortedCopy(d.Faces())) {
			return nil, fmt.Errorf("%w: die %d has faces %v, die 0 has %v", ErrFaceMismatch, i+1, d.Faces(), faces)
		}
	}

	return &Game[F]{
		dice:  append([]*die.Die[F](nil), dice...),
		faces: faces,
	}, nil
}

func sortedCopy[F cmp.Ordered](faces []F) []F {
	s := append([]F(nil), faces...)
	slices.Sort(s)
	return s
}

// Play rolls every die rollCount times and replaces the outcome table.
// On error the previous table, if any, is kept.
func (g *Game[F]) Play(rollCount int) error {
	if rollCount < 1 {
		return fmt.Errorf("%w: got %d", die.ErrInvalidCount, rollCount)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	outcomes := make([][]F, rollCount)
	for r := range outcomes {
		outcomes[r] = make([]F, len(g.dice))
	}

	for i, d := range g.dice {
		rolls, err := d.Roll(rollCount)
		if err != nil {
			return fmt.Errorf("rolling die %d: %w", i, err)
		}
		for r, face := range rolls {
			outcomes[r][i] = face
		}
	}

	g.outcomes = outcomes
	g.state = StatePlayed
	g.runID = uuid.New()

	logger.Debug("Game played", "run_id", g.runID.String(), "dice", len(g.dice), "rolls", rollCount)
	return nil
}

// Results returns a copy of the latest outcomes in the requested layout.
func (g *Game[F]) Results(layout Layout) (Table, error) {
	switch layout {
	case LayoutWide:
		t, err := g.Wide()
		if err != nil {
			return nil, err
		}
		return t, nil
	case LayoutNarrow:
		t, err := g.Narrow()
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, fmt.Errorf("%w: got %q", ErrInvalidLayout, layout)
	}
}

// Wide returns the outcome table as rolls x dice.
func (g *Game[F]) Wide() (*WideTable[F], error) {
	rows, err := g.Outcomes()
	if err != nil {
		return nil, err
	}
	return &WideTable[F]{Rows: rows}, nil
}

// Narrow returns the outcome table unpivoted: all rolls of die 0, then die 1, ...
func (g *Game[F]) Narrow() (*NarrowTable[F], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.state != StatePlayed {
		return nil, ErrNotPlayed
	}

	rows := make([]NarrowRow[F], 0, len(g.outcomes)*len(g.dice))
	for d := range g.dice {
		for r, row := range g.outcomes {
			rows = append(rows, NarrowRow[F]{Roll: r, Die: d, Outcome: row[d]})
		}
	}
	return &NarrowTable[F]{Rows: rows}, nil
}

// Outcomes returns a deep copy of the latest outcome table.
func (g *Game[F]) Outcomes() ([][]F, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.state != StatePlayed {
		return nil, ErrNotPlayed
	}

	out := make([][]F, len(g.outcomes))
	for r, row := range g.outcomes {
		out[r] = append([]F(nil), row...)
	}
	return out, nil
}

// State reports whether the game has been played.
func (g *Game[F]) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// RunID identifies the latest play. It is uuid.Nil before the first play.
func (g *Game[F]) RunID() uuid.UUID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.runID
}

// Rolls returns the number of rows in the latest outcome table.
func (g *Game[F]) Rolls() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.outcomes)
}

// Dice returns the game's dice in position order.
func (g *Game[F]) Dice() []*die.Die[F] {
	return append([]*die.Die[F](nil), g.dice...)
}

// NumDice returns the number of dice.
func (g *Game[F]) NumDice() int {
	return len(g.dice)
}

// Faces returns the face set in the first die's order.
func (g *Game[F]) Faces() []F {
	return append([]F(nil), g.faces...)
}
