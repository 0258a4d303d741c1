package analyzer

import (
	"cmp"
	"fmt"
	"strconv"
)

// FaceCountTable has one row per roll and one column per face.
type FaceCountTable[F cmp.Ordered] struct {
	Faces  []F
	Counts [][]int
}

// Shape returns rolls x faces.
func (t *FaceCountTable[F]) Shape() (rows, cols int) {
	return len(t.Counts), len(t.Faces)
}

// Count returns how many dice showed face on the given roll.
func (t *FaceCountTable[F]) Count(roll int, face F) int {
	for i, f := range t.Faces {
		if f == face {
			return t.Counts[roll][i]
		}
	}
	return 0
}

// Totals sums each face column over all rolls.
func (t *FaceCountTable[F]) Totals() []int {
	totals := make([]int, len(t.Faces))
	for _, row := range t.Counts {
		for i, n := range row {
			totals[i] += n
		}
	}
	return totals
}

func (t *FaceCountTable[F]) Header() []string {
	header := make([]string, 0, len(t.Faces)+1)
	header = append(header, "roll")
	for _, f := range t.Faces {
		header = append(header, fmt.Sprint(f))
	}
	return header
}

func (t *FaceCountTable[F]) Records() [][]string {
	records := make([][]string, len(t.Counts))
	for r, row := range t.Counts {
		rec := make([]string, 0, len(row)+1)
		rec = append(rec, strconv.Itoa(r))
		for _, n := range row {
			rec = append(rec, strconv.Itoa(n))
		}
		records[r] = rec
	}
	return records
}

// Kind tells combination tables from permutation tables.
type Kind string

const (
	KindCombination Kind = "combination"
	KindPermutation Kind = "permutation"
)

// ComboRow is one distinct outcome key and how many rolls produced it.
type ComboRow[F cmp.Ordered] struct {
	Key   []F
	Count int
}

// ComboTable lists distinct keys ordered by count descending, then key.
type ComboTable[F cmp.Ordered] struct {
	Kind  Kind
	Width int
	Rows  []ComboRow[F]
}

// Shape counts only the count column; the key slots identify rows.
func (t *ComboTable[F]) Shape() (rows, cols int) {
	return len(t.Rows), 1
}

// Total sums the counts, which equals the number of rolls analyzed.
func (t *ComboTable[F]) Total() int {
	total := 0
	for _, row := range t.Rows {
		total += row.Count
	}
	return total
}

func (t *ComboTable[F]) Header() []string {
	header := make([]string, 0, t.Width+1)
	for i := 0; i < t.Width; i++ {
		header = append(header, "slot_"+strconv.Itoa(i))
	}
	return append(header, "count")
}

func (t *ComboTable[F]) Records() [][]string {
	records := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rec := make([]string, 0, len(row.Key)+1)
		for _, v := range row.Key {
			rec = append(rec, fmt.Sprint(v))
		}
		records[i] = append(rec, strconv.Itoa(row.Count))
	}
	return records
}
