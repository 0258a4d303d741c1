package main

import (
	"cmp"
	"fmt"
	"strconv"

	"github.com/lawnchairsociety/dicesim/internal/die"
)

// weightTable lists a die's faces with their weights and draw probabilities.
type weightTable[F cmp.Ordered] struct {
	rows  []die.FaceWeight[F]
	total float64
}

func newWeightTable[F cmp.Ordered](rows []die.FaceWeight[F]) weightTable[F] {
	total := 0.0
	for _, fw := range rows {
		total += fw.Weight
	}
	return weightTable[F]{rows: rows, total: total}
}

func (t weightTable[F]) Header() []string {
	return []string{"face", "weight", "probability"}
}

func (t weightTable[F]) Records() [][]string {
	records := make([][]string, len(t.rows))
	for i, fw := range t.rows {
		p := 0.0
		if t.total > 0 {
			p = fw.Weight / t.total
		}
		records[i] = []string{
			fmt.Sprint(fw.Face),
			strconv.FormatFloat(fw.Weight, 'g', -1, 64),
			strconv.FormatFloat(p, 'f', 4, 64),
		}
	}
	return records
}
