// Package die implements weighted dice: a fixed, ordered set of unique faces,
// each carrying a mutable weight proportional to its chance of being rolled.
package die

import (
	"cmp"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// DefaultWeight is the weight every face starts with.
const DefaultWeight = 1.0

// FaceWeight pairs a face with its current weight.
type FaceWeight[F cmp.Ordered] struct {
	Face   F
	Weight float64
}

// Die is a weighted die. It is safe for concurrent use; callers may keep
// adjusting weights while the die is shared with games.
type Die[F cmp.Ordered] struct {
	mu      sync.RWMutex
	faces   []F
	index   map[F]int
	weights []float64

	// cumulative is rebuilt on the next roll after any weight change.
	cumulative []float64

	rng RandomSource
}

// New creates a die with the given faces, all weighted DefaultWeight.
func New[F cmp.Ordered](faces []F) (*Die[F], error) {
	if len(faces) == 0 {
		return nil, fmt.Errorf("%w: no faces", ErrInvalidInput)
	}

	index := make(map[F]int, len(faces))
	for i, f := range faces {
		if f != f { // NaN never equals itself and cannot be looked up
			return nil, fmt.Errorf("%w: face %d is NaN", ErrInvalidInput, i)
		}
		if _, exists := index[f]; exists {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateFace, f)
		}
		index[f] = i
	}

	weights := make([]float64, len(faces))
	for i := range weights {
		weights[i] = DefaultWeight
	}

	return &Die[F]{
		faces:   append([]F(nil), faces...),
		index:   index,
		weights: weights,
		rng:     NewRandomSource(),
	}, nil
}

// SetSource replaces the die's random source. Dice sharing one seeded source
// produce reproducible games as long as they are rolled in the same order.
func (d *Die[F]) SetSource(src RandomSource) {
	if src == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rng = src
}

// SetWeight overwrites the weight of one face.
func (d *Die[F]) SetWeight(face F, weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		return fmt.Errorf("%w: %v for face %v", ErrInvalidWeight, weight, face)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	i, ok := d.index[face]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownFace, face)
	}
	d.weights[i] = weight
	d.cumulative = nil
	return nil
}

// Weight returns the current weight of a face.
func (d *Die[F]) Weight(face F) (float64, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	i, ok := d.index[face]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownFace, face)
	}
	return d.weights[i], nil
}

// Roll draws count faces with replacement. Each draw picks face f with
// probability weight(f) / total weight.
func (d *Die[F]) Roll(count int) ([]F, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cumulative == nil {
		d.rebuild()
	}
	total := d.cumulative[len(d.cumulative)-1]
	if total <= 0 {
		return nil, ErrNoWeight
	}

	out := make([]F, count)
	for n := range out {
		out[n] = d.faces[d.pick(d.rng.Float64()*total)]
	}
	return out, nil
}

// rebuild recomputes the running weight totals. Caller holds the write lock.
func (d *Die[F]) rebuild() {
	cumulative := make([]float64, len(d.weights))
	sum := 0.0
	for i, w := range d.weights {
		sum += w
		cumulative[i] = sum
	}
	d.cumulative = cumulative
}

// pick returns the first face whose running total exceeds u.
// Zero-weight faces share a total with their predecessor and are never picked.
func (d *Die[F]) pick(u float64) int {
	i := sort.Search(len(d.cumulative), func(i int) bool {
		return d.cumulative[i] > u
	})
	if i == len(d.cumulative) {
		// u landed on the total through rounding; take the last weighted face
		for i = len(d.weights) - 1; i > 0 && d.weights[i] == 0; i-- {
		}
	}
	return i
}

// Snapshot returns the faces and their weights in face order.
func (d *Die[F]) Snapshot() []FaceWeight[F] {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]FaceWeight[F], len(d.faces))
	for i, f := range d.faces {
		out[i] = FaceWeight[F]{Face: f, Weight: d.weights[i]}
	}
	return out
}

// Faces returns a copy of the face list in construction order.
func (d *Die[F]) Faces() []F {
	return append([]F(nil), d.faces...)
}

// Len returns the number of faces.
func (d *Die[F]) Len() int {
	return len(d.faces)
}

// ParseWeight converts a textual weight such as "2", "0.125" or "1e-3".
func ParseWeight(s string) (float64, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidWeight, s)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeight, s)
	}
	return w, nil
}
