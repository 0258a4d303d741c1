package die

import (
	"errors"
	"math"
	"testing"
)

// seqSource replays fixed draws, wrapping around when exhausted.
type seqSource struct {
	vals []float64
	pos  int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	return v
}

func TestNewDefaults(t *testing.T) {
	d, err := New([]int{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	snap := d.Snapshot()
	if len(snap) != 6 {
		t.Fatalf("Snapshot has %d faces, want 6", len(snap))
	}
	for i, fw := range snap {
		if fw.Face != i+1 {
			t.Errorf("face %d = %d, want %d (insertion order)", i, fw.Face, i+1)
		}
		if fw.Weight != DefaultWeight {
			t.Errorf("weight of %d = %v, want %v", fw.Face, fw.Weight, DefaultWeight)
		}
	}
}

func TestNewRejectsBadFaces(t *testing.T) {
	tests := []struct {
		name  string
		faces []float64
		want  error
	}{
		{"empty", nil, ErrInvalidInput},
		{"nan", []float64{1, math.NaN()}, ErrInvalidInput},
		{"duplicate", []float64{1, 2, 2}, ErrDuplicateFace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.faces)
			if !errors.Is(err, tt.want) {
				t.Errorf("New(%v) error = %v, want %v", tt.faces, err, tt.want)
			}
		})
	}

	if _, err := New([]string{"H", "T", "H"}); !errors.Is(err, ErrDuplicateFace) {
		t.Errorf("duplicate string faces: error = %v, want %v", err, ErrDuplicateFace)
	}
}

func TestNewCopiesFaces(t *testing.T) {
	faces := []string{"H", "T"}
	d, err := New(faces)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	faces[0] = "X"

	if got := d.Faces(); got[0] != "H" {
		t.Errorf("die faces changed with caller slice: %v", got)
	}
}

func TestSetWeight(t *testing.T) {
	d, _ := New([]int{1, 2, 3, 4, 5, 6})

	if err := d.SetWeight(1, 2); err != nil {
		t.Fatalf("SetWeight returned error: %v", err)
	}

	for _, fw := range d.Snapshot() {
		want := 1.0
		if fw.Face == 1 {
			want = 2.0
		}
		if fw.Weight != want {
			t.Errorf("weight of %d = %v, want %v", fw.Face, fw.Weight, want)
		}
	}
}

func TestSetWeightErrors(t *testing.T) {
	d, _ := New([]string{"H", "T"})

	tests := []struct {
		name   string
		face   string
		weight float64
		want   error
	}{
		{"unknown face", "X", 1, ErrUnknownFace},
		{"negative", "H", -1, ErrInvalidWeight},
		{"nan", "H", math.NaN(), ErrInvalidWeight},
		{"inf", "T", math.Inf(1), ErrInvalidWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := d.SetWeight(tt.face, tt.weight); !errors.Is(err, tt.want) {
				t.Errorf("SetWeight(%q, %v) error = %v, want %v", tt.face, tt.weight, err, tt.want)
			}
		})
	}

	// Failed updates must leave the table untouched
	for _, fw := range d.Snapshot() {
		if fw.Weight != DefaultWeight {
			t.Errorf("weight of %s = %v after failed updates, want %v", fw.Face, fw.Weight, DefaultWeight)
		}
	}
}

func TestWeight(t *testing.T) {
	d, _ := New([]string{"H", "T"})
	_ = d.SetWeight("H", 5)

	w, err := d.Weight("H")
	if err != nil || w != 5 {
		t.Errorf("Weight(H) = %v, %v; want 5, nil", w, err)
	}
	if _, err := d.Weight("X"); !errors.Is(err, ErrUnknownFace) {
		t.Errorf("Weight(X) error = %v, want %v", err, ErrUnknownFace)
	}
}

func TestRollRange(t *testing.T) {
	d, _ := New([]int{1, 2, 3, 4, 5, 6})

	for i := 0; i < 100; i++ {
		out, err := d.Roll(10)
		if err != nil {
			t.Fatalf("Roll returned error: %v", err)
		}
		if len(out) != 10 {
			t.Fatalf("Roll(10) returned %d values", len(out))
		}
		for _, v := range out {
			if v < 1 || v > 6 {
				t.Errorf("Roll produced %d, expected 1-6", v)
			}
		}
	}
}

func TestRollInvalidCount(t *testing.T) {
	d, _ := New([]int{1, 2})

	for _, n := range []int{0, -3} {
		if _, err := d.Roll(n); !errors.Is(err, ErrInvalidCount) {
			t.Errorf("Roll(%d) error = %v, want %v", n, err, ErrInvalidCount)
		}
	}
}

func TestRollUsesCumulativeWeights(t *testing.T) {
	d, _ := New([]string{"A", "B", "C"})
	_ = d.SetWeight("A", 1)
	_ = d.SetWeight("B", 0)
	_ = d.SetWeight("C", 3)
	// total 4, running totals [1 1 4]
	d.SetSource(&seqSource{vals: []float64{0, 0.2, 0.25, 0.5, 0.999}})

	got, err := d.Roll(5)
	if err != nil {
		t.Fatalf("Roll returned error: %v", err)
	}
	want := []string{"A", "A", "C", "C", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("draw %d = %s, want %s (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestRollAfterWeightChange(t *testing.T) {
	d, _ := New([]string{"H", "T"})
	d.SetSource(&seqSource{vals: []float64{0.4}})

	first, _ := d.Roll(1)
	if first[0] != "H" {
		t.Fatalf("fair draw at 0.4 = %s, want H", first[0])
	}

	// Moving all weight to T must invalidate the cached totals
	_ = d.SetWeight("H", 0)
	second, _ := d.Roll(1)
	if second[0] != "T" {
		t.Errorf("draw after reweight = %s, want T", second[0])
	}
}

func TestRollZeroWeightNeverDrawn(t *testing.T) {
	d, _ := New([]int{1, 2, 3})
	_ = d.SetWeight(2, 0)
	d.SetSource(NewSource(7))

	out, _ := d.Roll(2000)
	for _, v := range out {
		if v == 2 {
			t.Fatal("face with zero weight was rolled")
		}
	}
}

func TestRollAllZeroWeights(t *testing.T) {
	d, _ := New([]string{"H", "T"})
	_ = d.SetWeight("H", 0)
	_ = d.SetWeight("T", 0)

	if _, err := d.Roll(1); !errors.Is(err, ErrNoWeight) {
		t.Errorf("Roll error = %v, want %v", err, ErrNoWeight)
	}
}

func TestRollBiasedDistribution(t *testing.T) {
	d, _ := New([]string{"H", "T"})
	_ = d.SetWeight("H", 9)
	d.SetSource(NewSource(42))

	out, _ := d.Roll(10000)
	heads := 0
	for _, v := range out {
		if v == "H" {
			heads++
		}
	}
	// Expect ~9000; the band is wide enough to never flake
	if heads < 8700 || heads > 9300 {
		t.Errorf("heads = %d of 10000, expected about 9000", heads)
	}
}

func TestSeededRollsReproducible(t *testing.T) {
	a, _ := New([]int{1, 2, 3, 4, 5, 6})
	b, _ := New([]int{1, 2, 3, 4, 5, 6})
	a.SetSource(NewSource(99))
	b.SetSource(NewSource(99))

	ra, _ := a.Roll(50)
	rb, _ := b.Roll(50)
	for i := range ra {
		if ra[i] != rb[i] {
			t.Fatalf("seeded rolls diverged at %d: %d vs %d", i, ra[i], rb[i])
		}
	}
}

func TestParseWeight(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"2", 2, false},
		{" 0.125 ", 0.125, false},
		{"1e-3", 0.001, false},
		{"0", 0, false},
		{"heavy", 0, true},
		{"", 0, true},
		{"-1", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWeight(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidWeight) {
					t.Errorf("ParseWeight(%q) error = %v, want %v", tt.input, err, ErrInvalidWeight)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseWeight(%q) = %v, %v; want %v", tt.input, got, err, tt.want)
			}
		})
	}
}
