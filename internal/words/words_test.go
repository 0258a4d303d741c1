package words

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

const list = `aa
cab
BAD

dab
`

func TestParse(t *testing.T) {
	d, err := Parse(strings.NewReader(list))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if d.Len() != 4 {
		t.Errorf("Len() = %d, want 4", d.Len())
	}

	tests := []struct {
		word string
		want bool
	}{
		{"CAB", true},
		{"cab", true},
		{"Bad", true},
		{"abc", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := d.Contains(tt.word); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestMatch(t *testing.T) {
	d, _ := Parse(strings.NewReader(list))

	seqs := [][]string{
		{"C", "A", "B"},
		{"B", "A", "D"},
		{"A", "B", "C"},
		{"C", "A", "B"},
		{"A", "A"},
	}
	got := d.Match(seqs)
	want := []string{"AA", "BAD", "CAB"}
	if !slices.Equal(got, want) {
		t.Errorf("Match() = %v, want %v", got, want)
	}

	if got := d.Match(nil); len(got) != 0 {
		t.Errorf("Match(nil) = %v, want empty", got)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(list), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !d.Contains("dab") {
		t.Error("loaded dictionary is missing dab")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "none.txt")); err == nil {
		t.Error("Load of missing file returned no error")
	}
}
