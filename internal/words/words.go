// Package words checks rolled letter sequences against a word list.
package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Dictionary is a case-insensitive set of words. It is not safe for
// concurrent use.
type Dictionary struct {
	words map[string]struct{}
	fold  cases.Caser
}

// Load reads a word list file with one word per line.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads one word per line. Blank lines are ignored.
func Parse(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{
		words: make(map[string]struct{}),
		fold:  cases.Fold(),
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		d.words[d.fold.String(w)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return d, nil
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Contains reports whether word is in the dictionary, ignoring case.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[d.fold.String(word)]
	return ok
}

// Match joins each sequence of faces into a word and returns the distinct
// dictionary words found, upper-cased and sorted.
func (d *Dictionary) Match(sequences [][]string) []string {
	upper := cases.Upper(language.Und)
	found := make(map[string]struct{})
	for _, seq := range sequences {
		w := strings.Join(seq, "")
		if d.Contains(w) {
			found[upper.String(w)] = struct{}{}
		}
	}

	out := make([]string, 0, len(found))
	for w := range found {
		out = append(out, w)
	}
	slices.Sort(out)
	return out
}
