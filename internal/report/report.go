// Package report renders result tables for the terminal or as CSV.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// ErrInvalidFormat is returned for an output format other than text or csv.
var ErrInvalidFormat = errors.New(`format must be "text" or "csv"`)

// Format selects how tables are written.
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
)

// ParseFormat accepts "text" or "csv" in any case; empty means text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FormatText):
		return FormatText, nil
	case string(FormatCSV):
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidFormat, s)
	}
}

// Table is anything with a header row and string records.
type Table interface {
	Header() []string
	Records() [][]string
}

// Render writes t to w. A positive limit caps the number of records; text
// output then notes how many rows were left out.
func Render(w io.Writer, t Table, format Format, limit int) error {
	records := t.Records()
	omitted := 0
	if limit > 0 && len(records) > limit {
		omitted = len(records) - limit
		records = records[:limit]
	}

	switch format {
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(t.Header()); err != nil {
			return err
		}
		if err := cw.WriteAll(records); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
		return nil

	case FormatText:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, strings.Join(t.Header(), "\t")+"\t")
		for _, rec := range records {
			fmt.Fprintln(tw, strings.Join(rec, "\t")+"\t")
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if omitted > 0 {
			_, err := fmt.Fprintf(w, "... %d more rows\n", omitted)
			return err
		}
		return nil

	default:
		return fmt.Errorf("%w: got %q", ErrInvalidFormat, format)
	}
}
