// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strings"

	"seqcomp/internal/report"
)

// WriteText prints one TSV row per window, then the whole-sequence sections
// as "# "-prefixed lines so the table stays machine-readable.
func WriteText(w io.Writer, r *report.Report, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader(r.Symbols)); err != nil {
			return err
		}
	}
	for _, row := range r.Rows {
		cols := make([]string, 0, 4+len(r.Symbols))
		cols = append(cols, fmt.Sprint(row.Index), fmt.Sprint(row.Offset), fmt.Sprint(row.Width))
		for _, s := range r.Symbols {
			cols = append(cols, fmt.Sprint(row.Counts[s]))
		}
		cols = append(cols, fmt.Sprint(row.Total))
		if _, err := fmt.Fprintln(w, strings.Join(cols, "\t")); err != nil {
			return err
		}
	}
	return writeSections(w, r, "# ")
}

func writeSections(w io.Writer, r *report.Report, prefix string) error {
	p := func(format string, a ...any) error {
		_, err := fmt.Fprintf(w, prefix+format+"\n", a...)
		return err
	}

	if err := p("sequence=%s length=%d window=%d", r.SequenceID, r.Length, r.WindowSize); err != nil {
		return err
	}
	for _, s := range r.Symbols {
		if err := p("total %s=%d (%.2f%%)", s, r.Totals[s], r.Percent[s]); err != nil {
			return err
		}
	}
	for _, lk := range r.Lookups {
		if !lk.Found {
			if err := p("letter %s%d: beyond sequence end", lk.Strand, lk.Position); err != nil {
				return err
			}
			continue
		}
		if err := p("letter %s%d=%s", lk.Strand, lk.Position, lk.Symbol); err != nil {
			return err
		}
	}
	if r.RCExcerpt != nil {
		if err := p("revcomp %d:%d=%s", r.RCExcerpt.From, r.RCExcerpt.To, r.RCExcerpt.Seq); err != nil {
			return err
		}
	}
	for _, d := range r.Deviations {
		if err := p("deviation window=%d offset=%d observed=%d expected=%d ambiguous=%d class=%s",
			d.Index, d.Offset, d.Observed, d.Expected, d.Ambiguous, d.Class); err != nil {
			return err
		}
	}
	return p("summary complete=%d remainder=%d deviations=%d expected_tails=%d anomalies=%d",
		r.Summary.CompleteWindows, r.Summary.Remainder,
		r.Summary.Deviations, r.Summary.ExpectedTails, r.Summary.Anomalies)
}
