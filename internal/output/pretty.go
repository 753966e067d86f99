// internal/output/pretty.go
package output

import (
	"fmt"
	"io"
	"strings"

	"seqcomp-core/validate"
	"seqcomp/internal/report"
)

const rule = 70

// WritePretty renders the human-readable composition report: the per-window
// table, totals with percentages, position lookups, and the deviation
// explanation.
func WritePretty(w io.Writer, r *report.Report) error {
	var b strings.Builder
	line := strings.Repeat("=", rule)
	thin := strings.Repeat("-", rule)

	fmt.Fprintf(&b, "%s\n", line)
	fmt.Fprintf(&b, "NUCLEOTIDE ANALYSIS BY WINDOW\n")
	if r.SequenceID != "" {
		fmt.Fprintf(&b, "Sequence: %s\n", r.SequenceID)
	}
	fmt.Fprintf(&b, "Total sequence length: %d bp\n", r.Length)
	fmt.Fprintf(&b, "Window size: %d bp\n", r.WindowSize)
	fmt.Fprintf(&b, "Number of windows: %d\n", len(r.Rows))
	fmt.Fprintf(&b, "%s\n\n", line)

	fmt.Fprintf(&b, "%-18s", "Position")
	for _, s := range r.Symbols {
		fmt.Fprintf(&b, "%-8s", s)
	}
	fmt.Fprintf(&b, "%-8s\n", "Total")
	fmt.Fprintf(&b, "%s\n", thin)
	for _, row := range r.Rows {
		fmt.Fprintf(&b, "W %-4d (%-7d): ", row.Index+1, row.Offset)
		for _, s := range r.Symbols {
			fmt.Fprintf(&b, "%-8d", row.Counts[s])
		}
		fmt.Fprintf(&b, "%-8d\n", row.Total)
	}
	fmt.Fprintf(&b, "%s\n\n", thin)

	fmt.Fprintf(&b, "Totals:\n")
	for _, s := range r.Symbols {
		fmt.Fprintf(&b, "  %s: %8d (%5.2f%%)\n", s, r.Totals[s], r.Percent[s])
	}
	fmt.Fprintf(&b, "  Total: %d\n\n", r.Length)

	if len(r.Lookups) > 0 || r.RCExcerpt != nil {
		fmt.Fprintf(&b, "Position lookups:\n")
		for _, lk := range r.Lookups {
			strand := "forward"
			if lk.Strand == "-" {
				strand = "reverse complement"
			}
			if !lk.Found {
				fmt.Fprintf(&b, "  letter %d (%s): beyond sequence end\n", lk.Position, strand)
				continue
			}
			fmt.Fprintf(&b, "  letter %d (%s): %s\n", lk.Position, strand, lk.Symbol)
		}
		if r.RCExcerpt != nil {
			fmt.Fprintf(&b, "  reverse complement %d-%d: %s\n", r.RCExcerpt.From, r.RCExcerpt.To, r.RCExcerpt.Seq)
		}
		fmt.Fprintf(&b, "\n")
	}

	fmt.Fprintf(&b, "%s\n", line)
	fmt.Fprintf(&b, "WINDOWS WHOSE A+C+G+T SUM DIFFERS FROM %d\n", r.WindowSize)
	fmt.Fprintf(&b, "%s\n", line)
	if len(r.Deviations) == 0 {
		fmt.Fprintf(&b, "None: every window sums to the expected %d.\n", r.WindowSize)
	} else {
		for _, d := range r.Deviations {
			fmt.Fprintf(&b, "  Window %d (offset %d): sum = %d\n", d.Index+1, d.Offset, d.Observed)
			switch {
			case d.Class == validate.ExpectedTail:
				fmt.Fprintf(&b, "    -> last window holds the %d remaining bases; expected when the\n", d.Width)
				fmt.Fprintf(&b, "       length is not divisible by %d\n", r.WindowSize)
			default:
				fmt.Fprintf(&b, "    -> %d ambiguous base(s) excluded from the A/C/G/T sum\n", d.Ambiguous)
			}
		}
	}

	fmt.Fprintf(&b, "\n%s\n", line)
	fmt.Fprintf(&b, "SUMMARY\n")
	fmt.Fprintf(&b, "%s\n", line)
	fmt.Fprintf(&b, "  Complete windows: %d\n", r.Summary.CompleteWindows)
	fmt.Fprintf(&b, "  Remainder bases:  %d\n", r.Summary.Remainder)
	fmt.Fprintf(&b, "  Deviations:       %d (%d expected tail, %d anomalous)\n",
		r.Summary.Deviations, r.Summary.ExpectedTails, r.Summary.Anomalies)

	_, err := io.WriteString(w, b.String())
	return err
}
