// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"github.com/samber/lo"

	"seqcomp-core/validate"
	"seqcomp/internal/report"
	"seqcomp/pkg/api"
)

// ToAPIReport converts a domain Report to the stable wire schema (v1).
func ToAPIReport(r *report.Report) api.ReportV1 {
	v := api.ReportV1{
		SequenceID: r.SequenceID,
		Length:     r.Length,
		WindowSize: r.WindowSize,
		Extended:   r.Extended,
		Totals:     r.Totals,
		Percent:    r.Percent,
		Windows: lo.Map(r.Rows, func(row report.Row, _ int) api.WindowV1 {
			return api.WindowV1{
				Index:  row.Index,
				Offset: row.Offset,
				Width:  row.Width,
				Counts: row.Counts,
				Total:  row.Total,
			}
		}),
		Lookups: lo.Map(r.Lookups, func(lk report.Lookup, _ int) api.LookupV1 {
			return api.LookupV1{Strand: lk.Strand, Position: lk.Position, Symbol: lk.Symbol, Found: lk.Found}
		}),
		Deviations: lo.Map(r.Deviations, func(d validate.Deviation, _ int) api.DeviationV1 {
			return api.DeviationV1{
				Index:     d.Index,
				Offset:    d.Offset,
				Width:     d.Width,
				Observed:  d.Observed,
				Expected:  d.Expected,
				Ambiguous: d.Ambiguous,
				Class:     string(d.Class),
			}
		}),
		Summary: api.SummaryV1{
			Length:          r.Summary.Length,
			WindowSize:      r.Summary.WindowSize,
			CompleteWindows: r.Summary.CompleteWindows,
			Remainder:       r.Summary.Remainder,
			Deviations:      r.Summary.Deviations,
			ExpectedTails:   r.Summary.ExpectedTails,
			Anomalies:       r.Summary.Anomalies,
		},
	}
	if r.RCExcerpt != nil {
		v.RCExcerpt = &api.ExcerptV1{From: r.RCExcerpt.From, To: r.RCExcerpt.To, Seq: r.RCExcerpt.Seq}
	}
	return v
}

// WriteJSON writes the v1 report as indented JSON.
func WriteJSON(w io.Writer, r *report.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPIReport(r))
}
