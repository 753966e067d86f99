// internal/output/xlsx.go
package output

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"seqcomp/internal/report"
)

const (
	sheetComposition = "Composition"
	sheetDeviations  = "Deviations"
	sheetSummary     = "Summary"
)

// WriteXLSX renders the report as a workbook with composition, deviation
// and summary sheets and writes the encoded file to w.
func WriteXLSX(w io.Writer, r *report.Report) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheetComposition); err != nil {
		return err
	}
	if err := writeCompositionSheet(f, r); err != nil {
		return err
	}
	if _, err := f.NewSheet(sheetDeviations); err != nil {
		return err
	}
	if err := writeDeviationSheet(f, r); err != nil {
		return err
	}
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return err
	}
	if err := writeSummarySheet(f, r); err != nil {
		return err
	}
	return f.Write(w)
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func writeCompositionSheet(f *excelize.File, r *report.Report) error {
	header := []any{"index", "offset", "width"}
	for _, s := range r.Symbols {
		header = append(header, s)
	}
	header = append(header, "total")
	if err := setRow(f, sheetComposition, 1, header); err != nil {
		return err
	}
	for i, row := range r.Rows {
		vals := []any{row.Index, row.Offset, row.Width}
		for _, s := range r.Symbols {
			vals = append(vals, row.Counts[s])
		}
		vals = append(vals, row.Total)
		if err := setRow(f, sheetComposition, i+2, vals); err != nil {
			return err
		}
	}
	// Totals and percentage rows below the table.
	base := len(r.Rows) + 3
	tot := []any{"totals", "", ""}
	pct := []any{"percent", "", ""}
	for _, s := range r.Symbols {
		tot = append(tot, r.Totals[s])
		pct = append(pct, fmt.Sprintf("%.2f%%", r.Percent[s]))
	}
	tot = append(tot, r.Length)
	if err := setRow(f, sheetComposition, base, tot); err != nil {
		return err
	}
	return setRow(f, sheetComposition, base+1, pct)
}

func writeDeviationSheet(f *excelize.File, r *report.Report) error {
	if err := setRow(f, sheetDeviations, 1,
		[]any{"index", "offset", "width", "observed", "expected", "ambiguous", "class"}); err != nil {
		return err
	}
	for i, d := range r.Deviations {
		if err := setRow(f, sheetDeviations, i+2,
			[]any{d.Index, d.Offset, d.Width, d.Observed, d.Expected, d.Ambiguous, string(d.Class)}); err != nil {
			return err
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, r *report.Report) error {
	rows := [][]any{
		{"sequence", r.SequenceID},
		{"length", r.Summary.Length},
		{"window_size", r.Summary.WindowSize},
		{"complete_windows", r.Summary.CompleteWindows},
		{"remainder", r.Summary.Remainder},
		{"deviations", r.Summary.Deviations},
		{"expected_tails", r.Summary.ExpectedTails},
		{"anomalies", r.Summary.Anomalies},
	}
	for i, vals := range rows {
		if err := setRow(f, sheetSummary, i+1, vals); err != nil {
			return err
		}
	}
	return nil
}
