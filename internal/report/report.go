// internal/report/report.go
package report

import (
	"github.com/samber/lo"

	"seqcomp-core/compose"
	"seqcomp-core/sequence"
	"seqcomp-core/validate"
)

// Lookup is one 1-based letter probe. Strand "+" is the forward sequence,
// "-" the reverse complement. Probes past the sequence end are kept with
// Found=false rather than dropped, so the writers can say so.
type Lookup struct {
	Strand   string
	Position int
	Symbol   string
	Found    bool
}

// Excerpt is a 1-based inclusive slice of the reverse complement.
type Excerpt struct {
	From int
	To   int
	Seq  string
}

// Row is one window of the composition table.
type Row struct {
	Index  int
	Offset int
	Width  int
	Counts map[string]int
	Total  int
}

// Report is everything the writers render.
type Report struct {
	SequenceID string
	Length     int
	WindowSize int
	Extended   bool
	Symbols    []string // report-ordered tracked alphabet
	Rows       []Row
	Totals     map[string]int
	Percent    map[string]float64
	Reduced    [][4]int
	Lookups    []Lookup
	RCExcerpt  *Excerpt
	Deviations []validate.Deviation
	Summary    validate.Summary
}

// Params names the inputs to Build.
type Params struct {
	SequenceID string
	Seq        []byte
	RevComp    []byte
	WindowSize int
	Mode       sequence.Mode
	Letters    []int // forward probes
	RCLetters  []int // reverse-complement probes
	RCFrom     int   // 0 disables the excerpt
	RCTo       int
}

// Build assembles the full report from an already-computed profile. The
// validation pass runs here; a consistency violation aborts the report.
func Build(p *compose.Profile, prm Params) (*Report, error) {
	devs, sum, err := validate.Run(p, len(prm.Seq), prm.WindowSize)
	if err != nil {
		return nil, err
	}

	symbols := lo.Map(sequence.Tracked(prm.Mode), func(b byte, _ int) string {
		return string(b)
	})
	rows := lo.Map(p.Windows(), func(wc compose.WindowCount, _ int) Row {
		return Row{
			Index:  wc.Index,
			Offset: wc.Offset,
			Width:  wc.Width,
			Counts: stringKeys(wc.Counts),
			Total:  wc.Counts.Sum(),
		}
	})

	pct := make(map[string]float64)
	for b, v := range p.Percentages() {
		pct[string(b)] = v
	}

	lookups := make([]Lookup, 0, len(prm.Letters)+len(prm.RCLetters))
	lookups = append(lookups, probe("+", prm.Seq, prm.Letters)...)
	lookups = append(lookups, probe("-", prm.RevComp, prm.RCLetters)...)

	var excerpt *Excerpt
	if prm.RCFrom > 0 {
		if s, err := sequence.Range(prm.RevComp, prm.RCFrom, prm.RCTo); err == nil {
			excerpt = &Excerpt{From: prm.RCFrom, To: prm.RCTo, Seq: string(s)}
		}
	}

	return &Report{
		SequenceID: prm.SequenceID,
		Length:     len(prm.Seq),
		WindowSize: prm.WindowSize,
		Extended:   prm.Mode == sequence.Extended,
		Symbols:    symbols,
		Rows:       rows,
		Totals:     stringKeys(p.Totals()),
		Percent:    pct,
		Reduced:    p.ReducedList(),
		Lookups:    lookups,
		RCExcerpt:  excerpt,
		Deviations: devs,
		Summary:    sum,
	}, nil
}

func stringKeys(t compose.Tally) map[string]int {
	out := make(map[string]int, len(t))
	for b, n := range t {
		out[string(b)] = n
	}
	return out
}

func probe(strand string, seq []byte, positions []int) []Lookup {
	return lo.Map(positions, func(pos int, _ int) Lookup {
		b, err := sequence.Letter(seq, pos)
		if err != nil {
			return Lookup{Strand: strand, Position: pos}
		}
		return Lookup{Strand: strand, Position: pos, Symbol: string(b), Found: true}
	})
}
