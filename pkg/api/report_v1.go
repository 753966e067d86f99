// pkg/api/report_v1.go
package api

// ReportV1 is the stable JSON schema for composition reports. Field names
// are frozen; additions must be backward compatible.
type ReportV1 struct {
	SequenceID string             `json:"sequence_id"`
	Length     int                `json:"length"`
	WindowSize int                `json:"window_size"`
	Extended   bool               `json:"extended"`
	Windows    []WindowV1         `json:"windows"`
	Totals     map[string]int     `json:"totals"`
	Percent    map[string]float64 `json:"percent"`
	Lookups    []LookupV1         `json:"lookups,omitempty"`
	RCExcerpt  *ExcerptV1         `json:"rc_excerpt,omitempty"`
	Deviations []DeviationV1      `json:"deviations"`
	Summary    SummaryV1          `json:"summary"`
}

type WindowV1 struct {
	Index  int            `json:"index"`
	Offset int            `json:"offset"`
	Width  int            `json:"width"`
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

// LookupV1 is one 1-based letter probe; Strand "+" is the forward sequence,
// "-" the reverse complement.
type LookupV1 struct {
	Strand   string `json:"strand"`
	Position int    `json:"position"`
	Symbol   string `json:"symbol,omitempty"`
	Found    bool   `json:"found"`
}

// ExcerptV1 is a 1-based inclusive reverse-complement excerpt.
type ExcerptV1 struct {
	From int    `json:"from"`
	To   int    `json:"to"`
	Seq  string `json:"seq"`
}

type DeviationV1 struct {
	Index     int    `json:"index"`
	Offset    int    `json:"offset"`
	Width     int    `json:"width"`
	Observed  int    `json:"observed"`
	Expected  int    `json:"expected"`
	Ambiguous int    `json:"ambiguous"`
	Class     string `json:"class"`
}

type SummaryV1 struct {
	Length          int `json:"length"`
	WindowSize      int `json:"window_size"`
	CompleteWindows int `json:"complete_windows"`
	Remainder       int `json:"remainder"`
	Deviations      int `json:"deviations"`
	ExpectedTails   int `json:"expected_tails"`
	Anomalies       int `json:"anomalies"`
}
