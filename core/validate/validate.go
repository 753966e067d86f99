// core/validate/validate.go
package validate

import (
	"fmt"

	"seqcomp-core/compose"
	"seqcomp-core/window"
)

// Class labels why a window's canonical sum differs from the window size.
type Class string

const (
	// ExpectedTail marks the final window of a sequence whose length is not
	// an exact multiple of the window size. A structural consequence of the
	// segmentation, not an anomaly.
	ExpectedTail Class = "EXPECTED_TAIL"
	// Anomalous marks every other deviating window; the deficit is
	// attributed to ambiguous symbols.
	Anomalous Class = "ANOMALOUS"
)

// Deviation describes one window whose A+C+G+T sum is not the full window
// size. Ambiguous carries the window's N (plus non-canonical) count so the
// deficit can be explained.
type Deviation struct {
	Index     int
	Offset    int
	Width     int
	Observed  int // canonical (A+C+G+T) sum
	Expected  int // the configured window size
	Ambiguous int
	Class     Class
}

// Summary recaps the partition and the deviations found.
type Summary struct {
	Length          int
	WindowSize      int
	CompleteWindows int
	Remainder       int
	Deviations      int
	ExpectedTails   int
	Anomalies       int
}

// ConsistencyError reports a window whose canonical deficit does not match
// its ambiguous-symbol count. It signals a counting defect, not a data
// property, and is returned to the caller rather than absorbed.
type ConsistencyError struct {
	Index     int
	Offset    int
	Deficit   int
	Ambiguous int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("window %d (offset %d): canonical deficit %d != ambiguous count %d",
		e.Index, e.Offset, e.Deficit, e.Ambiguous)
}

// Run reconciles each window of p against size and returns the ordered
// deviations plus a summary. length is the full sequence length; the
// profile must cover it exactly.
func Run(p *compose.Profile, length, size int) ([]Deviation, Summary, error) {
	if size <= 0 {
		return nil, Summary{}, window.ErrInvalidWindowSize
	}
	if covered := p.Totals().Sum(); covered != length {
		return nil, Summary{}, fmt.Errorf("profile covers %d bases, expected %d", covered, length)
	}

	ws := p.Windows()
	last := len(ws) - 1
	var devs []Deviation
	for i, wc := range ws {
		obs := wc.Counts.ReducedSum()
		amb := wc.Counts.Ambiguous()
		if deficit := wc.Width - obs; deficit != amb {
			return nil, Summary{}, &ConsistencyError{Index: wc.Index, Offset: wc.Offset, Deficit: deficit, Ambiguous: amb}
		}
		if obs == size {
			continue
		}
		class := Anomalous
		if i == last && wc.Width < size {
			class = ExpectedTail
		}
		devs = append(devs, Deviation{
			Index:     wc.Index,
			Offset:    wc.Offset,
			Width:     wc.Width,
			Observed:  obs,
			Expected:  size,
			Ambiguous: amb,
			Class:     class,
		})
	}

	sum := Summary{
		Length:          length,
		WindowSize:      size,
		CompleteWindows: length / size,
		Remainder:       length % size,
		Deviations:      len(devs),
	}
	for _, d := range devs {
		if d.Class == ExpectedTail {
			sum.ExpectedTails++
		} else {
			sum.Anomalies++
		}
	}
	return devs, sum, nil
}
