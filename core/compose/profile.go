// core/compose/profile.go
package compose

import (
	"seqcomp-core/sequence"
	"seqcomp-core/window"
)

// WindowCount pairs one window's coordinates with its tally.
type WindowCount struct {
	Index  int
	Offset int
	Width  int
	Counts Tally
}

// Profile is the ordered per-window composition of one sequence. It keeps
// the windows as an ordered slice plus an offset→index map, so consumers
// get both sequential iteration and O(1) lookup by start offset.
type Profile struct {
	mode    sequence.Mode
	windows []WindowCount
	byOff   map[int]int
}

// NewProfile returns an empty profile for mode.
func NewProfile(mode sequence.Mode) *Profile {
	return &Profile{mode: mode, byOff: make(map[int]int)}
}

// Scan segments seq into size-wide windows and tallies each one.
// It returns window.ErrInvalidWindowSize when size <= 0.
func Scan(seq []byte, size int, mode sequence.Mode) (*Profile, error) {
	p := NewProfile(mode)
	err := window.ForEach(seq, size, func(w window.Window) error {
		p.Append(WindowCount{Index: w.Index, Offset: w.Start, Width: w.Width(), Counts: Count(w.Seq, mode)})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Append adds one window count. Windows must arrive in ascending offset
// order with consecutive indices; Scan and the pipeline both guarantee it.
func (p *Profile) Append(wc WindowCount) {
	p.byOff[wc.Offset] = len(p.windows)
	p.windows = append(p.windows, wc)
}

// Mode reports the tracking mode the profile was built with.
func (p *Profile) Mode() sequence.Mode { return p.mode }

// Len is the number of windows.
func (p *Profile) Len() int { return len(p.windows) }

// Windows returns the ordered per-window counts. The slice is shared;
// callers must not modify it.
func (p *Profile) Windows() []WindowCount { return p.windows }

// ByIndex returns the i-th window count (0-based).
func (p *Profile) ByIndex(i int) (WindowCount, bool) {
	if i < 0 || i >= len(p.windows) {
		return WindowCount{}, false
	}
	return p.windows[i], true
}

// ByOffset returns the window count whose window starts at off.
func (p *Profile) ByOffset(off int) (WindowCount, bool) {
	i, ok := p.byOff[off]
	if !ok {
		return WindowCount{}, false
	}
	return p.windows[i], true
}

// Totals is the element-wise sum of every window tally. Its Sum equals the
// sequence length.
func (p *Profile) Totals() Tally {
	tot := NewTally(p.mode)
	for _, wc := range p.windows {
		tot.Add(wc.Counts)
	}
	return tot
}

// ReducedList returns the per-window canonical counts in A, C, G, T order,
// one entry per window, same order as Windows.
func (p *Profile) ReducedList() [][4]int {
	out := make([][4]int, len(p.windows))
	for i, wc := range p.windows {
		out[i] = wc.Counts.Reduced()
	}
	return out
}

// Percentages returns 100*Totals[symbol]/length per tracked symbol.
// An empty profile yields all zeros rather than a division failure.
func (p *Profile) Percentages() map[byte]float64 {
	tot := p.Totals()
	length := tot.Sum()
	out := make(map[byte]float64, len(tot))
	for b, n := range tot {
		if length == 0 {
			out[b] = 0
			continue
		}
		out[b] = 100 * float64(n) / float64(length)
	}
	return out
}
