// core/compose/tally.go
package compose

import "seqcomp-core/sequence"

// Tally maps each tracked symbol to its occurrence count within one window.
// Keys are exactly sequence.Tracked(mode) for the mode the tally was built
// with, so zero counts are present rather than missing.
type Tally map[byte]int

// NewTally returns a zeroed tally over the tracked alphabet for mode.
func NewTally(mode sequence.Mode) Tally {
	tracked := sequence.Tracked(mode)
	t := make(Tally, len(tracked))
	for _, b := range tracked {
		t[b] = 0
	}
	return t
}

// Sum is the total of all counts. It equals the width of the window the
// tally was computed from.
func (t Tally) Sum() int {
	n := 0
	for _, c := range t {
		n += c
	}
	return n
}

// Reduced returns the canonical counts in A, C, G, T order, dropping N and
// every other non-canonical symbol.
func (t Tally) Reduced() [4]int {
	return [4]int{t['A'], t['C'], t['G'], t['T']}
}

// ReducedSum is the A+C+G+T total. It is at most Sum(), with equality iff
// the window holds no ambiguous symbols.
func (t Tally) ReducedSum() int {
	r := t.Reduced()
	return r[0] + r[1] + r[2] + r[3]
}

// Ambiguous counts everything outside A/C/G/T (N plus, in extended mode,
// the IUPAC codes).
func (t Tally) Ambiguous() int {
	return t.Sum() - t.ReducedSum()
}

// Add accumulates other into t, element-wise.
func (t Tally) Add(other Tally) {
	for b, n := range other {
		t[b] += n
	}
}
