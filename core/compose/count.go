// core/compose/count.go
package compose

import "seqcomp-core/sequence"

// Count tallies the symbols of one window in a single linear pass.
// Unrecognized symbols count as N (sequence.Classify policy), so the tally
// total always equals the window width, whatever the input alphabet.
func Count(win []byte, mode sequence.Mode) Tally {
	t := NewTally(mode)
	for _, b := range win {
		t[sequence.Classify(b, mode)]++
	}
	return t
}
