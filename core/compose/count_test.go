// core/compose/count_test.go
package compose

import (
	"testing"

	"seqcomp-core/sequence"
)

func TestCountSumEqualsWidth(t *testing.T) {
	cases := []string{
		"",
		"ACGT",
		"AANNGGCCTT",
		"acgtn",
		"XYZ!?-123",       // garbage still lands somewhere (N)
		"ARYSWKMBDHVNTGC", // ambiguity codes
	}
	for _, s := range cases {
		for _, mode := range []sequence.Mode{sequence.Canonical, sequence.Extended} {
			tl := Count([]byte(s), mode)
			if got := tl.Sum(); got != len(s) {
				t.Errorf("Count(%q, %v).Sum() = %d, want %d", s, mode, got, len(s))
			}
		}
	}
}

func TestCountCanonicalFoldsIntoN(t *testing.T) {
	tl := Count([]byte("ARRNX"), sequence.Canonical)
	if tl['A'] != 1 {
		t.Errorf("A = %d, want 1", tl['A'])
	}
	if tl['N'] != 4 {
		t.Errorf("N = %d, want 4 (two R, one N, one X)", tl['N'])
	}
	if _, ok := tl['R']; ok {
		t.Error("canonical tally must not track R")
	}
}

func TestCountExtendedTracksCodes(t *testing.T) {
	tl := Count([]byte("ARRNX"), sequence.Extended)
	if tl['R'] != 2 {
		t.Errorf("R = %d, want 2", tl['R'])
	}
	if tl['N'] != 2 {
		t.Errorf("N = %d, want 2 (one N, one X)", tl['N'])
	}
}

func TestReducedAndAmbiguous(t *testing.T) {
	tl := Count([]byte("AANNG"), sequence.Canonical)
	want := [4]int{2, 0, 1, 0}
	if got := tl.Reduced(); got != want {
		t.Errorf("Reduced() = %v, want %v", got, want)
	}
	if got := tl.ReducedSum(); got != 3 {
		t.Errorf("ReducedSum() = %d, want 3", got)
	}
	if got := tl.Ambiguous(); got != 2 {
		t.Errorf("Ambiguous() = %d, want 2", got)
	}
}

func TestTallyZeroKeysPresent(t *testing.T) {
	tl := NewTally(sequence.Canonical)
	for _, b := range sequence.Tracked(sequence.Canonical) {
		if _, ok := tl[b]; !ok {
			t.Errorf("missing zero entry for %q", b)
		}
	}
}

func TestTallyAdd(t *testing.T) {
	a := Count([]byte("ACGT"), sequence.Canonical)
	b := Count([]byte("AANN"), sequence.Canonical)
	a.Add(b)
	if a['A'] != 3 || a['N'] != 2 || a.Sum() != 8 {
		t.Errorf("Add result wrong: %v", a)
	}
}
