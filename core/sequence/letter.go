// core/sequence/letter.go
package sequence

import "fmt"

// Letter returns the 1-based n-th symbol of seq.
func Letter(seq []byte, n int) (byte, error) {
	if n < 1 || n > len(seq) {
		return 0, fmt.Errorf("position %d out of range (sequence length %d)", n, len(seq))
	}
	return seq[n-1], nil
}

// Range returns the 1-based inclusive excerpt seq[from..to].
// The returned slice aliases seq.
func Range(seq []byte, from, to int) ([]byte, error) {
	if from < 1 || to < from || to > len(seq) {
		return nil, fmt.Errorf("range %d:%d out of range (sequence length %d)", from, to, len(seq))
	}
	return seq[from-1 : to], nil
}
