// core/sequence/rc.go
package sequence

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['R'] = 'Y'
	complement['Y'] = 'R'
	complement['S'] = 'S'
	complement['W'] = 'W'
	complement['K'] = 'M'
	complement['M'] = 'K'
	complement['B'] = 'V'
	complement['V'] = 'B'
	complement['D'] = 'H'
	complement['H'] = 'D'
	complement['N'] = 'N'
}

// Complement returns the Watson-Crick-Franklin complement of one symbol.
// The symbol is classified first (see Classify), so unrecognized input
// complements to 'N' and the result is total over all bytes.
func Complement(b byte, mode Mode) byte {
	return complement[Classify(b, mode)]
}

// RevComp returns the reverse complement of seq: out[i] is the complement
// of seq[len-1-i]. Empty or nil input yields an empty result.
func RevComp(seq []byte, mode Mode) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = Complement(seq[n-1-i], mode)
	}
	return out
}
