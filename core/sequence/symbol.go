// core/sequence/symbol.go
package sequence

// Mode selects which symbols the counting side tracks.
type Mode int

const (
	// Canonical tracks A, C, G, T and N; every other symbol folds into N.
	Canonical Mode = iota
	// Extended additionally tracks the IUPAC ambiguity codes as their own
	// symbols. Anything still unrecognized folds into N.
	Extended
)

// CanonicalSymbols is the tracked set in Canonical mode, in report order.
var CanonicalSymbols = []byte{'A', 'C', 'G', 'T', 'N'}

// ExtendedSymbols are the IUPAC ambiguity codes tracked in Extended mode
// (on top of the canonical set), in report order.
var ExtendedSymbols = []byte{'R', 'Y', 'S', 'W', 'K', 'M', 'B', 'D', 'H', 'V'}

var (
	isCanonical [256]bool
	isExtended  [256]bool
)

func init() {
	for _, b := range []byte{'A', 'C', 'G', 'T'} {
		isCanonical[b] = true
	}
	for _, b := range ExtendedSymbols {
		isExtended[b] = true
	}
}

// Classify normalizes one raw symbol to the tracked alphabet for mode.
// Lowercase input is uppercased first; anything outside the recognized set
// becomes 'N'. This is a lossy-normalization policy, never an error.
func Classify(b byte, mode Mode) byte {
	b = upper(b)
	switch {
	case isCanonical[b]:
		return b
	case mode == Extended && isExtended[b]:
		return b
	default:
		return 'N'
	}
}

// Tracked returns the report-ordered tracked alphabet for mode.
// Canonical: A C G T N. Extended: A C G T, the IUPAC codes, then N.
func Tracked(mode Mode) []byte {
	if mode == Extended {
		out := make([]byte, 0, 4+len(ExtendedSymbols)+1)
		out = append(out, 'A', 'C', 'G', 'T')
		out = append(out, ExtendedSymbols...)
		out = append(out, 'N')
		return out
	}
	return append([]byte(nil), CanonicalSymbols...)
}

func upper(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
