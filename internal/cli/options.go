// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"seqcomp/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	SeqFile string

	// Analysis parameters
	WindowSize int
	Extended   bool
	Threads    int

	// Position lookups (1-based)
	Letters   []int
	RCLetters []int
	RCFrom    int // 0 disables the excerpt
	RCTo      int

	// Output
	Output   string // text | pretty | json | xlsx
	XlsxPath string
	Header   bool // true unless --no-header
	Quiet    bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: positional nucleotide composition reports from FASTA

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input
	fs.StringVar(&opt.SeqFile, "sequence", "", "FASTA file, '-' for stdin, .gz accepted [*]")

	// Analysis
	fs.IntVar(&opt.WindowSize, "window-size", 1000, "window width in bases [1000]")
	fs.BoolVar(&opt.Extended, "extended", false, "track IUPAC ambiguity codes as their own symbols [false]")
	fs.IntVar(&opt.Threads, "threads", 1, "worker threads for window counting (0 = all CPUs) [1]")

	// Position lookups
	var letters, rcLetters, rcRange string
	fs.StringVar(&letters, "letters", "10,758", "1-based forward positions to report, comma-separated ('' disables) [10,758]")
	fs.StringVar(&rcLetters, "rc-letters", "79", "1-based reverse-complement positions to report ('' disables) [79]")
	fs.StringVar(&rcRange, "rc-range", "500:800", "1-based inclusive reverse-complement excerpt from:to ('' disables) [500:800]")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: text | pretty | json | xlsx [text]")
	fs.StringVar(&opt.XlsxPath, "xlsx-out", "composition.xlsx", "destination file for --output xlsx [composition.xlsx]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings on stderr [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	// Validation
	if opt.SeqFile == "" {
		return opt, errors.New("--sequence is required")
	}
	if opt.WindowSize <= 0 {
		return opt, errors.New("--window-size must be > 0")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	switch opt.Output {
	case "text", "pretty", "json", "xlsx":
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}

	var err error
	if opt.Letters, err = parseIntList(letters); err != nil {
		return opt, fmt.Errorf("--letters: %w", err)
	}
	if opt.RCLetters, err = parseIntList(rcLetters); err != nil {
		return opt, fmt.Errorf("--rc-letters: %w", err)
	}
	if opt.RCFrom, opt.RCTo, err = parseRange(rcRange); err != nil {
		return opt, fmt.Errorf("--rc-range: %w", err)
	}
	return opt, nil
}

// parseIntList parses "10,758" into positive ints; "" yields none.
func parseIntList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad position %q", p)
		}
		if n < 1 {
			return nil, fmt.Errorf("position %d must be ≥ 1", n)
		}
		out = append(out, n)
	}
	return out, nil
}

// parseRange parses "500:800" into (500, 800); "" yields (0, 0).
func parseRange(s string) (int, int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, nil
	}
	from, to, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("expected from:to, got %q", s)
	}
	lo, err := strconv.Atoi(strings.TrimSpace(from))
	if err != nil {
		return 0, 0, fmt.Errorf("bad start %q", from)
	}
	hi, err := strconv.Atoi(strings.TrimSpace(to))
	if err != nil {
		return 0, 0, fmt.Errorf("bad end %q", to)
	}
	if lo < 1 || hi < lo {
		return 0, 0, fmt.Errorf("range %d:%d must satisfy 1 ≤ from ≤ to", lo, hi)
	}
	return lo, hi, nil
}
