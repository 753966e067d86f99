// core/window/window.go
package window

import "errors"

// ErrInvalidWindowSize reports a non-positive window size.
var ErrInvalidWindowSize = errors.New("window size must be > 0")

// Window is one contiguous slice of the input sequence. Start is a multiple
// of the configured size; only the final window may be narrower. Seq aliases
// the original sequence and must not be mutated.
type Window struct {
	Index int
	Start int
	Seq   []byte
}

// Width is the number of symbols in the window.
func (w Window) Width() int { return len(w.Seq) }

// ForEach emits size-wide windows of seq in ascending start order:
// starts 0, size, 2*size, …, each with width min(size, len(seq)-start).
// Windows are non-overlapping and exhaustive. An empty seq emits nothing.
// The walk is restartable: calling ForEach again replays the same windows.
func ForEach(seq []byte, size int, emit func(Window) error) error {
	if size <= 0 {
		return ErrInvalidWindowSize
	}
	idx := 0
	for start := 0; start < len(seq); start += size {
		end := start + size
		if end > len(seq) {
			end = len(seq)
		}
		if err := emit(Window{Index: idx, Start: start, Seq: seq[start:end]}); err != nil {
			return err
		}
		idx++
	}
	return nil
}

// Split materializes every window of seq.
func Split(seq []byte, size int) ([]Window, error) {
	var out []Window
	if err := ForEach(seq, size, func(w Window) error {
		out = append(out, w)
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}
