// core/window/window_test.go
package window

import (
	"bytes"
	"errors"
	"testing"
)

func TestSplitPartitionsExactly(t *testing.T) {
	cases := []struct {
		seq  string
		size int
		want []string
	}{
		{"ACGTACGTAC", 4, []string{"ACGT", "ACGT", "AC"}},
		{"ACGT", 4, []string{"ACGT"}},
		{"ACGT", 10, []string{"ACGT"}},
		{"A", 1, []string{"A"}},
		{"", 1000, nil},
	}
	for _, c := range cases {
		ws, err := Split([]byte(c.seq), c.size)
		if err != nil {
			t.Fatalf("Split(%q, %d): %v", c.seq, c.size, err)
		}
		if len(ws) != len(c.want) {
			t.Fatalf("Split(%q, %d) yielded %d windows, want %d", c.seq, c.size, len(ws), len(c.want))
		}
		var joined []byte
		for i, w := range ws {
			if w.Index != i {
				t.Errorf("window %d has Index %d", i, w.Index)
			}
			if w.Start != i*c.size {
				t.Errorf("window %d Start = %d, want %d", i, w.Start, i*c.size)
			}
			if string(w.Seq) != c.want[i] {
				t.Errorf("window %d = %q, want %q", i, w.Seq, c.want[i])
			}
			joined = append(joined, w.Seq...)
		}
		if !bytes.Equal(joined, []byte(c.seq)) {
			t.Errorf("windows do not reproduce input: %q != %q", joined, c.seq)
		}
	}
}

func TestForEachRestartable(t *testing.T) {
	seq := []byte("ACGTACGTAC")
	count := func() int {
		n := 0
		_ = ForEach(seq, 3, func(Window) error { n++; return nil })
		return n
	}
	if first, second := count(), count(); first != second || first != 4 {
		t.Errorf("ForEach not restartable: %d then %d windows, want 4", first, second)
	}
}

func TestForEachStopsOnError(t *testing.T) {
	seq := []byte("ACGTACGT")
	sentinel := errors.New("stop")
	seen := 0
	err := ForEach(seq, 2, func(Window) error {
		seen++
		if seen == 2 {
			return sentinel
		}
		return nil
	})
	if err != sentinel {
		t.Fatalf("err = %v, want sentinel", err)
	}
	if seen != 2 {
		t.Fatalf("emit called %d times, want 2", seen)
	}
}

func TestInvalidWindowSize(t *testing.T) {
	for _, size := range []int{0, -1, -1000} {
		if _, err := Split([]byte("ACGT"), size); err != ErrInvalidWindowSize {
			t.Errorf("Split(size=%d) err = %v, want ErrInvalidWindowSize", size, err)
		}
	}
}

func TestTailWindowWidth(t *testing.T) {
	ws, err := Split(make([]byte, 2503), 1000)
	if err != nil {
		t.Fatal(err)
	}
	if len(ws) != 3 {
		t.Fatalf("got %d windows, want 3", len(ws))
	}
	if ws[2].Width() != 503 {
		t.Errorf("tail width = %d, want 503", ws[2].Width())
	}
	if ws[0].Width() != 1000 || ws[1].Width() != 1000 {
		t.Error("non-tail windows must be full width")
	}
}
