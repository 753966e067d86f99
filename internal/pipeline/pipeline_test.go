// internal/pipeline/pipeline_test.go
package pipeline

import (
	"context"
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"seqcomp-core/compose"
	"seqcomp-core/sequence"
	"seqcomp-core/window"
)

func randomSeq(n int) []byte {
	alphabet := []byte("ACGTNRX")
	r := rand.New(rand.NewSource(42))
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[r.Intn(len(alphabet))]
	}
	return out
}

func TestParallelMatchesSerial(t *testing.T) {
	seq := randomSeq(10_123)
	serial, err := compose.Scan(seq, 1000, sequence.Canonical)
	if err != nil {
		t.Fatal(err)
	}
	for _, threads := range []int{0, 2, 4, 8} {
		par, err := Scan(context.Background(), Config{WindowSize: 1000, Threads: threads, Mode: sequence.Canonical}, seq)
		if err != nil {
			t.Fatalf("threads=%d: %v", threads, err)
		}
		if !reflect.DeepEqual(serial.Windows(), par.Windows()) {
			t.Fatalf("threads=%d: parallel profile differs from serial", threads)
		}
	}
}

func TestOrderedOutput(t *testing.T) {
	seq := randomSeq(5_000)
	p, err := Scan(context.Background(), Config{WindowSize: 321, Threads: 4, Mode: sequence.Extended}, seq)
	if err != nil {
		t.Fatal(err)
	}
	prev := -1
	for _, wc := range p.Windows() {
		if wc.Offset <= prev {
			t.Fatalf("offsets not ascending: %d after %d", wc.Offset, prev)
		}
		prev = wc.Offset
	}
}

func TestInvalidWindowSize(t *testing.T) {
	_, err := Scan(context.Background(), Config{WindowSize: 0, Threads: 2}, []byte("ACGT"))
	if !errors.Is(err, window.ErrInvalidWindowSize) {
		t.Errorf("err = %v, want ErrInvalidWindowSize", err)
	}
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Scan(ctx, Config{WindowSize: 10, Threads: 2}, randomSeq(1_000))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestEmptySequence(t *testing.T) {
	p, err := Scan(context.Background(), Config{WindowSize: 1000, Threads: 4}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 0 {
		t.Errorf("empty input should yield zero windows, got %d", p.Len())
	}
}
