// core/fasta/reader_test.go
package fasta

import (
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const plain = `>chr1_GL383518v1_alt alt scaffold
ACGTacgt
NNNN

GGCC
`

func TestReadSingleFrom(t *testing.T) {
	rec, extra, err := ReadSingleFrom(context.Background(), strings.NewReader(plain))
	if err != nil {
		t.Fatal(err)
	}
	if rec.ID != "chr1_GL383518v1_alt" {
		t.Errorf("ID = %q, want header token before whitespace", rec.ID)
	}
	if got := string(rec.Seq); got != "ACGTACGTNNNNGGCC" {
		t.Errorf("Seq = %q, want concatenated uppercased lines", got)
	}
	if extra != 0 {
		t.Errorf("extra = %d, want 0", extra)
	}
}

func TestReadSingleSkipsExtraRecords(t *testing.T) {
	in := ">a\nACGT\n>b\nTTTT\n>c\nGGGG\n"
	rec, extra, err := ReadSingleFrom(context.Background(), strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if string(rec.Seq) != "ACGT" {
		t.Errorf("Seq = %q, want first record only", rec.Seq)
	}
	if extra != 2 {
		t.Errorf("extra = %d, want 2", extra)
	}
}

func TestReadSingleNoRecords(t *testing.T) {
	_, _, err := ReadSingleFrom(context.Background(), strings.NewReader("\n\n"))
	if !errors.Is(err, ErrNoRecords) {
		t.Errorf("err = %v, want ErrNoRecords", err)
	}
}

func TestReadSingleHeaderless(t *testing.T) {
	// Bare sequence data without a header still parses; the original input
	// format guarantees a header but the reader does not insist on one.
	rec, _, err := ReadSingleFrom(context.Background(), strings.NewReader("acgt\nACGT\n"))
	if err != nil {
		t.Fatal(err)
	}
	if string(rec.Seq) != "ACGTACGT" || rec.ID != "" {
		t.Errorf("rec = %+v", rec)
	}
}

func TestReadSingleGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.fa.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(plain)); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := fh.Close(); err != nil {
		t.Fatal(err)
	}

	rec, _, err := ReadSingle(path)
	if err != nil {
		t.Fatalf("gzip read: %v", err)
	}
	if string(rec.Seq) != "ACGTACGTNNNNGGCC" {
		t.Errorf("Seq = %q", rec.Seq)
	}
}

func TestReadSingleCtxCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := ReadSingleFrom(ctx, strings.NewReader(plain))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestReadSingleMissingFile(t *testing.T) {
	if _, _, err := ReadSingle(filepath.Join(t.TempDir(), "absent.fa")); err == nil {
		t.Error("missing file must error")
	}
}
