// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// Record is one parsed FASTA sequence, header stripped and symbols
// uppercased.
type Record struct {
	ID  string
	Seq []byte
}

// ErrNoRecords reports input with no FASTA header and no sequence data.
var ErrNoRecords = errors.New("fasta: no records found")

// ReadSingleCtx parses the first record of the FASTA file at path
// ("-" for stdin, .gz transparently decompressed). Header lines are
// discarded, remaining lines concatenated and uppercased. The int result
// counts additional records that were present and skipped, so the caller
// can warn about multi-record input.
func ReadSingleCtx(ctx context.Context, path string) (Record, int, error) {
	rc, err := openReader(path)
	if err != nil {
		return Record{}, 0, err
	}
	defer func() { _ = rc.Close() }()
	return ReadSingleFrom(ctx, rc)
}

// ReadSingle is ReadSingleCtx with a background context.
func ReadSingle(path string) (Record, int, error) {
	return ReadSingleCtx(context.Background(), path)
}

// ReadSingleFrom parses the first record from r. See ReadSingleCtx.
func ReadSingleFrom(ctx context.Context, r io.Reader) (Record, int, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		rec     Record
		headers int
	)
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return Record{}, 0, ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			headers++
			if headers == 1 {
				rec.ID = parseHeaderID(line[1:])
			}
			continue
		}
		// Sequence data belonging to records past the first is skipped.
		if headers > 1 {
			continue
		}
		rec.Seq = append(rec.Seq, bytes.ToUpper(line)...)
	}
	if err := sc.Err(); err != nil {
		return Record{}, 0, fmt.Errorf("fasta scan: %w", err)
	}
	if headers == 0 && len(rec.Seq) == 0 {
		return Record{}, 0, ErrNoRecords
	}
	extra := 0
	if headers > 1 {
		extra = headers - 1
	}
	return rec, extra, nil
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
