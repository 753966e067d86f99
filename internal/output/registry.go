// internal/output/registry.go
package output

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	"seqcomp/internal/report"
)

// WriterFunc renders one report to w.
type WriterFunc func(w io.Writer, r *report.Report, header bool) error

// writers is the format → handler registry.
var writers = map[string]WriterFunc{
	"text": WriteText,
	"pretty": func(w io.Writer, r *report.Report, _ bool) error {
		return WritePretty(w, r)
	},
	"json": func(w io.Writer, r *report.Report, _ bool) error {
		return WriteJSON(w, r)
	},
	"xlsx": func(w io.Writer, r *report.Report, _ bool) error {
		return WriteXLSX(w, r)
	},
}

// Write dispatches to the registered writer for format.
func Write(format string, w io.Writer, r *report.Report, header bool) error {
	fn, ok := writers[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, r, header)
}

// IsBrokenPipe reports whether an error is a broken or closed pipe, as when
// a downstream consumer like `head` exits early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
