// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"seqcomp-core/fasta"
	"seqcomp-core/sequence"
	"seqcomp-core/window"
	"seqcomp/internal/cli"
	"seqcomp/internal/output"
	"seqcomp/internal/pipeline"
	"seqcomp/internal/report"
	"seqcomp/internal/version"
)

// RunContext parses argv, analyzes the requested FASTA sequence and writes
// the report. Exit codes: 0 ok, 1 runtime failure, 2 usage/config error,
// 3 write error.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("seqcomp")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "seqcomp version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	rec, extra, err := fasta.ReadSingleCtx(parent, opts.SeqFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	if extra > 0 && !opts.Quiet {
		_, _ = fmt.Fprintf(stderr, "WARN: %d extra FASTA record(s) ignored; analyzing %q only\n", extra, rec.ID)
	}

	mode := sequence.Canonical
	if opts.Extended {
		mode = sequence.Extended
	}

	prof, err := pipeline.Scan(parent, pipeline.Config{
		WindowSize: opts.WindowSize,
		Threads:    opts.Threads,
		Mode:       mode,
	}, rec.Seq)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		if errors.Is(err, window.ErrInvalidWindowSize) {
			return 2
		}
		return 1
	}

	rep, err := report.Build(prof, report.Params{
		SequenceID: rec.ID,
		Seq:        rec.Seq,
		RevComp:    sequence.RevComp(rec.Seq, mode),
		WindowSize: opts.WindowSize,
		Mode:       mode,
		Letters:    opts.Letters,
		RCLetters:  opts.RCLetters,
		RCFrom:     opts.RCFrom,
		RCTo:       opts.RCTo,
	})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	if opts.Output == "xlsx" {
		fh, err := os.Create(opts.XlsxPath)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		if err := output.Write("xlsx", fh, rep, opts.Header); err != nil {
			_ = fh.Close()
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		if err := fh.Close(); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		if !opts.Quiet {
			_, _ = fmt.Fprintf(outw, "wrote %s\n", opts.XlsxPath)
		}
		return flushCode(outw, stderr, 0)
	}

	if err := output.Write(opts.Output, outw, rep, opts.Header); err != nil {
		if output.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flushCode(outw, stderr, 0)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); output.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
