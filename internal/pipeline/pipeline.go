// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"runtime"
	"sync"

	"seqcomp-core/compose"
	"seqcomp-core/sequence"
	"seqcomp-core/window"
)

// Config controls the counting pipeline.
type Config struct {
	WindowSize int
	Threads    int // worker goroutines; 0 = all CPUs
	Mode       sequence.Mode
}

// Scan partitions seq and tallies every window, fanning window indices
// across workers. Each worker writes into its own slot of an index-addressed
// slice, so the assembled profile is in ascending offset order regardless of
// scheduling. With one thread (or fewer than two windows) it degenerates to
// the serial compose.Scan.
func Scan(ctx context.Context, cfg Config, seq []byte) (*compose.Profile, error) {
	if cfg.Threads == 0 {
		cfg.Threads = runtime.NumCPU()
	}
	if cfg.Threads == 1 {
		return compose.Scan(seq, cfg.WindowSize, cfg.Mode)
	}

	wins, err := window.Split(seq, cfg.WindowSize)
	if err != nil {
		return nil, err
	}
	if len(wins) < 2 {
		return compose.Scan(seq, cfg.WindowSize, cfg.Mode)
	}

	workers := cfg.Threads
	if workers > len(wins) {
		workers = len(wins)
	}

	counts := make([]compose.Tally, len(wins))
	jobs := make(chan int, workers*2)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				counts[i] = compose.Count(wins[i].Seq, cfg.Mode)
			}
		}()
	}

feed:
	for i := range wins {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := compose.NewProfile(cfg.Mode)
	for i, w := range wins {
		p.Append(compose.WindowCount{Index: w.Index, Offset: w.Start, Width: w.Width(), Counts: counts[i]})
	}
	return p, nil
}
