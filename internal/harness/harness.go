// Package harness is minimal fuzz-loop scaffolding that drives
// mutengine.Engine across concurrent workers against a pluggable target.
// It is not part of the mutation engine's contract; it exists so the CLI
// demo and integration tests have something concrete to run the engine
// against. Process management and crash triage stay with the caller.
package harness

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fuzzforge/mutengine/internal/mutengine"
)

// Target is the fuzz target. A non-nil error (including a recovered
// panic) marks the input as a crash.
type Target func(data []byte) error

// Options controls a time-bounded fuzzing campaign.
type Options struct {
	Duration    time.Duration
	MaxInput    int
	Concurrency int
	Config      mutengine.Config
	Feedback    *mutengine.CmpFeedback
	Prior       mutengine.PriorInputSource
	Clock       mutengine.Clock
}

// Stats captures aggregate counters for a campaign.
type Stats struct {
	Executions uint64
	Crashes    uint64
}

// Run executes a time-bounded campaign across opts.Concurrency workers,
// each owning its own Buffer and Engine (distinct engines share the
// read-only Config/Feedback/Prior/Clock but never a Buffer, satisfying
// the engine's single-writer-per-buffer contract). Every crash line is
// written to crashes as "<timestamp>\t<hex input>\t<error>\n".
func Run(ctx context.Context, opts Options, seed []byte, target Target, crashes io.Writer) Stats {
	if opts.Duration <= 0 {
		opts.Duration = 3 * time.Second
	}

	if opts.MaxInput <= 0 {
		opts.MaxInput = 1 << 12
	}

	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}

	ctx, cancel := context.WithTimeout(ctx, opts.Duration)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	var execCount, crashCount uint64

	var crashMu sync.Mutex

	for w := 0; w < opts.Concurrency; w++ {
		g.Go(func() error {
			eng := mutengine.NewEngine(opts.Config, opts.Feedback, opts.Prior, opts.Clock)
			buf := mutengine.NewBuffer(seed, opts.MaxInput)

			for {
				select {
				case <-ctx.Done():
					return nil
				default:
				}

				eng.Mutate(buf, 0)

				cand := append([]byte(nil), buf.Bytes()...)

				err := callTargetSafe(target, cand)
				atomic.AddUint64(&execCount, 1)

				if err != nil {
					atomic.AddUint64(&crashCount, 1)

					if crashes != nil {
						crashMu.Lock()
						fmt.Fprintf(crashes, "%s\t0x%x\t%v\n", time.Now().Format(time.RFC3339Nano), cand, err)
						crashMu.Unlock()
					}
				}
			}
		})
	}

	_ = g.Wait()

	return Stats{Executions: atomic.LoadUint64(&execCount), Crashes: atomic.LoadUint64(&crashCount)}
}

func callTargetSafe(t Target, data []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return t(data)
}
