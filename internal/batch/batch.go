// internal/batch/batch.go
package batch

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"enigma-core/alphabet"
	"enigma-core/machine"
	"enigma-core/records"
)

// Factory returns a fresh machine at its starting offsets. It is called once
// per record, so every record is its own session; the wheels it hands out
// may be shared, the machine may not.
type Factory func() (*machine.Machine, error)

// Config controls a batch run.
type Config struct {
	Workers int         // worker goroutines; <1 means runtime.NumCPU()
	Session string      // stamped on every result; a UUID when empty
	Logger  *zap.Logger // nil = no logging
	Stdin   io.Reader   // read for the source "-"; nil = process stdin
}

// Result is one encoded record.
type Result struct {
	Session string
	Seq     int // 0-based position across all sources
	Record  records.Record
	Start   []int
	End     []int
	Letters int
	Output  string
}

type job struct {
	seq int
	rec records.Record
}

// Run reads records from every source in order, encodes each on its own
// machine across cfg.Workers goroutines, and hands results to visit in input
// order. It returns how many results visit accepted and the first error
// (a source error, an encode error, a visit error, or ctx's error).
func Run(ctx context.Context, cfg Config, sources []string, newMachine Factory, visit func(Result) error) (int, error) {
	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	session := cfg.Session
	if session == "" {
		session = uuid.NewString()
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("session", session))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	jobs := make(chan job, workers*2)
	results := make(chan Result, workers*2)

	// Feed
	g.Go(func() error {
		defer close(jobs)
		seq := 0
		for _, src := range sources {
			err := records.StreamInputCtx(gctx, src, cfg.Stdin, func(r records.Record) error {
				select {
				case jobs <- job{seq: seq, rec: r}:
					seq++
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			})
			if err != nil {
				return fmt.Errorf("%s: %w", src, err)
			}
			log.Debug("source read", zap.String("source", src), zap.Int("records", seq))
		}
		return nil
	})

	// Workers
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			defer wg.Done()
			for j := range jobs {
				res, err := encode(newMachine, j)
				if err != nil {
					return fmt.Errorf("record %s: %w", j.rec.ID, err)
				}
				res.Session = session
				select {
				case results <- res:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collector: restore input order
	var (
		verr    error
		total   int
		next    int
		pending = make(map[int]Result)
	)
	for res := range results {
		if verr != nil {
			continue
		}
		pending[res.Seq] = res
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if err := visit(r); err != nil {
				verr = err
				cancel()
				break
			}
			total++
			log.Debug("record encoded", zap.String("id", r.Record.ID), zap.Int("letters", r.Letters))
		}
	}

	gerr := g.Wait()
	switch {
	case verr != nil:
		return total, verr
	case gerr != nil:
		log.Warn("batch stopped", zap.Error(gerr), zap.Int("records", total))
		return total, gerr
	}
	log.Info("batch done", zap.Int("records", total), zap.Int("workers", workers))
	return total, nil
}

func encode(newMachine Factory, j job) (Result, error) {
	m, err := newMachine()
	if err != nil {
		return Result{}, err
	}
	start := m.Offsets()
	out, err := m.EncodeMessage(j.rec.Text)
	if err != nil {
		return Result{}, err
	}
	letters := 0
	for _, r := range out {
		if alphabet.IsEncodable(r) {
			letters++
		}
	}
	return Result{
		Seq:     j.seq,
		Record:  j.rec,
		Start:   start,
		End:     m.Offsets(),
		Letters: letters,
		Output:  out,
	}, nil
}
