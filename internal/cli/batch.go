// internal/cli/batch.go
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"enigma/internal/batch"
	"enigma/internal/cliutil"
	"enigma/internal/config"
	"enigma/internal/writers"
)

type batchFlags struct {
	output        string
	workers       int
	noHeader      bool
	emptyExitCode int
	session       string
}

func (a *app) newBatchCommand() *cobra.Command {
	var f batchFlags
	cmd := &cobra.Command{
		Use:   "batch [file...]",
		Short: "Encode every record of one or more message files, each on a fresh machine",
		Long: `Encode message records in parallel. Every record starts from the configured
positions, so records can be decoded independently.

A line starting with '>' opens a record named by the first word after it;
following lines up to the next header form its text. Lines before any header
are records of their own, named <file>:<line>. Files may be gzip-compressed;
'-' or no file reads stdin.`,
		Example: `  enigma batch messages.txt
  enigma batch -o jsonl -j 8 'inbox/*.txt.gz'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			bc, err := f.apply(cmd, a.cfg.Batch)
			if err != nil {
				return usageError(err)
			}
			sources, err := cliutil.ExpandInputs(args)
			if err != nil {
				return usageError(err)
			}
			return a.runBatch(cmd.Context(), bc, f.session, sources)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.output, "output", "o", "text", "result format: "+strings.Join(writers.Formats(), ", "))
	fl.IntVarP(&f.workers, "workers", "j", 0, "parallel sessions (0 = all CPUs)")
	fl.BoolVar(&f.noHeader, "no-header", false, "omit the column header in text output")
	fl.IntVar(&f.emptyExitCode, "empty-exit-code", ExitEmpty, "exit code when no record was read")
	fl.StringVar(&f.session, "session", "", "session id stamped on results (default: random UUID)")
	return cmd
}

// apply overlays the flags given on the command line onto the config values.
func (f batchFlags) apply(cmd *cobra.Command, bc config.BatchConfig) (config.BatchConfig, error) {
	fl := cmd.Flags()
	if fl.Changed("output") {
		bc.Output = f.output
	}
	if fl.Changed("workers") {
		bc.Workers = f.workers
	}
	if fl.Changed("no-header") {
		bc.Header = !f.noHeader
	}
	if fl.Changed("empty-exit-code") {
		bc.EmptyExitCode = f.emptyExitCode
	}
	if !slices.Contains(writers.Formats(), bc.Output) {
		return bc, fmt.Errorf("--output: unknown format %q (want one of %s)", bc.Output, strings.Join(writers.Formats(), ", "))
	}
	if bc.Workers < 0 {
		return bc, errors.New("--workers must be ≥ 0")
	}
	if bc.EmptyExitCode < 0 || bc.EmptyExitCode > 255 {
		return bc, errors.New("--empty-exit-code must be between 0 and 255")
	}
	return bc, nil
}

func (a *app) runBatch(parent context.Context, bc config.BatchConfig, session string, sources []string) error {
	// One probe machine resolves canonical wheel names for the results.
	probe, err := a.newMachine()
	if err != nil {
		return err
	}
	names := make([]string, 0, 3)
	for _, r := range probe.Rotors() {
		names = append(names, r.Name())
	}

	workers := bc.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	outw := bufio.NewWriter(a.out)
	inCh, writeErr := writers.Start(bc.Output, outw, writers.Options{
		Header:    bc.Header,
		Rotors:    names,
		Reflector: probe.Reflector().Name(),
		BufSize:   workers * 4,
	})

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total, perr := batch.Run(ctx,
		batch.Config{Workers: workers, Session: session, Logger: a.log, Stdin: a.in},
		sources,
		a.cfg.NewMachine,
		func(r batch.Result) error {
			select {
			case inCh <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)
	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return nil
	} else if werr != nil {
		return ioError(werr)
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return nil
	} else if e != nil {
		return ioError(e)
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return &exitError{code: ExitCanceled}
		}
		return ioError(perr)
	}
	if total == 0 {
		return &exitError{code: bc.EmptyExitCode}
	}
	return nil
}
