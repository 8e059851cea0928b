// internal/cli/root.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"enigma-core/machine"
	"enigma/internal/config"
	"enigma/internal/logging"
	"enigma/internal/version"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitEmpty    = 1 // default for batch runs that produced nothing
	ExitUsage    = 2
	ExitIO       = 3
	ExitCanceled = 130
)

// exitError carries a process exit code. A nil err means exit quietly.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func usageError(err error) error { return &exitError{code: ExitUsage, err: err} }
func ioError(err error) error    { return &exitError{code: ExitIO, err: err} }

type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	opts GlobalOptions
	cfg  *config.Config
	log  *zap.Logger
}

// Run executes one command line with the process stdin.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunIO(ctx, argv, os.Stdin, stdout, stderr)
}

// RunIO executes one command line and returns the process exit code.
func RunIO(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{in: stdin, out: stdout, errOut: stderr, log: zap.NewNop()}
	root := a.newRootCommand()
	root.SetArgs(argv)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	_ = a.log.Sync()
	return a.exitCode(ctx, err)
}

func (a *app) exitCode(ctx context.Context, err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			_, _ = fmt.Fprintln(a.errOut, "error:", ee.err)
		}
		return ee.code
	}
	if errors.Is(err, context.Canceled) || ctx.Err() != nil {
		return ExitCanceled
	}
	// Anything cobra itself rejects: unknown command, bad flag, bad arg count.
	_, _ = fmt.Fprintln(a.errOut, "error:", err)
	_, _ = fmt.Fprintln(a.errOut, "Run 'enigma --help' for usage.")
	return ExitUsage
}

func (a *app) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "enigma",
		Short: "Three-rotor cipher machine simulator",
		Long: `enigma simulates a three-rotor, reflector-based cipher machine.

Encoding is reciprocal: running the ciphertext through a machine set to the
same rotors, reflector and start positions gives back the plaintext.
Letters are upper-cased; every other character passes through unchanged and
does not move the rotors.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.opts.Resolve(cmd.Flags())
			if err != nil {
				return usageError(err)
			}
			log, err := logging.New(cfg.Logging, a.errOut)
			if err != nil {
				return usageError(err)
			}
			a.cfg, a.log = cfg, log
			a.log.Debug("config resolved",
				zap.Strings("rotors", cfg.Machine.Rotors),
				zap.String("reflector", cfg.Machine.Reflector),
				zap.String("positions", cfg.Machine.Positions),
				zap.String("command", cmd.Name()))
			return nil
		},
	}
	a.opts.Register(root.PersistentFlags())

	root.AddCommand(
		a.newEncodeCommand(),
		a.newBatchCommand(),
		a.newStateCommand(),
		a.newCatalogCommand(),
		a.newKeyboardCommand(),
		a.newConfigCommand(),
	)
	return root
}

// newMachine builds a fresh session from the resolved config.
func (a *app) newMachine() (*machine.Machine, error) {
	m, err := a.cfg.NewMachine()
	if err != nil {
		return nil, usageError(err)
	}
	return m, nil
}
