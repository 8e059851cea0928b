// internal/cli/encode.go
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"enigma-core/machine"
	"enigma-core/records"
	"enigma/internal/cliutil"
	"enigma/internal/writers"
)

const maxLine = 16 << 20

func (a *app) newEncodeCommand() *cobra.Command {
	var inputs []string
	cmd := &cobra.Command{
		Use:   "encode [text...]",
		Short: "Encode (or decode) text on a single machine session",
		Long: `Encode text given as arguments, or read it line by line from files or stdin.

All input shares one session: the rotors keep turning from one line to the
next, so decoding needs the same lines in the same order.`,
		Example: `  enigma encode HELLO WORLD
  enigma encode -p ADU -r II,IV,V -R C < message.txt
  enigma encode -i part1.txt -i part2.txt.gz`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && len(inputs) > 0 {
				return usageError(errors.New("give text arguments or --input, not both"))
			}
			m, err := a.newMachine()
			if err != nil {
				return err
			}
			start := m.Positions()
			out := bufio.NewWriter(a.out)
			if len(args) > 0 {
				err = encodeText(m, strings.Join(args, " "), out)
			} else {
				err = a.encodeInputs(cmd.Context(), m, inputs, out)
			}
			if err == nil {
				err = out.Flush()
			}
			a.log.Debug("session done", zap.String("start", start), zap.String("end", m.Positions()))
			switch {
			case err == nil, writers.IsBrokenPipe(err):
				return nil
			case errors.As(err, new(*exitError)):
				return err
			case errors.Is(err, context.Canceled):
				return &exitError{code: ExitCanceled}
			default:
				return ioError(err)
			}
		},
	}
	cmd.Flags().StringArrayVarP(&inputs, "input", "i", nil, "read text from file (repeatable, globs ok, '-' = stdin, gzip ok)")
	return cmd
}

func encodeText(m *machine.Machine, text string, w io.Writer) error {
	out, err := m.EncodeMessage(text)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func (a *app) encodeInputs(ctx context.Context, m *machine.Machine, inputs []string, w io.Writer) error {
	paths, err := cliutil.ExpandInputs(inputs)
	if err != nil {
		return usageError(err)
	}
	for _, p := range paths {
		if err := a.encodeFile(ctx, m, p, w); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func (a *app) encodeFile(ctx context.Context, m *machine.Machine, path string, w io.Writer) error {
	var (
		rc  io.ReadCloser
		err error
	)
	if path == cliutil.Stdin {
		rc, err = records.Wrap(a.in, nil)
	} else {
		rc, err = records.Open(path)
	}
	if err != nil {
		return err
	}
	defer rc.Close()

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := encodeText(m, strings.TrimSuffix(sc.Text(), "\r"), w); err != nil {
			return err
		}
	}
	return sc.Err()
}
