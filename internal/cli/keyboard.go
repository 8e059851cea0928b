// internal/cli/keyboard.go
package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"enigma/internal/lampboard"
)

func (a *app) newKeyboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keyboard",
		Short: "Type on an interactive lampboard",
		Long: `Open an interactive keyboard. Each letter key turns the rotors and lights the
lamp of its encoded letter. Backspace does nothing (the rotors cannot step
back); ctrl+r returns to the start positions; esc or ctrl+c quits and prints
the tape.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.newMachine()
			if err != nil {
				return err
			}
			final, err := lampboard.Run(cmd.Context(), m, a.in, a.out)
			if err != nil {
				if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
					return &exitError{code: ExitCanceled}
				}
				return ioError(err)
			}
			a.log.Info("keyboard closed", zap.Int("keys", len([]rune(final.Typed()))), zap.String("positions", m.Positions()))
			if tape := final.Tape(); tape != "" {
				if _, err := fmt.Fprintln(a.out, tape); err != nil {
					return ioError(err)
				}
			}
			return nil
		},
	}
}
