// internal/cli/state.go
package cli

import (
	"bufio"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"enigma/internal/pretty"
	"enigma/internal/writers"
)

func (a *app) newStateCommand() *cobra.Command {
	var (
		asJSON   bool
		asPretty bool
		advance  int
	)
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Show the machine configuration and its substitution table",
		Long: `Show the wheels, reflector and positions of the configured machine, and the
table of what each letter encodes to as the first key pressed from position AAA.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if advance < 0 {
				return usageError(fmt.Errorf("--advance must be ≥ 0, got %d", advance))
			}
			m, err := a.newMachine()
			if err != nil {
				return err
			}
			for i := 0; i < advance; i++ {
				m.Step()
			}

			out := bufio.NewWriter(a.out)
			switch {
			case asJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				err = enc.Encode(pretty.State(m))
			case asPretty:
				_, err = fmt.Fprint(out, pretty.Render(pretty.State(m), pretty.DefaultStyles()))
			default:
				_, err = fmt.Fprintln(out, m.String())
			}
			if err == nil {
				err = out.Flush()
			}
			if err != nil && !writers.IsBrokenPipe(err) {
				return ioError(err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the state as JSON")
	cmd.Flags().BoolVar(&asPretty, "pretty", false, "draw the state as terminal panels")
	cmd.Flags().IntVar(&advance, "advance", 0, "step the rotors N times before showing")
	cmd.MarkFlagsMutuallyExclusive("json", "pretty")
	return cmd
}
