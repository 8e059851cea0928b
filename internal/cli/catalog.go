// internal/cli/catalog.go
package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"enigma-core/catalog"
	"enigma/internal/writers"
)

func (a *app) newCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the built-in rotors and reflectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := bufio.NewWriter(a.out)
			fmt.Fprintln(out, "# rotors")
			for _, n := range catalog.RotorNames() {
				r, err := catalog.Rotor(n)
				if err != nil {
					return ioError(err)
				}
				fmt.Fprintf(out, "%-6s %s  notches %s\n", r.Name(), r.Permutation, string(r.Turnovers()))
			}
			fmt.Fprintln(out, "# reflectors")
			for _, n := range catalog.ReflectorNames() {
				r, err := catalog.Reflector(n)
				if err != nil {
					return ioError(err)
				}
				fmt.Fprintf(out, "%-6s %s\n", r.Name(), r.Permutation)
			}
			if err := out.Flush(); err != nil && !writers.IsBrokenPipe(err) {
				return ioError(err)
			}
			return nil
		},
	}
}
