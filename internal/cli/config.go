// internal/cli/config.go
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"enigma/internal/writers"
)

func (a *app) newConfigCommand() *cobra.Command {
	var write string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration, or save it as a config file",
		Long: `Print the configuration after defaults, the config file, ENIGMA_* variables
and flags have been applied. With --write the same YAML is saved to a file
that can be passed back with --config.`,
		Example: `  enigma -r II,IV,V -R C -p DHL config --write ~/.config/enigma.yaml
  enigma --config ~/.config/enigma.yaml encode ATTACK AT DAWN`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if write != "" {
				if err := a.cfg.Save(write); err != nil {
					return ioError(err)
				}
				a.log.Info("config saved", zap.String("path", write))
				return nil
			}
			data, err := a.cfg.Marshal()
			if err != nil {
				return ioError(err)
			}
			if _, err := a.out.Write(data); err != nil && !writers.IsBrokenPipe(err) {
				return ioError(err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&write, "write", "w", "", "save the resolved configuration to this file")
	return cmd
}
