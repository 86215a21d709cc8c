package cmd

import (
	"github.com/spf13/cobra"

	"github.com/GPTx-global/gravity/relayer/config"
)

// ConfigCmd prints the loaded configuration.
func ConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the loaded configuration",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			config.Print()
		},
	}
}
