package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	tmjson "github.com/tendermint/tendermint/libs/json"

	"github.com/GPTx-global/gravity/app"
	"github.com/GPTx-global/gravity/client"
	"github.com/GPTx-global/gravity/relayer/config"
)

const FlagOutputDocument = "output-document"

// ExportCmd dumps the current state as a genesis document.
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export state to a genesis document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx := client.GetContext(cmd)

			var genesis app.GenesisState
			err := clientCtx.WithApp(func(gravityApp *app.GravityApp) error {
				var err error
				genesis, err = gravityApp.ExportGenesis()
				return err
			})
			if err != nil {
				return err
			}

			doc, err := client.NewGenesisDoc(config.ChainID(), genesis)
			if err != nil {
				return err
			}
			bz, err := tmjson.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal genesis: %w", err)
			}

			if path, _ := cmd.Flags().GetString(FlagOutputDocument); path != "" {
				return os.WriteFile(path, append(bz, '\n'), 0o644)
			}
			return clientCtx.PrintRaw(bz)
		},
	}

	cmd.Flags().String(FlagOutputDocument, "", "Write the genesis JSON to a file instead of stdout")
	cmd.Flags().StringP(client.FlagOutput, "o", client.OutputFormatJSON, "Output format (text|json)")
	return cmd
}
