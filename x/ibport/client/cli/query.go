package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GPTx-global/gravity/app"
	"github.com/GPTx-global/gravity/client"
	"github.com/GPTx-global/gravity/x/ibport/types"
)

// GetIBPortCmd returns the bridge relay commands
func GetIBPortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      fmt.Sprintf("Commands for the %s bridge relay", types.ModuleName),
		SuggestionsMinimumDistance: 2,
	}

	cmd.AddCommand(
		GetCmdApplyCommands(),
		GetCmdRequestUnwrap(),
		GetCmdQuerySwapStatus(),
		GetCmdQueryUnwrapRequest(),
		GetCmdQueryNebula(),
		GetCmdEncodeMint(),
		GetCmdEncodeChange(),
	)
	return cmd
}

type swapStatus struct {
	SwapID types.SwapID        `json:"swap_id"`
	Status types.RequestStatus `json:"status"`
}

// GetCmdQuerySwapStatus implements the swap status query command
func GetCmdQuerySwapStatus() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [swap-id]",
		Short: "Query the status of a swap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx := client.GetContext(cmd)
			id, err := types.ParseSwapID(args[0])
			if err != nil {
				return err
			}
			return clientCtx.WithApp(func(gravityApp *app.GravityApp) error {
				return clientCtx.PrintObject(swapStatus{SwapID: id, Status: gravityApp.SwapStatus(id)})
			})
		},
	}

	client.AddOutputFlagToCmd(cmd)
	return cmd
}

// GetCmdQueryUnwrapRequest implements the unwrap request query command
func GetCmdQueryUnwrapRequest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unwrap-request [swap-id]",
		Short: "Query an unwrap request by swap id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx := client.GetContext(cmd)
			id, err := types.ParseSwapID(args[0])
			if err != nil {
				return err
			}
			return clientCtx.WithApp(func(gravityApp *app.GravityApp) error {
				req, err := gravityApp.UnwrapRequest(id)
				if err != nil {
					return err
				}
				return clientCtx.PrintObject(req)
			})
		},
	}

	client.AddOutputFlagToCmd(cmd)
	return cmd
}

// GetCmdQueryNebula implements the authorized caller query command
func GetCmdQueryNebula() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nebula",
		Short: "Query the account allowed to apply command streams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx := client.GetContext(cmd)
			return clientCtx.WithApp(func(gravityApp *app.GravityApp) error {
				nebula := ""
				if addr := gravityApp.Nebula(); !addr.Empty() {
					nebula = addr.String()
				}
				return clientCtx.PrintObject(map[string]string{"nebula": nebula})
			})
		},
	}

	client.AddOutputFlagToCmd(cmd)
	return cmd
}
