package cli

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/GPTx-global/gravity/app"
	"github.com/GPTx-global/gravity/client"
	gravitytypes "github.com/GPTx-global/gravity/types"
	"github.com/GPTx-global/gravity/x/token/types"
)

// GetTokenCmd returns the ledger commands
func GetTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      fmt.Sprintf("Commands for the %s ledger", types.ModuleName),
		SuggestionsMinimumDistance: 2,
	}

	cmd.AddCommand(
		GetCmdQueryBalance(),
		GetCmdQuerySupply(),
		GetCmdTransfer(),
		GetCmdAddDeployer(),
	)
	return cmd
}

type balance struct {
	Address string    `json:"address"`
	Balance math.Uint `json:"balance"`
}

// GetCmdQueryBalance implements the balance query command
func GetCmdQueryBalance() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance [address]",
		Short: "Query the balance of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx := client.GetContext(cmd)
			addr, err := gravitytypes.ParseAccount(args[0])
			if err != nil {
				return err
			}
			return clientCtx.WithApp(func(gravityApp *app.GravityApp) error {
				return clientCtx.PrintObject(balance{Address: addr.String(), Balance: gravityApp.Balance(addr)})
			})
		},
	}

	client.AddOutputFlagToCmd(cmd)
	return cmd
}

// GetCmdQuerySupply implements the supply query command
func GetCmdQuerySupply() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "supply",
		Short: "Query the token metadata and total supply",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx := client.GetContext(cmd)
			return clientCtx.WithApp(func(gravityApp *app.GravityApp) error {
				return clientCtx.PrintObject(gravityApp.Supply())
			})
		},
	}

	client.AddOutputFlagToCmd(cmd)
	return cmd
}
