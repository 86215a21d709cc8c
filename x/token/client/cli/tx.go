package cli

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/GPTx-global/gravity/app"
	"github.com/GPTx-global/gravity/client"
	gravitytypes "github.com/GPTx-global/gravity/types"
)

// GetCmdTransfer moves tokens from --from to a recipient
func GetCmdTransfer() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer [to] [amount]",
		Short: "Transfer tokens",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx := client.GetContext(cmd)

			from, err := client.GetFromAddress(cmd)
			if err != nil {
				return err
			}
			to, err := gravitytypes.ParseAccount(args[0])
			if err != nil {
				return err
			}
			amount, err := math.ParseUint(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			return clientCtx.WithApp(func(gravityApp *app.GravityApp) error {
				if err := gravityApp.Transfer(from, to, amount); err != nil {
					return err
				}
				return clientCtx.PrintObject(balance{Address: from.String(), Balance: gravityApp.Balance(from)})
			})
		},
	}

	client.AddTxFlagsToCmd(cmd)
	return cmd
}

// GetCmdAddDeployer grants deployer rights, called by an existing deployer
func GetCmdAddDeployer() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-deployer [address]",
		Short: "Add a deployer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx := client.GetContext(cmd)

			caller, err := client.GetFromAddress(cmd)
			if err != nil {
				return err
			}
			addr, err := gravitytypes.ParseAccount(args[0])
			if err != nil {
				return err
			}

			return clientCtx.WithApp(func(gravityApp *app.GravityApp) error {
				if err := gravityApp.AddDeployer(caller, addr); err != nil {
					return err
				}
				return clientCtx.PrintString(fmt.Sprintf("added deployer %s", addr))
			})
		},
	}

	client.AddTxFlagsToCmd(cmd)
	return cmd
}
