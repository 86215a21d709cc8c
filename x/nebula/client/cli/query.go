package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GPTx-global/gravity/app"
	"github.com/GPTx-global/gravity/client"
	gravitytypes "github.com/GPTx-global/gravity/types"
	"github.com/GPTx-global/gravity/x/nebula/types"
)

// GetOraclesCmd returns the oracle registry commands
func GetOraclesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "oracles",
		Short:                      fmt.Sprintf("Commands for the %s oracle registry", types.ModuleName),
		SuggestionsMinimumDistance: 2,
	}

	cmd.AddCommand(
		GetCmdShowOracles(),
		GetCmdRoundMutated(),
		GetCmdOraclesDigest(),
		GetCmdRotateOracles(),
		GetCmdSubscribe(),
		GetCmdQuerySubscription(),
	)
	return cmd
}

// GetCmdShowOracles implements the oracle set query command
func GetCmdShowOracles() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Query the feed type, threshold and current oracles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx := client.GetContext(cmd)
			return clientCtx.WithApp(func(gravityApp *app.GravityApp) error {
				return clientCtx.PrintObject(gravityApp.Oracles())
			})
		},
	}

	client.AddOutputFlagToCmd(cmd)
	return cmd
}

// GetCmdRoundMutated reports whether a round already rotated the oracles
func GetCmdRoundMutated() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round [round]",
		Short: "Query whether a round already rotated the oracles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx := client.GetContext(cmd)
			round, err := gravitytypes.ParseBytes32(args[0])
			if err != nil {
				return err
			}
			return clientCtx.WithApp(func(gravityApp *app.GravityApp) error {
				return clientCtx.PrintObject(map[string]interface{}{
					"round":   round,
					"mutated": gravityApp.IsRoundMutated(round),
				})
			})
		},
	}

	client.AddOutputFlagToCmd(cmd)
	return cmd
}

// GetCmdOraclesDigest prints the message consuls sign for an oracle rotation
func GetCmdOraclesDigest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digest [oracle]...",
		Short: "Compute the digest consuls sign for an oracle rotation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			oracles, err := gravitytypes.ParseWordList(args)
			if err != nil {
				return err
			}
			return client.GetContext(cmd).PrintString(types.HashNewOracles(oracles).String())
		},
	}
	return cmd
}

// GetCmdQuerySubscription implements the subscription query command
func GetCmdQuerySubscription() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscription [id]",
		Short: "Query a subscription by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx := client.GetContext(cmd)
			id, err := gravitytypes.ParseBytes32(args[0])
			if err != nil {
				return err
			}
			return clientCtx.WithApp(func(gravityApp *app.GravityApp) error {
				sub, err := gravityApp.Subscription(id)
				if err != nil {
					return err
				}
				return clientCtx.PrintObject(sub)
			})
		},
	}

	client.AddOutputFlagToCmd(cmd)
	return cmd
}
