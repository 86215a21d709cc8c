package cli

import (
	"fmt"
	stdmath "math"

	"cosmossdk.io/math"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/GPTx-global/gravity/app"
	"github.com/GPTx-global/gravity/client"
	"github.com/GPTx-global/gravity/relayer/rotation"
	gravitytypes "github.com/GPTx-global/gravity/types"
)

// GetCmdRotateOracles submits a signed oracle rotation request file
func GetCmdRotateOracles() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rotate [request-file]",
		Short: "Replace the oracles with the set of a signed rotation request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx := client.GetContext(cmd)

			req, err := rotation.ReadFile(args[0])
			if err != nil {
				return err
			}
			if req.Kind() != rotation.KindOracles {
				return fmt.Errorf("expected a %s rotation, got %s", rotation.KindOracles, req.Kind())
			}
			round, err := req.Round()
			if err != nil {
				return err
			}
			oracles, err := req.Members()
			if err != nil {
				return err
			}
			sigs, err := req.Signatures()
			if err != nil {
				return err
			}

			return clientCtx.WithApp(func(gravityApp *app.GravityApp) error {
				if err := gravityApp.RotateOracles(oracles, sigs, round); err != nil {
					return err
				}
				return clientCtx.PrintObject(gravityApp.Oracles())
			})
		},
	}

	client.AddOutputFlagToCmd(cmd)
	return cmd
}

type subscribeResult struct {
	ID gravitytypes.Bytes32 `json:"id"`
}

// GetCmdSubscribe registers a subscription owned by --from
func GetCmdSubscribe() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscribe [contract] [min-confirmations] [reward]",
		Short: "Subscribe a contract to the feed",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx := client.GetContext(cmd)

			caller, err := client.GetFromAddress(cmd)
			if err != nil {
				return err
			}
			contract, err := gravitytypes.ParseAccount(args[0])
			if err != nil {
				return err
			}
			minConfirmations, err := cast.ToUint64E(args[1])
			if err != nil || minConfirmations > stdmath.MaxUint8 {
				return fmt.Errorf("invalid min confirmations %q", args[1])
			}
			reward, err := math.ParseUint(args[2])
			if err != nil {
				return fmt.Errorf("invalid reward %q: %w", args[2], err)
			}

			return clientCtx.WithApp(func(gravityApp *app.GravityApp) error {
				id, err := gravityApp.Subscribe(caller, contract, uint8(minConfirmations), reward)
				if err != nil {
					return err
				}
				return clientCtx.PrintObject(subscribeResult{ID: id})
			})
		},
	}

	client.AddTxFlagsToCmd(cmd)
	return cmd
}
