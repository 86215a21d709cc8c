package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GPTx-global/gravity/app"
	"github.com/GPTx-global/gravity/client"
	gravitytypes "github.com/GPTx-global/gravity/types"
	"github.com/GPTx-global/gravity/x/gravity/types"
)

const FlagRound = "round"

// GetConsulsCmd returns the consul registry commands
func GetConsulsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "consuls",
		Short:                      fmt.Sprintf("Commands for the %s consul registry", types.ModuleName),
		SuggestionsMinimumDistance: 2,
	}

	cmd.AddCommand(
		GetCmdShowConsuls(),
		GetCmdConsulsDigest(),
		GetCmdRotateConsuls(),
	)
	return cmd
}

type roundConsuls struct {
	Round   gravitytypes.Bytes32   `json:"round"`
	Consuls []gravitytypes.Bytes32 `json:"consuls"`
}

// GetCmdShowConsuls implements the consuls query command
func GetCmdShowConsuls() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Query the consuls of the last round, or of --round",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx := client.GetContext(cmd)
			roundFlag, _ := cmd.Flags().GetString(FlagRound)

			return clientCtx.WithApp(func(gravityApp *app.GravityApp) error {
				if roundFlag == "" {
					return clientCtx.PrintObject(gravityApp.Consuls())
				}
				round, err := gravitytypes.ParseBytes32(roundFlag)
				if err != nil {
					return err
				}
				consuls := gravityApp.ConsulsByRound(round)
				if consuls == nil {
					consuls = []gravitytypes.Bytes32{}
				}
				return clientCtx.PrintObject(roundConsuls{Round: round, Consuls: consuls})
			})
		},
	}

	cmd.Flags().String(FlagRound, "", "Round id (hex word)")
	client.AddOutputFlagToCmd(cmd)
	return cmd
}

// GetCmdConsulsDigest prints the message a consul rotation must be signed over
func GetCmdConsulsDigest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digest [round] [consul]...",
		Short: "Compute the digest incoming consuls sign for a rotation",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			round, err := gravitytypes.ParseBytes32(args[0])
			if err != nil {
				return err
			}
			consuls, err := gravitytypes.ParseWordList(args[1:])
			if err != nil {
				return err
			}
			return client.GetContext(cmd).PrintString(types.HashNewConsuls(consuls, round).String())
		},
	}
	return cmd
}
