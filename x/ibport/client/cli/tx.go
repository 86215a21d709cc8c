package cli

import (
	"fmt"
	"os"

	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/GPTx-global/gravity/app"
	"github.com/GPTx-global/gravity/client"
	gravitytypes "github.com/GPTx-global/gravity/types"
	"github.com/GPTx-global/gravity/x/ibport/types"
)

const FlagFile = "file"

type applyResult struct {
	Results []types.CommandResult `json:"results"`
	Error   string                `json:"error,omitempty"`
}

// GetCmdApplyCommands executes a command stream as --from
func GetCmdApplyCommands() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply [0x-stream]",
		Short: "Apply a mint/change command stream",
		Long: `Apply a mint/change command stream. The stream is given as 0x hex or read
raw from --file. Commands run in order; a failing command is reported in its
result and the rest still run. A malformed stream stops at the bad command and
keeps what ran before it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx := client.GetContext(cmd)

			caller, err := client.GetFromAddress(cmd)
			if err != nil {
				return err
			}

			var data []byte
			file, _ := cmd.Flags().GetString(FlagFile)
			switch {
			case file != "" && len(args) == 1:
				return fmt.Errorf("give the stream either as argument or with --%s", FlagFile)
			case file != "":
				if data, err = os.ReadFile(file); err != nil {
					return err
				}
			case len(args) == 1:
				if data, err = hexutil.Decode(args[0]); err != nil {
					return fmt.Errorf("invalid stream: %w", err)
				}
			default:
				return fmt.Errorf("no command stream given")
			}

			return clientCtx.WithApp(func(gravityApp *app.GravityApp) error {
				results, applyErr := gravityApp.ApplyCommands(caller, data)
				out := applyResult{Results: results}
				if out.Results == nil {
					out.Results = []types.CommandResult{}
				}
				if applyErr != nil {
					out.Error = applyErr.Error()
				}
				if err := clientCtx.PrintObject(out); err != nil {
					return err
				}
				return applyErr
			})
		},
	}

	cmd.Flags().String(FlagFile, "", "Read the raw stream from a file")
	client.AddTxFlagsToCmd(cmd)
	return cmd
}

type unwrapResult struct {
	SwapID types.SwapID `json:"swap_id"`
}

// GetCmdRequestUnwrap burns --from's tokens and records an unwrap request
func GetCmdRequestUnwrap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unwrap [amount] [receiver]",
		Short: "Burn tokens and request their release to a foreign receiver",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx := client.GetContext(cmd)

			caller, err := client.GetFromAddress(cmd)
			if err != nil {
				return err
			}
			amount, err := math.ParseUint(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			receiver, err := gravitytypes.ParseAccount(args[1])
			if err != nil {
				return err
			}

			return clientCtx.WithApp(func(gravityApp *app.GravityApp) error {
				id, err := gravityApp.RequestUnwrap(caller, amount, receiver)
				if err != nil {
					return err
				}
				return clientCtx.PrintObject(unwrapResult{SwapID: id})
			})
		},
	}

	client.AddTxFlagsToCmd(cmd)
	return cmd
}

// GetCmdEncodeMint prints the stream encoding of a mint command
func GetCmdEncodeMint() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode-mint [swap-id] [amount] [receiver]",
		Short: "Encode a mint command as 0x hex",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := types.ParseSwapID(args[0])
			if err != nil {
				return err
			}
			amount, err := math.ParseUint(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}
			receiver, err := gravitytypes.ParseAccount(args[2])
			if err != nil {
				return err
			}
			bz, err := types.EncodeMintCommand(id, amount, receiver)
			if err != nil {
				return err
			}
			return client.GetContext(cmd).PrintString(hexutil.Encode(bz))
		},
	}
	return cmd
}

// GetCmdEncodeChange prints the stream encoding of a status change command
func GetCmdEncodeChange() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode-change [swap-id] [status]",
		Short: "Encode a status change command as 0x hex",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := types.ParseSwapID(args[0])
			if err != nil {
				return err
			}
			status, err := types.ParseRequestStatus(args[1])
			if err != nil {
				return err
			}
			return client.GetContext(cmd).PrintString(hexutil.Encode(types.EncodeChangeCommand(id, status)))
		},
	}
	return cmd
}
