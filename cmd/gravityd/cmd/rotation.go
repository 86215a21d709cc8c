package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GPTx-global/gravity/app"
	"github.com/GPTx-global/gravity/client"
	"github.com/GPTx-global/gravity/relayer/log"
	"github.com/GPTx-global/gravity/relayer/rotation"
	gravitytypes "github.com/GPTx-global/gravity/types"
)

const (
	FlagSlots = "slots"
	FlagSlot  = "slot"
	FlagOut   = "out"
)

// RotationCmd groups the commands that prepare and sign rotation requests.
func RotationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rotation",
		Short: "Prepare and sign consul or oracle rotation requests",
	}
	cmd.AddCommand(
		NewRotationCmd(),
		SignRotationCmd(),
		ShowRotationCmd(),
	)
	return cmd
}

func NewRotationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new [consuls|oracles] [round] [member]...",
		Short: "Create an unsigned rotation request",
		Long: `Create an unsigned rotation request. Consul requests have one signature slot
per incoming consul. Oracle requests have one slot per current consul unless
--slots is given.`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx := client.GetContext(cmd)

			kind := rotation.Kind(args[0])
			if err := kind.Validate(); err != nil {
				return err
			}
			round, err := gravitytypes.ParseBytes32(args[1])
			if err != nil {
				return err
			}
			members, err := gravitytypes.ParseWordList(args[2:])
			if err != nil {
				return err
			}

			slots, _ := cmd.Flags().GetInt(FlagSlots)
			if kind == rotation.KindOracles && slots == 0 {
				err := clientCtx.WithApp(func(gravityApp *app.GravityApp) error {
					slots = len(gravityApp.Consuls().Consuls)
					return nil
				})
				if err != nil {
					return err
				}
			}

			req, err := rotation.New(kind, round, members, slots)
			if err != nil {
				return err
			}
			return writeRequest(cmd, req)
		},
	}

	cmd.Flags().Int(FlagSlots, 0, "Number of signature slots of an oracle request")
	cmd.Flags().String(FlagOut, "", "Write the request to a file instead of stdout")
	return cmd
}

func SignRotationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign [request-file]",
		Short: "Sign a rotation request with the local key and store it in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx := client.GetContext(cmd)

			req, err := rotation.ReadFile(args[0])
			if err != nil {
				return err
			}

			slot, _ := cmd.Flags().GetInt(FlagSlot)
			if slot < 0 {
				if client.GetString(cmd, client.FlagKMSKeyID) != "" {
					return fmt.Errorf("--%s is required when signing with a kms key", FlagSlot)
				}
				slot = int(client.SigningKeyIndex(cmd))
			}
			signer, err := client.LoadSigner(cmd)
			if err != nil {
				return err
			}
			if _, err := req.Sign(signer, slot); err != nil {
				return err
			}
			if err := req.WriteFile(args[0]); err != nil {
				return err
			}

			log.Info("signed rotation request", "kind", string(req.Kind()), "slot", slot, "signer", signer.Address().Hex())
			return clientCtx.PrintObject(describe(req))
		},
	}

	client.AddSignerFlagsToCmd(cmd)
	cmd.Flags().Int(FlagSlot, -1, "Signature slot; defaults to the key index")
	client.AddOutputFlagToCmd(cmd)
	return cmd
}

func ShowRotationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [request-file]",
		Short: "Show a rotation request with its digest and signed slots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := rotation.ReadFile(args[0])
			if err != nil {
				return err
			}
			return client.GetContext(cmd).PrintObject(describe(req))
		},
	}

	client.AddOutputFlagToCmd(cmd)
	return cmd
}

type requestSummary struct {
	Kind    rotation.Kind          `json:"kind"`
	Round   string                 `json:"round"`
	Members []gravitytypes.Bytes32 `json:"members"`
	Digest  string                 `json:"digest"`
	Signed  []bool                 `json:"signed"`
}

func describe(req *rotation.Request) requestSummary {
	summary := requestSummary{Kind: req.Kind(), Signed: req.Signed()}
	if round, err := req.Round(); err == nil {
		summary.Round = round.String()
	}
	if members, err := req.Members(); err == nil {
		summary.Members = members
	}
	if digest, err := req.Digest(); err == nil {
		summary.Digest = digest.String()
	}
	return summary
}

func writeRequest(cmd *cobra.Command, req *rotation.Request) error {
	out, _ := cmd.Flags().GetString(FlagOut)
	if out == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(req.Bytes()))
		return err
	}
	if err := req.WriteFile(out); err != nil {
		return err
	}
	log.Info("wrote rotation request", "file", out)
	return nil
}
