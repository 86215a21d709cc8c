package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GPTx-global/gravity/app"
	"github.com/GPTx-global/gravity/client"
	"github.com/GPTx-global/gravity/relayer/rotation"
	gravitytypes "github.com/GPTx-global/gravity/types"
)

type rotateResult struct {
	Round    gravitytypes.Bytes32 `json:"round"`
	Accepted bool                 `json:"accepted"`
}

// GetCmdRotateConsuls submits a signed consul rotation request file
func GetCmdRotateConsuls() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rotate [request-file]",
		Short: "Install the consuls of a signed rotation request",
		Long: `Install the consuls of a signed rotation request. A stale round or too few
valid signatures is reported as accepted: false and leaves the registry untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx := client.GetContext(cmd)

			req, err := rotation.ReadFile(args[0])
			if err != nil {
				return err
			}
			if req.Kind() != rotation.KindConsuls {
				return fmt.Errorf("expected a %s rotation, got %s", rotation.KindConsuls, req.Kind())
			}
			round, err := req.Round()
			if err != nil {
				return err
			}
			consuls, err := req.Members()
			if err != nil {
				return err
			}
			sigs, err := req.Signatures()
			if err != nil {
				return err
			}

			return clientCtx.WithApp(func(gravityApp *app.GravityApp) error {
				accepted, err := gravityApp.RotateConsuls(consuls, sigs, round)
				if err != nil {
					return err
				}
				return clientCtx.PrintObject(rotateResult{Round: round, Accepted: accepted})
			})
		},
	}

	client.AddOutputFlagToCmd(cmd)
	return cmd
}
