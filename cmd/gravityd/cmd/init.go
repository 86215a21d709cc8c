package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GPTx-global/gravity/app"
	"github.com/GPTx-global/gravity/client"
	"github.com/GPTx-global/gravity/relayer/config"
	"github.com/GPTx-global/gravity/relayer/log"
	gravitytypes "github.com/GPTx-global/gravity/types"
	consultypes "github.com/GPTx-global/gravity/x/gravity/types"
	ibporttypes "github.com/GPTx-global/gravity/x/ibport/types"
	nebulatypes "github.com/GPTx-global/gravity/x/nebula/types"
	tokentypes "github.com/GPTx-global/gravity/x/token/types"
)

const (
	FlagChainID     = "chain-id"
	FlagConsuls     = "consuls"
	FlagConsulKeys  = "consul-keys"
	FlagThreshold   = "threshold"
	FlagOracles     = "oracles"
	FlagFeedType    = "feed-type"
	FlagNebula      = "nebula"
	FlagTokenName   = "token-name"
	FlagTokenSymbol = "token-symbol"
	FlagDeployers   = "deployers"
)

type initResult struct {
	ChainID     string `json:"chain_id"`
	GenesisFile string `json:"genesis_file"`
}

// InitCmd writes config.toml and a genesis document to the home directory.
// The genesis is applied when the state is first opened.
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the node configuration and genesis file",
		Long: `Initialize the node configuration and genesis file. Consuls are given as hex
committee entries with --consuls, or derived from the first --consul-keys keys
of the configured mnemonic.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx := client.GetContext(cmd)
			flags := cmd.Flags()

			chainID, _ := flags.GetString(FlagChainID)
			overwrite, _ := flags.GetBool(client.FlagOverwrite)

			consuls, err := initialConsuls(cmd)
			if err != nil {
				return err
			}
			oracleValues, _ := flags.GetStringSlice(FlagOracles)
			oracles, err := gravitytypes.ParseWordList(oracleValues)
			if err != nil {
				return fmt.Errorf("invalid --%s: %w", FlagOracles, err)
			}
			feedValue, _ := flags.GetString(FlagFeedType)
			feedType, err := nebulatypes.ParseFeedType(feedValue)
			if err != nil {
				return err
			}
			threshold, _ := flags.GetUint64(FlagThreshold)

			nebula := ""
			if value, _ := flags.GetString(FlagNebula); value != "" {
				addr, err := gravitytypes.ParseAccount(value)
				if err != nil {
					return fmt.Errorf("invalid --%s: %w", FlagNebula, err)
				}
				nebula = addr.String()
			}

			deployerValues, _ := flags.GetStringSlice(FlagDeployers)
			deployers := make([]string, len(deployerValues))
			for i, value := range deployerValues {
				addr, err := gravitytypes.ParseAccount(value)
				if err != nil {
					return fmt.Errorf("invalid deployer %q: %w", value, err)
				}
				deployers[i] = addr.String()
			}
			name, _ := flags.GetString(FlagTokenName)
			symbol, _ := flags.GetString(FlagTokenSymbol)

			genesis := app.NewDefaultGenesisState()
			for module, state := range map[string]interface{}{
				consultypes.ModuleName: consultypes.NewGenesisState(consuls, threshold),
				nebulatypes.ModuleName: nebulatypes.NewGenesisState(feedType, threshold, oracles),
				ibporttypes.ModuleName: ibporttypes.NewGenesisState(nebula, nil, nil),
				tokentypes.ModuleName:  tokentypes.NewGenesisState(tokentypes.Metadata{Name: name, Symbol: symbol}, deployers, nil),
			} {
				if err := genesis.Set(module, state); err != nil {
					return err
				}
			}
			if err := genesis.Validate(); err != nil {
				return err
			}

			if err := config.SetChainID(chainID); err != nil {
				return err
			}
			doc, err := client.NewGenesisDoc(chainID, genesis)
			if err != nil {
				return err
			}
			if err := clientCtx.WriteGenesis(doc, overwrite); err != nil {
				return err
			}

			log.Info("initialized node", "chain_id", chainID, "consuls", len(consuls), "home", clientCtx.Home)
			return clientCtx.PrintObject(initResult{ChainID: chainID, GenesisFile: clientCtx.GenesisFile()})
		},
	}

	cmd.Flags().String(FlagChainID, config.DefaultChainID, "Chain id")
	cmd.Flags().StringSlice(FlagConsuls, nil, "Initial consul entries (hex words)")
	cmd.Flags().Uint32(FlagConsulKeys, 0, "Derive the initial consuls from the first n keys of the mnemonic")
	cmd.Flags().Uint64(FlagThreshold, 1, "Consul and oracle rotation threshold")
	cmd.Flags().StringSlice(FlagOracles, nil, "Initial oracle entries (hex words)")
	cmd.Flags().String(FlagFeedType, nebulatypes.FeedTypeInt64.String(), "Feed data type (int64|string|bytes)")
	cmd.Flags().String(FlagNebula, "", "Account allowed to apply command streams")
	cmd.Flags().String(FlagTokenName, tokentypes.DefaultGenesisState().Metadata.Name, "Token name")
	cmd.Flags().String(FlagTokenSymbol, tokentypes.DefaultGenesisState().Metadata.Symbol, "Token symbol")
	cmd.Flags().StringSlice(FlagDeployers, nil, "Initial deployer accounts")
	cmd.Flags().Bool(client.FlagOverwrite, false, "Overwrite an existing genesis file")
	client.AddOutputFlagToCmd(cmd)
	return cmd
}

func initialConsuls(cmd *cobra.Command) ([]gravitytypes.Bytes32, error) {
	values, _ := cmd.Flags().GetStringSlice(FlagConsuls)
	n, _ := cmd.Flags().GetUint32(FlagConsulKeys)

	switch {
	case len(values) > 0 && n > 0:
		return nil, fmt.Errorf("--%s and --%s are exclusive", FlagConsuls, FlagConsulKeys)
	case n > 0:
		kr, err := client.LoadKeyring()
		if err != nil {
			return nil, err
		}
		return kr.Entries(n)
	default:
		consuls, err := gravitytypes.ParseWordList(values)
		if err != nil {
			return nil, fmt.Errorf("invalid --%s: %w", FlagConsuls, err)
		}
		return consuls, nil
	}
}
