package gravity

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	gravitytypes "github.com/GPTx-global/gravity/types"
	"github.com/GPTx-global/gravity/x/gravity/keeper"
	"github.com/GPTx-global/gravity/x/gravity/types"
)

// InitGenesis new gravity genesis
func InitGenesis(ctx sdk.Context, k keeper.Keeper, data types.GenesisState) {
	if err := data.Validate(); err != nil {
		panic(errorsmod.Wrapf(types.ErrInvalidGenesis, "%s", err))
	}

	k.Initialize(ctx, data.Consuls, data.Threshold)
	for _, r := range data.Rounds {
		k.ImportRound(ctx, r.Round, r.Consuls)
	}
}

// ExportGenesis returns a GenesisState for a given context and keeper.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) types.GenesisState {
	var zero gravitytypes.Bytes32
	genesis := types.NewGenesisState(k.GetConsulsByRound(ctx, zero), k.GetThreshold(ctx))
	k.IterateRounds(ctx, func(round gravitytypes.Bytes32, consuls []gravitytypes.Bytes32) bool {
		if round.IsZero() {
			return false
		}
		genesis.Rounds = append(genesis.Rounds, types.RoundConsuls{Round: round, Consuls: consuls})
		return false
	})
	return genesis
}
