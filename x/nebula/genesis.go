package nebula

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/gravity/x/nebula/keeper"
	"github.com/GPTx-global/gravity/x/nebula/types"
)

// InitGenesis new nebula genesis
func InitGenesis(ctx sdk.Context, k keeper.Keeper, data types.GenesisState) {
	if err := data.Validate(); err != nil {
		panic(errorsmod.Wrapf(types.ErrInvalidGenesis, "%s", err))
	}

	if err := k.Initialize(ctx, data.FeedType, data.Threshold, data.Oracles); err != nil {
		panic(err)
	}
	for _, round := range data.MutatedRounds {
		k.SetRoundMutated(ctx, round)
	}
	for _, s := range data.Subscriptions {
		k.SetSubscription(ctx, s)
	}
}

// ExportGenesis returns a GenesisState for a given context and keeper.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) types.GenesisState {
	genesis := types.NewGenesisState(k.GetFeedType(ctx), k.GetThreshold(ctx), k.GetOracles(ctx))
	genesis.MutatedRounds = k.GetMutatedRounds(ctx)
	k.IterateSubscriptions(ctx, func(s types.Subscription) bool {
		genesis.Subscriptions = append(genesis.Subscriptions, s)
		return false
	})
	return genesis
}
