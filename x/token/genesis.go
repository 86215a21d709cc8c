package token

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/gravity/x/token/keeper"
	"github.com/GPTx-global/gravity/x/token/types"
)

// InitGenesis new token genesis
func InitGenesis(ctx sdk.Context, k keeper.Keeper, data types.GenesisState) {
	if err := data.Validate(); err != nil {
		panic(errorsmod.Wrapf(types.ErrInvalidGenesis, "%s", err))
	}

	k.SetMetadata(ctx, data.Metadata)

	for _, d := range data.Deployers {
		k.SetDeployer(ctx, sdk.MustAccAddressFromBech32(d))
	}

	total := math.ZeroUint()
	for _, b := range data.Balances {
		amount := math.NewUintFromString(b.Amount)
		k.InitBalance(ctx, sdk.MustAccAddressFromBech32(b.Address), amount)
		total = total.Add(amount)
	}
	k.InitTotalSupply(ctx, total)
}

// ExportGenesis returns a GenesisState for a given context and keeper.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) types.GenesisState {
	deployers := []string{}
	for _, d := range k.GetDeployers(ctx) {
		deployers = append(deployers, d.String())
	}

	balances := []types.Balance{}
	k.IterateBalances(ctx, func(addr sdk.AccAddress, amount math.Uint) bool {
		balances = append(balances, types.Balance{Address: addr.String(), Amount: amount.String()})
		return false
	})

	return types.NewGenesisState(k.GetMetadata(ctx), deployers, balances)
}
