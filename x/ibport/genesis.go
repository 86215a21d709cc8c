package ibport

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/gravity/x/ibport/keeper"
	"github.com/GPTx-global/gravity/x/ibport/types"
)

// InitGenesis new ibport genesis
func InitGenesis(ctx sdk.Context, k keeper.Keeper, data types.GenesisState) {
	if err := data.Validate(); err != nil {
		panic(errorsmod.Wrapf(types.ErrInvalidGenesis, "%s", err))
	}

	if data.Nebula != "" {
		k.SetNebula(ctx, sdk.MustAccAddressFromBech32(data.Nebula))
	}
	for _, s := range data.SwapStatuses {
		k.SetSwapStatus(ctx, s.SwapID, s.Status)
	}
	for _, r := range data.UnwrapRequests {
		k.SetUnwrapRequest(ctx, r)
	}
}

// ExportGenesis returns a GenesisState for a given context and keeper.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) types.GenesisState {
	var nebula string
	if addr := k.GetNebula(ctx); !addr.Empty() {
		nebula = addr.String()
	}

	var statuses []types.SwapStatus
	k.IterateSwapStatuses(ctx, func(id types.SwapID, status types.RequestStatus) bool {
		statuses = append(statuses, types.SwapStatus{SwapID: id, Status: status})
		return false
	})

	var requests []types.UnwrapRequest
	k.IterateUnwrapRequests(ctx, func(req types.UnwrapRequest) bool {
		requests = append(requests, req)
		return false
	})
	return types.NewGenesisState(nebula, statuses, requests)
}
