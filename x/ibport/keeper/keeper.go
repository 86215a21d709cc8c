package keeper

import (
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/GPTx-global/gravity/x/ibport/types"
)

// Keeper of the bridge relay store
type Keeper struct {
	storeKey    storetypes.StoreKey
	tokenKeeper types.TokenKeeper
}

func NewKeeper(storeKey storetypes.StoreKey, tokenKeeper types.TokenKeeper) Keeper {
	return Keeper{
		storeKey:    storeKey,
		tokenKeeper: tokenKeeper,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// SetNebula sets the account allowed to apply command streams. An empty
// address disables command streams.
func (k Keeper) SetNebula(ctx sdk.Context, nebula sdk.AccAddress) {
	store := ctx.KVStore(k.storeKey)
	if nebula.Empty() {
		store.Delete(types.KeyNebula)
		return
	}
	store.Set(types.KeyNebula, nebula)
}

func (k Keeper) GetNebula(ctx sdk.Context) sdk.AccAddress {
	store := ctx.KVStore(k.storeKey)
	return store.Get(types.KeyNebula)
}

// GetSwapStatus returns the status of id, RequestStatusNone when unknown.
func (k Keeper) GetSwapStatus(ctx sdk.Context, id types.SwapID) types.RequestStatus {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.GetSwapStatusKey(id))
	if len(bz) == 0 {
		return types.RequestStatusNone
	}
	return types.RequestStatus(bz[0])
}

func (k Keeper) SetSwapStatus(ctx sdk.Context, id types.SwapID, status types.RequestStatus) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.GetSwapStatusKey(id), []byte{byte(status)})
}

func (k Keeper) hasSwapStatus(ctx sdk.Context, id types.SwapID) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(types.GetSwapStatusKey(id))
}

// IterateSwapStatuses walks every stored status in id order until cb returns true.
func (k Keeper) IterateSwapStatuses(ctx sdk.Context, cb func(id types.SwapID, status types.RequestStatus) (stop bool)) {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, types.KeySwapStatuses)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var id types.SwapID
		copy(id[:], iterator.Key()[len(types.KeySwapStatuses):])
		if cb(id, types.RequestStatus(iterator.Value()[0])) {
			break
		}
	}
}

func (k Keeper) SetUnwrapRequest(ctx sdk.Context, req types.UnwrapRequest) {
	store := ctx.KVStore(k.storeKey)
	bz, err := json.Marshal(req)
	if err != nil {
		panic(fmt.Errorf("unable to marshal unwrap request %v", err))
	}
	store.Set(types.GetUnwrapRequestKey(req.SwapID), bz)
}

func (k Keeper) GetUnwrapRequest(ctx sdk.Context, id types.SwapID) (types.UnwrapRequest, error) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.GetUnwrapRequestKey(id))
	if len(bz) == 0 {
		return types.UnwrapRequest{}, errorsmod.Wrapf(types.ErrNotFound, "unwrap request %s", id)
	}
	return mustUnmarshalUnwrapRequest(bz), nil
}

// IterateUnwrapRequests walks every unwrap request in id order until cb returns true.
func (k Keeper) IterateUnwrapRequests(ctx sdk.Context, cb func(req types.UnwrapRequest) (stop bool)) {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, types.KeyUnwrapRequests)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		if cb(mustUnmarshalUnwrapRequest(iterator.Value())) {
			break
		}
	}
}

func mustUnmarshalUnwrapRequest(bz []byte) types.UnwrapRequest {
	var req types.UnwrapRequest
	if err := json.Unmarshal(bz, &req); err != nil {
		panic(fmt.Errorf("unable to unmarshal unwrap request %v", err))
	}
	return req
}
