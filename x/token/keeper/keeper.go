package keeper

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/store/prefix"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/GPTx-global/gravity/x/token/types"
)

// Keeper of the wrapped asset ledger
type Keeper struct {
	storeKey storetypes.StoreKey
}

func NewKeeper(storeKey storetypes.StoreKey) Keeper {
	return Keeper{
		storeKey: storeKey,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

func (k Keeper) SetMetadata(ctx sdk.Context, md types.Metadata) {
	store := ctx.KVStore(k.storeKey)
	bz, err := json.Marshal(md)
	if err != nil {
		panic(fmt.Errorf("unable to marshal token metadata %v", err))
	}
	store.Set(types.KeyMetadata, bz)
}

func (k Keeper) GetMetadata(ctx sdk.Context) types.Metadata {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyMetadata)
	var md types.Metadata
	if len(bz) == 0 {
		return md
	}
	if err := json.Unmarshal(bz, &md); err != nil {
		panic(fmt.Errorf("unable to unmarshal token metadata %v", err))
	}
	return md
}

// BalanceOf returns the balance of addr, zero when the account is unknown.
func (k Keeper) BalanceOf(ctx sdk.Context, addr sdk.AccAddress) math.Uint {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyBalances)
	return mustUnmarshalUint(store.Get(types.AccountKey(addr)))
}

func (k Keeper) setBalance(ctx sdk.Context, addr sdk.AccAddress, amount math.Uint) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyBalances)
	if amount.IsZero() {
		store.Delete(types.AccountKey(addr))
		return
	}
	store.Set(types.AccountKey(addr), mustMarshalUint(amount))
}

// IterateBalances walks every non-zero balance until cb returns true.
func (k Keeper) IterateBalances(ctx sdk.Context, cb func(addr sdk.AccAddress, amount math.Uint) (stop bool)) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyBalances)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		if cb(types.AccountFromKey(iterator.Key()), mustUnmarshalUint(iterator.Value())) {
			break
		}
	}
}

func (k Keeper) TotalSupply(ctx sdk.Context) math.Uint {
	store := ctx.KVStore(k.storeKey)
	return mustUnmarshalUint(store.Get(types.KeyTotalSupply))
}

func (k Keeper) setTotalSupply(ctx sdk.Context, amount math.Uint) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyTotalSupply, mustMarshalUint(amount))
}

func mustMarshalUint(amount math.Uint) []byte {
	bz, err := amount.Marshal()
	if err != nil {
		panic(fmt.Errorf("unable to marshal amount %v", err))
	}
	return bz
}

func mustUnmarshalUint(bz []byte) math.Uint {
	if len(bz) == 0 {
		return math.ZeroUint()
	}
	amount := math.ZeroUint()
	if err := amount.Unmarshal(bz); err != nil {
		panic(fmt.Errorf("unable to unmarshal amount %v", err))
	}
	return amount
}

// InitBalance sets a balance without touching the supply. Used by genesis.
func (k Keeper) InitBalance(ctx sdk.Context, addr sdk.AccAddress, amount math.Uint) {
	k.setBalance(ctx, addr, amount)
}

// InitTotalSupply sets the supply. Used by genesis.
func (k Keeper) InitTotalSupply(ctx sdk.Context, amount math.Uint) {
	k.setTotalSupply(ctx, amount)
}
