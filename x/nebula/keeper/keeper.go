package keeper

import (
	"encoding/binary"
	"fmt"

	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/tendermint/libs/log"

	gravitytypes "github.com/GPTx-global/gravity/types"
	"github.com/GPTx-global/gravity/x/nebula/types"
)

// Keeper of the oracle registry store
type Keeper struct {
	storeKey     storetypes.StoreKey
	consulKeeper types.ConsulKeeper
}

func NewKeeper(storeKey storetypes.StoreKey, consulKeeper types.ConsulKeeper) Keeper {
	return Keeper{
		storeKey:     storeKey,
		consulKeeper: consulKeeper,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// Initialize sets the feed type, threshold and first oracle set.
func (k Keeper) Initialize(ctx sdk.Context, feedType types.FeedType, threshold uint64, oracles []gravitytypes.Bytes32) error {
	if err := feedType.Validate(); err != nil {
		return err
	}
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyFeedType, []byte{byte(feedType)})
	k.SetThreshold(ctx, threshold)
	k.setOracles(ctx, oracles)
	return nil
}

func (k Keeper) GetFeedType(ctx sdk.Context) types.FeedType {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyFeedType)
	if len(bz) == 0 {
		return types.FeedTypeInt64
	}
	return types.FeedType(bz[0])
}

func (k Keeper) SetThreshold(ctx sdk.Context, threshold uint64) {
	store := ctx.KVStore(k.storeKey)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, threshold)
	store.Set(types.KeyThreshold, bz)
}

func (k Keeper) GetThreshold(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyThreshold)
	if len(bz) == 0 {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

func (k Keeper) setOracles(ctx sdk.Context, oracles []gravitytypes.Bytes32) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyOracles, gravitytypes.ConcatWords(oracles...))
}

// GetOracles returns the current oracle set.
func (k Keeper) GetOracles(ctx sdk.Context) []gravitytypes.Bytes32 {
	store := ctx.KVStore(k.storeKey)
	oracles, err := gravitytypes.SplitWords(store.Get(types.KeyOracles))
	if err != nil {
		panic(fmt.Errorf("corrupted oracle set: %w", err))
	}
	return oracles
}

// SetRoundMutated marks round as consumed.
func (k Keeper) SetRoundMutated(ctx sdk.Context, round gravitytypes.Bytes32) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.GetRoundMutatedKey(round), []byte{1})
}

func (k Keeper) IsRoundMutated(ctx sdk.Context, round gravitytypes.Bytes32) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(types.GetRoundMutatedKey(round))
}

// GetMutatedRounds returns every consumed round in ascending order.
func (k Keeper) GetMutatedRounds(ctx sdk.Context) []gravitytypes.Bytes32 {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, types.KeyRoundMutated)
	defer iterator.Close()

	rounds := []gravitytypes.Bytes32{}
	for ; iterator.Valid(); iterator.Next() {
		rounds = append(rounds, gravitytypes.BytesToBytes32(iterator.Key()[len(types.KeyRoundMutated):]))
	}
	return rounds
}
