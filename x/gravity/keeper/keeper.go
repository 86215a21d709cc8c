package keeper

import (
	"encoding/binary"
	"fmt"

	"github.com/cosmos/cosmos-sdk/store/prefix"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/tendermint/libs/log"

	gravitytypes "github.com/GPTx-global/gravity/types"
	"github.com/GPTx-global/gravity/x/gravity/types"
)

// Keeper of the consul registry store
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

// Initialize seeds round zero with the initial consuls.
func (k Keeper) Initialize(ctx sdk.Context, consuls []gravitytypes.Bytes32, threshold uint64) {
	var zero gravitytypes.Bytes32
	k.setConsuls(ctx, zero, consuls)
	k.setLastRound(ctx, zero)
	k.SetThreshold(ctx, threshold)
}

func (k Keeper) setConsuls(ctx sdk.Context, round gravitytypes.Bytes32, consuls []gravitytypes.Bytes32) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.GetConsulsKey(round), gravitytypes.ConcatWords(consuls...))
}

// GetConsulsByRound returns the set accepted for round, empty when none was.
func (k Keeper) GetConsulsByRound(ctx sdk.Context, round gravitytypes.Bytes32) []gravitytypes.Bytes32 {
	store := ctx.KVStore(k.storeKey)
	return mustSplitWords(store.Get(types.GetConsulsKey(round)))
}

// GetConsuls returns the set of the last accepted round.
func (k Keeper) GetConsuls(ctx sdk.Context) []gravitytypes.Bytes32 {
	return k.GetConsulsByRound(ctx, k.GetLastRound(ctx))
}

func (k Keeper) setLastRound(ctx sdk.Context, round gravitytypes.Bytes32) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyLastRound, round.Bytes())
}

func (k Keeper) GetLastRound(ctx sdk.Context) gravitytypes.Bytes32 {
	store := ctx.KVStore(k.storeKey)
	return gravitytypes.BytesToBytes32(store.Get(types.KeyLastRound))
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

// IterateRounds walks every stored round in ascending order until cb returns true.
func (k Keeper) IterateRounds(ctx sdk.Context, cb func(round gravitytypes.Bytes32, consuls []gravitytypes.Bytes32) (stop bool)) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyConsuls)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		round := gravitytypes.BytesToBytes32(iterator.Key())
		if cb(round, mustSplitWords(iterator.Value())) {
			break
		}
	}
}

func mustSplitWords(bz []byte) []gravitytypes.Bytes32 {
	words, err := gravitytypes.SplitWords(bz)
	if err != nil {
		panic(fmt.Errorf("corrupted consul set: %w", err))
	}
	return words
}

// ImportRound stores an already accepted rotation and advances the last
// round. Used by genesis.
func (k Keeper) ImportRound(ctx sdk.Context, round gravitytypes.Bytes32, consuls []gravitytypes.Bytes32) {
	k.setConsuls(ctx, round, consuls)
	if round.Compare(k.GetLastRound(ctx)) > 0 {
		k.setLastRound(ctx, round)
	}
}
