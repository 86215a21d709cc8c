package keeper

import (
	"testing"

	"github.com/cosmos/cosmos-sdk/store"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	tmdb "github.com/tendermint/tm-db"
)

// NewContext mounts the given keys on an in-memory multistore and returns a
// context at height 1.
func NewContext(t testing.TB, keys ...storetypes.StoreKey) sdk.Context {
	db := tmdb.NewMemDB()
	stateStore := store.NewCommitMultiStore(db)
	for _, key := range keys {
		stateStore.MountStoreWithDB(key, storetypes.StoreTypeIAVL, db)
	}
	require.NoError(t, stateStore.LoadLatestVersion())

	return sdk.NewContext(stateStore, tmproto.Header{Height: 1}, false, log.NewNopLogger())
}
