package app

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
	tmdb "github.com/tendermint/tm-db"
)

// TestChainID is the chain id used by Setup.
const TestChainID = "gravity-test-1"

// Setup initializes a new GravityApp on an in-memory db and applies genesis.
func Setup(t testing.TB, genesis GenesisState) *GravityApp {
	app, err := NewGravityApp(log.NewNopLogger(), tmdb.NewMemDB(), TestChainID)
	require.NoError(t, err)
	require.NoError(t, app.InitChain(genesis))
	return app
}
