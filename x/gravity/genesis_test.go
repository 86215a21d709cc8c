package gravity_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/GPTx-global/gravity/testutil/keeper"
	"github.com/GPTx-global/gravity/testutil/sample"
	gravitytypes "github.com/GPTx-global/gravity/types"
	"github.com/GPTx-global/gravity/x/gravity"
	"github.com/GPTx-global/gravity/x/gravity/keeper"
	"github.com/GPTx-global/gravity/x/gravity/types"
)

func TestInitExportGenesis(t *testing.T) {
	initial := sample.NewCommittee(t, 3).Entries
	later := sample.NewCommittee(t, 2).Entries

	tests := []struct {
		name     string
		genesis  types.GenesisState
		expPanic bool
	}{
		{
			name:    "1. initial consuls only",
			genesis: types.NewGenesisState(initial, 2),
		},
		{
			name: "2. with accepted rounds",
			genesis: types.GenesisState{
				Consuls:   initial,
				Threshold: 2,
				Rounds: []types.RoundConsuls{
					{Round: gravitytypes.Uint64Word(1), Consuls: later},
					{Round: gravitytypes.Uint64Word(4), Consuls: initial},
				},
			},
		},
		{
			name:     "3. zero threshold",
			genesis:  types.NewGenesisState(initial, 0),
			expPanic: true,
		},
		{
			name: "4. rounds out of order",
			genesis: types.GenesisState{
				Consuls:   initial,
				Threshold: 1,
				Rounds: []types.RoundConsuls{
					{Round: gravitytypes.Uint64Word(4), Consuls: later},
					{Round: gravitytypes.Uint64Word(1), Consuls: later},
				},
			},
			expPanic: true,
		},
		{
			name: "5. round zero in rounds",
			genesis: types.GenesisState{
				Consuls:   initial,
				Threshold: 1,
				Rounds:    []types.RoundConsuls{{Round: gravitytypes.Bytes32{}, Consuls: later}},
			},
			expPanic: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			storeKey := sdk.NewKVStoreKey(types.StoreKey)
			ctx := testkeeper.NewContext(t, storeKey)
			k := keeper.NewKeeper(storeKey)

			if tc.expPanic {
				require.Panics(t, func() {
					gravity.InitGenesis(ctx, k, tc.genesis)
				})
				return
			}

			gravity.InitGenesis(ctx, k, tc.genesis)
			require.Equal(t, tc.genesis, gravity.ExportGenesis(ctx, k))

			if n := len(tc.genesis.Rounds); n > 0 {
				require.Equal(t, tc.genesis.Rounds[n-1].Round, k.GetLastRound(ctx))
			}
		})
	}
}

func TestDefaultGenesisIsValid(t *testing.T) {
	require.NoError(t, types.DefaultGenesisState().Validate())
}
