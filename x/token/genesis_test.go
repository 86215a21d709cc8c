package token_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/GPTx-global/gravity/testutil/keeper"
	"github.com/GPTx-global/gravity/testutil/sample"
	"github.com/GPTx-global/gravity/x/token"
	"github.com/GPTx-global/gravity/x/token/keeper"
	"github.com/GPTx-global/gravity/x/token/types"
)

func TestInitExportGenesis(t *testing.T) {
	storeKey := sdk.NewKVStoreKey(types.StoreKey)
	ctx := testkeeper.NewContext(t, storeKey)
	k := keeper.NewKeeper(storeKey)

	deployer := sample.AccAddress()
	holder := sample.AccAddress()

	tests := []struct {
		name     string
		genesis  types.GenesisState
		expPanic bool
	}{
		{
			name: "1. valid genesis state",
			genesis: types.NewGenesisState(
				types.Metadata{Name: "Wrapped", Symbol: "W"},
				[]string{deployer.String()},
				[]types.Balance{{Address: holder.String(), Amount: "42"}},
			),
			expPanic: false,
		},
		{
			name:     "2. empty symbol",
			genesis:  types.NewGenesisState(types.Metadata{Name: "Wrapped"}, nil, nil),
			expPanic: true,
		},
		{
			name: "3. invalid balance",
			genesis: types.NewGenesisState(
				types.Metadata{Symbol: "W"},
				nil,
				[]types.Balance{{Address: holder.String(), Amount: "-1"}},
			),
			expPanic: true,
		},
		{
			name: "4. duplicate deployer",
			genesis: types.NewGenesisState(
				types.Metadata{Symbol: "W"},
				[]string{deployer.String(), deployer.String()},
				nil,
			),
			expPanic: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.expPanic {
				require.Panics(t, func() {
					token.InitGenesis(ctx, k, tc.genesis)
				})
				return
			}

			require.NotPanics(t, func() {
				token.InitGenesis(ctx, k, tc.genesis)
			})
			require.True(t, k.IsDeployer(ctx, deployer))
			require.Equal(t, "42", k.BalanceOf(ctx, holder).String())
			require.Equal(t, "42", k.TotalSupply(ctx).String())

			exported := token.ExportGenesis(ctx, k)
			require.Equal(t, tc.genesis, exported)
		})
	}
}

func TestDefaultGenesisIsValid(t *testing.T) {
	require.NoError(t, types.DefaultGenesisState().Validate())
}
