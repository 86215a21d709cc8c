package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/GPTx-global/gravity/testutil/keeper"
	"github.com/GPTx-global/gravity/testutil/sample"
	"github.com/GPTx-global/gravity/x/token/keeper"
	"github.com/GPTx-global/gravity/x/token/types"
)

// setupKeeper creates a new Keeper instance and context for testing
func setupKeeper(t *testing.T) (keeper.Keeper, sdk.Context) {
	storeKey := sdk.NewKVStoreKey(types.StoreKey)
	ctx := testkeeper.NewContext(t, storeKey)
	return keeper.NewKeeper(storeKey), ctx
}

func TestMetadata(t *testing.T) {
	k, ctx := setupKeeper(t)

	require.Equal(t, types.Metadata{}, k.GetMetadata(ctx))

	md := types.Metadata{Name: "Wrapped", Symbol: "W"}
	k.SetMetadata(ctx, md)
	require.Equal(t, md, k.GetMetadata(ctx))
}

func TestMint(t *testing.T) {
	k, ctx := setupKeeper(t)
	deployer := sample.AccAddress()
	relay := sample.AccAddress()
	receiver := sample.AccAddress()
	k.SetDeployer(ctx, deployer)

	tests := []struct {
		name      string
		caller    sdk.AccAddress
		expErr    error
		expAmount math.Uint
	}{
		{"1. non deployer mints", relay, nil, math.NewUint(100)},
		{"2. deployer is rejected", deployer, types.ErrNotOwner, math.NewUint(100)},
		{"3. second mint accumulates", relay, nil, math.NewUint(200)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := k.Mint(ctx, tc.caller, math.NewUint(100), receiver)
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tc.expAmount.String(), k.BalanceOf(ctx, receiver).String())
			require.Equal(t, tc.expAmount.String(), k.TotalSupply(ctx).String())
		})
	}
}

func TestBurn(t *testing.T) {
	k, ctx := setupKeeper(t)
	deployer := sample.AccAddress()
	relay := sample.AccAddress()
	holder := sample.AccAddress()
	k.SetDeployer(ctx, deployer)
	require.NoError(t, k.Mint(ctx, relay, math.NewUint(50), holder))

	err := k.Burn(ctx, deployer, holder, math.NewUint(10))
	require.ErrorIs(t, err, types.ErrNotOwner)

	err = k.Burn(ctx, relay, holder, math.NewUint(51))
	require.ErrorIs(t, err, types.ErrNotEnoughMoney)
	require.Equal(t, "50", k.BalanceOf(ctx, holder).String())

	require.NoError(t, k.Burn(ctx, relay, holder, math.NewUint(20)))
	require.Equal(t, "30", k.BalanceOf(ctx, holder).String())
	require.Equal(t, "30", k.TotalSupply(ctx).String())

	require.NoError(t, k.Burn(ctx, relay, holder, math.NewUint(30)))
	require.True(t, k.BalanceOf(ctx, holder).IsZero())
}

func TestTransfer(t *testing.T) {
	k, ctx := setupKeeper(t)
	from := sample.AccAddress()
	to := sample.AccAddress()
	require.NoError(t, k.Mint(ctx, sample.AccAddress(), math.NewUint(10), from))

	require.ErrorIs(t, k.Transfer(ctx, from, to, math.NewUint(11)), types.ErrNotEnoughMoney)

	require.NoError(t, k.Transfer(ctx, from, to, math.NewUint(4)))
	require.Equal(t, "6", k.BalanceOf(ctx, from).String())
	require.Equal(t, "4", k.BalanceOf(ctx, to).String())
	require.Equal(t, "10", k.TotalSupply(ctx).String())

	require.NoError(t, k.Transfer(ctx, to, to, math.NewUint(4)))
	require.Equal(t, "4", k.BalanceOf(ctx, to).String())
}

func TestAddDeployer(t *testing.T) {
	k, ctx := setupKeeper(t)
	deployer := sample.AccAddress()
	other := sample.AccAddress()
	k.SetDeployer(ctx, deployer)

	require.ErrorIs(t, k.AddDeployer(ctx, other, other), types.ErrNotOwner)
	require.False(t, k.IsDeployer(ctx, other))

	require.NoError(t, k.AddDeployer(ctx, deployer, other))
	require.True(t, k.IsDeployer(ctx, other))
	require.Len(t, k.GetDeployers(ctx), 2)
}
