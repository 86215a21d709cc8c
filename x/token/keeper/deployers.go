package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/gravity/x/token/types"
)

func (k Keeper) IsDeployer(ctx sdk.Context, addr sdk.AccAddress) bool {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyDeployers)
	return store.Has(types.AccountKey(addr))
}

// SetDeployer registers addr without any caller check. Used by genesis.
func (k Keeper) SetDeployer(ctx sdk.Context, addr sdk.AccAddress) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyDeployers)
	store.Set(types.AccountKey(addr), []byte{1})
}

func (k Keeper) GetDeployers(ctx sdk.Context) []sdk.AccAddress {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyDeployers)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	deployers := []sdk.AccAddress{}
	for ; iterator.Valid(); iterator.Next() {
		deployers = append(deployers, types.AccountFromKey(iterator.Key()))
	}
	return deployers
}

// AddDeployer lets an existing deployer register another one.
func (k Keeper) AddDeployer(ctx sdk.Context, caller, addr sdk.AccAddress) error {
	if !k.IsDeployer(ctx, caller) {
		return errorsmod.Wrapf(types.ErrNotOwner, "%s is not a deployer", caller)
	}

	k.SetDeployer(ctx, addr)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAddDeployer,
			sdk.NewAttribute(types.AttributeKeyCaller, caller.String()),
			sdk.NewAttribute(types.AttributeKeyDeployer, addr.String()),
		),
	)
	return nil
}
