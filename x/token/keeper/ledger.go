package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/gravity/x/token/types"
)

// Mint credits amount to the receiver and grows the total supply.
//
// The guard rejects callers that ARE deployers. This mirrors the deployed
// ledger, which the bridge relies on: the relay mints as a non-deployer.
func (k Keeper) Mint(ctx sdk.Context, caller sdk.AccAddress, amount math.Uint, to sdk.AccAddress) error {
	if k.IsDeployer(ctx, caller) {
		return errorsmod.Wrapf(types.ErrNotOwner, "deployer %s cannot mint", caller)
	}

	k.setBalance(ctx, to, k.BalanceOf(ctx, to).Add(amount))
	k.setTotalSupply(ctx, k.TotalSupply(ctx).Add(amount))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMint,
			sdk.NewAttribute(types.AttributeKeyCaller, caller.String()),
			sdk.NewAttribute(types.AttributeKeyTo, to.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// Burn debits amount from account and shrinks the total supply. Same guard as Mint.
func (k Keeper) Burn(ctx sdk.Context, caller, account sdk.AccAddress, amount math.Uint) error {
	if k.IsDeployer(ctx, caller) {
		return errorsmod.Wrapf(types.ErrNotOwner, "deployer %s cannot burn", caller)
	}

	balance := k.BalanceOf(ctx, account)
	if balance.LT(amount) {
		return errorsmod.Wrapf(types.ErrNotEnoughMoney, "balance %s is less than %s", balance, amount)
	}

	k.setBalance(ctx, account, balance.Sub(amount))
	k.setTotalSupply(ctx, k.TotalSupply(ctx).Sub(amount))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBurn,
			sdk.NewAttribute(types.AttributeKeyCaller, caller.String()),
			sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// Transfer moves amount between two accounts.
func (k Keeper) Transfer(ctx sdk.Context, from, to sdk.AccAddress, amount math.Uint) error {
	fromBalance := k.BalanceOf(ctx, from)
	if fromBalance.LT(amount) {
		return errorsmod.Wrapf(types.ErrNotEnoughMoney, "balance %s is less than %s", fromBalance, amount)
	}

	k.setBalance(ctx, from, fromBalance.Sub(amount))
	k.setBalance(ctx, to, k.BalanceOf(ctx, to).Add(amount))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTransfer,
			sdk.NewAttribute(types.AttributeKeyFrom, from.String()),
			sdk.NewAttribute(types.AttributeKeyTo, to.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}
