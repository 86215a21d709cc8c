package keeper

import (
	"time"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	gravitytypes "github.com/GPTx-global/gravity/types"
	"github.com/GPTx-global/gravity/x/ibport/types"
)

// ApplyCommands executes a command stream sent by the nebula.
//
// Each command runs in its own cached context that is written only when the
// command succeeds. A failing command is reported in its result and the
// stream goes on. A malformed stream stops at the bad command: the results
// so far are returned with the error and the commands already applied stay
// applied.
func (k Keeper) ApplyCommands(ctx sdk.Context, caller sdk.AccAddress, data []byte) ([]types.CommandResult, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyApplyCommands)

	nebula := k.GetNebula(ctx)
	if nebula.Empty() || !caller.Equals(nebula) {
		return nil, errorsmod.Wrapf(types.ErrNotNebula, "caller %s", caller)
	}

	reader := types.NewCommandReader(data)
	results := []types.CommandResult{}
	for !reader.Done() {
		offset := reader.Offset()
		cmd, err := reader.Next()
		if err != nil {
			k.Logger(ctx).Error("aborting command stream", "offset", offset, "applied", len(results), "error", err.Error())
			return results, err
		}

		cacheCtx, write := ctx.CacheContext()
		switch cmd.Opcode {
		case types.OpMint:
			err = k.mint(cacheCtx, cmd.SwapID, cmd.Amount, cmd.Receiver)
		case types.OpChange:
			err = k.change(cacheCtx, cmd.SwapID, cmd.Status)
		}
		if err == nil {
			write()
		} else {
			k.Logger(ctx).Debug("command failed", "offset", offset, "opcode", string(cmd.Opcode), "swap_id", cmd.SwapID.String(), "error", err.Error())
		}
		types.IncrementCommandCounter(cmd.Opcode, err == nil)
		results = append(results, types.NewCommandResult(offset, cmd, err))
	}
	return results, nil
}

func (k Keeper) mint(ctx sdk.Context, id types.SwapID, amount math.Uint, receiver sdk.AccAddress) error {
	if k.hasSwapStatus(ctx, id) {
		return errorsmod.Wrapf(types.ErrInvalidRequestStatus, "swap %s already has status %s", id, k.GetSwapStatus(ctx, id))
	}
	if err := k.tokenKeeper.Mint(ctx, types.ModuleAddress, amount, receiver); err != nil {
		return errorsmod.Wrapf(types.ErrMintingTokens, "swap %s: %s", id, err)
	}
	k.SetSwapStatus(ctx, id, types.RequestStatusNew)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwapMint,
			sdk.NewAttribute(types.AttributeKeySwapID, id.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyReceiver, receiver.String()),
		),
	)
	return nil
}

func (k Keeper) change(ctx sdk.Context, id types.SwapID, value math.Uint) error {
	current := k.GetSwapStatus(ctx, id)
	if current != types.RequestStatusNew {
		return errorsmod.Wrapf(types.ErrInvalidRequestStatus, "swap %s is %s", id, current)
	}
	status, err := types.RequestStatusFromUint(value)
	if err != nil {
		return err
	}
	if !status.IsTerminal() {
		return errorsmod.Wrapf(types.ErrInvalidRequestStatus, "swap %s cannot move from %s to %s", id, current, status)
	}
	k.SetSwapStatus(ctx, id, status)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwapChange,
			sdk.NewAttribute(types.AttributeKeySwapID, id.String()),
			sdk.NewAttribute(types.AttributeKeyStatus, status.String()),
		),
	)
	return nil
}

// RequestUnwrap burns amount from caller and opens an unwrap request paying
// receiver on the other chain. The returned swap id is derived from the
// request and the current block height.
func (k Keeper) RequestUnwrap(ctx sdk.Context, caller sdk.AccAddress, amount math.Uint, receiver sdk.AccAddress) (types.SwapID, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyRequestUnwrap)

	id, err := types.UnwrapSwapID(caller, receiver, uint64(ctx.BlockHeight()), amount)
	if err != nil {
		return types.SwapID{}, err
	}
	if k.hasSwapStatus(ctx, id) {
		return types.SwapID{}, errorsmod.Wrapf(types.ErrInvalidRequestStatus, "swap %s already exists", id)
	}
	if err := k.tokenKeeper.Burn(ctx, types.ModuleAddress, caller, amount); err != nil {
		return types.SwapID{}, errorsmod.Wrapf(types.ErrTokenError, "%s", err)
	}

	k.SetUnwrapRequest(ctx, types.UnwrapRequest{
		SwapID:         id,
		HomeAddress:    caller,
		ForeignAddress: receiver,
		Amount:         amount,
	})
	k.SetSwapStatus(ctx, id, types.RequestStatusNew)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUnwrapRequest,
			sdk.NewAttribute(types.AttributeKeySwapID, id.String()),
			sdk.NewAttribute(types.AttributeKeySender, caller.String()),
			sdk.NewAttribute(types.AttributeKeyReceiver, gravitytypes.MustAccountWord(receiver).String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	k.Logger(ctx).Info("unwrap requested", "swap_id", id.String(), "amount", amount.String())
	return id, nil
}
