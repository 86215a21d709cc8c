package keeper

import (
	"strconv"
	"strings"
	"time"

	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/gravity/crypto/attest"
	gravitytypes "github.com/GPTx-global/gravity/types"
	"github.com/GPTx-global/gravity/x/nebula/types"
)

// RotateOracles replaces the oracle set when at least threshold of the
// current consuls signed HashNewOracles(newOracles), signature i by consul i.
// Signatures past the end of the consul list are decoded but never counted.
func (k Keeper) RotateOracles(
	ctx sdk.Context,
	newOracles []gravitytypes.Bytes32,
	sigs []attest.Signature,
	round gravitytypes.Bytes32,
) error {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyRotateOracles)

	if k.IsRoundMutated(ctx, round) {
		return errorsmod.Wrapf(types.ErrRoundAlreadyMutated, "round %s", round)
	}

	digest := types.HashNewOracles(newOracles)
	consuls := k.consulKeeper.GetConsuls(ctx)
	count, err := attest.CountAttestations(digest, sigs, attest.EntryAt(consuls))
	if err != nil {
		return err
	}

	threshold := k.GetThreshold(ctx)
	if count < threshold {
		return errorsmod.Wrapf(types.ErrConsulsReduce, "%d valid signatures, threshold is %d", count, threshold)
	}

	k.setOracles(ctx, newOracles)
	k.SetRoundMutated(ctx, round)

	entries := make([]string, len(newOracles))
	for i, o := range newOracles {
		entries[i] = o.String()
	}
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOraclesRotated,
			sdk.NewAttribute(types.AttributeKeyRound, round.String()),
			sdk.NewAttribute(types.AttributeKeyOracles, strings.Join(entries, ",")),
			sdk.NewAttribute(types.AttributeKeyConfirmed, strconv.FormatUint(count, 10)),
		),
	)
	k.Logger(ctx).Info("oracles rotated", "round", round.String(), "oracles", len(newOracles))
	types.IncrementOraclesRotated()

	return nil
}
