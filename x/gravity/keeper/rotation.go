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
	"github.com/GPTx-global/gravity/x/gravity/types"
)

// RotateConsuls installs newConsuls for round when at least threshold of the
// incoming consuls signed HashNewConsuls(newConsuls, round), signature i by
// consul i. Signatures past the last consul are ignored. A stale round or
// too few valid signatures leaves the state untouched and reports false
// without an error.
func (k Keeper) RotateConsuls(
	ctx sdk.Context,
	newConsuls []gravitytypes.Bytes32,
	sigs []attest.Signature,
	round gravitytypes.Bytes32,
) (bool, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyRotateConsuls)

	lastRound := k.GetLastRound(ctx)
	if round.Compare(lastRound) <= 0 {
		k.Logger(ctx).Debug("stale consul rotation", "round", round.String(), "last_round", lastRound.String())
		types.IncrementRotationCounter(false)
		return false, nil
	}

	if len(sigs) < len(newConsuls) {
		return false, errorsmod.Wrapf(attest.ErrMalformedSignature,
			"got %d signatures for %d consuls", len(sigs), len(newConsuls))
	}
	sigs = sigs[:len(newConsuls)]

	digest := types.HashNewConsuls(newConsuls, round)
	count, err := attest.CountAttestations(digest, sigs, attest.EntryAt(newConsuls))
	if err != nil {
		return false, err
	}

	threshold := k.GetThreshold(ctx)
	if count < threshold {
		k.Logger(ctx).Debug("consul rotation below threshold",
			"round", round.String(), "confirmed", count, "threshold", threshold)
		types.IncrementRotationCounter(false)
		return false, nil
	}

	k.setConsuls(ctx, round, newConsuls)
	k.setLastRound(ctx, round)

	entries := make([]string, len(newConsuls))
	for i, c := range newConsuls {
		entries[i] = c.String()
	}
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeConsulsRotated,
			sdk.NewAttribute(types.AttributeKeyRound, round.String()),
			sdk.NewAttribute(types.AttributeKeyConsuls, strings.Join(entries, ",")),
			sdk.NewAttribute(types.AttributeKeyConfirmed, strconv.FormatUint(count, 10)),
		),
	)
	k.Logger(ctx).Info("consuls rotated", "round", round.String(), "consuls", len(newConsuls))
	types.IncrementRotationCounter(true)

	return true, nil
}
