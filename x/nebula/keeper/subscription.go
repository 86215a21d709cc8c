package keeper

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	gravitytypes "github.com/GPTx-global/gravity/types"
	"github.com/GPTx-global/gravity/x/nebula/types"
)

// Subscribe registers contract for notifications on behalf of caller and
// returns the derived subscription id. Subscriptions are never updated.
func (k Keeper) Subscribe(
	ctx sdk.Context,
	caller, contract sdk.AccAddress,
	minConfirmations uint8,
	reward math.Uint,
) (gravitytypes.Bytes32, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeySubscribe)

	id, err := types.SubscriptionID(caller, contract, minConfirmations)
	if err != nil {
		return gravitytypes.Bytes32{}, errorsmod.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
	}
	if k.HasSubscription(ctx, id) {
		return gravitytypes.Bytes32{}, errorsmod.Wrapf(types.ErrSubscriberIdExists, "%s", id)
	}

	k.SetSubscription(ctx, types.Subscription{
		ID:               id,
		Owner:            caller,
		ContractAddress:  contract,
		MinConfirmations: minConfirmations,
		Reward:           reward,
	})

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSubscribe,
			sdk.NewAttribute(types.AttributeKeySubscriptionID, id.String()),
			sdk.NewAttribute(types.AttributeKeyOwner, caller.String()),
			sdk.NewAttribute(types.AttributeKeyContract, contract.String()),
			sdk.NewAttribute(types.AttributeKeyMinConfirmations, strconv.Itoa(int(minConfirmations))),
			sdk.NewAttribute(types.AttributeKeyReward, reward.String()),
		),
	)
	types.IncrementSubscriptions()

	return id, nil
}

func (k Keeper) HasSubscription(ctx sdk.Context, id gravitytypes.Bytes32) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(types.GetSubscriptionKey(id))
}

// SetSubscription stores s under its id without any checks.
func (k Keeper) SetSubscription(ctx sdk.Context, s types.Subscription) {
	store := ctx.KVStore(k.storeKey)
	bz, err := json.Marshal(s)
	if err != nil {
		panic(fmt.Errorf("unable to marshal subscription %v", err))
	}
	store.Set(types.GetSubscriptionKey(s.ID), bz)
}

func (k Keeper) GetSubscription(ctx sdk.Context, id gravitytypes.Bytes32) (types.Subscription, error) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.GetSubscriptionKey(id))
	if len(bz) == 0 {
		return types.Subscription{}, errorsmod.Wrapf(types.ErrSubscriptionNotFound, "%s", id)
	}
	return mustUnmarshalSubscription(bz), nil
}

// IterateSubscriptions walks every subscription in id order until cb returns true.
func (k Keeper) IterateSubscriptions(ctx sdk.Context, cb func(s types.Subscription) (stop bool)) {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, types.KeySubscriptions)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		if cb(mustUnmarshalSubscription(iterator.Value())) {
			break
		}
	}
}

func mustUnmarshalSubscription(bz []byte) types.Subscription {
	var s types.Subscription
	if err := json.Unmarshal(bz, &s); err != nil {
		panic(fmt.Errorf("unable to unmarshal subscription %v", err))
	}
	return s
}
