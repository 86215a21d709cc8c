package types

import (
	errorsmod "cosmossdk.io/errors"
)

// errors
var (
	ErrRoundAlreadyMutated  = errorsmod.Register(ModuleName, 2, "round already mutated")
	ErrConsulsReduce        = errorsmod.Register(ModuleName, 3, "not enough consul signatures")
	ErrSubscriberIdExists   = errorsmod.Register(ModuleName, 4, "subscriber id already exists")
	ErrSubscriptionNotFound = errorsmod.Register(ModuleName, 5, "subscription not found")
	ErrInvalidFeedType      = errorsmod.Register(ModuleName, 6, "invalid feed type")
	ErrInvalidGenesis       = errorsmod.Register(ModuleName, 7, "invalid genesis state")
)
