package types

import (
	errorsmod "cosmossdk.io/errors"
)

// errors
var (
	ErrNotOwner       = errorsmod.Register(ModuleName, 2, "the operation is not allowed for this caller")
	ErrNotEnoughMoney = errorsmod.Register(ModuleName, 3, "not enough money")
	ErrNotFound       = errorsmod.Register(ModuleName, 4, "not found")
	ErrInvalidGenesis = errorsmod.Register(ModuleName, 5, "invalid genesis state")
)
