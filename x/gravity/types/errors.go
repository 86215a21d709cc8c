package types

import (
	errorsmod "cosmossdk.io/errors"
)

// errors
var (
	ErrInvalidGenesis = errorsmod.Register(ModuleName, 2, "invalid genesis state")
)
