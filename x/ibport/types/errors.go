package types

import (
	errorsmod "cosmossdk.io/errors"
)

// errors
var (
	ErrNotNebula            = errorsmod.Register(ModuleName, 2, "caller is not the nebula")
	ErrInvalidRequest       = errorsmod.Register(ModuleName, 3, "invalid request")
	ErrNotFound             = errorsmod.Register(ModuleName, 4, "not found")
	ErrMintingTokens        = errorsmod.Register(ModuleName, 5, "error minting tokens")
	ErrInvalidRequestStatus = errorsmod.Register(ModuleName, 6, "invalid request status")
	ErrTokenError           = errorsmod.Register(ModuleName, 7, "token error")
	ErrInvalidGenesis       = errorsmod.Register(ModuleName, 8, "invalid genesis state")
)
