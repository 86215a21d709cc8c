package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// TokenKeeper defines the expected wrapped asset ledger
type TokenKeeper interface {
	Mint(ctx sdk.Context, caller sdk.AccAddress, amount math.Uint, to sdk.AccAddress) error
	Burn(ctx sdk.Context, caller, account sdk.AccAddress, amount math.Uint) error
}
