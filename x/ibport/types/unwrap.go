package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// UnwrapRequest records a burn on this chain that is to be paid out to
// ForeignAddress on the other side.
type UnwrapRequest struct {
	SwapID         SwapID         `json:"swap_id"`
	HomeAddress    sdk.AccAddress `json:"home_address"`
	ForeignAddress sdk.AccAddress `json:"foreign_address"`
	Amount         math.Uint      `json:"amount"`
}

// SwapStatus pairs a swap id with its status.
type SwapStatus struct {
	SwapID SwapID        `json:"swap_id"`
	Status RequestStatus `json:"status"`
}
