package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	gravitytypes "github.com/GPTx-global/gravity/types"
)

// ConsulKeeper defines the expected consul registry
type ConsulKeeper interface {
	GetConsuls(ctx sdk.Context) []gravitytypes.Bytes32
}
