package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "token"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// KV Store key prefix bytes
const (
	prefixMetadata = iota + 1
	prefixTotalSupply
	prefixBalances
	prefixDeployers
)

// KV Store key prefixes
var (
	KeyMetadata    = []byte{prefixMetadata}
	KeyTotalSupply = []byte{prefixTotalSupply}
	KeyBalances    = []byte{prefixBalances}
	KeyDeployers   = []byte{prefixDeployers}
)

// AccountKey returns the key suffix used for an account inside the balance
// and deployer stores.
func AccountKey(addr sdk.AccAddress) []byte {
	return address.MustLengthPrefix(addr)
}

// AccountFromKey strips the length prefix added by AccountKey.
func AccountFromKey(key []byte) sdk.AccAddress {
	if len(key) == 0 {
		return nil
	}
	return sdk.AccAddress(key[1:])
}
