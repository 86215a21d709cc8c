package types

import (
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "ibport"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// KV Store key prefix bytes
const (
	prefixNebula = iota + 1
	prefixSwapStatuses
	prefixUnwrapRequests
)

// KV Store key prefixes
var (
	KeyNebula         = []byte{prefixNebula}
	KeySwapStatuses   = []byte{prefixSwapStatuses}
	KeyUnwrapRequests = []byte{prefixUnwrapRequests}
)

// ModuleAddress is the account the relay uses when calling the ledger.
var ModuleAddress = authtypes.NewModuleAddress(ModuleName)

// GetSwapStatusKey returns the key of the status of id.
func GetSwapStatusKey(id SwapID) []byte {
	return append(KeySwapStatuses, id[:]...)
}

// GetUnwrapRequestKey returns the key of the unwrap request of id.
func GetUnwrapRequestKey(id SwapID) []byte {
	return append(KeyUnwrapRequests, id[:]...)
}
