package types

import (
	gravitytypes "github.com/GPTx-global/gravity/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "gravity"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// KV Store key prefix bytes
const (
	prefixConsuls = iota + 1
	prefixLastRound
	prefixThreshold
)

// KV Store key prefixes
var (
	KeyConsuls   = []byte{prefixConsuls}
	KeyLastRound = []byte{prefixLastRound}
	KeyThreshold = []byte{prefixThreshold}
)

// GetConsulsKey returns the key of the consul set stored for round.
func GetConsulsKey(round gravitytypes.Bytes32) []byte {
	return append(KeyConsuls, round.Bytes()...)
}
