package types

import (
	gravitytypes "github.com/GPTx-global/gravity/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "nebula"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// KV Store key prefix bytes
const (
	prefixFeedType = iota + 1
	prefixThreshold
	prefixOracles
	prefixRoundMutated
	prefixSubscriptions
	// reserved for pulse ingestion, nothing is written under them
	prefixPulses
	prefixPulseQueue
	prefixSubscriptionQueue
)

// KV Store key prefixes
var (
	KeyFeedType          = []byte{prefixFeedType}
	KeyThreshold         = []byte{prefixThreshold}
	KeyOracles           = []byte{prefixOracles}
	KeyRoundMutated      = []byte{prefixRoundMutated}
	KeySubscriptions     = []byte{prefixSubscriptions}
	KeyPulses            = []byte{prefixPulses}
	KeyPulseQueue        = []byte{prefixPulseQueue}
	KeySubscriptionQueue = []byte{prefixSubscriptionQueue}
)

// GetRoundMutatedKey returns the marker key of a consumed round.
func GetRoundMutatedKey(round gravitytypes.Bytes32) []byte {
	return append(KeyRoundMutated, round.Bytes()...)
}

// GetSubscriptionKey returns the key a subscription is stored under.
func GetSubscriptionKey(id gravitytypes.Bytes32) []byte {
	return append(KeySubscriptions, id.Bytes()...)
}
