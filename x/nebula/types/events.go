package types

// nebula module event types
const (
	// event types
	EventTypeOraclesRotated = "oracles_rotated"
	EventTypeSubscribe      = "subscribe"

	// event attributes
	AttributeKeyRound            = "round"
	AttributeKeyOracles          = "oracles"
	AttributeKeyConfirmed        = "confirmed"
	AttributeKeySubscriptionID   = "subscription_id"
	AttributeKeyOwner            = "owner"
	AttributeKeyContract         = "contract"
	AttributeKeyMinConfirmations = "min_confirmations"
	AttributeKeyReward           = "reward"
)
