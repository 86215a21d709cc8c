package types

// ibport module event types
const (
	// event types
	EventTypeSwapMint      = "swap_mint"
	EventTypeSwapChange    = "swap_change"
	EventTypeUnwrapRequest = "unwrap_request"

	// event attributes
	AttributeKeySwapID   = "swap_id"
	AttributeKeyStatus   = "status"
	AttributeKeyAmount   = "amount"
	AttributeKeyReceiver = "receiver"
	AttributeKeySender   = "sender"
)
