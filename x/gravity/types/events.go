package types

// gravity module event types
const (
	// event types
	EventTypeConsulsRotated = "consuls_rotated"

	// event attributes
	AttributeKeyRound     = "round"
	AttributeKeyConsuls   = "consuls"
	AttributeKeyConfirmed = "confirmed"
)
