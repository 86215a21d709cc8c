package types

// token module event types
const (
	// event types
	EventTypeMint        = ModuleName + "_mint"
	EventTypeBurn        = ModuleName + "_burn"
	EventTypeTransfer    = ModuleName + "_transfer"
	EventTypeAddDeployer = ModuleName + "_add_deployer"

	// event attributes
	AttributeKeyCaller   = "caller"
	AttributeKeyAccount  = "account"
	AttributeKeyFrom     = "from"
	AttributeKeyTo       = "to"
	AttributeKeyAmount   = "amount"
	AttributeKeyDeployer = "deployer"
)
