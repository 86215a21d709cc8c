package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/crypto"

	gravitytypes "github.com/GPTx-global/gravity/types"
)

// SubscribeSelector prefixes the subscription id preimage.
var SubscribeSelector = crypto.Keccak256([]byte("subscribe(address,uint8,uint256)"))[:4]

// Subscription registers a contract to be notified once a value reached
// MinConfirmations.
type Subscription struct {
	ID               gravitytypes.Bytes32 `json:"id"`
	Owner            sdk.AccAddress       `json:"owner"`
	ContractAddress  sdk.AccAddress       `json:"contract_address"`
	MinConfirmations uint8                `json:"min_confirmations"`
	Reward           math.Uint            `json:"reward"`
}

// SubscriptionID derives the id of a subscription:
// keccak256(selector || owner word || contract word || min confirmations).
func SubscriptionID(owner, contract sdk.AccAddress, minConfirmations uint8) (gravitytypes.Bytes32, error) {
	ownerWord, err := gravitytypes.AccountWord(owner)
	if err != nil {
		return gravitytypes.Bytes32{}, fmt.Errorf("owner: %w", err)
	}
	contractWord, err := gravitytypes.AccountWord(contract)
	if err != nil {
		return gravitytypes.Bytes32{}, fmt.Errorf("contract: %w", err)
	}

	preimage := make([]byte, 0, len(SubscribeSelector)+2*gravitytypes.WordLength+1)
	preimage = append(preimage, SubscribeSelector...)
	preimage = append(preimage, ownerWord.Bytes()...)
	preimage = append(preimage, contractWord.Bytes()...)
	preimage = append(preimage, minConfirmations)
	return gravitytypes.BytesToBytes32(crypto.Keccak256(preimage)), nil
}

// Validate checks the id matches the other fields.
func (s Subscription) Validate() error {
	id, err := SubscriptionID(s.Owner, s.ContractAddress, s.MinConfirmations)
	if err != nil {
		return err
	}
	if id != s.ID {
		return fmt.Errorf("subscription id %s does not match its fields, expected %s", s.ID, id)
	}
	return nil
}
