package attest

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/GPTx-global/gravity/types"
)

// ExpectedSigner returns the address signature i must recover to. ok is false
// when index i has no expected signer; such signatures are still decoded but
// never counted.
type ExpectedSigner func(i int) (addr common.Address, ok bool)

// CountAttestations recovers every signature over digest and counts how many
// match their expected signer. Any malformed signature aborts the count.
func CountAttestations(digest types.Bytes32, sigs []Signature, expected ExpectedSigner) (uint64, error) {
	var count uint64
	for i, sig := range sigs {
		signer, err := RecoverSigner(digest, sig)
		if err != nil {
			return 0, err
		}
		if want, ok := expected(i); ok && signer == want {
			count++
		}
	}
	return count, nil
}

// EntryAt expects signature i to come from the address carried by entries[i].
func EntryAt(entries []types.Bytes32) ExpectedSigner {
	return func(i int) (common.Address, bool) {
		if i >= len(entries) {
			return common.Address{}, false
		}
		return entries[i].Address(), true
	}
}
