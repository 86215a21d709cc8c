package types

import (
	"github.com/ethereum/go-ethereum/crypto"

	gravitytypes "github.com/GPTx-global/gravity/types"
)

// HashNewOracles returns the digest consuls sign to approve an oracle
// rotation. The round is not part of it.
func HashNewOracles(oracles []gravitytypes.Bytes32) gravitytypes.Bytes32 {
	return gravitytypes.BytesToBytes32(crypto.Keccak256(gravitytypes.ConcatWords(oracles...)))
}
