package types

import (
	"github.com/ethereum/go-ethereum/crypto"

	gravitytypes "github.com/GPTx-global/gravity/types"
)

// HashNewConsuls returns the digest consuls sign to approve a rotation:
// keccak256(entry_0 || ... || entry_n || round).
func HashNewConsuls(consuls []gravitytypes.Bytes32, round gravitytypes.Bytes32) gravitytypes.Bytes32 {
	data := gravitytypes.ConcatWords(consuls...)
	data = append(data, round.Bytes()...)
	return gravitytypes.BytesToBytes32(crypto.Keccak256(data))
}
