package sample

import (
	"crypto/ecdsa"
	"crypto/rand"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/GPTx-global/gravity/crypto/attest"
	"github.com/GPTx-global/gravity/types"
)

// AccAddress returns a random 32 byte account id.
func AccAddress() sdk.AccAddress {
	addr := make([]byte, types.WordLength)
	if _, err := rand.Read(addr); err != nil {
		panic(err)
	}
	return addr
}

// Committee is a set of secp256k1 keys with their committee entries.
type Committee struct {
	Keys    []*ecdsa.PrivateKey
	Entries []types.Bytes32
}

// NewCommittee generates n fresh members.
func NewCommittee(t testing.TB, n int) Committee {
	c := Committee{
		Keys:    make([]*ecdsa.PrivateKey, n),
		Entries: make([]types.Bytes32, n),
	}
	for i := 0; i < n; i++ {
		key, err := crypto.GenerateKey()
		require.NoError(t, err)
		c.Keys[i] = key
		c.Entries[i] = types.AddressWord(crypto.PubkeyToAddress(key.PublicKey))
	}
	return c
}

// Sign has every member sign digest, in member order.
func (c Committee) Sign(t testing.TB, digest types.Bytes32) []attest.Signature {
	sigs := make([]attest.Signature, len(c.Keys))
	for i, key := range c.Keys {
		sig, err := attest.Sign(digest, key)
		require.NoError(t, err)
		sigs[i] = sig
	}
	return sigs
}
