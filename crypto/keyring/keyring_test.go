package keyring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GPTx-global/gravity/crypto/attest"
	"github.com/GPTx-global/gravity/types"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestNewMnemonic(t *testing.T) {
	mnemonic, err := NewMnemonic()
	require.NoError(t, err)
	require.Len(t, strings.Fields(mnemonic), 24)

	_, err = New(mnemonic)
	require.NoError(t, err)
}

func TestInvalidMnemonic(t *testing.T) {
	_, err := New("not a mnemonic")
	require.ErrorIs(t, err, ErrInvalidMnemonic)
}

func TestDerivationIsDeterministic(t *testing.T) {
	kr1, err := New(testMnemonic)
	require.NoError(t, err)
	kr2, err := New(testMnemonic)
	require.NoError(t, err)

	a1, err := kr1.Address(3)
	require.NoError(t, err)
	a2, err := kr2.Address(3)
	require.NoError(t, err)
	require.Equal(t, a1, a2)

	other, err := kr1.Address(4)
	require.NoError(t, err)
	require.NotEqual(t, a1, other)
}

func TestSignMatchesEntry(t *testing.T) {
	kr, err := New(testMnemonic)
	require.NoError(t, err)

	entries, err := kr.Entries(2)
	require.NoError(t, err)

	digest := types.Uint64Word(99)
	sig, err := kr.Sign(1, digest)
	require.NoError(t, err)

	signer, err := attest.RecoverSigner(digest, sig)
	require.NoError(t, err)
	require.Equal(t, entries[1].Address(), signer)
}

func TestMemberSigner(t *testing.T) {
	kr, err := New(testMnemonic)
	require.NoError(t, err)

	m, err := kr.Member(2)
	require.NoError(t, err)
	addr, err := kr.Address(2)
	require.NoError(t, err)
	require.Equal(t, addr, m.Address())

	digest := types.Uint64Word(7)
	sig, err := m.SignDigest(digest)
	require.NoError(t, err)

	signer, err := attest.RecoverSigner(digest, sig)
	require.NoError(t, err)
	require.Equal(t, addr, signer)
}
