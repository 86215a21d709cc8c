package keyring

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/cosmos/go-bip39"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	hdwallet "github.com/miguelmota/go-ethereum-hdwallet"

	"github.com/GPTx-global/gravity/crypto/attest"
	"github.com/GPTx-global/gravity/types"
)

const (
	// MnemonicEntropySize is the entropy used for new mnemonics (24 words)
	MnemonicEntropySize = 256

	// DefaultBasePath is the ethereum derivation path consul keys hang off.
	// The account index is appended.
	DefaultBasePath = "m/44'/60'/0'/0/"
)

var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// Signer signs digests on behalf of one committee member.
type Signer interface {
	Address() common.Address
	SignDigest(digest types.Bytes32) (attest.Signature, error)
}

// NewMnemonic generates a fresh 24 word mnemonic.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(MnemonicEntropySize)
	if err != nil {
		return "", fmt.Errorf("failed to generate entropy: %w", err)
	}
	return bip39.NewMnemonic(entropy)
}

// Keyring derives committee member keys from one mnemonic. Member i uses
// the key at DefaultBasePath + i.
type Keyring struct {
	wallet *hdwallet.Wallet
}

func New(mnemonic string) (*Keyring, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	wallet, err := hdwallet.NewFromMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("failed to open wallet: %w", err)
	}
	return &Keyring{wallet: wallet}, nil
}

// PrivateKey returns the key of member index.
func (kr *Keyring) PrivateKey(index uint32) (*ecdsa.PrivateKey, error) {
	path, err := hdwallet.ParseDerivationPath(fmt.Sprintf("%s%d", DefaultBasePath, index))
	if err != nil {
		return nil, err
	}
	account, err := kr.wallet.Derive(path, false)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key %d: %w", index, err)
	}
	return kr.wallet.PrivateKey(account)
}

// Address returns the ECDSA address of member index.
func (kr *Keyring) Address(index uint32) (common.Address, error) {
	key, err := kr.PrivateKey(index)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

// Entry returns the committee entry (address in the leading 20 bytes) of member index.
func (kr *Keyring) Entry(index uint32) (types.Bytes32, error) {
	addr, err := kr.Address(index)
	if err != nil {
		return types.Bytes32{}, err
	}
	return types.AddressWord(addr), nil
}

// Entries returns the committee entries of members [0, n).
func (kr *Keyring) Entries(n uint32) ([]types.Bytes32, error) {
	entries := make([]types.Bytes32, n)
	for i := uint32(0); i < n; i++ {
		entry, err := kr.Entry(i)
		if err != nil {
			return nil, err
		}
		entries[i] = entry
	}
	return entries, nil
}

// Sign signs digest with the key of member index.
func (kr *Keyring) Sign(index uint32, digest types.Bytes32) (attest.Signature, error) {
	key, err := kr.PrivateKey(index)
	if err != nil {
		return attest.Signature{}, err
	}
	return attest.Sign(digest, key)
}

// Member is the Signer of one derived key.
type Member struct {
	key *ecdsa.PrivateKey
}

var _ Signer = (*Member)(nil)

// Member returns the signer of member index.
func (kr *Keyring) Member(index uint32) (*Member, error) {
	key, err := kr.PrivateKey(index)
	if err != nil {
		return nil, err
	}
	return &Member{key: key}, nil
}

func (m *Member) Address() common.Address {
	return crypto.PubkeyToAddress(m.key.PublicKey)
}

func (m *Member) SignDigest(digest types.Bytes32) (attest.Signature, error) {
	return attest.Sign(digest, m.key)
}
