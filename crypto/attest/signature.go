package attest

import (
	"crypto/ecdsa"
	"math/big"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/GPTx-global/gravity/types"
)

// Signature is a recoverable secp256k1 signature split the way relayers submit
// it: a recovery indicator and two 32 byte scalars.
type Signature struct {
	V uint64        `json:"v"`
	R types.Bytes32 `json:"r"`
	S types.Bytes32 `json:"s"`
}

// RecoveryID maps the indicator onto 0 or 1. Accepted encodings are 27/28 and
// the replay-protected form v >= 35.
func (sig Signature) RecoveryID() (byte, error) {
	switch {
	case sig.V == 27:
		return 0, nil
	case sig.V == 28:
		return 1, nil
	case sig.V >= 35:
		return byte((sig.V - 1) % 2), nil
	default:
		return 0, errorsmod.Wrapf(ErrMalformedSignature, "invalid recovery indicator %d", sig.V)
	}
}

// Bytes returns the 65 byte [R || S || recid] form go-ethereum expects.
func (sig Signature) Bytes() ([]byte, error) {
	recID, err := sig.RecoveryID()
	if err != nil {
		return nil, err
	}
	r := new(big.Int).SetBytes(sig.R[:])
	s := new(big.Int).SetBytes(sig.S[:])
	if !crypto.ValidateSignatureValues(recID, r, s, false) {
		return nil, errorsmod.Wrap(ErrMalformedSignature, "signature scalars out of range")
	}

	bz := make([]byte, crypto.SignatureLength)
	copy(bz[:32], sig.R[:])
	copy(bz[32:64], sig.S[:])
	bz[crypto.RecoveryIDOffset] = recID
	return bz, nil
}

// RecoverSigner recovers the address that produced sig over digest.
func RecoverSigner(digest types.Bytes32, sig Signature) (common.Address, error) {
	bz, err := sig.Bytes()
	if err != nil {
		return common.Address{}, err
	}
	pub, err := crypto.SigToPub(digest[:], bz)
	if err != nil {
		return common.Address{}, errorsmod.Wrapf(ErrMalformedSignature, "recover signer: %s", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// Sign produces a signature in the 27/28 encoding.
func Sign(digest types.Bytes32, key *ecdsa.PrivateKey) (Signature, error) {
	bz, err := crypto.Sign(digest[:], key)
	if err != nil {
		return Signature{}, err
	}
	var sig Signature
	copy(sig.R[:], bz[:32])
	copy(sig.S[:], bz[32:64])
	sig.V = uint64(bz[crypto.RecoveryIDOffset]) + 27
	return sig, nil
}
