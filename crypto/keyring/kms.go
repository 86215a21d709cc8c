// Copyright 2022 Evmos Foundation
// This file is part of the Evmos Network packages.
//
// Evmos is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The Evmos packages are distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the Evmos packages. If not, see https://github.com/evmos/evmos/blob/main/LICENSE

package keyring

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/x509/pkix"
	"encoding/asn1"
	"math/big"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/kms"
	"github.com/aws/aws-sdk-go/service/kms/kmsiface"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/GPTx-global/gravity/crypto/attest"
	"github.com/GPTx-global/gravity/types"
)

// EnvAWSRegion is consulted when no region is passed explicitly.
const EnvAWSRegion = "AWS_REGION"

var (
	ErrRegionNotSet       = errors.New("aws region is not set")
	ErrInvalidKeyID       = errors.New("invalid kms key id")
	ErrUnsupportedKeySpec = errors.New("kms key is not a secp256k1 signing key")
	ErrInvalidPublicKey   = errors.New("invalid kms public key")
	ErrSigningFailed      = errors.New("kms signing failed")
)

var (
	oidPublicKeyECDSA = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	oidSecp256k1      = asn1.ObjectIdentifier{1, 3, 132, 0, 10}

	secp256k1N     = crypto.S256().Params().N
	secp256k1HalfN = new(big.Int).Rsh(secp256k1N, 1)
)

// subjectPublicKeyInfo is the DER layout GetPublicKey returns. crypto/x509
// does not know the secp256k1 curve, so it is decoded by hand.
type subjectPublicKeyInfo struct {
	Algorithm pkix.AlgorithmIdentifier
	PublicKey asn1.BitString
}

type ecdsaSignature struct {
	R, S *big.Int
}

// NewKMSClient opens a KMS client for region, falling back to AWS_REGION.
func NewKMSClient(region string) (kmsiface.KMSAPI, error) {
	if region == "" {
		region = os.Getenv(EnvAWSRegion)
	}
	if region == "" {
		return nil, ErrRegionNotSet
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create aws session")
	}
	return kms.New(sess), nil
}

// KMSSigner is a Signer backed by an ECC_SECG_P256K1 key held in AWS KMS.
// The private key never leaves KMS; only the digest is sent.
type KMSSigner struct {
	client  kmsiface.KMSAPI
	keyID   string
	pubKey  []byte
	address common.Address
}

var _ Signer = (*KMSSigner)(nil)

// NewKMSSigner loads the public key of keyID.
func NewKMSSigner(client kmsiface.KMSAPI, keyID string) (*KMSSigner, error) {
	if strings.TrimSpace(keyID) == "" {
		return nil, ErrInvalidKeyID
	}

	out, err := client.GetPublicKey(&kms.GetPublicKeyInput{
		KeyId: aws.String(keyID),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch public key of %s", keyID)
	}
	if spec := aws.StringValue(out.KeySpec); spec != "" && spec != kms.KeySpecEccSecgP256k1 {
		return nil, errors.Wrapf(ErrUnsupportedKeySpec, "key %s has spec %s", keyID, spec)
	}
	if usage := aws.StringValue(out.KeyUsage); usage != "" && usage != kms.KeyUsageTypeSignVerify {
		return nil, errors.Wrapf(ErrUnsupportedKeySpec, "key %s has usage %s", keyID, usage)
	}

	pub, err := parseKMSPublicKey(out.PublicKey)
	if err != nil {
		return nil, errors.Wrapf(err, "key %s", keyID)
	}

	return &KMSSigner{
		client:  client,
		keyID:   keyID,
		pubKey:  crypto.FromECDSAPub(pub),
		address: crypto.PubkeyToAddress(*pub),
	}, nil
}

func (s *KMSSigner) KeyID() string {
	return s.keyID
}

func (s *KMSSigner) Address() common.Address {
	return s.address
}

// Entry returns the committee entry of the key.
func (s *KMSSigner) Entry() types.Bytes32 {
	return types.AddressWord(s.address)
}

// SignDigest asks KMS to sign digest and converts the DER answer into a
// recoverable signature. KMS may return a high S; it is folded into the lower
// half of the curve order before the recovery id is searched.
func (s *KMSSigner) SignDigest(digest types.Bytes32) (attest.Signature, error) {
	out, err := s.client.Sign(&kms.SignInput{
		KeyId:            aws.String(s.keyID),
		Message:          digest[:],
		MessageType:      aws.String(kms.MessageTypeDigest),
		SigningAlgorithm: aws.String(kms.SigningAlgorithmSpecEcdsaSha256),
	})
	if err != nil {
		return attest.Signature{}, errors.Wrap(ErrSigningFailed, err.Error())
	}

	var der ecdsaSignature
	rest, err := asn1.Unmarshal(out.Signature, &der)
	if err != nil || len(rest) != 0 || der.R == nil || der.S == nil {
		return attest.Signature{}, errors.Wrap(ErrSigningFailed, "malformed signature")
	}
	if der.R.Sign() <= 0 || der.S.Sign() <= 0 || der.R.Cmp(secp256k1N) >= 0 || der.S.Cmp(secp256k1N) >= 0 {
		return attest.Signature{}, errors.Wrap(ErrSigningFailed, "signature scalars out of range")
	}
	if der.S.Cmp(secp256k1HalfN) > 0 {
		der.S = new(big.Int).Sub(secp256k1N, der.S)
	}

	var sig attest.Signature
	der.R.FillBytes(sig.R[:])
	der.S.FillBytes(sig.S[:])

	rs := make([]byte, crypto.SignatureLength)
	copy(rs[:32], sig.R[:])
	copy(rs[32:64], sig.S[:])
	for recID := byte(0); recID < 2; recID++ {
		rs[crypto.RecoveryIDOffset] = recID
		pub, err := crypto.Ecrecover(digest[:], rs)
		if err == nil && bytes.Equal(pub, s.pubKey) {
			sig.V = uint64(recID) + 27
			return sig, nil
		}
	}
	return attest.Signature{}, errors.Wrap(ErrSigningFailed, "signature does not recover to the key")
}

func parseKMSPublicKey(der []byte) (*ecdsa.PublicKey, error) {
	var info subjectPublicKeyInfo
	rest, err := asn1.Unmarshal(der, &info)
	if err != nil || len(rest) != 0 {
		return nil, ErrInvalidPublicKey
	}
	if !info.Algorithm.Algorithm.Equal(oidPublicKeyECDSA) {
		return nil, errors.Wrapf(ErrUnsupportedKeySpec, "algorithm %s", info.Algorithm.Algorithm)
	}

	var curve asn1.ObjectIdentifier
	if _, err := asn1.Unmarshal(info.Algorithm.Parameters.FullBytes, &curve); err != nil {
		return nil, ErrInvalidPublicKey
	}
	if !curve.Equal(oidSecp256k1) {
		return nil, errors.Wrapf(ErrUnsupportedKeySpec, "curve %s", curve)
	}

	pub, err := crypto.UnmarshalPubkey(info.PublicKey.RightAlign())
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPublicKey, err.Error())
	}
	return pub, nil
}
