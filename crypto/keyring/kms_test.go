package keyring

import (
	"crypto/ecdsa"
	"crypto/x509/pkix"
	"encoding/asn1"
	"errors"
	"math/big"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/kms"
	"github.com/aws/aws-sdk-go/service/kms/kmsiface"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"

	"github.com/GPTx-global/gravity/crypto/attest"
	"github.com/GPTx-global/gravity/types"
)

// fakeKMS answers GetPublicKey and Sign the way AWS KMS does for an
// ECC_SECG_P256K1 key.
type fakeKMS struct {
	kmsiface.KMSAPI

	key     *ecdsa.PrivateKey
	keySpec string
	highS   bool
	signErr error
	rawSig  []byte
	lastIn  *kms.SignInput
}

func (f *fakeKMS) GetPublicKey(in *kms.GetPublicKeyInput) (*kms.GetPublicKeyOutput, error) {
	curve, err := asn1.Marshal(oidSecp256k1)
	if err != nil {
		return nil, err
	}
	pub := crypto.FromECDSAPub(&f.key.PublicKey)
	der, err := asn1.Marshal(subjectPublicKeyInfo{
		Algorithm: pkix.AlgorithmIdentifier{
			Algorithm:  oidPublicKeyECDSA,
			Parameters: asn1.RawValue{FullBytes: curve},
		},
		PublicKey: asn1.BitString{Bytes: pub, BitLength: len(pub) * 8},
	})
	if err != nil {
		return nil, err
	}
	return &kms.GetPublicKeyOutput{
		KeyId:     in.KeyId,
		KeySpec:   aws.String(f.keySpec),
		KeyUsage:  aws.String(kms.KeyUsageTypeSignVerify),
		PublicKey: der,
	}, nil
}

func (f *fakeKMS) Sign(in *kms.SignInput) (*kms.SignOutput, error) {
	f.lastIn = in
	if f.signErr != nil {
		return nil, f.signErr
	}
	if f.rawSig != nil {
		return &kms.SignOutput{Signature: f.rawSig}, nil
	}

	bz, err := crypto.Sign(in.Message, f.key)
	if err != nil {
		return nil, err
	}
	r := new(big.Int).SetBytes(bz[:32])
	s := new(big.Int).SetBytes(bz[32:64])
	if f.highS {
		s.Sub(secp256k1N, s)
	}
	der, err := asn1.Marshal(ecdsaSignature{R: r, S: s})
	if err != nil {
		return nil, err
	}
	return &kms.SignOutput{KeyId: in.KeyId, Signature: der}, nil
}

type KMSTestSuite struct {
	suite.Suite

	fake *fakeKMS
}

func TestKMSTestSuite(t *testing.T) {
	suite.Run(t, new(KMSTestSuite))
}

func (suite *KMSTestSuite) SetupTest() {
	key, err := crypto.GenerateKey()
	suite.Require().NoError(err)
	suite.fake = &fakeKMS{key: key, keySpec: kms.KeySpecEccSecgP256k1}
}

func (suite *KMSTestSuite) TestAddress() {
	signer, err := NewKMSSigner(suite.fake, "alias/consul-0")
	suite.Require().NoError(err)

	addr := crypto.PubkeyToAddress(suite.fake.key.PublicKey)
	suite.Require().Equal(addr, signer.Address())
	suite.Require().Equal(types.AddressWord(addr), signer.Entry())
	suite.Require().Equal("alias/consul-0", signer.KeyID())
}

func (suite *KMSTestSuite) TestSignDigest() {
	testCases := []struct {
		name  string
		highS bool
	}{
		{"1. low S from kms", false},
		{"2. high S from kms is normalized", true},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.fake.highS = tc.highS
			signer, err := NewKMSSigner(suite.fake, "key-1")
			suite.Require().NoError(err)

			digest := types.Uint64Word(42)
			sig, err := signer.SignDigest(digest)
			suite.Require().NoError(err)
			suite.Require().True(new(big.Int).SetBytes(sig.S[:]).Cmp(secp256k1HalfN) <= 0)

			recovered, err := attest.RecoverSigner(digest, sig)
			suite.Require().NoError(err)
			suite.Require().Equal(signer.Address(), recovered)

			suite.Require().Equal(digest[:], suite.fake.lastIn.Message)
			suite.Require().Equal(kms.MessageTypeDigest, aws.StringValue(suite.fake.lastIn.MessageType))
			suite.Require().Equal(kms.SigningAlgorithmSpecEcdsaSha256, aws.StringValue(suite.fake.lastIn.SigningAlgorithm))
		})
	}
}

func (suite *KMSTestSuite) TestNewKMSSignerInvalid() {
	testCases := []struct {
		name    string
		keyID   string
		keySpec string
		expErr  error
	}{
		{"1. empty key id", " ", kms.KeySpecEccSecgP256k1, ErrInvalidKeyID},
		{"2. nist curve key", "key-1", kms.KeySpecEccNistP256, ErrUnsupportedKeySpec},
		{"3. rsa key", "key-1", kms.KeySpecRsa2048, ErrUnsupportedKeySpec},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.fake.keySpec = tc.keySpec
			_, err := NewKMSSigner(suite.fake, tc.keyID)
			suite.Require().ErrorIs(err, tc.expErr)
		})
	}
}

func (suite *KMSTestSuite) TestSignDigestFailures() {
	testCases := []struct {
		name     string
		malleate func()
	}{
		{"1. kms error", func() { suite.fake.signErr = errors.New("throttled") }},
		{"2. garbage signature", func() { suite.fake.rawSig = []byte{0x30, 0x01} }},
		{"3. zero scalars", func() {
			der, err := asn1.Marshal(ecdsaSignature{R: big.NewInt(0), S: big.NewInt(1)})
			suite.Require().NoError(err)
			suite.fake.rawSig = der
		}},
		{"4. signature of another key", func() {
			other, err := crypto.GenerateKey()
			suite.Require().NoError(err)
			digest := types.Uint64Word(42)
			bz, err := crypto.Sign(digest[:], other)
			suite.Require().NoError(err)
			der, err := asn1.Marshal(ecdsaSignature{
				R: new(big.Int).SetBytes(bz[:32]),
				S: new(big.Int).SetBytes(bz[32:64]),
			})
			suite.Require().NoError(err)
			suite.fake.rawSig = der
		}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			signer, err := NewKMSSigner(suite.fake, "key-1")
			suite.Require().NoError(err)

			tc.malleate()
			_, err = signer.SignDigest(types.Uint64Word(42))
			suite.Require().ErrorIs(err, ErrSigningFailed)
		})
	}
}

func (suite *KMSTestSuite) TestParsePublicKeyInvalid() {
	_, err := parseKMSPublicKey([]byte("not der"))
	suite.Require().ErrorIs(err, ErrInvalidPublicKey)
}

func (suite *KMSTestSuite) TestNewKMSClientRequiresRegion() {
	suite.T().Setenv(EnvAWSRegion, "")
	_, err := NewKMSClient("")
	suite.Require().ErrorIs(err, ErrRegionNotSet)

	client, err := NewKMSClient("us-east-1")
	suite.Require().NoError(err)
	suite.Require().NotNil(client)
}
