package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/GPTx-global/gravity/crypto/attest"
	testkeeper "github.com/GPTx-global/gravity/testutil/keeper"
	"github.com/GPTx-global/gravity/testutil/sample"
	gravitytypes "github.com/GPTx-global/gravity/types"
	gravitykeeper "github.com/GPTx-global/gravity/x/gravity/keeper"
	consultypes "github.com/GPTx-global/gravity/x/gravity/types"
	"github.com/GPTx-global/gravity/x/nebula/keeper"
	"github.com/GPTx-global/gravity/x/nebula/types"
)

type KeeperTestSuite struct {
	suite.Suite

	ctx     sdk.Context
	keeper  keeper.Keeper
	consuls sample.Committee
	oracles []gravitytypes.Bytes32
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

// SetupTest wires the registry to a real consul registry holding three
// consuls, threshold two.
func (s *KeeperTestSuite) SetupTest() {
	consulKey := sdk.NewKVStoreKey(consultypes.StoreKey)
	nebulaKey := sdk.NewKVStoreKey(types.StoreKey)
	s.ctx = testkeeper.NewContext(s.T(), consulKey, nebulaKey)

	consulKeeper := gravitykeeper.NewKeeper(consulKey)
	s.consuls = sample.NewCommittee(s.T(), 3)
	consulKeeper.Initialize(s.ctx, s.consuls.Entries, 2)

	s.keeper = keeper.NewKeeper(nebulaKey, consulKeeper)
	s.oracles = sample.NewCommittee(s.T(), 2).Entries
	s.Require().NoError(s.keeper.Initialize(s.ctx, types.FeedTypeString, 2, s.oracles))
}

func (s *KeeperTestSuite) TestInitialize() {
	s.Require().Equal(types.FeedTypeString, s.keeper.GetFeedType(s.ctx))
	s.Require().Equal(uint64(2), s.keeper.GetThreshold(s.ctx))
	s.Require().Equal(s.oracles, s.keeper.GetOracles(s.ctx))

	err := s.keeper.Initialize(s.ctx, types.FeedType(9), 1, nil)
	s.Require().ErrorIs(err, types.ErrInvalidFeedType)
}

func (s *KeeperTestSuite) TestRotateOracles() {
	next := sample.NewCommittee(s.T(), 4).Entries
	round := gravitytypes.Uint64Word(1)
	sigs := s.consuls.Sign(s.T(), types.HashNewOracles(next))

	s.Require().NoError(s.keeper.RotateOracles(s.ctx, next, sigs, round))
	s.Require().Equal(next, s.keeper.GetOracles(s.ctx))
	s.Require().True(s.keeper.IsRoundMutated(s.ctx, round))

	// replaying the same round fails even with valid signatures
	err := s.keeper.RotateOracles(s.ctx, s.oracles, s.consuls.Sign(s.T(), types.HashNewOracles(s.oracles)), round)
	s.Require().ErrorIs(err, types.ErrRoundAlreadyMutated)
	s.Require().Equal(next, s.keeper.GetOracles(s.ctx))

	// the digest has no round, the same signatures work for a lower unused one
	s.Require().NoError(s.keeper.RotateOracles(s.ctx, next, sigs, gravitytypes.Bytes32{}))
	s.Require().Equal([]gravitytypes.Bytes32{{}, round}, s.keeper.GetMutatedRounds(s.ctx))
}

func (s *KeeperTestSuite) TestRotateOraclesRejected() {
	next := sample.NewCommittee(s.T(), 2).Entries
	digest := types.HashNewOracles(next)
	round := gravitytypes.Uint64Word(5)

	stranger, err := crypto.GenerateKey()
	s.Require().NoError(err)
	foreign, err := attest.Sign(digest, stranger)
	s.Require().NoError(err)

	tests := []struct {
		name   string
		sigs   func() []attest.Signature
		expErr error
	}{
		{
			name: "1. one consul signature",
			sigs: func() []attest.Signature {
				sigs := s.consuls.Sign(s.T(), digest)
				sigs[1] = foreign
				sigs[2] = foreign
				return sigs
			},
			expErr: types.ErrConsulsReduce,
		},
		{
			name: "2. extra signatures beyond the consul list never count",
			sigs: func() []attest.Signature {
				sigs := s.consuls.Sign(s.T(), digest)
				return []attest.Signature{sigs[0], foreign, foreign, sigs[1], sigs[2]}
			},
			expErr: types.ErrConsulsReduce,
		},
		{
			name: "3. incoming members sign instead of consuls",
			sigs: func() []attest.Signature {
				return sample.NewCommittee(s.T(), 3).Sign(s.T(), digest)
			},
			expErr: types.ErrConsulsReduce,
		},
		{
			name: "4. malformed signature",
			sigs: func() []attest.Signature {
				sigs := s.consuls.Sign(s.T(), digest)
				sigs[2].R = gravitytypes.Bytes32{}
				return sigs
			},
			expErr: attest.ErrMalformedSignature,
		},
		{
			name: "5. no signatures",
			sigs: func() []attest.Signature {
				return nil
			},
			expErr: types.ErrConsulsReduce,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()

			err := s.keeper.RotateOracles(s.ctx, next, tc.sigs(), round)
			s.Require().ErrorIs(err, tc.expErr)
			s.Require().Equal(s.oracles, s.keeper.GetOracles(s.ctx))
			s.Require().False(s.keeper.IsRoundMutated(s.ctx, round))
		})
	}
}

func (s *KeeperTestSuite) TestSubscribe() {
	owner := sample.AccAddress()
	contract := sample.AccAddress()

	id, err := s.keeper.Subscribe(s.ctx, owner, contract, 3, math.NewUint(10))
	s.Require().NoError(err)

	expected, err := types.SubscriptionID(owner, contract, 3)
	s.Require().NoError(err)
	s.Require().Equal(expected, id)

	sub, err := s.keeper.GetSubscription(s.ctx, id)
	s.Require().NoError(err)
	s.Require().Equal(owner, sub.Owner)
	s.Require().Equal(contract, sub.ContractAddress)
	s.Require().Equal(uint8(3), sub.MinConfirmations)
	s.Require().Equal("10", sub.Reward.String())

	_, err = s.keeper.Subscribe(s.ctx, owner, contract, 3, math.NewUint(99))
	s.Require().ErrorIs(err, types.ErrSubscriberIdExists)

	// a different confirmation count is a different subscription
	other, err := s.keeper.Subscribe(s.ctx, owner, contract, 4, math.NewUint(10))
	s.Require().NoError(err)
	s.Require().NotEqual(id, other)

	count := 0
	s.keeper.IterateSubscriptions(s.ctx, func(types.Subscription) bool {
		count++
		return false
	})
	s.Require().Equal(2, count)

	_, err = s.keeper.GetSubscription(s.ctx, gravitytypes.Uint64Word(1))
	s.Require().ErrorIs(err, types.ErrSubscriptionNotFound)
}

func TestSubscribeRejectsLongAddress(t *testing.T) {
	storeKey := sdk.NewKVStoreKey(types.StoreKey)
	ctx := testkeeper.NewContext(t, storeKey)
	k := keeper.NewKeeper(storeKey, nil)

	_, err := k.Subscribe(ctx, make(sdk.AccAddress, 33), sample.AccAddress(), 1, math.ZeroUint())
	require.Error(t, err)
}
