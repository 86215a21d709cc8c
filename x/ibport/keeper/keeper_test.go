package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	testkeeper "github.com/GPTx-global/gravity/testutil/keeper"
	"github.com/GPTx-global/gravity/testutil/sample"
	gravitytypes "github.com/GPTx-global/gravity/types"
	"github.com/GPTx-global/gravity/x/ibport/keeper"
	"github.com/GPTx-global/gravity/x/ibport/types"
	tokenkeeper "github.com/GPTx-global/gravity/x/token/keeper"
	tokentypes "github.com/GPTx-global/gravity/x/token/types"
)

type KeeperTestSuite struct {
	suite.Suite

	ctx         sdk.Context
	keeper      keeper.Keeper
	tokenKeeper tokenkeeper.Keeper
	nebula      sdk.AccAddress
	deployer    sdk.AccAddress
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (s *KeeperTestSuite) SetupTest() {
	tokenKey := sdk.NewKVStoreKey(tokentypes.StoreKey)
	ibportKey := sdk.NewKVStoreKey(types.StoreKey)
	s.ctx = testkeeper.NewContext(s.T(), tokenKey, ibportKey)

	s.tokenKeeper = tokenkeeper.NewKeeper(tokenKey)
	s.deployer = sample.AccAddress()
	s.tokenKeeper.SetDeployer(s.ctx, s.deployer)

	s.keeper = keeper.NewKeeper(ibportKey, s.tokenKeeper)
	s.nebula = sample.AccAddress()
	s.keeper.SetNebula(s.ctx, s.nebula)
}

func (s *KeeperTestSuite) mintCommand(id uint64, amount uint64, receiver sdk.AccAddress) []byte {
	bz, err := types.EncodeMintCommand(types.SwapIDFromUint64(id), math.NewUint(amount), receiver)
	s.Require().NoError(err)
	return bz
}

func (s *KeeperTestSuite) TestApplyCommandsMintThenChange() {
	receiver := sample.AccAddress()
	stream := s.mintCommand(7, 100, receiver)
	stream = append(stream, types.EncodeChangeCommand(types.SwapIDFromUint64(7), types.RequestStatusSuccess)...)

	results, err := s.keeper.ApplyCommands(s.ctx, s.nebula, stream)
	s.Require().NoError(err)
	s.Require().Len(results, 2)
	s.Require().NoError(results[0].Error)
	s.Require().NoError(results[1].Error)
	s.Require().Equal(0, results[0].Offset)
	s.Require().Equal(97, results[1].Offset)

	s.Require().Equal("100", s.tokenKeeper.BalanceOf(s.ctx, receiver).String())
	s.Require().Equal("100", s.tokenKeeper.TotalSupply(s.ctx).String())
	s.Require().Equal(types.RequestStatusSuccess, s.keeper.GetSwapStatus(s.ctx, types.SwapIDFromUint64(7)))
}

func (s *KeeperTestSuite) TestApplyCommandsPartialFailure() {
	receiver := sample.AccAddress()
	stream := s.mintCommand(7, 100, receiver)
	stream = append(stream, types.EncodeChangeCommand(types.SwapIDFromUint64(9), types.RequestStatusSuccess)...)

	results, err := s.keeper.ApplyCommands(s.ctx, s.nebula, stream)
	s.Require().NoError(err)
	s.Require().Len(results, 2)
	s.Require().NoError(results[0].Error)
	s.Require().ErrorIs(results[1].Error, types.ErrInvalidRequestStatus)

	s.Require().Equal("100", s.tokenKeeper.BalanceOf(s.ctx, receiver).String())
	s.Require().Equal(types.RequestStatusNew, s.keeper.GetSwapStatus(s.ctx, types.SwapIDFromUint64(7)))
	s.Require().Equal(types.RequestStatusNone, s.keeper.GetSwapStatus(s.ctx, types.SwapIDFromUint64(9)))
}

func (s *KeeperTestSuite) TestApplyCommandsAbortKeepsEarlierCommands() {
	receiver := sample.AccAddress()
	stream := s.mintCommand(1, 5, receiver)
	stream = append(stream, 'x')
	stream = append(stream, s.mintCommand(2, 5, receiver)...)

	results, err := s.keeper.ApplyCommands(s.ctx, s.nebula, stream)
	s.Require().ErrorIs(err, types.ErrInvalidRequest)
	s.Require().Len(results, 1)
	s.Require().Equal("5", s.tokenKeeper.BalanceOf(s.ctx, receiver).String())
	s.Require().Equal(types.RequestStatusNew, s.keeper.GetSwapStatus(s.ctx, types.SwapIDFromUint64(1)))
	s.Require().Equal(types.RequestStatusNone, s.keeper.GetSwapStatus(s.ctx, types.SwapIDFromUint64(2)))
}

func (s *KeeperTestSuite) TestApplyCommandsRejected() {
	receiver := sample.AccAddress()
	wide := gravitytypes.Bytes32{}
	wide[15] = 1

	tests := []struct {
		name    string
		caller  func() sdk.AccAddress
		stream  func() []byte
		expErr  error
		results int
	}{
		{
			name:   "1. caller is not the nebula",
			caller: sample.AccAddress,
			stream: func() []byte { return s.mintCommand(1, 1, receiver) },
			expErr: types.ErrNotNebula,
		},
		{
			name:   "2. truncated mint",
			caller: func() sdk.AccAddress { return s.nebula },
			stream: func() []byte { return s.mintCommand(1, 1, receiver)[:96] },
			expErr: types.ErrInvalidRequest,
		},
		{
			name:   "3. truncated change",
			caller: func() sdk.AccAddress { return s.nebula },
			stream: func() []byte {
				return types.EncodeChangeCommand(types.SwapIDFromUint64(1), types.RequestStatusSuccess)[:40]
			},
			expErr: types.ErrInvalidRequest,
		},
		{
			name:   "4. swap id wider than 128 bits",
			caller: func() sdk.AccAddress { return s.nebula },
			stream: func() []byte {
				bz := s.mintCommand(1, 1, receiver)
				copy(bz[1:33], wide[:])
				return bz
			},
			expErr: types.ErrInvalidRequest,
		},
		{
			name:   "5. unknown opcode",
			caller: func() sdk.AccAddress { return s.nebula },
			stream: func() []byte { return []byte{'z'} },
			expErr: types.ErrInvalidRequest,
		},
		{
			name:    "6. empty stream",
			caller:  func() sdk.AccAddress { return s.nebula },
			stream:  func() []byte { return nil },
			results: 0,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()

			results, err := s.keeper.ApplyCommands(s.ctx, tc.caller(), tc.stream())
			if tc.expErr != nil {
				s.Require().ErrorIs(err, tc.expErr)
			} else {
				s.Require().NoError(err)
			}
			s.Require().Len(results, tc.results)
			s.Require().True(s.tokenKeeper.TotalSupply(s.ctx).IsZero())
		})
	}
}

func (s *KeeperTestSuite) TestMintStatusChecks() {
	receiver := sample.AccAddress()
	id := types.SwapIDFromUint64(3)

	// first mint, then a replay of the same swap id
	stream := append(s.mintCommand(3, 10, receiver), s.mintCommand(3, 10, receiver)...)
	results, err := s.keeper.ApplyCommands(s.ctx, s.nebula, stream)
	s.Require().NoError(err)
	s.Require().NoError(results[0].Error)
	s.Require().ErrorIs(results[1].Error, types.ErrInvalidRequestStatus)
	s.Require().Equal("10", s.tokenKeeper.BalanceOf(s.ctx, receiver).String())

	// back to New is not a terminal status
	results, err = s.keeper.ApplyCommands(s.ctx, s.nebula, types.EncodeChangeCommand(id, types.RequestStatusNew))
	s.Require().NoError(err)
	s.Require().ErrorIs(results[0].Error, types.ErrInvalidRequestStatus)

	// unknown status value
	bz := types.EncodeChangeCommand(id, types.RequestStatusSuccess)
	bz[len(bz)-1] = 5
	results, err = s.keeper.ApplyCommands(s.ctx, s.nebula, bz)
	s.Require().NoError(err)
	s.Require().ErrorIs(results[0].Error, types.ErrInvalidRequestStatus)
	s.Require().Equal(types.RequestStatusNew, s.keeper.GetSwapStatus(s.ctx, id))

	// a status word wider than 128 bits fails the change, not the stream
	wide := types.EncodeChangeCommand(id, types.RequestStatusSuccess)
	wide[1+gravitytypes.WordLength+15] = 1
	stream = append(wide, s.mintCommand(8, 5, receiver)...)
	results, err = s.keeper.ApplyCommands(s.ctx, s.nebula, stream)
	s.Require().NoError(err)
	s.Require().Len(results, 2)
	s.Require().ErrorIs(results[0].Error, types.ErrInvalidRequestStatus)
	s.Require().NoError(results[1].Error)
	s.Require().Equal(types.RequestStatusNew, s.keeper.GetSwapStatus(s.ctx, id))
	s.Require().Equal(types.RequestStatusNew, s.keeper.GetSwapStatus(s.ctx, types.SwapIDFromUint64(8)))
	s.Require().Equal("15", s.tokenKeeper.BalanceOf(s.ctx, receiver).String())
}

func (s *KeeperTestSuite) TestChangeOnlyFromNew() {
	tests := []struct {
		name string
		from types.RequestStatus
	}{
		{"1. from none", types.RequestStatusNone},
		{"2. from rejected", types.RequestStatusRejected},
		{"3. from success", types.RequestStatusSuccess},
		{"4. from returned", types.RequestStatusReturned},
	}

	targets := []types.RequestStatus{
		types.RequestStatusRejected,
		types.RequestStatusSuccess,
		types.RequestStatusReturned,
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			id := types.SwapIDFromUint64(11)
			if tc.from != types.RequestStatusNone {
				s.keeper.SetSwapStatus(s.ctx, id, tc.from)
			}

			for _, target := range targets {
				results, err := s.keeper.ApplyCommands(s.ctx, s.nebula, types.EncodeChangeCommand(id, target))
				s.Require().NoError(err)
				s.Require().Len(results, 1)
				s.Require().ErrorIs(results[0].Error, types.ErrInvalidRequestStatus)
				s.Require().Equal(tc.from, s.keeper.GetSwapStatus(s.ctx, id))
			}
		})
	}
}

func (s *KeeperTestSuite) TestMintFailsForDeployerModule() {
	// the ledger refuses deployers, so registering the relay as one breaks minting
	s.tokenKeeper.SetDeployer(s.ctx, types.ModuleAddress)

	results, err := s.keeper.ApplyCommands(s.ctx, s.nebula, s.mintCommand(4, 1, sample.AccAddress()))
	s.Require().NoError(err)
	s.Require().ErrorIs(results[0].Error, types.ErrMintingTokens)
	s.Require().Equal(types.RequestStatusNone, s.keeper.GetSwapStatus(s.ctx, types.SwapIDFromUint64(4)))
}

func (s *KeeperTestSuite) TestRequestUnwrap() {
	holder := sample.AccAddress()
	foreign := sample.AccAddress()
	s.Require().NoError(s.tokenKeeper.Mint(s.ctx, types.ModuleAddress, math.NewUint(50), holder))

	id, err := s.keeper.RequestUnwrap(s.ctx, holder, math.NewUint(20), foreign)
	s.Require().NoError(err)

	expected, err := types.UnwrapSwapID(holder, foreign, uint64(s.ctx.BlockHeight()), math.NewUint(20))
	s.Require().NoError(err)
	s.Require().Equal(expected, id)

	s.Require().Equal("30", s.tokenKeeper.BalanceOf(s.ctx, holder).String())
	s.Require().Equal(types.RequestStatusNew, s.keeper.GetSwapStatus(s.ctx, id))

	req, err := s.keeper.GetUnwrapRequest(s.ctx, id)
	s.Require().NoError(err)
	s.Require().Equal(holder, req.HomeAddress)
	s.Require().Equal(foreign, req.ForeignAddress)
	s.Require().Equal("20", req.Amount.String())

	// same request in the same block derives the same id
	_, err = s.keeper.RequestUnwrap(s.ctx, holder, math.NewUint(20), foreign)
	s.Require().ErrorIs(err, types.ErrInvalidRequestStatus)
	s.Require().Equal("30", s.tokenKeeper.BalanceOf(s.ctx, holder).String())

	// next block is a new swap
	s.ctx = s.ctx.WithBlockHeight(s.ctx.BlockHeight() + 1)
	other, err := s.keeper.RequestUnwrap(s.ctx, holder, math.NewUint(20), foreign)
	s.Require().NoError(err)
	s.Require().NotEqual(id, other)
	s.Require().Equal("10", s.tokenKeeper.BalanceOf(s.ctx, holder).String())

	// relay settles the request
	results, err := s.keeper.ApplyCommands(s.ctx, s.nebula, types.EncodeChangeCommand(id, types.RequestStatusReturned))
	s.Require().NoError(err)
	s.Require().NoError(results[0].Error)
	s.Require().Equal(types.RequestStatusReturned, s.keeper.GetSwapStatus(s.ctx, id))
}

func (s *KeeperTestSuite) TestRequestUnwrapRejected() {
	holder := sample.AccAddress()
	s.Require().NoError(s.tokenKeeper.Mint(s.ctx, types.ModuleAddress, math.NewUint(5), holder))

	_, err := s.keeper.RequestUnwrap(s.ctx, holder, math.NewUint(6), sample.AccAddress())
	s.Require().ErrorIs(err, types.ErrTokenError)

	huge := math.NewUintFromString("340282366920938463463374607431768211456") // 2^128
	_, err = s.keeper.RequestUnwrap(s.ctx, holder, huge, sample.AccAddress())
	s.Require().ErrorIs(err, types.ErrInvalidRequest)

	_, err = s.keeper.GetUnwrapRequest(s.ctx, types.SwapIDFromUint64(1))
	s.Require().ErrorIs(err, types.ErrNotFound)

	count := 0
	s.keeper.IterateUnwrapRequests(s.ctx, func(types.UnwrapRequest) bool {
		count++
		return false
	})
	s.Require().Zero(count)
	s.Require().Equal("5", s.tokenKeeper.BalanceOf(s.ctx, holder).String())
}
