package app

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/gravity/types"
	ibporttypes "github.com/GPTx-global/gravity/x/ibport/types"
	nebulatypes "github.com/GPTx-global/gravity/x/nebula/types"
	tokentypes "github.com/GPTx-global/gravity/x/token/types"
)

// ConsulsInfo is the consul registry state of the last round.
type ConsulsInfo struct {
	Round     types.Bytes32   `json:"round"`
	Threshold uint64          `json:"threshold"`
	Consuls   []types.Bytes32 `json:"consuls"`
}

// OraclesInfo is the oracle registry state.
type OraclesInfo struct {
	FeedType  nebulatypes.FeedType `json:"feed_type"`
	Threshold uint64               `json:"threshold"`
	Oracles   []types.Bytes32      `json:"oracles"`
}

// SupplyInfo describes the wrapped asset.
type SupplyInfo struct {
	Metadata    tokentypes.Metadata `json:"metadata"`
	TotalSupply math.Uint           `json:"total_supply"`
}

func (app *GravityApp) Consuls() ConsulsInfo {
	var info ConsulsInfo
	app.query(func(ctx sdk.Context) {
		info = ConsulsInfo{
			Round:     app.GravityKeeper.GetLastRound(ctx),
			Threshold: app.GravityKeeper.GetThreshold(ctx),
			Consuls:   app.GravityKeeper.GetConsuls(ctx),
		}
	})
	return info
}

func (app *GravityApp) ConsulsByRound(round types.Bytes32) []types.Bytes32 {
	var consuls []types.Bytes32
	app.query(func(ctx sdk.Context) {
		consuls = app.GravityKeeper.GetConsulsByRound(ctx, round)
	})
	return consuls
}

func (app *GravityApp) Oracles() OraclesInfo {
	var info OraclesInfo
	app.query(func(ctx sdk.Context) {
		info = OraclesInfo{
			FeedType:  app.NebulaKeeper.GetFeedType(ctx),
			Threshold: app.NebulaKeeper.GetThreshold(ctx),
			Oracles:   app.NebulaKeeper.GetOracles(ctx),
		}
	})
	return info
}

func (app *GravityApp) IsRoundMutated(round types.Bytes32) bool {
	var mutated bool
	app.query(func(ctx sdk.Context) {
		mutated = app.NebulaKeeper.IsRoundMutated(ctx, round)
	})
	return mutated
}

func (app *GravityApp) Subscription(id types.Bytes32) (nebulatypes.Subscription, error) {
	var (
		sub nebulatypes.Subscription
		err error
	)
	app.query(func(ctx sdk.Context) {
		sub, err = app.NebulaKeeper.GetSubscription(ctx, id)
	})
	return sub, err
}

func (app *GravityApp) SwapStatus(id ibporttypes.SwapID) ibporttypes.RequestStatus {
	var status ibporttypes.RequestStatus
	app.query(func(ctx sdk.Context) {
		status = app.IBPortKeeper.GetSwapStatus(ctx, id)
	})
	return status
}

func (app *GravityApp) UnwrapRequest(id ibporttypes.SwapID) (ibporttypes.UnwrapRequest, error) {
	var (
		req ibporttypes.UnwrapRequest
		err error
	)
	app.query(func(ctx sdk.Context) {
		req, err = app.IBPortKeeper.GetUnwrapRequest(ctx, id)
	})
	return req, err
}

func (app *GravityApp) Nebula() sdk.AccAddress {
	var nebula sdk.AccAddress
	app.query(func(ctx sdk.Context) {
		nebula = app.IBPortKeeper.GetNebula(ctx)
	})
	return nebula
}

func (app *GravityApp) Balance(addr sdk.AccAddress) math.Uint {
	var balance math.Uint
	app.query(func(ctx sdk.Context) {
		balance = app.TokenKeeper.BalanceOf(ctx, addr)
	})
	return balance
}

func (app *GravityApp) Supply() SupplyInfo {
	var info SupplyInfo
	app.query(func(ctx sdk.Context) {
		info = SupplyInfo{
			Metadata:    app.TokenKeeper.GetMetadata(ctx),
			TotalSupply: app.TokenKeeper.TotalSupply(ctx),
		}
	})
	return info
}
