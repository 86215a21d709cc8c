package app

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/gravity/crypto/attest"
	"github.com/GPTx-global/gravity/types"
	ibporttypes "github.com/GPTx-global/gravity/x/ibport/types"
)

// RotateConsuls submits a consul rotation. A rejected rotation commits
// nothing and reports false.
func (app *GravityApp) RotateConsuls(newConsuls []types.Bytes32, sigs []attest.Signature, round types.Bytes32) (bool, error) {
	var accepted bool
	err := app.deliverWith(func(ctx sdk.Context) (bool, error) {
		var err error
		accepted, err = app.GravityKeeper.RotateConsuls(ctx, newConsuls, sigs, round)
		return accepted && err == nil, err
	})
	return accepted, err
}

// RotateOracles submits an oracle rotation signed by the current consuls.
func (app *GravityApp) RotateOracles(newOracles []types.Bytes32, sigs []attest.Signature, round types.Bytes32) error {
	return app.deliver(func(ctx sdk.Context) error {
		return app.NebulaKeeper.RotateOracles(ctx, newOracles, sigs, round)
	})
}

// Subscribe registers a subscription on behalf of caller.
func (app *GravityApp) Subscribe(caller, contract sdk.AccAddress, minConfirmations uint8, reward math.Uint) (types.Bytes32, error) {
	var id types.Bytes32
	err := app.deliver(func(ctx sdk.Context) (err error) {
		id, err = app.NebulaKeeper.Subscribe(ctx, caller, contract, minConfirmations, reward)
		return err
	})
	return id, err
}

// ApplyCommands runs a command stream sent by caller. Commands applied before
// a stream abort are committed together with the abort.
func (app *GravityApp) ApplyCommands(caller sdk.AccAddress, data []byte) ([]ibporttypes.CommandResult, error) {
	var results []ibporttypes.CommandResult
	err := app.deliverWith(func(ctx sdk.Context) (bool, error) {
		var err error
		results, err = app.IBPortKeeper.ApplyCommands(ctx, caller, data)
		return len(results) > 0, err
	})
	return results, err
}

// RequestUnwrap burns amount from caller and opens an unwrap request.
func (app *GravityApp) RequestUnwrap(caller sdk.AccAddress, amount math.Uint, receiver sdk.AccAddress) (ibporttypes.SwapID, error) {
	var id ibporttypes.SwapID
	err := app.deliver(func(ctx sdk.Context) (err error) {
		id, err = app.IBPortKeeper.RequestUnwrap(ctx, caller, amount, receiver)
		return err
	})
	return id, err
}

// Transfer moves wrapped tokens between two accounts.
func (app *GravityApp) Transfer(from, to sdk.AccAddress, amount math.Uint) error {
	return app.deliver(func(ctx sdk.Context) error {
		return app.TokenKeeper.Transfer(ctx, from, to, amount)
	})
}

// AddDeployer lets an existing deployer register addr.
func (app *GravityApp) AddDeployer(caller, addr sdk.AccAddress) error {
	return app.deliver(func(ctx sdk.Context) error {
		return app.TokenKeeper.AddDeployer(ctx, caller, addr)
	})
}
