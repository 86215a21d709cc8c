package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState defines the token module's genesis state.
type GenesisState struct {
	Metadata  Metadata  `json:"metadata"`
	Deployers []string  `json:"deployers"`
	Balances  []Balance `json:"balances"`
}

// NewGenesisState creates a new genesis state.
func NewGenesisState(metadata Metadata, deployers []string, balances []Balance) GenesisState {
	return GenesisState{
		Metadata:  metadata,
		Deployers: deployers,
		Balances:  balances,
	}
}

// DefaultGenesisState returns a default genesis state
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Metadata: Metadata{
			Name:   "Wrapped Gravity",
			Symbol: "wGRAV",
		},
		Deployers: []string{},
		Balances:  []Balance{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Metadata.Validate(); err != nil {
		return err
	}

	seen := make(map[string]bool)
	for _, d := range gs.Deployers {
		if _, err := sdk.AccAddressFromBech32(d); err != nil {
			return fmt.Errorf("invalid deployer address %s: %w", d, err)
		}
		if seen[d] {
			return fmt.Errorf("duplicate deployer %s", d)
		}
		seen[d] = true
	}

	seen = make(map[string]bool)
	for _, b := range gs.Balances {
		if _, err := sdk.AccAddressFromBech32(b.Address); err != nil {
			return fmt.Errorf("invalid balance address %s: %w", b.Address, err)
		}
		if seen[b.Address] {
			return fmt.Errorf("duplicate balance for %s", b.Address)
		}
		if _, err := math.ParseUint(b.Amount); err != nil {
			return fmt.Errorf("invalid balance for %s: %w", b.Address, err)
		}
		seen[b.Address] = true
	}

	return nil
}
