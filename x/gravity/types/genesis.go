package types

import (
	"fmt"

	gravitytypes "github.com/GPTx-global/gravity/types"
)

// RoundConsuls is the consul set accepted for one round.
type RoundConsuls struct {
	Round   gravitytypes.Bytes32   `json:"round"`
	Consuls []gravitytypes.Bytes32 `json:"consuls"`
}

// GenesisState defines the gravity module's genesis state.
//
// Consuls seeds round zero. Rounds carries every later accepted rotation and
// is only populated by export.
type GenesisState struct {
	Consuls   []gravitytypes.Bytes32 `json:"consuls"`
	Threshold uint64                 `json:"threshold"`
	Rounds    []RoundConsuls         `json:"rounds,omitempty"`
}

// NewGenesisState creates a new genesis state.
func NewGenesisState(consuls []gravitytypes.Bytes32, threshold uint64) GenesisState {
	return GenesisState{
		Consuls:   consuls,
		Threshold: threshold,
	}
}

// DefaultGenesisState returns a default genesis state
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Consuls:   []gravitytypes.Bytes32{},
		Threshold: 1,
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if gs.Threshold == 0 {
		return fmt.Errorf("threshold must be positive")
	}

	var last gravitytypes.Bytes32
	for i, r := range gs.Rounds {
		if r.Round.IsZero() {
			return fmt.Errorf("round zero is reserved for the initial consuls")
		}
		if i > 0 && r.Round.Compare(last) <= 0 {
			return fmt.Errorf("rounds must be strictly increasing, %s after %s", r.Round, last)
		}
		last = r.Round
	}
	return nil
}
