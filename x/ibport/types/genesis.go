package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState defines the ibport module's genesis state.
type GenesisState struct {
	// Nebula is the only account allowed to apply command streams.
	Nebula         string          `json:"nebula"`
	SwapStatuses   []SwapStatus    `json:"swap_statuses,omitempty"`
	UnwrapRequests []UnwrapRequest `json:"unwrap_requests,omitempty"`
}

// NewGenesisState creates a new genesis state.
func NewGenesisState(nebula string, statuses []SwapStatus, requests []UnwrapRequest) GenesisState {
	return GenesisState{
		Nebula:         nebula,
		SwapStatuses:   statuses,
		UnwrapRequests: requests,
	}
}

// DefaultGenesisState returns a default genesis state
func DefaultGenesisState() *GenesisState {
	return &GenesisState{}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if gs.Nebula != "" {
		if _, err := sdk.AccAddressFromBech32(gs.Nebula); err != nil {
			return fmt.Errorf("invalid nebula address %s: %w", gs.Nebula, err)
		}
	}

	statuses := make(map[SwapID]RequestStatus)
	for _, s := range gs.SwapStatuses {
		if s.Status == RequestStatusNone || s.Status > RequestStatusReturned {
			return fmt.Errorf("swap %s has invalid status %s", s.SwapID, s.Status)
		}
		if _, ok := statuses[s.SwapID]; ok {
			return fmt.Errorf("duplicate status for swap %s", s.SwapID)
		}
		statuses[s.SwapID] = s.Status
	}

	seen := make(map[SwapID]bool)
	for _, r := range gs.UnwrapRequests {
		if seen[r.SwapID] {
			return fmt.Errorf("duplicate unwrap request %s", r.SwapID)
		}
		if _, ok := statuses[r.SwapID]; !ok {
			return fmt.Errorf("unwrap request %s has no status", r.SwapID)
		}
		if !FitsUint128(r.Amount) {
			return fmt.Errorf("unwrap request %s amount exceeds 128 bits", r.SwapID)
		}
		seen[r.SwapID] = true
	}
	return nil
}
