package types

import (
	"fmt"

	gravitytypes "github.com/GPTx-global/gravity/types"
)

// GenesisState defines the nebula module's genesis state.
type GenesisState struct {
	FeedType      FeedType               `json:"feed_type"`
	Threshold     uint64                 `json:"threshold"`
	Oracles       []gravitytypes.Bytes32 `json:"oracles"`
	MutatedRounds []gravitytypes.Bytes32 `json:"mutated_rounds,omitempty"`
	Subscriptions []Subscription         `json:"subscriptions,omitempty"`
}

// NewGenesisState creates a new genesis state.
func NewGenesisState(feedType FeedType, threshold uint64, oracles []gravitytypes.Bytes32) GenesisState {
	return GenesisState{
		FeedType:  feedType,
		Threshold: threshold,
		Oracles:   oracles,
	}
}

// DefaultGenesisState returns a default genesis state
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		FeedType:  FeedTypeInt64,
		Threshold: 1,
		Oracles:   []gravitytypes.Bytes32{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.FeedType.Validate(); err != nil {
		return err
	}
	if gs.Threshold == 0 {
		return fmt.Errorf("threshold must be positive")
	}

	seenRounds := make(map[gravitytypes.Bytes32]bool)
	for _, r := range gs.MutatedRounds {
		if seenRounds[r] {
			return fmt.Errorf("duplicate mutated round %s", r)
		}
		seenRounds[r] = true
	}

	seenSubs := make(map[gravitytypes.Bytes32]bool)
	for _, s := range gs.Subscriptions {
		if err := s.Validate(); err != nil {
			return err
		}
		if seenSubs[s.ID] {
			return fmt.Errorf("duplicate subscription %s", s.ID)
		}
		seenSubs[s.ID] = true
	}
	return nil
}
