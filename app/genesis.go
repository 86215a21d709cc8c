package app

import (
	"encoding/json"
	"fmt"

	gravitytypes "github.com/GPTx-global/gravity/x/gravity/types"
	ibporttypes "github.com/GPTx-global/gravity/x/ibport/types"
	nebulatypes "github.com/GPTx-global/gravity/x/nebula/types"
	tokentypes "github.com/GPTx-global/gravity/x/token/types"
)

// GenesisState of the application is a map indexed by module name holding
// each module's raw JSON genesis.
type GenesisState map[string]json.RawMessage

// NewDefaultGenesisState generates the default state for the application.
func NewDefaultGenesisState() GenesisState {
	genesis := GenesisState{}
	genesis.mustSet(tokentypes.ModuleName, tokentypes.DefaultGenesisState())
	genesis.mustSet(gravitytypes.ModuleName, gravitytypes.DefaultGenesisState())
	genesis.mustSet(nebulatypes.ModuleName, nebulatypes.DefaultGenesisState())
	genesis.mustSet(ibporttypes.ModuleName, ibporttypes.DefaultGenesisState())
	return genesis
}

func (gs GenesisState) mustSet(module string, state interface{}) {
	bz, err := json.Marshal(state)
	if err != nil {
		panic(fmt.Errorf("failed to marshal %s genesis: %w", module, err))
	}
	gs[module] = bz
}

// Set replaces the genesis of module.
func (gs GenesisState) Set(module string, state interface{}) error {
	bz, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal %s genesis: %w", module, err)
	}
	gs[module] = bz
	return nil
}

// Get decodes the genesis of module into target. A missing module leaves
// target untouched.
func (gs GenesisState) Get(module string, target interface{}) error {
	bz, ok := gs[module]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(bz, target); err != nil {
		return fmt.Errorf("failed to unmarshal %s genesis: %w", module, err)
	}
	return nil
}

// Validate runs the validation of every module genesis.
func (gs GenesisState) Validate() error {
	token := tokentypes.DefaultGenesisState()
	if err := gs.Get(tokentypes.ModuleName, token); err != nil {
		return err
	}
	if err := token.Validate(); err != nil {
		return fmt.Errorf("%s: %w", tokentypes.ModuleName, err)
	}

	gravity := gravitytypes.DefaultGenesisState()
	if err := gs.Get(gravitytypes.ModuleName, gravity); err != nil {
		return err
	}
	if err := gravity.Validate(); err != nil {
		return fmt.Errorf("%s: %w", gravitytypes.ModuleName, err)
	}

	nebula := nebulatypes.DefaultGenesisState()
	if err := gs.Get(nebulatypes.ModuleName, nebula); err != nil {
		return err
	}
	if err := nebula.Validate(); err != nil {
		return fmt.Errorf("%s: %w", nebulatypes.ModuleName, err)
	}

	if gravity.Threshold != nebula.Threshold {
		return fmt.Errorf("consul threshold %d and oracle threshold %d differ", gravity.Threshold, nebula.Threshold)
	}

	ibport := ibporttypes.DefaultGenesisState()
	if err := gs.Get(ibporttypes.ModuleName, ibport); err != nil {
		return err
	}
	if err := ibport.Validate(); err != nil {
		return fmt.Errorf("%s: %w", ibporttypes.ModuleName, err)
	}
	return nil
}
