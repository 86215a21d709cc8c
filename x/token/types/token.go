package types

import (
	"fmt"
	"strings"
)

// Metadata describes the wrapped asset.
type Metadata struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

func (m Metadata) Validate() error {
	if strings.TrimSpace(m.Symbol) == "" {
		return fmt.Errorf("token symbol cannot be empty")
	}
	return nil
}

// Balance is one account balance as it appears in genesis.
type Balance struct {
	Address string `json:"address"`
	Amount  string `json:"amount"`
}
