package types

import (
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	// Bech32PrefixAccAddr defines the Bech32 prefix of an account's address
	Bech32PrefixAccAddr = "gravity"
	// Bech32PrefixAccPub defines the Bech32 prefix of an account's public key
	Bech32PrefixAccPub = "gravitypub"
)

// SetBech32Prefixes installs the gravity account prefixes on the sdk config.
func SetBech32Prefixes(config *sdk.Config) {
	config.SetBech32PrefixForAccount(Bech32PrefixAccAddr, Bech32PrefixAccPub)
}

// AccountWord is the fixed-width form of an account id. Accounts longer than a
// word cannot be represented.
func AccountWord(addr sdk.AccAddress) (Bytes32, error) {
	if len(addr) > WordLength {
		return Bytes32{}, fmt.Errorf("account id longer than %d bytes: %d", WordLength, len(addr))
	}
	return BytesToBytes32(addr), nil
}

// MustAccountWord is AccountWord that panics on error.
func MustAccountWord(addr sdk.AccAddress) Bytes32 {
	w, err := AccountWord(addr)
	if err != nil {
		panic(err)
	}
	return w
}

// AccountFromWord returns the 32 byte account id carried by a word.
func AccountFromWord(w Bytes32) sdk.AccAddress {
	addr := make(sdk.AccAddress, WordLength)
	copy(addr, w[:])
	return addr
}

// ParseAccount accepts either a bech32 account or a 0x-prefixed hex account id.
func ParseAccount(s string) (sdk.AccAddress, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		bz, err := hexutil.Decode(s)
		if err != nil {
			return nil, fmt.Errorf("invalid hex account %q: %w", s, err)
		}
		if err := sdk.VerifyAddressFormat(bz); err != nil {
			return nil, err
		}
		return sdk.AccAddress(bz), nil
	}
	return sdk.AccAddressFromBech32(s)
}
