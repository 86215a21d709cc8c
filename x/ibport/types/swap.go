package types

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"

	gravitytypes "github.com/GPTx-global/gravity/types"
)

// SwapIDLength is the width of a swap id, an unsigned 128 bit integer.
const SwapIDLength = 16

// SwapID identifies one bridge transfer. Stored big-endian.
type SwapID [SwapIDLength]byte

// SwapIDFromUint64 returns the id with value v.
func SwapIDFromUint64(v uint64) SwapID {
	var id SwapID
	binary.BigEndian.PutUint64(id[8:], v)
	return id
}

// ParseSwapID accepts a decimal value or 0x prefixed hex.
func ParseSwapID(s string) (SwapID, error) {
	var (
		v   *uint256.Int
		err error
	)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		var b *big.Int
		b, err = hexutil.DecodeBig(s)
		if err == nil {
			var overflow bool
			v, overflow = uint256.FromBig(b)
			if overflow {
				err = fmt.Errorf("value overflows 256 bits")
			}
		}
	} else {
		v, err = uint256.FromDecimal(s)
	}
	if err != nil {
		return SwapID{}, errorsmod.Wrapf(ErrInvalidRequest, "swap id %q: %s", s, err)
	}
	return swapIDFromWord(v)
}

func swapIDFromWord(v *uint256.Int) (SwapID, error) {
	if v.BitLen() > SwapIDLength*8 {
		return SwapID{}, errorsmod.Wrapf(ErrInvalidRequest, "swap id %s exceeds 128 bits", v.Dec())
	}
	var id SwapID
	word := v.Bytes32()
	copy(id[:], word[gravitytypes.WordLength-SwapIDLength:])
	return id, nil
}

// Word returns the id as a left padded 32 byte word.
func (id SwapID) Word() gravitytypes.Bytes32 {
	return gravitytypes.BytesToBytes32(id[:])
}

// String returns the decimal value.
func (id SwapID) String() string {
	return new(uint256.Int).SetBytes(id[:]).Dec()
}

func (id SwapID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *SwapID) UnmarshalJSON(bz []byte) error {
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return err
	}
	parsed, err := ParseSwapID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// UnwrapSwapID derives the id of an unwrap request: the first 16 bytes of
// keccak256(caller || receiver || height (LE u64) || caller || amount (LE u128)),
// read big-endian. Both accounts are taken in word form.
func UnwrapSwapID(caller, receiver sdk.AccAddress, height uint64, amount math.Uint) (SwapID, error) {
	callerWord, err := gravitytypes.AccountWord(caller)
	if err != nil {
		return SwapID{}, errorsmod.Wrapf(ErrInvalidRequest, "caller: %s", err)
	}
	receiverWord, err := gravitytypes.AccountWord(receiver)
	if err != nil {
		return SwapID{}, errorsmod.Wrapf(ErrInvalidRequest, "receiver: %s", err)
	}
	amountLE, err := uint128LittleEndian(amount)
	if err != nil {
		return SwapID{}, err
	}

	preimage := make([]byte, 0, 3*gravitytypes.WordLength+8+SwapIDLength)
	preimage = append(preimage, callerWord.Bytes()...)
	preimage = append(preimage, receiverWord.Bytes()...)
	preimage = binary.LittleEndian.AppendUint64(preimage, height)
	preimage = append(preimage, callerWord.Bytes()...)
	preimage = append(preimage, amountLE...)

	var id SwapID
	copy(id[:], crypto.Keccak256(preimage)[:SwapIDLength])
	return id, nil
}

// FitsUint128 reports whether amount can travel as an unsigned 128 bit value.
func FitsUint128(amount math.Uint) bool {
	v, err := uint256.FromDecimal(amount.String())
	return err == nil && v.BitLen() <= 128
}

func uint128LittleEndian(amount math.Uint) ([]byte, error) {
	v, err := uint256.FromDecimal(amount.String())
	if err != nil || v.BitLen() > 128 {
		return nil, errorsmod.Wrapf(ErrInvalidRequest, "amount %s exceeds 128 bits", amount)
	}
	word := v.Bytes32()
	le := make([]byte, SwapIDLength)
	for i := range le {
		le[i] = word[gravitytypes.WordLength-1-i]
	}
	return le, nil
}
