package ibport

import (
	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/GPTx-global/gravity/types"
	ibporttypes "github.com/GPTx-global/gravity/x/ibport/types"
)

// MintStream encodes a single mint command.
func MintStream(swapID uint64, amount uint64, receiver string) []byte {
	addr, err := types.ParseAccount(receiver)
	if err != nil {
		panic(err)
	}
	bz, err := ibporttypes.EncodeMintCommand(ibporttypes.SwapIDFromUint64(swapID), math.NewUint(amount), addr)
	if err != nil {
		panic(err)
	}
	return bz
}

// ChangeStream encodes a single status change command.
func ChangeStream(swapID uint64, status ibporttypes.RequestStatus) []byte {
	return ibporttypes.EncodeChangeCommand(ibporttypes.SwapIDFromUint64(swapID), status)
}

func CreateApplyCmd(from string, streams ...[]byte) []string {
	var data []byte
	for _, s := range streams {
		data = append(data, s...)
	}
	return []string{
		"gravityd",
		"ibport",
		"apply",
		hexutil.Encode(data),
		"--from=" + from,
	}
}

func CreateUnwrapCmd(from, amount, receiver string) []string {
	return []string{
		"gravityd",
		"ibport",
		"unwrap",
		amount,
		receiver,
		"--from=" + from,
	}
}
