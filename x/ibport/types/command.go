package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/holiman/uint256"

	gravitytypes "github.com/GPTx-global/gravity/types"
)

// Stream opcodes
const (
	OpMint   byte = 'm'
	OpChange byte = 'c'
)

const (
	// swap id, amount, receiver
	mintPayloadLength = 3 * gravitytypes.WordLength
	// swap id, new status
	changePayloadLength = 2 * gravitytypes.WordLength
)

// Command is one decoded entry of a command stream. Amount and Receiver are
// set for OpMint, Status for OpChange.
type Command struct {
	Opcode   byte
	SwapID   SwapID
	Amount   math.Uint
	Receiver sdk.AccAddress
	Status   math.Uint
}

// CommandResult reports the outcome of one executed command.
type CommandResult struct {
	Offset int    `json:"offset"`
	Opcode string `json:"opcode"`
	SwapID SwapID `json:"swap_id"`
	Error  error  `json:"-"`
	Log    string `json:"log,omitempty"`
}

// NewCommandResult fills Log from err.
func NewCommandResult(offset int, cmd Command, err error) CommandResult {
	res := CommandResult{
		Offset: offset,
		Opcode: string(cmd.Opcode),
		SwapID: cmd.SwapID,
		Error:  err,
	}
	if err != nil {
		res.Log = err.Error()
	}
	return res
}

// CommandReader decodes a command stream front to back. Every read is bounds
// checked; a short stream is an error, never a partial command.
type CommandReader struct {
	data   []byte
	offset int
}

func NewCommandReader(data []byte) *CommandReader {
	return &CommandReader{data: data}
}

// Done reports whether the whole stream was consumed.
func (r *CommandReader) Done() bool {
	return r.offset >= len(r.data)
}

// Offset is the position of the next unread byte.
func (r *CommandReader) Offset() int {
	return r.offset
}

// Next decodes the next command. Unknown opcodes, truncated payloads and
// swap ids or amounts wider than 128 bits fail with ErrInvalidRequest.
func (r *CommandReader) Next() (Command, error) {
	start := r.offset
	op, err := r.read(1)
	if err != nil {
		return Command{}, err
	}

	cmd := Command{Opcode: op[0]}
	switch cmd.Opcode {
	case OpMint:
		if _, err := r.peek(mintPayloadLength); err != nil {
			return Command{}, errorsmod.Wrapf(ErrInvalidRequest, "truncated mint at offset %d", start)
		}
		if cmd.SwapID, err = r.readSwapID(); err != nil {
			return Command{}, err
		}
		if cmd.Amount, err = r.readUint128(); err != nil {
			return Command{}, err
		}
		receiver, _ := r.read(gravitytypes.WordLength)
		cmd.Receiver = gravitytypes.AccountFromWord(gravitytypes.BytesToBytes32(receiver))
	case OpChange:
		if _, err := r.peek(changePayloadLength); err != nil {
			return Command{}, errorsmod.Wrapf(ErrInvalidRequest, "truncated change at offset %d", start)
		}
		if cmd.SwapID, err = r.readSwapID(); err != nil {
			return Command{}, err
		}
		if cmd.Status, err = r.readUint256(); err != nil {
			return Command{}, err
		}
	default:
		return Command{}, errorsmod.Wrapf(ErrInvalidRequest, "unknown opcode 0x%02x at offset %d", cmd.Opcode, start)
	}
	return cmd, nil
}

func (r *CommandReader) peek(n int) ([]byte, error) {
	if n > len(r.data)-r.offset {
		return nil, errorsmod.Wrapf(ErrInvalidRequest, "need %d bytes at offset %d, have %d", n, r.offset, len(r.data)-r.offset)
	}
	return r.data[r.offset : r.offset+n], nil
}

func (r *CommandReader) read(n int) ([]byte, error) {
	bz, err := r.peek(n)
	if err != nil {
		return nil, err
	}
	r.offset += n
	return bz, nil
}

func (r *CommandReader) readWord() (*uint256.Int, error) {
	bz, err := r.read(gravitytypes.WordLength)
	if err != nil {
		return nil, err
	}
	return new(uint256.Int).SetBytes32(bz), nil
}

func (r *CommandReader) readSwapID() (SwapID, error) {
	v, err := r.readWord()
	if err != nil {
		return SwapID{}, err
	}
	return swapIDFromWord(v)
}

func (r *CommandReader) readUint128() (math.Uint, error) {
	at := r.offset
	v, err := r.readWord()
	if err != nil {
		return math.Uint{}, err
	}
	if v.BitLen() > 128 {
		return math.Uint{}, errorsmod.Wrapf(ErrInvalidRequest, "word at offset %d exceeds 128 bits", at)
	}
	return math.NewUintFromBigInt(v.ToBig()), nil
}

// readUint256 keeps the full word; the status of a change is range checked
// when the command runs.
func (r *CommandReader) readUint256() (math.Uint, error) {
	v, err := r.readWord()
	if err != nil {
		return math.Uint{}, err
	}
	return math.NewUintFromBigInt(v.ToBig()), nil
}

// DecodeCommands decodes a whole stream, failing on the first bad command.
func DecodeCommands(data []byte) ([]Command, error) {
	r := NewCommandReader(data)
	cmds := []Command{}
	for !r.Done() {
		cmd, err := r.Next()
		if err != nil {
			return cmds, err
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

// EncodeMintCommand returns 'm' || swap id || amount || receiver, each a 32 byte word.
func EncodeMintCommand(id SwapID, amount math.Uint, receiver sdk.AccAddress) ([]byte, error) {
	amountWord, err := uint128Word(amount)
	if err != nil {
		return nil, err
	}
	receiverWord, err := gravitytypes.AccountWord(receiver)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidRequest, "receiver: %s", err)
	}

	bz := make([]byte, 0, 1+mintPayloadLength)
	bz = append(bz, OpMint)
	bz = append(bz, gravitytypes.ConcatWords(id.Word(), amountWord, receiverWord)...)
	return bz, nil
}

// EncodeChangeCommand returns 'c' || swap id || status, each a 32 byte word.
func EncodeChangeCommand(id SwapID, status RequestStatus) []byte {
	bz := make([]byte, 0, 1+changePayloadLength)
	bz = append(bz, OpChange)
	bz = append(bz, gravitytypes.ConcatWords(id.Word(), gravitytypes.Uint64Word(uint64(status)))...)
	return bz
}

func uint128Word(amount math.Uint) (gravitytypes.Bytes32, error) {
	v, err := uint256.FromDecimal(amount.String())
	if err != nil {
		return gravitytypes.Bytes32{}, fmt.Errorf("amount %s: %w", amount, err)
	}
	if v.BitLen() > 128 {
		return gravitytypes.Bytes32{}, errorsmod.Wrapf(ErrInvalidRequest, "amount %s exceeds 128 bits", amount)
	}
	return v.Bytes32(), nil
}
