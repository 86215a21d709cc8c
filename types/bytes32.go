// Copyright 2022 Evmos Foundation
// This file is part of the Evmos Network packages.
//
// Evmos is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The Evmos packages are distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the Evmos packages. If not, see https://github.com/evmos/evmos/blob/main/LICENSE
package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// WordLength is the width of every fixed-size value exchanged with the bridge:
// round ids, committee entries and command stream words.
const WordLength = 32

// Bytes32 is a fixed-width 32 byte word. Ordering is byte-wise.
type Bytes32 [WordLength]byte

// BytesToBytes32 copies b into a word. Short input is left-padded with zeros,
// long input keeps its trailing 32 bytes.
func BytesToBytes32(b []byte) Bytes32 {
	var w Bytes32
	if len(b) > WordLength {
		b = b[len(b)-WordLength:]
	}
	copy(w[WordLength-len(b):], b)
	return w
}

// Bytes32FromSlice requires b to be exactly 32 bytes long.
func Bytes32FromSlice(b []byte) (Bytes32, error) {
	var w Bytes32
	if len(b) != WordLength {
		return w, fmt.Errorf("invalid word length: expected %d, got %d", WordLength, len(b))
	}
	copy(w[:], b)
	return w, nil
}

// ParseBytes32 decodes a 0x-prefixed hex string. Shorter values are
// left-padded, so "0x1" is the word with value one.
func ParseBytes32(s string) (Bytes32, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	bz, err := hexutil.Decode("0x" + s)
	if err != nil {
		return Bytes32{}, fmt.Errorf("invalid hex word %q: %w", s, err)
	}
	if len(bz) > WordLength {
		return Bytes32{}, fmt.Errorf("hex word too long: %d bytes", len(bz))
	}
	return BytesToBytes32(bz), nil
}

// MustParseBytes32 is ParseBytes32 that panics on error.
func MustParseBytes32(s string) Bytes32 {
	w, err := ParseBytes32(s)
	if err != nil {
		panic(err)
	}
	return w
}

// Uint64Word returns the big-endian word carrying v.
func Uint64Word(v uint64) Bytes32 {
	var w Bytes32
	for i := 0; i < 8; i++ {
		w[WordLength-1-i] = byte(v >> (8 * i))
	}
	return w
}

// AddressWord places an ECDSA address in the leading 20 bytes of a word,
// which is where committee entries carry it.
func AddressWord(addr common.Address) Bytes32 {
	var w Bytes32
	copy(w[:common.AddressLength], addr.Bytes())
	return w
}

// Address returns the ECDSA address carried in the leading 20 bytes.
func (w Bytes32) Address() common.Address {
	return common.BytesToAddress(w[:common.AddressLength])
}

// Compare orders words byte-wise.
func (w Bytes32) Compare(o Bytes32) int {
	return bytes.Compare(w[:], o[:])
}

// IsZero reports whether every byte is zero.
func (w Bytes32) IsZero() bool {
	return w == Bytes32{}
}

func (w Bytes32) Bytes() []byte {
	return w[:]
}

func (w Bytes32) String() string {
	return hexutil.Encode(w[:])
}

func (w Bytes32) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

func (w *Bytes32) UnmarshalJSON(bz []byte) error {
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return err
	}
	parsed, err := ParseBytes32(s)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// ConcatWords lays words out back to back.
func ConcatWords(words ...Bytes32) []byte {
	bz := make([]byte, 0, len(words)*WordLength)
	for _, w := range words {
		bz = append(bz, w[:]...)
	}
	return bz
}

// SplitWords is the inverse of ConcatWords. It rejects input whose length is
// not a multiple of the word size.
func SplitWords(bz []byte) ([]Bytes32, error) {
	if len(bz)%WordLength != 0 {
		return nil, fmt.Errorf("invalid word list length %d", len(bz))
	}
	words := make([]Bytes32, len(bz)/WordLength)
	for i := range words {
		copy(words[i][:], bz[i*WordLength:(i+1)*WordLength])
	}
	return words, nil
}

// ParseWordList parses a list of hex words.
func ParseWordList(values []string) ([]Bytes32, error) {
	words := make([]Bytes32, len(values))
	for i, v := range values {
		w, err := ParseBytes32(v)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		words[i] = w
	}
	return words, nil
}
