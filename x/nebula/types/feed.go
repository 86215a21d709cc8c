package types

import (
	"encoding/json"
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// FeedType is the kind of value oracles of this registry report.
type FeedType uint8

const (
	FeedTypeInt64 FeedType = iota
	FeedTypeString
	FeedTypeBytes
)

var feedTypeNames = map[FeedType]string{
	FeedTypeInt64:  "int64",
	FeedTypeString: "string",
	FeedTypeBytes:  "bytes",
}

func (f FeedType) String() string {
	if name, ok := feedTypeNames[f]; ok {
		return name
	}
	return fmt.Sprintf("FeedType(%d)", uint8(f))
}

// Validate returns ErrInvalidFeedType for values outside the known set.
func (f FeedType) Validate() error {
	if _, ok := feedTypeNames[f]; !ok {
		return errorsmod.Wrapf(ErrInvalidFeedType, "%d", uint8(f))
	}
	return nil
}

// ParseFeedType accepts the names printed by String, case insensitive.
func ParseFeedType(s string) (FeedType, error) {
	for f, name := range feedTypeNames {
		if strings.EqualFold(s, name) {
			return f, nil
		}
	}
	return 0, errorsmod.Wrapf(ErrInvalidFeedType, "%q", s)
}

func (f FeedType) MarshalJSON() ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(f.String())
}

func (f *FeedType) UnmarshalJSON(bz []byte) error {
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return err
	}
	parsed, err := ParseFeedType(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
