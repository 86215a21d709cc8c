package types

import (
	"encoding/json"
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// RequestStatus is the lifecycle state of a swap. A swap without a stored
// status is in RequestStatusNone.
type RequestStatus uint8

const (
	RequestStatusNone RequestStatus = iota
	RequestStatusNew
	RequestStatusRejected
	RequestStatusSuccess
	RequestStatusReturned
)

var requestStatusNames = []string{"none", "new", "rejected", "success", "returned"}

func (s RequestStatus) String() string {
	if int(s) < len(requestStatusNames) {
		return requestStatusNames[s]
	}
	return fmt.Sprintf("RequestStatus(%d)", uint8(s))
}

// IsTerminal reports whether no transition leaves s.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusRejected || s == RequestStatusSuccess || s == RequestStatusReturned
}

// RequestStatusFromUint decodes a status carried as a stream word.
func RequestStatusFromUint(v math.Uint) (RequestStatus, error) {
	if v.GT(math.NewUint(uint64(RequestStatusReturned))) {
		return RequestStatusNone, errorsmod.Wrapf(ErrInvalidRequestStatus, "unknown status %s", v)
	}
	return RequestStatus(v.Uint64()), nil
}

// ParseRequestStatus accepts a status name or its numeric value.
func ParseRequestStatus(s string) (RequestStatus, error) {
	for i, name := range requestStatusNames {
		if strings.EqualFold(s, name) {
			return RequestStatus(i), nil
		}
	}
	v, err := math.ParseUint(s)
	if err != nil {
		return RequestStatusNone, errorsmod.Wrapf(ErrInvalidRequestStatus, "unknown status %q", s)
	}
	return RequestStatusFromUint(v)
}

func (s RequestStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *RequestStatus) UnmarshalJSON(bz []byte) error {
	var name string
	if err := json.Unmarshal(bz, &name); err != nil {
		return err
	}
	parsed, err := ParseRequestStatus(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
