// Package rotation builds the JSON request files committee members pass
// around to collect signatures for a consul or oracle rotation.
//
//	{
//	  "kind": "consuls",
//	  "round": "0x...01",
//	  "members": ["0x...", "0x..."],
//	  "signatures": [{"v": 27, "r": "0x...", "s": "0x..."}, null]
//	}
//
// Slot i of "signatures" belongs to the signer expected at position i: the
// incoming consul i for consul rotations, the current consul i for oracle
// rotations.
package rotation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/GPTx-global/gravity/crypto/attest"
	"github.com/GPTx-global/gravity/crypto/keyring"
	"github.com/GPTx-global/gravity/types"
	gravitytypes "github.com/GPTx-global/gravity/x/gravity/types"
	nebulatypes "github.com/GPTx-global/gravity/x/nebula/types"
)

type Kind string

const (
	KindConsuls Kind = "consuls"
	KindOracles Kind = "oracles"
)

func (k Kind) Validate() error {
	switch k {
	case KindConsuls, KindOracles:
		return nil
	default:
		return fmt.Errorf("unknown rotation kind %q", string(k))
	}
}

const (
	pathKind       = "kind"
	pathRound      = "round"
	pathMembers    = "members"
	pathSignatures = "signatures"
)

// Request wraps the raw JSON document. Every mutation goes through sjson so
// unknown fields added by other tools survive a sign round-trip.
type Request struct {
	raw []byte
}

// New creates an unsigned request with slots empty signature slots. Consul
// rotations always use one slot per member.
func New(kind Kind, round types.Bytes32, members []types.Bytes32, slots int) (*Request, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("rotation without members")
	}
	if kind == KindConsuls {
		slots = len(members)
	}
	if slots <= 0 {
		return nil, fmt.Errorf("invalid signature slot count %d", slots)
	}

	raw := []byte(`{}`)
	var err error
	if raw, err = sjson.SetBytes(raw, pathKind, string(kind)); err != nil {
		return nil, err
	}
	if raw, err = sjson.SetBytes(raw, pathRound, round.String()); err != nil {
		return nil, err
	}
	entries := make([]string, len(members))
	for i, m := range members {
		entries[i] = m.String()
	}
	if raw, err = sjson.SetBytes(raw, pathMembers, entries); err != nil {
		return nil, err
	}
	if raw, err = sjson.SetBytes(raw, pathSignatures, make([]*attest.Signature, slots)); err != nil {
		return nil, err
	}
	return &Request{raw: raw}, nil
}

// Parse validates and wraps a request document.
func Parse(bz []byte) (*Request, error) {
	if !gjson.ValidBytes(bz) {
		return nil, fmt.Errorf("invalid rotation request: malformed JSON")
	}
	r := &Request{raw: append([]byte(nil), bz...)}

	if err := r.Kind().Validate(); err != nil {
		return nil, err
	}
	if _, err := r.Round(); err != nil {
		return nil, err
	}
	members, err := r.Members()
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("rotation without members")
	}
	sigs := gjson.GetBytes(r.raw, pathSignatures)
	if !sigs.IsArray() {
		return nil, fmt.Errorf("rotation request has no signature slots")
	}
	if r.Kind() == KindConsuls && len(sigs.Array()) != len(members) {
		return nil, fmt.Errorf("consul rotation has %d signature slots for %d members", len(sigs.Array()), len(members))
	}
	return r, nil
}

// ReadFile parses the request stored at path.
func ReadFile(path string) (*Request, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rotation request: %w", err)
	}
	return Parse(bz)
}

// WriteFile stores the request at path.
func (r *Request) WriteFile(path string) error {
	if err := os.WriteFile(path, r.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write rotation request: %w", err)
	}
	return nil
}

func (r *Request) Bytes() []byte {
	return append([]byte(nil), r.raw...)
}

func (r *Request) Kind() Kind {
	return Kind(gjson.GetBytes(r.raw, pathKind).String())
}

func (r *Request) Round() (types.Bytes32, error) {
	res := gjson.GetBytes(r.raw, pathRound)
	if !res.Exists() {
		return types.Bytes32{}, fmt.Errorf("rotation request has no round")
	}
	round, err := types.ParseBytes32(res.String())
	if err != nil {
		return types.Bytes32{}, fmt.Errorf("invalid round: %w", err)
	}
	return round, nil
}

func (r *Request) Members() ([]types.Bytes32, error) {
	res := gjson.GetBytes(r.raw, pathMembers)
	if !res.IsArray() {
		return nil, fmt.Errorf("rotation request has no members")
	}
	values := make([]string, 0)
	for _, m := range res.Array() {
		values = append(values, m.String())
	}
	return types.ParseWordList(values)
}

// Slots is the number of signature slots.
func (r *Request) Slots() int {
	return len(gjson.GetBytes(r.raw, pathSignatures).Array())
}

// Digest is the message every signer signs.
func (r *Request) Digest() (types.Bytes32, error) {
	members, err := r.Members()
	if err != nil {
		return types.Bytes32{}, err
	}
	switch r.Kind() {
	case KindConsuls:
		round, err := r.Round()
		if err != nil {
			return types.Bytes32{}, err
		}
		return gravitytypes.HashNewConsuls(members, round), nil
	case KindOracles:
		return nebulatypes.HashNewOracles(members), nil
	default:
		return types.Bytes32{}, r.Kind().Validate()
	}
}

// AddSignature places sig into slot.
func (r *Request) AddSignature(slot int, sig attest.Signature) error {
	if slot < 0 || slot >= r.Slots() {
		return fmt.Errorf("signature slot %d out of range [0, %d)", slot, r.Slots())
	}
	raw, err := sjson.SetBytes(r.raw, fmt.Sprintf("%s.%d", pathSignatures, slot), sig)
	if err != nil {
		return err
	}
	r.raw = raw
	return nil
}

// Sign signs the digest with signer and stores the result in slot.
func (r *Request) Sign(signer keyring.Signer, slot int) (attest.Signature, error) {
	digest, err := r.Digest()
	if err != nil {
		return attest.Signature{}, err
	}
	sig, err := signer.SignDigest(digest)
	if err != nil {
		return attest.Signature{}, err
	}
	return sig, r.AddSignature(slot, sig)
}

// Signed reports which slots carry a signature.
func (r *Request) Signed() []bool {
	slots := gjson.GetBytes(r.raw, pathSignatures).Array()
	signed := make([]bool, len(slots))
	for i, s := range slots {
		signed[i] = s.IsObject()
	}
	return signed
}

// Signatures returns the signature list ready for submission. Consul
// rotations need every slot signed. Oracle rotations may leave trailing
// slots empty; those are dropped.
func (r *Request) Signatures() ([]attest.Signature, error) {
	slots := gjson.GetBytes(r.raw, pathSignatures).Array()
	if r.Kind() == KindOracles {
		for len(slots) > 0 && !slots[len(slots)-1].IsObject() {
			slots = slots[:len(slots)-1]
		}
	}

	sigs := make([]attest.Signature, len(slots))
	for i, s := range slots {
		if !s.IsObject() {
			return nil, fmt.Errorf("signature slot %d is empty", i)
		}
		if err := json.Unmarshal([]byte(s.Raw), &sigs[i]); err != nil {
			return nil, fmt.Errorf("invalid signature in slot %d: %w", i, err)
		}
	}
	if len(sigs) == 0 {
		return nil, fmt.Errorf("rotation request carries no signatures")
	}
	return sigs, nil
}
