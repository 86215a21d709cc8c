package rotation

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/GPTx-global/gravity/crypto/attest"
	"github.com/GPTx-global/gravity/crypto/keyring"
	"github.com/GPTx-global/gravity/types"
	gravitytypes "github.com/GPTx-global/gravity/x/gravity/types"
	nebulatypes "github.com/GPTx-global/gravity/x/nebula/types"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func testKeyring(t *testing.T) *keyring.Keyring {
	kr, err := keyring.New(testMnemonic)
	require.NoError(t, err)
	return kr
}

func member(t *testing.T, kr *keyring.Keyring, index uint32) *keyring.Member {
	m, err := kr.Member(index)
	require.NoError(t, err)
	return m
}

func TestConsulRequestSignAndCollect(t *testing.T) {
	kr := testKeyring(t)
	members, err := kr.Entries(3)
	require.NoError(t, err)
	round := types.Uint64Word(5)

	// slot count is forced to the member count
	req, err := New(KindConsuls, round, members, 1)
	require.NoError(t, err)
	require.Equal(t, 3, req.Slots())
	require.Equal(t, []bool{false, false, false}, req.Signed())

	digest, err := req.Digest()
	require.NoError(t, err)
	require.Equal(t, gravitytypes.HashNewConsuls(members, round), digest)

	_, err = req.Signatures()
	require.Error(t, err)

	for i := 0; i < 3; i++ {
		_, err := req.Sign(member(t, kr, uint32(i)), i)
		require.NoError(t, err)
	}
	require.Equal(t, []bool{true, true, true}, req.Signed())

	sigs, err := req.Signatures()
	require.NoError(t, err)
	require.Len(t, sigs, 3)

	count, err := attest.CountAttestations(digest, sigs, attest.EntryAt(members))
	require.NoError(t, err)
	require.Equal(t, uint64(3), count)
}

func TestOracleRequestDropsTrailingSlots(t *testing.T) {
	kr := testKeyring(t)
	consuls, err := kr.Entries(3)
	require.NoError(t, err)
	oracles := []types.Bytes32{types.Uint64Word(7), types.Uint64Word(8)}

	req, err := New(KindOracles, types.Uint64Word(1), oracles, len(consuls))
	require.NoError(t, err)

	digest, err := req.Digest()
	require.NoError(t, err)
	require.Equal(t, nebulatypes.HashNewOracles(oracles), digest)

	for i := 0; i < 2; i++ {
		_, err := req.Sign(member(t, kr, uint32(i)), i)
		require.NoError(t, err)
	}

	sigs, err := req.Signatures()
	require.NoError(t, err)
	require.Len(t, sigs, 2)

	count, err := attest.CountAttestations(digest, sigs, attest.EntryAt(consuls))
	require.NoError(t, err)
	require.Equal(t, uint64(2), count)
}

func TestSignaturesRejectsGap(t *testing.T) {
	kr := testKeyring(t)
	req, err := New(KindOracles, types.Uint64Word(1), []types.Bytes32{types.Uint64Word(1)}, 3)
	require.NoError(t, err)

	_, err = req.Sign(member(t, kr, 2), 2)
	require.NoError(t, err)

	_, err = req.Signatures()
	require.ErrorContains(t, err, "slot 0 is empty")
}

func TestAddSignatureOutOfRange(t *testing.T) {
	req, err := New(KindOracles, types.Uint64Word(1), []types.Bytes32{types.Uint64Word(1)}, 2)
	require.NoError(t, err)

	require.Error(t, req.AddSignature(2, attest.Signature{V: 27}))
	require.Error(t, req.AddSignature(-1, attest.Signature{V: 27}))
}

func TestFileRoundTripKeepsUnknownFields(t *testing.T) {
	kr := testKeyring(t)
	members, err := kr.Entries(2)
	require.NoError(t, err)

	req, err := New(KindConsuls, types.Uint64Word(9), members, 0)
	require.NoError(t, err)

	doc := append(req.Bytes()[:len(req.Bytes())-1], []byte(`,"note":"kept"}`)...)
	req, err = Parse(doc)
	require.NoError(t, err)

	_, err = req.Sign(member(t, kr, 1), 1)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "rotation.json")
	require.NoError(t, req.WriteFile(path))

	loaded, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "kept", gjson.GetBytes(loaded.Bytes(), "note").String())
	require.Equal(t, KindConsuls, loaded.Kind())
	require.Equal(t, []bool{false, true}, loaded.Signed())

	round, err := loaded.Round()
	require.NoError(t, err)
	require.Equal(t, types.Uint64Word(9), round)

	got, err := loaded.Members()
	require.NoError(t, err)
	require.Equal(t, members, got)
}

func TestNewInvalid(t *testing.T) {
	one := []types.Bytes32{types.Uint64Word(1)}

	testCases := []struct {
		name    string
		kind    Kind
		members []types.Bytes32
		slots   int
	}{
		{"1. unknown kind", Kind("pulses"), one, 1},
		{"2. no members", KindConsuls, nil, 1},
		{"3. oracle request without slots", KindOracles, one, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.kind, types.Uint64Word(1), tc.members, tc.slots)
			require.Error(t, err)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{"1. malformed json", `{"kind":`},
		{"2. unknown kind", `{"kind":"x","round":"0x1","members":["0x1"],"signatures":[null]}`},
		{"3. missing round", `{"kind":"oracles","members":["0x1"],"signatures":[null]}`},
		{"4. bad member", `{"kind":"oracles","round":"0x1","members":["zz"],"signatures":[null]}`},
		{"5. empty members", `{"kind":"oracles","round":"0x1","members":[],"signatures":[null]}`},
		{"6. no signature slots", `{"kind":"oracles","round":"0x1","members":["0x1"]}`},
		{"7. consul slot mismatch", `{"kind":"consuls","round":"0x1","members":["0x1","0x2"],"signatures":[null]}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			require.Error(t, err)
		})
	}
}
