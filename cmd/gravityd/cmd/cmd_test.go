package cmd_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	gravityd "github.com/GPTx-global/gravity/cmd/gravityd/cmd"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func run(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	rootCmd := gravityd.NewRootCmd()
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(append(args, fmt.Sprintf("--home=%s", home), "--log-level=none"))

	err := gravityd.Execute(rootCmd, gravityd.EnvPrefix, home)
	return out.String(), err
}

func TestInitCmd(t *testing.T) {
	home := t.TempDir()
	_, err := run(t, home,
		"init",
		"--chain-id=gravity-test-1",
		"--consuls=0x01,0x02",
		"--output=json",
	)
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(home, "config", "genesis.json"))
	require.FileExists(t, filepath.Join(home, "config", "config.toml"))

	// genesis is not replaced without --overwrite
	_, err = run(t, home, "init", "--chain-id=gravity-test-1")
	require.Error(t, err)

	_, err = run(t, home, "init", "--chain-id=gravity-test-1", "--overwrite")
	require.NoError(t, err)
}

func TestInitCmdInvalid(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"1. bad consul entry", []string{"--consuls=0xzz"}},
		{"2. zero threshold", []string{"--threshold=0"}},
		{"3. unknown feed type", []string{"--feed-type=float"}},
		{"4. bad nebula", []string{"--nebula=nope"}},
		{"5. consul keys without mnemonic", []string{"--consul-keys=2"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, t.TempDir(), append([]string{"init"}, tc.args...)...)
			require.Error(t, err)
		})
	}
}

func TestKeysAndConsuls(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, "config"), 0o755))

	importCmd := gravityd.NewRootCmd()
	importCmd.SetIn(bytes.NewBufferString(testMnemonic + "\n"))
	importCmd.SetOut(new(bytes.Buffer))
	importCmd.SetArgs([]string{"keys", "import", "--home=" + home, "--log-level=none"})
	require.NoError(t, gravityd.Execute(importCmd, gravityd.EnvPrefix, home))

	out, err := run(t, home, "keys", "show", "1", "--output=json")
	require.NoError(t, err)
	var key struct {
		Index uint32 `json:"index"`
		Entry string `json:"entry"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &key))
	require.Equal(t, uint32(1), key.Index)

	_, err = run(t, home, "init", "--consul-keys=2", "--threshold=2")
	require.NoError(t, err)

	out, err = run(t, home, "consuls", "show", "--output=json")
	require.NoError(t, err)
	var info struct {
		Threshold uint64   `json:"threshold"`
		Consuls   []string `json:"consuls"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	require.Equal(t, uint64(2), info.Threshold)
	require.Len(t, info.Consuls, 2)
	require.Equal(t, key.Entry, info.Consuls[1])

	out, err = run(t, home, "oracles", "show", "--output=json")
	require.NoError(t, err)
	var oracles struct {
		Threshold uint64 `json:"threshold"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &oracles))
	require.Equal(t, uint64(2), oracles.Threshold)
}

func TestEncodeCommands(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "ibport", "encode-change", "7", "success")
	require.NoError(t, err)
	// 'c' ++ 32 byte id ++ 32 byte status
	require.Equal(t, "0x63"+fmt.Sprintf("%064x", 7)+fmt.Sprintf("%064x", 3)+"\n", out)

	_, err = run(t, home, "ibport", "encode-change", "7", "pending")
	require.Error(t, err)
}

func TestTxCmdRequiresFrom(t *testing.T) {
	_, err := run(t, t.TempDir(), "token", "transfer", "0x01", "10")
	require.Error(t, err)
}

func TestRotationSignWithKMSNeedsSlot(t *testing.T) {
	home := t.TempDir()
	file := filepath.Join(home, "rotation.json")

	_, err := run(t, home, "rotation", "new", "consuls", "1", "0x01", "0x02", "--out="+file)
	require.NoError(t, err)
	require.FileExists(t, file)

	_, err = run(t, home, "rotation", "sign", file, "--kms-key-id=alias/consul-0")
	require.ErrorContains(t, err, "--slot is required")
}
