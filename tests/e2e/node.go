package e2e

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/GPTx-global/gravity/crypto/keyring"
	"github.com/GPTx-global/gravity/types"

	gravityd "github.com/GPTx-global/gravity/cmd/gravityd/cmd"
)

const (
	ChainID  = "gravity-e2e-1"
	Mnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	// GenesisConsuls is the number of consuls derived from Mnemonic at genesis.
	GenesisConsuls = 2

	// HomeVar in a command argument is replaced by the node home.
	HomeVar = "{home}"

	// RotationFile is where rotation requests of the test cases are written.
	RotationFile = HomeVar + "/rotation.json"
)

// Accounts used across the test cases, as 0x hex account ids.
var (
	Nebula   = accountHex(0xa1)
	Deployer = accountHex(0xa2)
	Alice    = accountHex(0xa3)
	Bob      = accountHex(0xa4)
	Stranger = accountHex(0xa5)
	Foreign  = accountHex(0xa6)
)

func accountHex(b byte) string {
	return types.BytesToBytes32(bytes.Repeat([]byte{b}, types.WordLength)).String()
}

// ConsulEntry returns the committee entry of key index i of Mnemonic.
func ConsulEntry(i uint32) string {
	kr, err := keyring.New(Mnemonic)
	if err != nil {
		panic(err)
	}
	entry, err := kr.Entry(i)
	if err != nil {
		panic(err)
	}
	return entry.String()
}

// Node is a gravityd home directory driven through the CLI in-process.
type Node struct {
	Home string
}

// NewNode initializes a home under dir with GenesisConsuls consuls,
// threshold 2, and the Nebula and Deployer accounts.
func NewNode(dir string) (*Node, error) {
	n := &Node{Home: dir}
	if err := os.MkdirAll(filepath.Join(dir, "config"), 0o755); err != nil {
		return nil, err
	}
	if _, stderr, err := n.ExecWithInput(Mnemonic+"\n", "keys", "import"); err != nil {
		return nil, fmt.Errorf("keys import: %w: %s", err, stderr)
	}
	_, stderr, err := n.Exec(
		"init",
		"--chain-id="+ChainID,
		fmt.Sprintf("--consul-keys=%d", GenesisConsuls),
		"--threshold=2",
		"--nebula="+Nebula,
		"--deployers="+Deployer,
		"--token-name=Wrapped Ether",
		"--token-symbol=wETH",
	)
	if err != nil {
		return nil, fmt.Errorf("init: %w: %s", err, stderr)
	}
	return n, nil
}

// Exec runs one gravityd command against the node.
func (n *Node) Exec(args ...string) (string, string, error) {
	return n.ExecWithInput("", args...)
}

func (n *Node) ExecWithInput(input string, args ...string) (string, string, error) {
	if len(args) > 0 && args[0] == "gravityd" {
		args = args[1:]
	}
	expanded := make([]string, len(args))
	for i, arg := range args {
		expanded[i] = strings.ReplaceAll(arg, HomeVar, n.Home)
	}

	rootCmd := gravityd.NewRootCmd()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(append(expanded, "--home="+n.Home, "--log-level=error"))

	err := gravityd.Execute(rootCmd, gravityd.EnvPrefix, n.Home)
	return stdout.String(), stderr.String(), err
}

// Query runs a query command of a module.
func (n *Node) Query(module, query string, args ...string) (string, string, error) {
	return n.Exec(append([]string{module, query}, args...)...)
}
