package e2e

import (
	"fmt"

	rotationcmd "github.com/GPTx-global/gravity/tests/e2e/cmd/rotation"
)

// prepareRotation writes a rotation request and signs slot i with keys[i].
func prepareRotation(kind, round string, members []string, keys []uint32) func(n *Node) error {
	return func(n *Node) error {
		if _, stderr, err := n.Exec(rotationcmd.CreateNewCmd(kind, round, RotationFile, members...)...); err != nil {
			return fmt.Errorf("rotation new: %w: %s", err, stderr)
		}
		for slot, key := range keys {
			if _, stderr, err := n.Exec(rotationcmd.CreateSignCmd(RotationFile, key, slot)...); err != nil {
				return fmt.Errorf("rotation sign: %w: %s", err, stderr)
			}
		}
		return nil
	}
}

// hexBody drops the 0x prefix so checks hold however the output quotes it.
func hexBody(word string) string {
	return word[2:]
}

func init() {
	AddTestCase(&TestCase{
		Reset:   true,
		Module:  "consuls",
		Name:    "should pass - incoming consuls attest their own rotation",
		PreRun:  prepareRotation("consuls", "0x1", []string{ConsulEntry(2), ConsulEntry(3)}, []uint32{2, 3}),
		Cmd:     rotationcmd.CreateRotateCmd("consuls", RotationFile),
		ExpPass: true,
		PassCheck: []CheckCase{
			{Module: "consuls", Query: "show", Expected: hexBody(ConsulEntry(2))},
			{Module: "consuls", Query: "show", Args: []string{"--round=0x0"}, Expected: hexBody(ConsulEntry(0))},
		},
	})

	AddTestCase(&TestCase{
		Module:  "consuls",
		Name:    "should pass - a stale round is ignored",
		PreRun:  prepareRotation("consuls", "0x1", []string{ConsulEntry(4), ConsulEntry(5)}, []uint32{4, 5}),
		Cmd:     rotationcmd.CreateRotateCmd("consuls", RotationFile),
		ExpPass: true,
		PassCheck: []CheckCase{
			{Module: "consuls", Query: "show", Expected: hexBody(ConsulEntry(3))},
		},
	})

	AddTestCase(&TestCase{
		Module:  "oracles",
		Name:    "should pass - current consuls rotate the oracles",
		PreRun:  prepareRotation("oracles", "0x1", []string{ConsulEntry(6), ConsulEntry(7)}, []uint32{2, 3}),
		Cmd:     rotationcmd.CreateRotateCmd("oracles", RotationFile),
		ExpPass: true,
		PassCheck: []CheckCase{
			{Module: "oracles", Query: "show", Expected: hexBody(ConsulEntry(6))},
			{Module: "oracles", Query: "round", Args: []string{"0x1"}, Expected: "mutated: true"},
		},
	})

	AddTestCase(&TestCase{
		Module:  "oracles",
		Name:    "should fail - round already mutated",
		Cmd:     rotationcmd.CreateRotateCmd("oracles", RotationFile),
		ExpPass: false,
		ExpErr:  "round already mutated",
	})

	AddTestCase(&TestCase{
		Module:  "oracles",
		Name:    "should fail - retired consuls cannot rotate the oracles",
		PreRun:  prepareRotation("oracles", "0x2", []string{ConsulEntry(8)}, []uint32{0, 1}),
		Cmd:     rotationcmd.CreateRotateCmd("oracles", RotationFile),
		ExpPass: false,
		ExpErr:  "not enough consul signatures",
		FailCheck: []CheckCase{
			{Module: "oracles", Query: "round", Args: []string{"0x2"}, Expected: "mutated: false"},
			{Module: "oracles", Query: "show", Expected: hexBody(ConsulEntry(7))},
		},
	})
}
