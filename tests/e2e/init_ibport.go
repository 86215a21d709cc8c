package e2e

import (
	ibportcmd "github.com/GPTx-global/gravity/tests/e2e/cmd/ibport"
	ibporttypes "github.com/GPTx-global/gravity/x/ibport/types"
)

func init() {
	AddTestCase(&TestCase{
		Reset:   true,
		Module:  "ibport",
		Name:    "should pass - mint",
		Cmd:     ibportcmd.CreateApplyCmd(Nebula, ibportcmd.MintStream(1, 100, Alice)),
		ExpPass: true,
		PassCheck: []CheckCase{
			{Module: "token", Query: "balance", Args: []string{Alice}, Expected: `balance: "100"`},
			{Module: "ibport", Query: "status", Args: []string{"1"}, Expected: "status: new"},
		},
	})

	AddTestCase(&TestCase{
		Module: "ibport",
		Name:   "should pass - mint and change in one stream",
		Cmd: ibportcmd.CreateApplyCmd(Nebula,
			ibportcmd.MintStream(2, 50, Bob),
			ibportcmd.ChangeStream(1, ibporttypes.RequestStatusSuccess),
		),
		ExpPass: true,
		PassCheck: []CheckCase{
			{Module: "ibport", Query: "status", Args: []string{"1"}, Expected: "status: success"},
			{Module: "ibport", Query: "status", Args: []string{"2"}, Expected: "status: new"},
			{Module: "token", Query: "supply", Expected: `total_supply: "150"`},
		},
	})

	AddTestCase(&TestCase{
		Module:  "ibport",
		Name:    "should fail - stream from a stranger",
		Cmd:     ibportcmd.CreateApplyCmd(Stranger, ibportcmd.MintStream(3, 1, Stranger)),
		ExpPass: false,
		ExpErr:  "caller is not the nebula",
		FailCheck: []CheckCase{
			{Module: "token", Query: "supply", Expected: `total_supply: "150"`},
			{Module: "ibport", Query: "status", Args: []string{"3"}, Expected: "status: none"},
		},
	})

	AddTestCase(&TestCase{
		Module:  "ibport",
		Name:    "should fail - truncated stream",
		Cmd:     ibportcmd.CreateApplyCmd(Nebula, ibportcmd.MintStream(3, 1, Alice)[:40]),
		ExpPass: false,
		ExpErr:  "invalid request",
		FailCheck: []CheckCase{
			{Module: "token", Query: "supply", Expected: `total_supply: "150"`},
		},
	})

	AddTestCase(&TestCase{
		Module: "ibport",
		Name:   "should pass - failed change does not stop the stream",
		Cmd: ibportcmd.CreateApplyCmd(Nebula,
			ibportcmd.ChangeStream(9, ibporttypes.RequestStatusSuccess),
			ibportcmd.MintStream(4, 5, Alice),
		),
		ExpPass: true,
		PassCheck: []CheckCase{
			{Module: "token", Query: "balance", Args: []string{Alice}, Expected: `balance: "105"`},
			{Module: "ibport", Query: "status", Args: []string{"9"}, Expected: "status: none"},
		},
	})

	AddTestCase(&TestCase{
		Module:  "ibport",
		Name:    "should pass - a terminal status is kept",
		Cmd:     ibportcmd.CreateApplyCmd(Nebula, ibportcmd.ChangeStream(1, ibporttypes.RequestStatusReturned)),
		ExpPass: true,
		PassCheck: []CheckCase{
			{Module: "ibport", Query: "status", Args: []string{"1"}, Expected: "status: success"},
		},
	})
}
