package e2e

import (
	ibportcmd "github.com/GPTx-global/gravity/tests/e2e/cmd/ibport"
	tokencmd "github.com/GPTx-global/gravity/tests/e2e/cmd/token"
)

func init() {
	AddTestCase(&TestCase{
		Reset:   true,
		Module:  "token",
		Name:    "should pass - fund alice",
		Cmd:     ibportcmd.CreateApplyCmd(Nebula, ibportcmd.MintStream(1, 100, Alice)),
		ExpPass: true,
		PassCheck: []CheckCase{
			{Module: "token", Query: "supply", Expected: "symbol: wETH"},
		},
	})

	AddTestCase(&TestCase{
		Module:  "token",
		Name:    "should pass - transfer",
		Cmd:     tokencmd.CreateTransferCmd(Alice, Bob, "30"),
		ExpPass: true,
		PassCheck: []CheckCase{
			{Module: "token", Query: "balance", Args: []string{Alice}, Expected: `balance: "70"`},
			{Module: "token", Query: "balance", Args: []string{Bob}, Expected: `balance: "30"`},
		},
	})

	AddTestCase(&TestCase{
		Module:  "token",
		Name:    "should fail - transfer more than the balance",
		Cmd:     tokencmd.CreateTransferCmd(Bob, Alice, "31"),
		ExpPass: false,
		ExpErr:  "not enough money",
		FailCheck: []CheckCase{
			{Module: "token", Query: "balance", Args: []string{Bob}, Expected: `balance: "30"`},
		},
	})

	AddTestCase(&TestCase{
		Module:  "token",
		Name:    "should pass - unwrap burns the tokens",
		Cmd:     ibportcmd.CreateUnwrapCmd(Alice, "20", Foreign),
		ExpPass: true,
		PassCheck: []CheckCase{
			{Module: "token", Query: "balance", Args: []string{Alice}, Expected: `balance: "50"`},
			{Module: "token", Query: "supply", Expected: `total_supply: "80"`},
		},
	})

	AddTestCase(&TestCase{
		Module:  "token",
		Name:    "should fail - unwrap more than the balance",
		Cmd:     ibportcmd.CreateUnwrapCmd(Bob, "31", Foreign),
		ExpPass: false,
		ExpErr:  "token error",
		FailCheck: []CheckCase{
			{Module: "token", Query: "supply", Expected: `total_supply: "80"`},
		},
	})

	AddTestCase(&TestCase{
		Module:  "token",
		Name:    "should pass - deployer adds a deployer",
		Cmd:     tokencmd.CreateAddDeployerCmd(Deployer, Bob),
		ExpPass: true,
	})

	AddTestCase(&TestCase{
		Module:  "token",
		Name:    "should fail - stranger adds a deployer",
		Cmd:     tokencmd.CreateAddDeployerCmd(Stranger, Stranger),
		ExpPass: false,
		ExpErr:  "the operation is not allowed for this caller",
	})
}
