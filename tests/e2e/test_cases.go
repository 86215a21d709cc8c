package e2e

type CheckCase struct {
	Module   string   // which module to query from?
	Query    string   // query command
	Args     []string // query args
	Expected string   // expected fragment of the query output
}

type TestCase struct {
	Reset         bool     // whether to start from a fresh node
	Module        string   // name of module
	Name          string   // test case
	Cmd           []string // command to execute
	ExpPass       bool     // should pass or not?
	ExpErr        string   // expected error (only if ExpPass == false)
	PassCheck     []CheckCase
	FailCheck     []CheckCase
	PreRun        func(n *Node) error // runs before Cmd
	PassCheckFunc func() error        // conditions to check in case of ExpPass == true
	FailCheckFunc func() error        // conditions to check in case of ExpPass == false
}

var TestCases []TestCase

func AddTestCase(testCase *TestCase) {
	if testCase.PreRun == nil {
		testCase.PreRun = func(*Node) error { return nil }
	}
	if testCase.PassCheckFunc == nil {
		testCase.PassCheckFunc = func() error { return nil }
	}
	if testCase.FailCheckFunc == nil {
		testCase.FailCheckFunc = func() error { return nil }
	}
	TestCases = append(TestCases, *testCase)
}
