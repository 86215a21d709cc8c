package e2e

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// The CLI cases run in registration order against an in-process node; a case
// with Reset starts from a fresh home directory.
var _ = Describe("gravityd CLI", Ordered, func() {
	AfterAll(func() {
		s.tearDown()
	})

	for _, tc := range TestCases {
		tc := tc
		It(fmt.Sprintf("%s :: %s", tc.Module, tc.Name), func() {
			if tc.Reset || s.node == nil {
				s.resetNode()
			}
			Expect(tc.PreRun(s.node)).To(Succeed())

			stdout, stderr, err := s.node.Exec(tc.Cmd...)

			checks := tc.FailCheck
			checkFunc := tc.FailCheckFunc
			if tc.ExpPass {
				Expect(err).To(BeNil(), "command failed:\nstdout: %s\nstderr: %s", stdout, stderr)
				checks = tc.PassCheck
				checkFunc = tc.PassCheckFunc
			} else {
				Expect(err).NotTo(BeNil(), "command passed:\nstdout: %s", stdout)
				Expect(stdout + stderr).To(ContainSubstring(tc.ExpErr))
			}

			for _, check := range checks {
				out, errOut, err := s.node.Query(check.Module, check.Query, check.Args...)
				Expect(err).To(BeNil(), "query %s %s failed: %s", check.Module, check.Query, errOut)
				Expect(out).To(ContainSubstring(check.Expected))
			}
			Expect(checkFunc()).To(Succeed())
		})
	}
})
