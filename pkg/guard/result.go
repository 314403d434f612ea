package guard

import "fmt"

// CheckResult is the outcome of one recorded check: a pass
// carrying the expected description, or a failure carrying the
// expected and actual descriptions. Both descriptions are
// free-form caller-supplied text (for example rendered command
// output). A CheckResult is immutable once constructed and is
// owned by the Recorder it is added to.
type CheckResult struct {
	passed   bool
	expected string
	actual   string
}

// Pass builds a passing result carrying the expected
// description.
func Pass(expected string) CheckResult {
	return CheckResult{passed: true, expected: expected}
}

// Fail builds a failing result carrying the expected and the
// observed descriptions.
func Fail(expected, actual string) CheckResult {
	return CheckResult{expected: expected, actual: actual}
}

// Passed reports whether the check passed.
func (r CheckResult) Passed() bool {
	return r.passed
}

// Expected returns the caller-supplied expected description.
func (r CheckResult) Expected() string {
	return r.expected
}

// Actual returns the observed description. It is empty for
// passing results.
func (r CheckResult) Actual() string {
	return r.actual
}

// String renders the result for logs.
func (r CheckResult) String() string {
	if r.passed {
		return fmt.Sprintf("pass: %s", r.expected)
	}
	return fmt.Sprintf(
		"fail: expected %s, got %s", r.expected, r.actual,
	)
}
