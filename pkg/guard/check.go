package guard

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Recorder collects named check outcomes for one verification
// step. It is owned by the caller; after all checks have run,
// the owner decides whether the aggregate counts as a failure.
// Multiple entries under the same name are permitted and must
// not be deduplicated.
type Recorder interface {
	// AddCheck records one outcome under name.
	AddCheck(name string, result CheckResult)
}

// checkBorder is the border used around check failure
// diagnostics. Fail-fast reports use the wider reportBorder.
var checkBorder = strings.Repeat("=", 60)

// Checker evaluates checks and records their outcomes without
// ever failing the calling flow. Both streams are injected so a
// harness can capture or redirect output; both must be non-nil.
type Checker struct {
	// Progress receives the one-line notice emitted for every
	// check, pass or fail, so a reviewer can audit which
	// properties were exercised even on a clean run.
	Progress io.Writer

	// Diag receives the detailed diagnostic block emitted when
	// a check fails. It may be the same writer as Progress.
	Diag io.Writer
}

// NewChecker returns a Checker writing progress to stdout and
// diagnostics to stderr.
func NewChecker() *Checker {
	return &Checker{Progress: os.Stdout, Diag: os.Stderr}
}

// Check evaluates ok, emits diagnostics, and records a
// CheckResult under name in rec. It always returns normally: a
// failing check is recorded, not raised, so one invocation can
// run many independent checks against a procedure and collect
// every outcome before the caller decides what the aggregate
// means. Write errors on the streams are ignored; the streams
// carry diagnostics, the Recorder carries the result.
func (c *Checker) Check(
	rec Recorder,
	name string,
	ok bool,
	meta Metadata,
	expected, actual string,
) {
	fmt.Fprintf(
		c.Progress,
		"    checking: %s (protects: %s)\n",
		name, meta.Protects,
	)

	if ok {
		rec.AddCheck(name, Pass(expected))
		return
	}

	fmt.Fprintf(c.Diag, "\n%s\n", checkBorder)
	fmt.Fprintf(
		c.Diag, "CHEAT-GUARDED CHECK FAILED: %s\n", name,
	)
	fmt.Fprintf(c.Diag, "%s\n", checkBorder)
	fmt.Fprintf(c.Diag, "PROTECTS: %s\n", meta.Protects)
	fmt.Fprintf(c.Diag, "SEVERITY: %s\n", meta.Severity)
	fmt.Fprintf(c.Diag, "CHEATS:\n%s\n", meta.numberedCheats())
	fmt.Fprintf(
		c.Diag, "CONSEQUENCE: %s\n", meta.Consequence,
	)
	fmt.Fprintf(c.Diag, "%s\n", checkBorder)

	rec.AddCheck(name, Fail(expected, actual))
}

// defaultChecker backs the package-level Check.
var defaultChecker = NewChecker()

// Check runs a check against the default stdout/stderr
// Checker. Harnesses that need to capture or redirect output
// should construct their own Checker instead.
func Check(
	rec Recorder,
	name string,
	ok bool,
	meta Metadata,
	expected, actual string,
) {
	defaultChecker.Check(rec, name, ok, meta, expected, actual)
}
