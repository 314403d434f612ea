package guard

import (
	"fmt"
	"strings"
)

// Metadata documents a single assertion site: what real-world
// guarantee the check defends, how bad a silent bypass would
// be, the concrete ways the check could be subverted, and what
// a user experiences if it is. The bundle is transient: built
// at the call site, consumed immediately by the formatter, and
// never stored by this package.
type Metadata struct {
	// Protects describes the real property this check defends.
	Protects string

	// Severity labels the impact of a bypassed check.
	Severity Severity

	// Cheats lists concrete ways the check could be subverted
	// while appearing to pass. Order is preserved and entries
	// are numbered 1..N in output. The list must contain at
	// least one entry; build it with Cheats.
	Cheats []string

	// Consequence describes what a real user experiences if
	// the check is bypassed.
	Consequence string
}

// NewMetadata bundles the four documentation fields. Every
// field is mandatory; there are no defaults and no optional
// parameters.
func NewMetadata(
	protects string,
	severity Severity,
	cheats []string,
	consequence string,
) Metadata {
	return Metadata{
		Protects:    protects,
		Severity:    severity,
		Cheats:      cheats,
		Consequence: consequence,
	}
}

// Cheats builds a cheat-vector list from one or more entries,
// preserving argument order. The one-or-more signature makes an
// empty list impossible to construct this way.
func Cheats(first string, rest ...string) []string {
	list := make([]string, 0, 1+len(rest))
	list = append(list, first)
	return append(list, rest...)
}

// Validate reports a contract violation in metadata that was
// materialized outside a call site, for example loaded from a
// review manifest. The assertion operations themselves assume
// valid metadata and do not re-check.
func (m Metadata) Validate() error {
	if m.Protects == "" {
		return fmt.Errorf("metadata: protects is empty")
	}
	if !m.Severity.Valid() {
		return fmt.Errorf(
			"metadata: invalid severity %q", m.Severity,
		)
	}
	if len(m.Cheats) == 0 {
		return fmt.Errorf("metadata: cheat list is empty")
	}
	for i, c := range m.Cheats {
		if c == "" {
			return fmt.Errorf(
				"metadata: cheat %d is empty", i+1,
			)
		}
	}
	if m.Consequence == "" {
		return fmt.Errorf("metadata: consequence is empty")
	}
	return nil
}

// numberedCheats renders the cheat list as "  N. entry" lines
// joined by newlines, preserving input order.
func (m Metadata) numberedCheats() string {
	lines := make([]string, 0, len(m.Cheats))
	for i, c := range m.Cheats {
		lines = append(
			lines, fmt.Sprintf("  %d. %s", i+1, c),
		)
	}
	return strings.Join(lines, "\n")
}
