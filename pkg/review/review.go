// Package review holds the declarative markers applied to
// verification functions and a YAML manifest that makes marker
// coverage enumerable for audits. Markers never alter assertion
// behavior; they exist so reviewers can see which functions
// carry cheat documentation, which act as canaries, and which
// have had their cheat vectors reviewed by a human.
package review

import "github.com/LevitateOS/cheat-guard/pkg/guard"

// Aware attaches full cheat documentation to a verification
// function.
type Aware struct {
	// Protects describes the property the function verifies.
	Protects string `yaml:"protects" json:"protects"`

	// Severity labels the impact of a bypass.
	Severity guard.Severity `yaml:"severity" json:"severity"`

	// Cheats lists concrete ways the verification could be
	// subverted while appearing to pass.
	Cheats []string `yaml:"cheats" json:"cheats"`

	// Consequence describes the user-visible impact of a
	// bypass.
	Consequence string `yaml:"consequence" json:"consequence"`
}

// Metadata converts the marker into the call-site metadata
// bundle, so a function's declared documentation can back its
// assertions directly.
func (a Aware) Metadata() guard.Metadata {
	return guard.NewMetadata(
		a.Protects, a.Severity, a.Cheats, a.Consequence,
	)
}

// Canary marks a check that is expected to start failing if the
// verification it guards is ever weakened.
type Canary struct {
	// Reason explains what weakening the canary detects.
	Reason string `yaml:"reason" json:"reason"`
}

// Reviewed records a completed human review of a function's
// cheat vectors.
type Reviewed struct {
	// By identifies the reviewer.
	By string `yaml:"by" json:"by"`

	// Date is the review date in ISO 8601 form.
	Date string `yaml:"date" json:"date"`

	// Notes holds optional reviewer remarks.
	Notes string `yaml:"notes,omitempty" json:"notes,omitempty"`
}
