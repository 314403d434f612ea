package guard

import "fmt"

// Severity labels how damaging a silently bypassed check would
// be. It is a plain label: no ordering or filtering semantics
// are attached at this layer. Ranking, if wanted, is a caller
// concern.
type Severity string

// The closed set of severity labels.
const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
)

// Valid reports whether s is one of the four defined labels.
func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityHigh,
		SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// String returns the label text.
func (s Severity) String() string {
	return string(s)
}

// ParseSeverity resolves a label read from a manifest or other
// external source. It accepts exactly the four defined labels.
func ParseSeverity(label string) (Severity, error) {
	s := Severity(label)
	if !s.Valid() {
		return "", fmt.Errorf(
			"unknown severity label: %q", label,
		)
	}
	return s, nil
}
