package guard

import (
	"errors"
	"fmt"
)

// ErrCheatGuarded is the sentinel error for cheat-guarded
// failures. Use errors.Is to detect one regardless of the
// metadata attached.
var ErrCheatGuarded = errors.New("cheat-guarded failure")

// GuardError is the failure produced by Bail and Ensure. Its
// Error text is the full formatted report; the raw inputs stay
// available as fields for callers that want them.
type GuardError struct {
	// Metadata is the documentation supplied at the call site.
	Metadata Metadata

	// Message is the raw error message before formatting.
	Message string

	report string
}

// Error returns the formatted report.
func (e *GuardError) Error() string {
	return e.report
}

// Unwrap returns the sentinel so errors.Is(err, ErrCheatGuarded)
// holds for every guard failure.
func (e *GuardError) Unwrap() error {
	return ErrCheatGuarded
}

// Bail unconditionally produces a cheat-guarded failure whose
// text is the formatted report for msg and meta. Bail itself
// never prints; surfacing the error is the caller's own
// reporting path.
func Bail(meta Metadata, msg string) error {
	return &GuardError{
		Metadata: meta,
		Message:  msg,
		report:   Format(msg, meta),
	}
}

// Bailf is Bail with a format string for the error message.
func Bailf(meta Metadata, format string, args ...any) error {
	return Bail(meta, fmt.Sprintf(format, args...))
}

// Ensure returns nil when ok is true. When ok is false it
// behaves exactly as Bail with the same metadata and message:
// same formatting, same propagation.
func Ensure(ok bool, meta Metadata, msg string) error {
	if ok {
		return nil
	}
	return Bail(meta, msg)
}

// Ensuref is Ensure with a format string for the error message.
// The message is only rendered on the failing path.
func Ensuref(
	ok bool, meta Metadata, format string, args ...any,
) error {
	if ok {
		return nil
	}
	return Bailf(meta, format, args...)
}
