// Package guard provides cheat-aware assertions for code that
// verifies an external imperative procedure, such as an
// installer or provisioning flow. The danger in that kind of
// code is not incorrect checks but cheated ones: validation
// that appears to verify a property while being trivially
// bypassable (accepting an exit code without looking at output,
// matching any output at all). Every assertion site therefore
// carries documentation of the real property it protects, the
// severity of a silent bypass, the concrete ways the check
// could be gamed, and the consequence a user would see. That
// documentation is emitted verbatim into failure output, so a
// cheat-guarded failure explains itself to the operator and the
// cheat vectors stay visible to code reviewers.
//
// Three operations share one metadata shape: Bail fails
// unconditionally, Ensure fails when a condition is false, and
// Check records a Pass/Fail outcome into a caller-owned
// Recorder without ever aborting the calling flow.
//
// The declarative review markers applied to verification
// functions live in pkg/review.
package guard
