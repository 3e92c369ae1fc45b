// errors.go defines the error kinds returned by path validation.
//
// Separated to centralise error definitions. Three kinds exist and callers
// branch on kind, never on message text:
//   - ErrInvalidArgument: the caller passed malformed inputs (programming error)
//   - DenialError (matches ErrDenied): the sandbox refused the path (policy)
//   - anything else: filesystem failure on an authorised path (see access)
//
// Design: denials carry a Reason code because audit logging needs to record
// *which* rule rejected a path. errors.Is(err, ErrDenied) matches every
// denial; errors.As recovers the reason.

package sandbox

import "errors"

// Reason identifies the rule that denied a path.
type Reason string

const (
	// ReasonTraversal: the path contains a ".." segment, or its resolved
	// form escapes the project root.
	ReasonTraversal Reason = "traversal detected"
	// ReasonAbsolute: the path is absolute (leading slash or drive letter).
	ReasonAbsolute Reason = "absolute path not allowed"
	// ReasonNotAllowed: the path is not covered by the allow-list.
	ReasonNotAllowed Reason = "access denied"
)

var (
	// ErrDenied matches any security denial via errors.Is.
	ErrDenied = errors.New("path denied")

	// ErrInvalidArgument indicates empty or malformed call inputs.
	// This is a caller bug, not a security denial.
	ErrInvalidArgument = errors.New("invalid argument")
)

// DenialError reports a path the sandbox refused, with the reason.
// The message never includes resolved filesystem detail beyond the
// requested path itself.
type DenialError struct {
	Path   string
	Reason Reason
}

func (e *DenialError) Error() string {
	return string(e.Reason) + ": " + e.Path
}

// Is reports ErrDenied as a match, so errors.Is(err, ErrDenied) covers
// every denial regardless of reason.
func (e *DenialError) Is(target error) bool {
	return target == ErrDenied
}

// DenialReason extracts the denial reason from an error chain.
// Returns false when err is not a sandbox denial.
func DenialReason(err error) (Reason, bool) {
	var d *DenialError
	if errors.As(err, &d) {
		return d.Reason, true
	}
	return "", false
}
