// Package sandbox decides whether a requested library path may be read.
//
// Every filesystem read promptlint performs on library content is gated
// here first. The guard classifies a caller-supplied relative path against
// an immutable allow-list and, when allowed, returns the absolute resolved
// path rooted at the supplied library root.
//
// Security: traversal is blocked twice. A literal segment check rejects
// ".." early and cheaply; a canonical relative-offset check after joining
// is the authority and catches whatever normalisation differences the
// literal check misses. Policy is enforced separately by allow-list with
// default deny. Combined with os.OpenRoot in the access package, this
// provides defence-in-depth against escaping the library root.
//
// The guard never touches the filesystem. No stat, no existence check, no
// symlink resolution: a path that does not exist still validates, and
// symlink classification is the access package's job.
package sandbox

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Guard validates requested paths against a policy. Stateless per call;
// safe for concurrent use.
type Guard struct {
	policy Policy
}

// New creates a guard enforcing the given policy.
func New(policy Policy) *Guard {
	return &Guard{policy: policy}
}

// Policy returns the allow-list the guard enforces.
func (g *Guard) Policy() Policy {
	return g.policy
}

// Resolve validates requested against the allow-list and returns the
// absolute path of requested joined under root.
//
// requested is a root-relative path as received from a manifest, config
// value, or tool argument. Backslash and forward-slash separators are both
// accepted. root is the library root directory, supplied by the caller on
// every call; the guard never infers it.
//
// Outcomes:
//   - resolved absolute path, nil
//   - ErrInvalidArgument for empty or malformed inputs (caller bug)
//   - *DenialError carrying the reason that rejected the path
//
// Resolve is a pure function of its inputs and the policy: same inputs,
// same outcome, no side effects.
func (g *Guard) Resolve(requested, root string) (string, error) {
	if requested == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidArgument)
	}
	if root == "" {
		return "", fmt.Errorf("%w: empty root", ErrInvalidArgument)
	}
	if strings.ContainsRune(requested, 0) {
		return "", fmt.Errorf("%w: null byte in path", ErrInvalidArgument)
	}
	if strings.ContainsRune(root, 0) {
		return "", fmt.Errorf("%w: null byte in root", ErrInvalidArgument)
	}

	// Normalise separators before any comparison so traversal patterns
	// cannot hide behind platform-specific separators.
	p := strings.ReplaceAll(requested, `\`, "/")

	// Literal traversal rejection. Any ".." segment, in any position,
	// is refused before further inspection.
	if hasDotDotSegment(p) {
		return "", &DenialError{Path: requested, Reason: ReasonTraversal}
	}

	// Absolute inputs are refused even when they would land inside the
	// root. Callers must only ever request root-relative paths.
	if isAbsolute(p) {
		return "", &DenialError{Path: requested, Reason: ReasonAbsolute}
	}

	// Allow-list: an exact root-file match, or a path under a documented
	// directory. Everything else is denied by default.
	if !g.policy.AllowsRootFile(p) && !g.allowedDir(p) {
		return "", &DenialError{Path: requested, Reason: ReasonNotAllowed}
	}

	// Canonical re-validation, the authoritative check. Join and resolve,
	// then verify the relative offset from the root does not escape it.
	// Applied even though the allow-list already passed.
	absRoot, err := filepath.Abs(filepath.FromSlash(root))
	if err != nil {
		return "", fmt.Errorf("%w: root %q: %v", ErrInvalidArgument, root, err)
	}
	resolved := filepath.Join(absRoot, filepath.FromSlash(p))
	rel, err := filepath.Rel(absRoot, resolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &DenialError{Path: requested, Reason: ReasonTraversal}
	}

	return resolved, nil
}

// hasDotDotSegment reports whether any /-separated segment equals "..".
// Operates on the already slash-normalised path.
func hasDotDotSegment(p string) bool {
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return true
		}
	}
	return false
}

// isAbsolute reports whether p is an absolute path in either Unix form
// (leading slash) or Windows form (drive-letter prefix).
func isAbsolute(p string) bool {
	if strings.HasPrefix(p, "/") {
		return true
	}
	return len(p) >= 2 && p[1] == ':' && isASCIILetter(p[0])
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// allowedDir reports whether p is covered by the documented-directory set:
// equal to a documented directory, under one, or led by one as its first
// segment. The clauses overlap; they are kept separate because each states
// one rule of the policy and the canonical re-check is the authority anyway.
func (g *Guard) allowedDir(p string) bool {
	if g.policy.AllowsDir(p) {
		return true
	}
	for dir := range g.policy.dirs {
		if strings.HasPrefix(p, dir+"/") {
			return true
		}
	}
	first, _, _ := strings.Cut(p, "/")
	return g.policy.AllowsDir(first)
}
