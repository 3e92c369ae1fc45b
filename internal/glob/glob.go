// Package glob provides filename wildcard matching for library walks.
//
// The pattern language is deliberately tiny: "*" matches any run of
// characters, including none; every other character, "." included, matches
// itself. No "?", no character classes, no "**". Patterns arrive from tool
// arguments and manifest entries, so the compiler escapes everything except
// "*" before handing the expression to the regexp engine and bounds the
// accepted pattern length. RE2 matching is linear-time, so no pattern can
// stall a walk.
package glob

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// MaxPatternLength bounds accepted patterns. Longer patterns are refused,
// not truncated.
const MaxPatternLength = 256

var (
	// ErrEmptyPattern indicates an empty pattern string.
	ErrEmptyPattern = errors.New("empty pattern")
	// ErrPatternTooLong indicates the pattern exceeds MaxPatternLength.
	ErrPatternTooLong = errors.New("pattern too long")
)

// Pattern is a compiled wildcard pattern, safe for concurrent use.
type Pattern struct {
	src string
	re  *regexp.Regexp
}

// Compile translates a wildcard pattern into a matcher.
func Compile(pattern string) (*Pattern, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	if len(pattern) > MaxPatternLength {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrPatternTooLong, len(pattern), MaxPatternLength)
	}

	chunks := strings.Split(pattern, "*")
	for i, c := range chunks {
		chunks[i] = regexp.QuoteMeta(c)
	}
	re, err := regexp.Compile("^" + strings.Join(chunks, ".*") + "$")
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}
	return &Pattern{src: pattern, re: re}, nil
}

// Match reports whether name matches the pattern. The whole name must
// match; there is no substring matching.
func (p *Pattern) Match(name string) bool {
	return p.re.MatchString(name)
}

// String returns the original pattern source.
func (p *Pattern) String() string {
	return p.src
}

// Match is the one-shot form: compile pattern, match name.
func Match(pattern, name string) (bool, error) {
	p, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return p.Match(name), nil
}
