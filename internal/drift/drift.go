// Package drift compares a manifest's declared file coverage with the
// files actually on disk.
//
// The manifest's files field holds glob patterns naming the content a
// library ships. Drift is the divergence between that declaration and
// the library directory: files no pattern covers (untracked) and
// patterns covering nothing (missing). A manifest that declares no
// files tracks nothing and is never out of sync.
package drift

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/jpl-au/promptlint/internal/glob"
)

// contextLines is the number of in-sync lines shown around changes.
// Longer equal runs are collapsed with "...".
const contextLines = 3

// Result holds the outcome of a drift comparison.
type Result struct {
	Tracked   []string `json:"tracked"`             // files matched by a pattern
	Untracked []string `json:"untracked,omitempty"` // files no pattern covers
	Missing   []string `json:"missing,omitempty"`   // patterns matching nothing
}

// InSync reports whether the manifest and the directory agree.
func (r *Result) InSync() bool {
	return len(r.Untracked) == 0 && len(r.Missing) == 0
}

// Compute compares declared patterns against relative file paths.
// Patterns match segment-wise, so * never crosses a directory
// boundary; a pattern whose final segment has no wildcard also matches
// everything below it, which lets "docs" track a whole directory.
func Compute(patterns []string, paths []string) (*Result, error) {
	compiled := make([]*pattern, 0, len(patterns))
	for _, src := range patterns {
		p, err := compilePattern(src)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", src, err)
		}
		compiled = append(compiled, p)
	}

	r := &Result{}
	if len(compiled) == 0 {
		return r, nil
	}

	for _, path := range paths {
		parts := strings.Split(path, "/")
		matched := false
		for _, p := range compiled {
			if p.match(parts) {
				p.used = true
				matched = true
			}
		}
		if matched {
			r.Tracked = append(r.Tracked, path)
		} else {
			r.Untracked = append(r.Untracked, path)
		}
	}
	for _, p := range compiled {
		if !p.used {
			r.Missing = append(r.Missing, p.src)
		}
	}

	sort.Strings(r.Tracked)
	sort.Strings(r.Untracked)
	sort.Strings(r.Missing)
	return r, nil
}

type pattern struct {
	src     string
	segs    []*glob.Pattern
	subtree bool // final segment is literal, so the pattern covers a subtree
	used    bool
}

func compilePattern(src string) (*pattern, error) {
	trimmed := strings.TrimSuffix(src, "/")
	parts := strings.Split(trimmed, "/")
	p := &pattern{src: src, segs: make([]*glob.Pattern, 0, len(parts))}
	for _, part := range parts {
		seg, err := glob.Compile(part)
		if err != nil {
			return nil, err
		}
		p.segs = append(p.segs, seg)
	}
	p.subtree = !strings.Contains(parts[len(parts)-1], "*")
	return p, nil
}

func (p *pattern) match(parts []string) bool {
	if len(parts) < len(p.segs) {
		return false
	}
	if len(parts) > len(p.segs) && !p.subtree {
		return false
	}
	for i, seg := range p.segs {
		if !seg.Match(parts[i]) {
			return false
		}
	}
	return true
}

// Format renders the comparison as a unified-style diff between the
// manifest's view of the library and the directory's contents. Missing
// patterns appear as deletions, untracked files as insertions.
func (r *Result) Format(colour bool) string {
	header := "--- manifest\n+++ disk\n"

	declared := append(append([]string{}, r.Tracked...), r.Missing...)
	actual := append(append([]string{}, r.Tracked...), r.Untracked...)
	sort.Strings(declared)
	sort.Strings(actual)

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(joinLines(declared), joinLines(actual))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	return header + render(diffs, colour)
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func render(diffs []diffmatchpatch.Diff, colour bool) string {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		reset = "\033[0m"
	)

	var b strings.Builder
	write := func(prefix, line, code string) {
		if colour && code != "" {
			b.WriteString(code + prefix + line + reset + "\n")
			return
		}
		b.WriteString(prefix + line + "\n")
	}

	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		if text == "" {
			continue
		}
		lines := strings.Split(text, "\n")
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, l := range lines {
				write("- ", l, red)
			}
		case diffmatchpatch.DiffInsert:
			for _, l := range lines {
				write("+ ", l, green)
			}
		case diffmatchpatch.DiffEqual:
			if len(lines) > 2*contextLines {
				for i := range contextLines {
					write("  ", lines[i], "")
				}
				b.WriteString("  ...\n")
				for i := len(lines) - contextLines; i < len(lines); i++ {
					write("  ", lines[i], "")
				}
			} else {
				for _, l := range lines {
					write("  ", l, "")
				}
			}
		}
	}
	return b.String()
}
