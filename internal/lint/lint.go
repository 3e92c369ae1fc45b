// Package lint checks a prompt library for structural problems.
//
// Checks are split into two kinds of outcome. Problems with the library
// itself (a broken manifest, an empty doc, a dangling files pattern)
// become findings; problems running the checks (unreadable directories,
// walk limits) are returned as errors. Findings carry a stable rule
// name so output can be filtered and audited.
package lint

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/jpl-au/promptlint/internal/access"
	"github.com/jpl-au/promptlint/internal/drift"
	"github.com/jpl-au/promptlint/internal/manifest"
)

// Severity classifies a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Rule names, stable across releases.
const (
	RuleManifestMissing    = "manifest-missing"
	RuleManifestUnreadable = "manifest-unreadable"
	RuleManifestSchema     = "manifest-schema"
	RuleDirMissing         = "dir-missing"
	RuleDirEmpty           = "dir-empty"
	RuleDocEmpty           = "doc-empty"
	RuleSymlink            = "symlink"
	RuleFilesUnmatched     = "files-unmatched"
)

// Finding describes one problem in the library.
type Finding struct {
	Severity Severity `json:"severity"`
	Rule     string   `json:"rule"`
	Path     string   `json:"path,omitempty"`
	Message  string   `json:"message"`
}

// Result holds the outcome of a lint run.
type Result struct {
	Findings []Finding `json:"findings"`
	Checked  int       `json:"checked"` // content files inspected
}

// Errors returns the number of error findings.
func (r *Result) Errors() int { return r.count(SeverityError) }

// Warnings returns the number of warning findings.
func (r *Result) Warnings() int { return r.count(SeverityWarning) }

// Clean reports whether the run produced no findings.
func (r *Result) Clean() bool { return len(r.Findings) == 0 }

func (r *Result) count(s Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == s {
			n++
		}
	}
	return n
}

func (r *Result) add(sev Severity, rule, path, message string) {
	r.Findings = append(r.Findings, Finding{Severity: sev, Rule: rule, Path: path, Message: message})
}

// Options configures a lint run.
type Options struct {
	Strict bool // flag content directories that are absent
}

// Run lints the library rooted at root.
func Run(acc *access.Accessor, root string, opts Options) (*Result, error) {
	r := &Result{}

	m := checkManifest(acc, root, r)
	files, err := checkContent(acc, root, opts, r)
	if err != nil {
		return nil, err
	}

	if m != nil && len(m.Files) > 0 {
		if err := checkCoverage(m, files, r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// checkManifest loads and validates package.json. It returns the
// manifest when usable, nil when a finding made it unusable.
func checkManifest(acc *access.Accessor, root string, r *Result) *manifest.Manifest {
	m, err := manifest.Load(acc, root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.add(SeverityError, RuleManifestMissing, manifest.Filename, "library has no manifest")
		} else {
			r.add(SeverityError, RuleManifestUnreadable, manifest.Filename, err.Error())
		}
		return nil
	}
	r.Checked++

	if err := m.Validate(); err != nil {
		r.add(SeverityError, RuleManifestSchema, manifest.Filename, err.Error())
		return nil
	}
	return m
}

// checkContent walks the allowed content directories and returns the
// relative paths of the regular files found, for coverage checking.
func checkContent(acc *access.Accessor, root string, opts Options, r *Result) ([]string, error) {
	var files []string

	policy := acc.Guard().Policy()
	for _, dir := range policy.Dirs() {
		if !acc.Exists(dir, root) {
			if opts.Strict {
				r.add(SeverityWarning, RuleDirMissing, dir, "content directory not present")
			}
			continue
		}

		entries, err := acc.List(dir, root)
		if err != nil {
			return nil, err
		}

		seen := 0
		for _, e := range entries {
			if e.Symlink {
				r.add(SeverityWarning, RuleSymlink, e.Path, symlinkMessage(acc, e.Path, root))
				continue
			}
			if e.Dir {
				continue
			}
			seen++
			r.Checked++
			files = append(files, e.Path)
			if e.Size == 0 && strings.HasSuffix(e.Path, ".md") {
				r.add(SeverityWarning, RuleDocEmpty, e.Path, "markdown file is empty")
			}
		}
		if seen == 0 {
			r.add(SeverityWarning, RuleDirEmpty, dir, "content directory has no files")
		}
	}

	for _, f := range policy.RootFiles() {
		if acc.Exists(f, root) {
			files = append(files, f)
		}
	}

	return files, nil
}

// checkCoverage flags manifest files patterns that match nothing.
func checkCoverage(m *manifest.Manifest, files []string, r *Result) error {
	d, err := drift.Compute(m.Files, files)
	if err != nil {
		return fmt.Errorf("manifest files: %w", err)
	}
	for _, p := range d.Missing {
		r.add(SeverityWarning, RuleFilesUnmatched, p, "files pattern matches nothing")
	}
	return nil
}

func symlinkMessage(acc *access.Accessor, path, root string) string {
	if target := acc.SymlinkTarget(path, root); target != "" {
		return fmt.Sprintf("symbolic link (target: %s)", target)
	}
	return "symbolic link (target unreadable)"
}
