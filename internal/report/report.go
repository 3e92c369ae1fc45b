// Package report builds an inventory of a prompt library.
//
// A report is descriptive, not judgemental: it records what is present
// (content counts, root files, symbolic links, git state) and leaves
// rule checking to the lint package. Library problems such as a broken
// manifest are captured in the report itself; only operational
// failures are returned as errors.
package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jpl-au/promptlint/internal/access"
	"github.com/jpl-au/promptlint/internal/gitinfo"
	"github.com/jpl-au/promptlint/internal/manifest"
)

// DirStat summarises one content directory.
type DirStat struct {
	Dir      string `json:"dir"`
	Present  bool   `json:"present"`
	Files    int    `json:"files"`
	Markdown int    `json:"markdown"`
}

// Symlink records a symbolic link found in the content directories.
// Target is advisory and empty when the link cannot be read.
type Symlink struct {
	Path   string `json:"path"`
	Target string `json:"target,omitempty"`
}

// RootFile records the presence of an allowed root file.
type RootFile struct {
	Name    string `json:"name"`
	Present bool   `json:"present"`
}

// Report is the full library inventory.
type Report struct {
	Root          string             `json:"root"`
	GeneratedAt   time.Time          `json:"generated_at"`
	Manifest      *manifest.Manifest `json:"manifest,omitempty"`
	ManifestError string             `json:"manifest_error,omitempty"`
	Dirs          []DirStat          `json:"dirs"`
	RootFiles     []RootFile         `json:"root_files"`
	Symlinks      []Symlink          `json:"symlinks,omitempty"`
	Git           gitinfo.Info       `json:"git"`
}

// Build gathers the inventory for the library rooted at root.
func Build(acc *access.Accessor, root string) (*Report, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", root, err)
	}

	r := &Report{Root: abs, GeneratedAt: time.Now().UTC()}

	if m, err := manifest.Load(acc, root); err != nil {
		r.ManifestError = err.Error()
	} else {
		r.Manifest = m
	}

	policy := acc.Guard().Policy()
	for _, dir := range policy.Dirs() {
		stat := DirStat{Dir: dir, Present: acc.Exists(dir, root)}
		if stat.Present {
			if stat.Files, err = acc.CountFiles(dir, "*", root); err != nil {
				return nil, err
			}
			if stat.Markdown, err = acc.CountFiles(dir, "*.md", root); err != nil {
				return nil, err
			}
			entries, err := acc.List(dir, root)
			if err != nil {
				return nil, err
			}
			for _, e := range entries {
				if e.Symlink {
					r.Symlinks = append(r.Symlinks, Symlink{
						Path:   e.Path,
						Target: acc.SymlinkTarget(e.Path, root),
					})
				}
			}
		}
		r.Dirs = append(r.Dirs, stat)
	}

	for _, f := range policy.RootFiles() {
		r.RootFiles = append(r.RootFiles, RootFile{Name: f, Present: acc.Exists(f, root)})
	}

	r.Git = gitinfo.Collect(abs)
	return r, nil
}

// Render returns the report as markdown.
func (r *Report) Render() string {
	var b strings.Builder

	b.WriteString("# Prompt library report\n\n")
	fmt.Fprintf(&b, "**Root:** %s\n\n", r.Root)

	b.WriteString("## Manifest\n\n")
	switch {
	case r.ManifestError != "":
		fmt.Fprintf(&b, "unavailable: %s\n\n", r.ManifestError)
	case r.Manifest != nil:
		fmt.Fprintf(&b, "- name: %s\n", r.Manifest.Name)
		fmt.Fprintf(&b, "- version: %s\n", r.Manifest.Version)
		if r.Manifest.Description != "" {
			fmt.Fprintf(&b, "- description: %s\n", r.Manifest.Description)
		}
		if len(r.Manifest.Files) > 0 {
			fmt.Fprintf(&b, "- files: %s\n", strings.Join(r.Manifest.Files, ", "))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Content\n\n")
	var absent []string
	present := false
	for _, d := range r.Dirs {
		if !d.Present {
			absent = append(absent, d.Dir)
			continue
		}
		if !present {
			b.WriteString("| Directory | Files | Markdown |\n|---|---|---|\n")
			present = true
		}
		fmt.Fprintf(&b, "| %s | %d | %d |\n", d.Dir, d.Files, d.Markdown)
	}
	if present {
		b.WriteString("\n")
	}
	if len(absent) > 0 {
		fmt.Fprintf(&b, "Absent: %s\n\n", strings.Join(absent, ", "))
	}

	b.WriteString("## Root files\n\n")
	for _, f := range r.RootFiles {
		mark := " "
		if f.Present {
			mark = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s\n", mark, f.Name)
	}
	b.WriteString("\n")

	if len(r.Symlinks) > 0 {
		b.WriteString("## Symbolic links\n\n")
		for _, s := range r.Symlinks {
			if s.Target != "" {
				fmt.Fprintf(&b, "- %s -> %s\n", s.Path, s.Target)
			} else {
				fmt.Fprintf(&b, "- %s\n", s.Path)
			}
		}
		b.WriteString("\n")
	}

	if r.Git.InRepo {
		b.WriteString("## Git\n\n")
		if r.Git.Branch != "" {
			fmt.Fprintf(&b, "- branch: %s\n", r.Git.Branch)
		}
		if r.Git.Commit != "" {
			state := "clean"
			if r.Git.Dirty {
				state = "dirty"
			}
			fmt.Fprintf(&b, "- commit: %s (%s)\n", r.Git.ShortCommit(), state)
		}
		if r.Git.RemoteURL != "" {
			fmt.Fprintf(&b, "- remote: %s\n", r.Git.RemoteURL)
		}
	}

	return b.String()
}
