// Package gitinfo collects repository metadata for report output. Every
// field is best effort: a missing git binary, or a library that is not
// under version control, yields a zero Info rather than an error.
package gitinfo

import (
	"os/exec"
	"strings"
)

// Info describes the state of the git repository containing a library.
type Info struct {
	InRepo    bool   `json:"in_repo"`
	Branch    string `json:"branch,omitempty"`
	Commit    string `json:"commit,omitempty"`
	Dirty     bool   `json:"dirty,omitempty"`
	RemoteURL string `json:"remote_url,omitempty"`
}

// ShortCommit returns the abbreviated commit hash.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 12 {
		return i.Commit[:12]
	}
	return i.Commit
}

// Collect gathers git metadata for the given directory. Fields that
// cannot be determined are left at their zero value.
func Collect(dir string) Info {
	var info Info
	if _, err := exec.LookPath("git"); err != nil {
		return info
	}
	if _, err := run(dir, "rev-parse", "--git-dir"); err != nil {
		return info
	}
	info.InRepo = true

	if branch, err := run(dir, "rev-parse", "--abbrev-ref", "HEAD"); err == nil && branch != "HEAD" {
		info.Branch = branch
	}
	if commit, err := run(dir, "rev-parse", "HEAD"); err == nil {
		info.Commit = commit
	}
	if status, err := run(dir, "status", "--porcelain"); err == nil {
		info.Dirty = status != ""
	}
	if url, err := run(dir, "remote", "get-url", "origin"); err == nil {
		info.RemoteURL = url
	}
	return info
}

func run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
