// policy.go defines the allow-list the sandbox enforces.
//
// Separated from sandbox.go to keep policy (what is allowed) apart from
// mechanism (how paths are checked). The sets are fixed at build time and
// injected into the guard at construction; they are deliberately not part
// of the config file. Making them runtime-configurable would reintroduce
// the risk the sandbox exists to prevent.

package sandbox

import "sort"

// Library layout promptlint audits. Directories are approved for recursive
// read access; root files are approved at the library root only.
var (
	defaultDirs = []string{
		"agents",
		"commands",
		"docs",
		"examples",
		"templates",
	}

	defaultRootFiles = []string{
		"CHANGELOG.md",
		"LICENSE",
		"README.md",
		"package.json",
	}
)

// Policy is the immutable allow-list: documented directories plus allowed
// root files. Constructed once at process start and read by every
// validation call. No mutating methods exist.
type Policy struct {
	dirs  map[string]bool
	files map[string]bool
}

// NewPolicy builds a policy from explicit sets. Intended for tests and
// embedders; production code uses Default.
func NewPolicy(dirs, rootFiles []string) Policy {
	p := Policy{
		dirs:  make(map[string]bool, len(dirs)),
		files: make(map[string]bool, len(rootFiles)),
	}
	for _, d := range dirs {
		p.dirs[d] = true
	}
	for _, f := range rootFiles {
		p.files[f] = true
	}
	return p
}

// Default returns the build-time allow-list for prompt libraries.
func Default() Policy {
	return NewPolicy(defaultDirs, defaultRootFiles)
}

// AllowsDir reports whether name is a documented directory.
func (p Policy) AllowsDir(name string) bool {
	return p.dirs[name]
}

// AllowsRootFile reports whether name is an allowed root file.
// Exact filename match at the root only; never matches subpaths.
func (p Policy) AllowsRootFile(name string) bool {
	return p.files[name]
}

// Dirs returns the documented directories, sorted.
func (p Policy) Dirs() []string {
	out := make([]string, 0, len(p.dirs))
	for d := range p.dirs {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// RootFiles returns the allowed root files, sorted.
func (p Policy) RootFiles() []string {
	out := make([]string, 0, len(p.files))
	for f := range p.files {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
