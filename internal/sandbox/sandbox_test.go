package sandbox

import (
	"errors"
	"path/filepath"
	"testing"
)

func testGuard() *Guard {
	return New(NewPolicy(
		[]string{"docs", "commands"},
		[]string{"package.json", "README.md"},
	))
}

func TestResolveDenials(t *testing.T) {
	g := testGuard()
	root := filepath.Join(string(filepath.Separator), "lib")

	tests := []struct {
		path   string
		reason Reason
	}{
		// Traversal: ".." as a segment in any position, any separator form
		{"..", ReasonTraversal},
		{"../package.json", ReasonTraversal},
		{"../../etc/passwd", ReasonTraversal},
		{"docs/../secret", ReasonTraversal},
		{"docs/../../../etc/passwd", ReasonTraversal},
		{"docs/..", ReasonTraversal},
		{"commands/sub/../../escape", ReasonTraversal},
		{`..\package.json`, ReasonTraversal},
		{`docs\..\secret`, ReasonTraversal},
		{"/../x", ReasonTraversal},

		// Absolute paths, refused even when inside the root
		{"/etc/passwd", ReasonAbsolute},
		{"/lib/docs/guide.md", ReasonAbsolute},
		{"C:/work/lib", ReasonAbsolute},
		{"c:stuff", ReasonAbsolute},
		{`D:\work\lib\docs`, ReasonAbsolute},
		{`\network\share`, ReasonAbsolute},

		// Default deny: not on the allow-list
		{"src/index.js", ReasonNotAllowed},
		{"secrets.txt", ReasonNotAllowed},
		{"sub/package.json", ReasonNotAllowed},
		{"docs.bak/file.md", ReasonNotAllowed},
		{"documentation", ReasonNotAllowed},
		{"./docs/guide.md", ReasonNotAllowed},
		{".", ReasonNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := g.Resolve(tt.path, root)
			if err == nil {
				t.Fatalf("Resolve(%q) succeeded, want denial %q", tt.path, tt.reason)
			}
			if !errors.Is(err, ErrDenied) {
				t.Fatalf("Resolve(%q) error = %v, want ErrDenied match", tt.path, err)
			}
			reason, ok := DenialReason(err)
			if !ok {
				t.Fatalf("Resolve(%q) error = %v, want *DenialError", tt.path, err)
			}
			if reason != tt.reason {
				t.Errorf("Resolve(%q) reason = %q, want %q", tt.path, reason, tt.reason)
			}
		})
	}
}

func TestResolveAllowed(t *testing.T) {
	g := testGuard()
	root := t.TempDir()

	tests := []struct {
		path string
		want string // relative to root
	}{
		{"package.json", "package.json"},
		{"README.md", "README.md"},
		{"docs", "docs"},
		{"docs/", "docs"},
		{"docs/guide.md", filepath.Join("docs", "guide.md")},
		{"docs/api/auth.md", filepath.Join("docs", "api", "auth.md")},
		{`docs\api\auth.md`, filepath.Join("docs", "api", "auth.md")},
		{"commands/review.md", filepath.Join("commands", "review.md")},
		// Validation is lexical: the file does not need to exist
		{"docs/does/not/exist.md", filepath.Join("docs", "does", "not", "exist.md")},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := g.Resolve(tt.path, root)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v, want success", tt.path, err)
			}
			want := filepath.Join(root, tt.want)
			if got != want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.path, got, want)
			}
		})
	}
}

func TestResolveInvalidArguments(t *testing.T) {
	g := testGuard()

	tests := []struct {
		name       string
		path, root string
	}{
		{"empty path", "", "/lib"},
		{"empty root", "docs/guide.md", ""},
		{"both empty", "", ""},
		{"null byte in path", "docs/gu\x00ide.md", "/lib"},
		{"null byte in root", "docs/guide.md", "/li\x00b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Resolve(tt.path, tt.root)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Resolve(%q, %q) error = %v, want ErrInvalidArgument", tt.path, tt.root, err)
			}
			if errors.Is(err, ErrDenied) {
				t.Errorf("Resolve(%q, %q) classified as denial, want argument error", tt.path, tt.root)
			}
		})
	}
}

func TestResolveIdempotent(t *testing.T) {
	g := testGuard()
	root := t.TempDir()

	first, err1 := g.Resolve("docs/guide.md", root)
	second, err2 := g.Resolve("docs/guide.md", root)
	if err1 != nil || err2 != nil {
		t.Fatalf("Resolve errors: %v, %v", err1, err2)
	}
	if first != second {
		t.Errorf("Resolve not idempotent: %q then %q", first, second)
	}

	_, err1 = g.Resolve("../escape", root)
	_, err2 = g.Resolve("../escape", root)
	r1, _ := DenialReason(err1)
	r2, _ := DenialReason(err2)
	if r1 != r2 {
		t.Errorf("denial reasons differ across calls: %q then %q", r1, r2)
	}
}

// TestResolveScenario walks one library layout end to end: a manifest at the
// root, a single documented directory, and the probe paths a hostile caller
// would try.
func TestResolveScenario(t *testing.T) {
	g := New(NewPolicy([]string{"docs"}, []string{"package.json"}))
	root := t.TempDir()

	if _, err := g.Resolve("package.json", root); err != nil {
		t.Errorf("package.json: %v, want success", err)
	}

	_, err := g.Resolve("../package.json", root)
	if r, _ := DenialReason(err); r != ReasonTraversal {
		t.Errorf("../package.json: reason %q, want traversal", r)
	}

	got, err := g.Resolve("docs/api.md", root)
	if err != nil {
		t.Errorf("docs/api.md: %v, want success", err)
	}
	if want := filepath.Join(root, "docs", "api.md"); got != want {
		t.Errorf("docs/api.md = %q, want %q", got, want)
	}

	_, err = g.Resolve("docs/../../../etc/passwd", root)
	if r, _ := DenialReason(err); r != ReasonTraversal {
		t.Errorf("docs/../../../etc/passwd: reason %q, want traversal", r)
	}

	_, err = g.Resolve("src/index.js", root)
	if r, _ := DenialReason(err); r != ReasonNotAllowed {
		t.Errorf("src/index.js: reason %q, want access denied", r)
	}
}

func TestDefaultPolicy(t *testing.T) {
	p := Default()

	for _, dir := range []string{"agents", "commands", "docs", "examples", "templates"} {
		if !p.AllowsDir(dir) {
			t.Errorf("Default policy missing directory %q", dir)
		}
	}
	for _, f := range []string{"CHANGELOG.md", "LICENSE", "README.md", "package.json"} {
		if !p.AllowsRootFile(f) {
			t.Errorf("Default policy missing root file %q", f)
		}
	}
	if p.AllowsDir("src") {
		t.Error("Default policy should not document src")
	}
	if p.AllowsRootFile("docs") {
		t.Error("directories must not double as root files")
	}
}

func TestPolicyAccessorsCopy(t *testing.T) {
	p := NewPolicy([]string{"docs"}, []string{"package.json"})

	dirs := p.Dirs()
	dirs[0] = "mutated"
	if !p.AllowsDir("docs") {
		t.Error("mutating Dirs() result changed the policy")
	}

	files := p.RootFiles()
	files[0] = "mutated"
	if !p.AllowsRootFile("package.json") {
		t.Error("mutating RootFiles() result changed the policy")
	}
}

func TestDenialError(t *testing.T) {
	err := &DenialError{Path: "../x", Reason: ReasonTraversal}

	if !errors.Is(err, ErrDenied) {
		t.Error("DenialError should match ErrDenied")
	}
	if errors.Is(err, ErrInvalidArgument) {
		t.Error("DenialError should not match ErrInvalidArgument")
	}
	if got := err.Error(); got != "traversal detected: ../x" {
		t.Errorf("Error() = %q", got)
	}

	if _, ok := DenialReason(errors.New("plain")); ok {
		t.Error("DenialReason matched a non-denial error")
	}
}
