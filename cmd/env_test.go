// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full stack:
// command parsing -> sandbox -> accessor -> filesystem.
//
// Some internal packages show "[no test files]" - this is intentional.
// These packages are covered by the CLI integration tests:
//   - internal/config: covered by config tests (values persist correctly)
//   - internal/format: covered by validate/ls tests (output renders correctly)
//
// Unit tests for these packages would duplicate coverage without adding value.
// If underlying functionality breaks, the CLI tests fail - proving the stack works.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the promptlint binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		// Build to a temp location
		tmpDir, err := os.MkdirTemp("", "promptlint-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "promptlint"
		if os.PathSeparator == '\\' {
			binaryName = "promptlint.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testManifest declares every file the default fixture ships, so the
// fixture validates cleanly and reports no drift until a test changes it.
const testManifest = `{
  "name": "@team/review-kit",
  "version": "1.2.0",
  "description": "Prompt library for code review workflows",
  "files": ["docs", "commands", "package.json", "README.md"]
}
`

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string // library root
	home   string // isolated HOME for global config and the audit log
	binary string
}

// newTestEnv creates a temporary prompt library with a manifest and content.
//
// The fixture is deliberately small but complete: two documented
// directories with files, a nested subdirectory, and the manifest
// tracking all of it.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		t:      t,
		dir:    t.TempDir(),
		home:   t.TempDir(),
		binary: buildBinary(t),
	}

	env.write("package.json", testManifest)
	env.write("docs/guide.md", "# Guide\n\nHow to review code with these prompts.\n")
	env.write("docs/api/auth.md", "# Auth\n\nToken handling review prompts.\n")
	env.write("commands/review.md", "Review the diff and list concrete issues.\n")
	env.write("README.md", "# review-kit\n")

	return env
}

// write creates rel under the library root, with parent directories as needed.
func (e *testEnv) write(rel, content string) {
	e.t.Helper()
	p := filepath.Join(e.dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		e.t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		e.t.Fatal(err)
	}
}

// remove deletes rel from the library.
func (e *testEnv) remove(rel string) {
	e.t.Helper()
	if err := os.RemoveAll(filepath.Join(e.dir, filepath.FromSlash(rel))); err != nil {
		e.t.Fatal(err)
	}
}

// symlink creates a symbolic link at rel pointing to target.
// Skips the test on platforms where symlink creation needs privileges.
func (e *testEnv) symlink(target, rel string) {
	e.t.Helper()
	p := filepath.Join(e.dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		e.t.Fatal(err)
	}
	if err := os.Symlink(target, p); err != nil {
		e.t.Skipf("symlink not supported: %v", err)
	}
}

// environ returns a minimal environment with HOME isolated, so global
// config and the audit log land in the test's temp home and no outer
// PROMPTLINT_* variables leak in.
func (e *testEnv) environ() []string {
	return []string{
		"HOME=" + e.home,
		"PATH=" + os.Getenv("PATH"),
	}
}

// run executes promptlint in the library and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("promptlint %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes promptlint in the library, returning combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()
	return e.runIn(e.dir, args...)
}

// runIn executes promptlint from an arbitrary working directory.
func (e *testEnv) runIn(dir string, args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = dir
	cmd.Env = e.environ()
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// runWith executes promptlint in the library with extra environment variables.
func (e *testEnv) runWith(extra []string, args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(e.environ(), extra...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// notContains checks that output does not contain unexpected string.
func (e *testEnv) notContains(output, unexpected string) {
	e.t.Helper()
	assert.NotContains(e.t, output, unexpected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}
