package cmd

import (
	"testing"
)

func TestCat_File(t *testing.T) {
	env := newTestEnv(t)

	// Piped output skips terminal rendering, so the raw bytes come back.
	out := env.run("cat", "docs/guide.md")
	env.contains(out, "# Guide")
	env.contains(out, "How to review code with these prompts.")
}

func TestCat_RootFile(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("cat", "package.json")
	env.contains(out, `"name": "@team/review-kit"`)
}

func TestCat_TraversalDenied(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("cat", "../outside.md")
	if err == nil {
		t.Fatal("expected non-zero exit for traversal")
	}
	env.contains(out, "traversal detected")
}

func TestCat_AbsolutePathDenied(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("cat", "/etc/passwd")
	if err == nil {
		t.Fatal("expected non-zero exit for absolute path")
	}
	env.contains(out, "absolute path not allowed")
}

func TestCat_UndocumentedPathDenied(t *testing.T) {
	env := newTestEnv(t)
	env.write("src/app.js", "console.log('hi')\n")

	out, err := env.runErr("cat", "src/app.js")
	if err == nil {
		t.Fatal("expected non-zero exit for undocumented path")
	}
	env.contains(out, "access denied: src/app.js")
}

func TestCat_BackslashTraversalDenied(t *testing.T) {
	env := newTestEnv(t)

	// Backslashes normalise to separators before checking.
	out, err := env.runErr("cat", `..\docs\guide.md`)
	if err == nil {
		t.Fatal("expected non-zero exit for backslash traversal")
	}
	env.contains(out, "traversal detected")
}

func TestCat_MissingFile(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("cat", "docs/absent.md")
	if err == nil {
		t.Fatal("expected non-zero exit for missing file")
	}
	env.contains(out, "docs/absent.md")
}

func TestCat_JSONOutput(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("cat", "commands/review.md", "-o", "json")
	env.contains(out, `"path":"commands/review.md"`)
	env.contains(out, `"content":"Review the diff and list concrete issues.\n"`)
}

func TestCat_JSONError(t *testing.T) {
	env := newTestEnv(t)

	// JSON mode wraps the denial as a JSON error object and suppresses
	// the plain-text error, exiting zero.
	out := env.run("cat", "../outside.md", "-o", "json")
	env.contains(out, `"error"`)
	env.contains(out, "traversal detected")
}
