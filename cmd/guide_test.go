package cmd

import (
	"testing"
)

func TestGuide_Default(t *testing.T) {
	env := newTestEnv(t)

	// Piped output returns the raw embedded markdown.
	out := env.run("guide")
	env.contains(out, "# promptlint")
}

func TestGuide_Topic(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("guide", "sandbox")
	env.contains(out, "# sandbox")
}

func TestGuide_UnknownTopicListsAvailable(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("guide", "nonsense")
	if err == nil {
		t.Fatal("expected non-zero exit for unknown topic")
	}
	env.contains(out, `guide "nonsense" not found`)
	env.contains(out, "sandbox")
	env.contains(out, "validate")
}

func TestGuide_WorksOutsideLibrary(t *testing.T) {
	env := newTestEnv(t)
	outside := t.TempDir()

	out, err := env.runIn(outside, "guide")
	if err != nil {
		t.Fatalf("guide should not need a library: %v\noutput: %s", err, out)
	}
	env.contains(out, "# promptlint")
}
