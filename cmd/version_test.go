package cmd

import (
	"testing"
)

func TestVersion_Text(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("version")
	env.contains(out, "Build Tag:    dev")
	env.contains(out, "Go Version:")
	env.contains(out, "Platform:")
}

func TestVersion_JSON(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("version", "-o", "json")
	env.contains(out, `"build_tag":"dev"`)
	env.contains(out, `"go_version"`)
}

func TestVersion_WorksOutsideLibrary(t *testing.T) {
	env := newTestEnv(t)
	outside := t.TempDir()

	out, err := env.runIn(outside, "version")
	if err != nil {
		t.Fatalf("version should not need a library: %v\noutput: %s", err, out)
	}
	env.contains(out, "Build Tag:")
}
