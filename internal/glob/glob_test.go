package glob

import (
	"errors"
	"strings"
	"testing"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		// Star runs
		{"*", "anything.md", true},
		{"*", "", true},
		{"*.md", "review.md", true},
		{"*.md", "review.txt", false},
		{"doc*", "document.md", true},
		{"doc*", "readme.md", false},
		{"re*me*", "readme.md", true},
		{"**", "x", true},

		// Literals only
		{"review.md", "review.md", true},
		{"review.md", "preview.md", false},
		{"review.md", "review.mdx", false},

		// Dot is literal, never "any character"
		{"*.md", "xmd", false},
		{"a.b", "axb", false},

		// Case sensitive
		{"README*", "readme.md", false},
		{"README*", "README.md", true},

		// Regex metacharacters are plain text here
		{"doc[1-9].md", "doc[1-9].md", true},
		{"doc[1-9].md", "doc5.md", false},
		{"a+b.md", "a+b.md", true},
		{"a+b.md", "aab.md", false},
		{"(draft).md", "(draft).md", true},
		{"cmd|alt", "cmd|alt", true},
		{"cmd|alt", "cmd", false},
		{"x$", "x$", true},
		{"^x", "^x", true},

		// No other glob syntax
		{"doc?", "doc?", true},
		{"doc?", "docs", false},
	}

	for _, tc := range tests {
		t.Run(tc.pattern+"_"+tc.name, func(t *testing.T) {
			got, err := Match(tc.pattern, tc.name)
			if err != nil {
				t.Fatalf("Match(%q, %q) unexpected error: %v", tc.pattern, tc.name, err)
			}
			if got != tc.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tc.pattern, tc.name, got, tc.want)
			}
		})
	}
}

func TestCompileRejects(t *testing.T) {
	if _, err := Compile(""); !errors.Is(err, ErrEmptyPattern) {
		t.Errorf("Compile(\"\") error = %v, want ErrEmptyPattern", err)
	}

	long := strings.Repeat("a", MaxPatternLength+1)
	if _, err := Compile(long); !errors.Is(err, ErrPatternTooLong) {
		t.Errorf("Compile(long) error = %v, want ErrPatternTooLong", err)
	}

	// Boundary: exactly MaxPatternLength is fine
	if _, err := Compile(strings.Repeat("a", MaxPatternLength)); err != nil {
		t.Errorf("Compile(max-length) error = %v, want success", err)
	}
}

func TestPatternReuse(t *testing.T) {
	p, err := Compile("*.md")
	if err != nil {
		t.Fatal(err)
	}
	if p.String() != "*.md" {
		t.Errorf("String() = %q, want %q", p.String(), "*.md")
	}
	for _, name := range []string{"a.md", "b.md", "deep.nested.md"} {
		if !p.Match(name) {
			t.Errorf("Match(%q) = false, want true", name)
		}
	}
	if p.Match("a.go") {
		t.Error("Match(\"a.go\") = true, want false")
	}
}
