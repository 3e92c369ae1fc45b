// Package format provides output formatting utilities for CLI display.
//
// Centralises formatting logic so that command implementations focus on
// business logic while this package handles presentation concerns like
// column alignment and tree rendering.
package format

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/jpl-au/promptlint/internal/access"
	"github.com/jpl-au/promptlint/internal/lint"
)

// humanSize formats a byte count as human-readable (e.g., "1.2K", "3.4M").
func humanSize(bytes int64) string {
	const (
		_        = iota
		KB int64 = 1 << (10 * iota)
		MB
		GB
	)
	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1fG", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.1fM", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1fK", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

// suffix returns the ls-style marker for an entry: "/" for directories,
// "@" for symbolic links.
func suffix(e access.Entry) string {
	switch {
	case e.Symlink:
		return "@"
	case e.Dir:
		return "/"
	default:
		return ""
	}
}

// List prints entries in simple list format.
func List(w io.Writer, entries []access.Entry) error {
	for _, e := range entries {
		fmt.Fprintf(w, "%s%s\n", e.Path, suffix(e))
	}
	return nil
}

// Long prints entries in long format with size and path.
func Long(w io.Writer, entries []access.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	fmt.Fprintf(w, "%6s  %s\n", "SIZE", "PATH")
	for _, e := range entries {
		size := "-"
		if !e.Dir && !e.Symlink {
			size = humanSize(e.Size)
		}
		fmt.Fprintf(w, "%6s  %s%s\n", size, e.Path, suffix(e))
	}
	return nil
}

// Tree prints entries as a directory tree.
func Tree(w io.Writer, entries []access.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	// Build tree structure
	type node struct {
		name     string
		children map[string]*node
		dir      bool
		symlink  bool
	}

	root := &node{children: make(map[string]*node)}

	for _, e := range entries {
		parts := strings.Split(e.Path, "/")
		current := root

		for i, part := range parts {
			if current.children[part] == nil {
				current.children[part] = &node{
					name:     part,
					children: make(map[string]*node),
				}
			}
			current = current.children[part]
			if i == len(parts)-1 {
				current.dir = e.Dir
				current.symlink = e.Symlink
			}
		}
	}

	// Print tree
	var printNode func(n *node, prefix string)
	printNode = func(n *node, prefix string) {
		// Get sorted children
		names := make([]string, 0, len(n.children))
		for name := range n.children {
			names = append(names, name)
		}
		sort.Strings(names)

		for i, name := range names {
			child := n.children[name]
			last := i == len(names)-1

			connector := "├── "
			if last {
				connector = "└── "
			}

			marker := ""
			if child.dir {
				marker = "/"
			}
			if child.symlink {
				marker = "@"
			}

			fmt.Fprintf(w, "%s%s%s%s\n", prefix, connector, name, marker)

			pfx := prefix
			if last {
				pfx += "    "
			} else {
				pfx += "│   "
			}

			if len(child.children) > 0 {
				printNode(child, pfx)
			}
		}
	}

	printNode(root, "")
	return nil
}

// Paths prints just entry paths, one per line.
func Paths(w io.Writer, entries []access.Entry) error {
	for _, e := range entries {
		fmt.Fprintln(w, e.Path)
	}
	return nil
}

// Findings prints lint findings in aligned columns.
func Findings(w io.Writer, findings []lint.Finding) error {
	if len(findings) == 0 {
		return nil
	}

	// Find max widths for alignment
	maxRule, maxPath := 4, 4
	for _, f := range findings {
		if len(f.Rule) > maxRule {
			maxRule = len(f.Rule)
		}
		if len(f.Path) > maxPath {
			maxPath = len(f.Path)
		}
	}

	for _, f := range findings {
		path := f.Path
		if path == "" {
			path = "-"
		}
		fmt.Fprintf(w, "%-7s  %-*s  %-*s  %s\n", f.Severity, maxRule, f.Rule, maxPath, path, f.Message)
	}
	return nil
}

// FindingsSummary returns a one-line summary like "2 errors, 1 warning".
func FindingsSummary(r *lint.Result) string {
	if r.Clean() {
		return fmt.Sprintf("ok (%d files checked)", r.Checked)
	}

	var parts []string
	if n := r.Errors(); n > 0 {
		parts = append(parts, plural(n, "error"))
	}
	if n := r.Warnings(); n > 0 {
		parts = append(parts, plural(n, "warning"))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// Markdown writes md to w, glamour-rendered when stdout is a terminal and
// plain otherwise. Pipes and redirects always get the raw markdown, so
// machine consumers never see ANSI sequences. A rendering failure falls
// back to the plain text rather than erroring.
func Markdown(w io.Writer, md string) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if rendered, err := glamour.Render(md, "dark"); err == nil {
			fmt.Fprint(w, rendered)
			return
		}
	}
	fmt.Fprint(w, md)
}
