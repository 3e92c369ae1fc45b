// ls.go implements the "promptlint ls" command for listing library content.
//
// Separated from library.go to isolate listing and output mode selection.
//
// Design: Ls mimics Unix ls over the sandboxed surface. Without arguments
// it lists everything the access policy exposes; with a directory argument
// it lists that directory recursively. The -t flag shows a tree view, -l
// shows sizes, --paths-only emits bare paths for scripting.

package library

import (
	"fmt"
	"sort"

	"github.com/jpl-au/promptlint/cmd"
	"github.com/jpl-au/promptlint/extension"
	"github.com/jpl-au/promptlint/internal/access"
	"github.com/jpl-au/promptlint/internal/format"
	"github.com/jpl-au/promptlint/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newLsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "ls [dir]",
		Short: "List library content",
		Long: `List files the sandbox exposes, optionally under a single directory.

Directories print with a trailing "/", symbolic links with "@".`,
		Args: cobra.MaximumNArgs(1),
		RunE: e.runLs,
	}
	c.Flags().BoolP(extension.FlagLong, "l", false, "Long format with sizes")
	c.Flags().BoolP(extension.FlagTree, "t", false, "Display as tree")
	c.Flags().Bool(extension.FlagPathsOnly, false, "Output paths only")
	return c
}

func (e *Extension) runLs(c *cobra.Command, args []string) error {
	dir := ""
	if len(args) > 0 {
		dir = args[0]
	}

	var entries []access.Entry
	var err error
	if dir != "" {
		entries, err = e.acc.List(dir, e.root)
	} else {
		entries, err = e.listAll()
	}

	log.Event("library:ls", "list").Author(cmd.Author()).Path(dir).Write(err)
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	if entries == nil {
		entries = []access.Entry{}
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"entries": entries})
	}

	w := cmd.Out()
	tree, _ := c.Flags().GetBool(extension.FlagTree)
	long, _ := c.Flags().GetBool(extension.FlagLong)
	pathsOnly, _ := c.Flags().GetBool(extension.FlagPathsOnly)
	switch {
	case tree:
		return format.Tree(w, entries)
	case long:
		return format.Long(w, entries)
	case pathsOnly:
		return format.Paths(w, entries)
	default:
		return format.List(w, entries)
	}
}

// listAll collects every entry the policy exposes: the documented
// directories recursively, plus the allowed root files that exist.
func (e *Extension) listAll() ([]access.Entry, error) {
	policy := e.acc.Guard().Policy()

	var out []access.Entry
	for _, dir := range policy.Dirs() {
		entry, ok := e.acc.Stat(dir, e.root)
		if !ok || !entry.Dir {
			continue
		}
		out = append(out, entry)

		entries, err := e.acc.List(dir, e.root)
		if err != nil {
			return nil, fmt.Errorf("ls %s: %w", dir, err)
		}
		out = append(out, entries...)
	}
	for _, f := range policy.RootFiles() {
		if entry, ok := e.acc.Stat(f, e.root); ok {
			out = append(out, entry)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}
