// count.go implements the "promptlint count" command.

package library

import (
	"fmt"

	"github.com/jpl-au/promptlint/cmd"
	"github.com/jpl-au/promptlint/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <dir> [pattern]",
		Short: "Count files in a directory",
		Long: `Count files under a documented directory, recursively.

The optional pattern is a filename wildcard where "*" matches any run of
characters within a name:

  promptlint count docs          # every file under docs
  promptlint count docs '*.md'   # markdown files only`,
		Args: cobra.RangeArgs(1, 2),
		RunE: e.runCount,
	}
}

func (e *Extension) runCount(_ *cobra.Command, args []string) error {
	dir := args[0]
	pattern := "*"
	if len(args) > 1 {
		pattern = args[1]
	}

	n, err := e.acc.CountFiles(dir, pattern, e.root)
	log.Event("library:count", "count").Author(cmd.Author()).Path(dir).Detail("pattern", pattern).Write(err)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"dir": dir, "pattern": pattern, "count": n})
	}
	fmt.Fprintln(cmd.Out(), n)
	return nil
}
