// cat.go implements the "promptlint cat" command for reading library files.
//
// Design: Cat reads through the sandbox like every other operation, so a
// path outside the allowed surface is denied, not read. Markdown is
// rendered for terminals through format.Markdown; --raw and non-markdown
// files get the bytes untouched.

package library

import (
	"fmt"
	"strings"

	"github.com/jpl-au/promptlint/cmd"
	"github.com/jpl-au/promptlint/extension"
	"github.com/jpl-au/promptlint/internal/format"
	"github.com/jpl-au/promptlint/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newCatCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "cat <path>",
		Short: "Read a library file",
		Long:  `Output the contents of a library file to stdout.`,
		Args:  cobra.ExactArgs(1),
		RunE:  e.runCat,
	}
	c.Flags().Bool(extension.FlagRaw, false, "Output raw markdown without rendering")
	return c
}

func (e *Extension) runCat(c *cobra.Command, args []string) error {
	p := args[0]

	content, err := e.acc.ReadText(p, e.root)
	log.Event("library:cat", "read").Author(cmd.Author()).Path(p).Write(err)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"path": p, "content": content})
	}

	raw, _ := c.Flags().GetBool(extension.FlagRaw)
	if !raw && strings.HasSuffix(p, ".md") {
		format.Markdown(cmd.Out(), content)
		return nil
	}

	fmt.Fprint(cmd.Out(), content)
	return nil
}
