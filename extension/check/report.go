// report.go implements the "promptlint report" command.
//
// The report is markdown first: terminals get it rendered through
// format.Markdown, pipes and --raw get the raw text for machine
// consumption and LLM context loading.

package check

import (
	"fmt"

	"github.com/jpl-au/promptlint/cmd"
	"github.com/jpl-au/promptlint/extension"
	"github.com/jpl-au/promptlint/internal/format"
	"github.com/jpl-au/promptlint/internal/log"
	"github.com/jpl-au/promptlint/internal/report"
	"github.com/spf13/cobra"
)

func (e *Extension) newReportCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "report",
		Short: "Summarise the library",
		Long: `Produce a snapshot of the library: manifest details, per-directory
file counts, root files, symbolic links, and git state.`,
		Args: cobra.NoArgs,
		RunE: e.runReport,
	}
	c.Flags().Bool(extension.FlagRaw, false, "Output raw markdown without rendering")
	return c
}

func (e *Extension) runReport(c *cobra.Command, _ []string) error {
	rep, err := report.Build(e.acc, e.root)
	log.Event("check:report", "report").Author(cmd.Author()).Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("report: %w", err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(rep)
	}

	md := rep.Render()
	if raw, _ := c.Flags().GetBool(extension.FlagRaw); raw {
		fmt.Fprint(cmd.Out(), md)
		return nil
	}
	format.Markdown(cmd.Out(), md)
	return nil
}
