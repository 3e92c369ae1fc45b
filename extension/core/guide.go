// guide.go implements the "promptlint guide" command.
//
// Guides are compiled into the binary through the guide package, so the
// documentation is available wherever the binary runs, with no library or
// network needed. Terminal output is rendered for readability; pipes and
// redirects get raw markdown for machine consumption and LLM context
// loading.

package core

import (
	"fmt"
	"strings"

	"github.com/jpl-au/promptlint/cmd"
	"github.com/jpl-au/promptlint/guide"
	"github.com/jpl-au/promptlint/internal/format"
	"github.com/spf13/cobra"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the promptlint usage guide",
		Long: `Outputs the promptlint guide for LLMs and humans.

  promptlint guide           # main guide
  promptlint guide sandbox   # how the path sandbox decides
  promptlint guide validate  # detailed validate guide`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			topic := ""
			if len(args) == 1 {
				topic = args[0]
			}

			content, err := guide.Get(topic)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return cmd.PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", topic, strings.Join(available, ", ")))
			}

			format.Markdown(cmd.Out(), content)
			return nil
		},
	}
}
