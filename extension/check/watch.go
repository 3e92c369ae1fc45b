// watch.go implements the "promptlint watch" command.
//
// Separated from check.go because watch has unique lifecycle requirements.
// Unlike other commands that run and exit, watch blocks until interrupted,
// re-validating the library whenever allowed content changes.

package check

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jpl-au/promptlint/cmd"
	"github.com/jpl-au/promptlint/extension"
	"github.com/jpl-au/promptlint/internal/format"
	"github.com/jpl-au/promptlint/internal/lint"
	"github.com/jpl-au/promptlint/internal/log"
	"github.com/jpl-au/promptlint/internal/watch"
	"github.com/spf13/cobra"
)

func (e *Extension) newWatchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "watch",
		Short: "Re-validate on change",
		Long: `Watch the documented directories and root files, re-running validate
whenever their content changes. Paths outside the allowed surface are
ignored. Stop with Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: e.runWatch,
	}
	c.Flags().Bool(extension.FlagStrict, false, "Require every documented directory to exist")
	c.Flags().Duration(extension.FlagDebounce, watch.DefaultDebounce, "Coalesce changes within this window")
	return c
}

func (e *Extension) runWatch(c *cobra.Command, _ []string) error {
	strict := e.strictMode(c)
	debounce, _ := c.Flags().GetDuration(extension.FlagDebounce)

	ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	revalidate := func(changed []string) {
		for _, p := range changed {
			fmt.Fprintf(cmd.Out(), "changed: %s\n", p)
		}
		r, err := lint.Run(e.acc, e.root, lint.Options{Strict: strict})
		log.Event("check:watch", "validate").Author(cmd.Author()).Detail("changed", len(changed)).Write(err)
		if err != nil {
			fmt.Fprintf(os.Stderr, "validate: %v\n", err)
			return
		}
		if len(r.Findings) > 0 {
			_ = format.Findings(cmd.Out(), r.Findings)
		}
		fmt.Fprintln(cmd.Out(), format.FindingsSummary(r))
	}

	w := watch.New(e.acc.Guard().Policy(), e.root, revalidate, watch.WithDebounce(debounce))
	if err := w.Start(ctx); err != nil {
		log.Event("check:watch", "start").Author(cmd.Author()).Write(err)
		return cmd.PrintJSONError(fmt.Errorf("watch: %w", err))
	}
	log.Event("check:watch", "start").Author(cmd.Author()).Detail("debounce", debounce.String()).Write(nil)

	fmt.Fprintf(cmd.Out(), "watching %s (Ctrl-C to stop)\n", e.root)
	revalidate(nil)

	<-ctx.Done()
	return nil
}
