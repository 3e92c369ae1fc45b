// drift.go implements the "promptlint drift" command.
//
// Separated from check.go to isolate the manifest-versus-disk comparison
// and diff presentation.
//
// Design: Drift mirrors "git diff --exit-code": in-sync exits zero, drift
// prints a unified diff of declared versus actual files and exits non-zero.
// Colour is applied only when stdout is a terminal.

package check

import (
	"errors"
	"fmt"
	"os"

	"github.com/jpl-au/promptlint/cmd"
	"github.com/jpl-au/promptlint/internal/drift"
	"github.com/jpl-au/promptlint/internal/log"
	"github.com/jpl-au/promptlint/internal/manifest"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// errDriftDetected sets the exit code when the manifest and disk disagree.
// The diff is the output; the sentinel itself is silenced.
var errDriftDetected = errors.New("drift detected")

func (e *Extension) newDriftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drift",
		Short: "Compare manifest files against disk",
		Long: `Compare the file patterns declared in package.json against the files
actually present in the documented directories.

Exits non-zero when the two disagree, printing a diff of declared
versus actual paths.`,
		Args: cobra.NoArgs,
		RunE: e.runDrift,
	}
}

func (e *Extension) runDrift(c *cobra.Command, _ []string) error {
	var result *drift.Result
	var err error
	defer func() {
		b := log.Event("check:drift", "drift").Author(cmd.Author())
		if result != nil {
			b = b.Detail("untracked", len(result.Untracked)).Detail("missing", len(result.Missing))
		}
		b.Write(err)
	}()

	m, err := manifest.Load(e.acc, e.root)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("drift: %w", err))
	}
	if len(m.Files) == 0 {
		if cmd.JSON() {
			return cmd.PrintJSON(&drift.Result{})
		}
		fmt.Fprintln(cmd.Out(), "no files declared in package.json; nothing to compare")
		return nil
	}

	files, err := e.acc.ContentFiles(e.root)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("drift: %w", err))
	}

	result, err = drift.Compute(m.Files, files)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("drift: %w", err))
	}

	if cmd.JSON() {
		if jsonErr := cmd.PrintJSON(result); jsonErr != nil {
			return jsonErr
		}
	} else if result.InSync() {
		fmt.Fprintf(cmd.Out(), "in sync: %d files tracked\n", len(result.Tracked))
	} else {
		colour := term.IsTerminal(int(os.Stdout.Fd()))
		fmt.Fprint(cmd.Out(), result.Format(colour))
	}

	if !result.InSync() {
		c.SilenceUsage = true
		c.SilenceErrors = true
		return errDriftDetected
	}
	return nil
}
