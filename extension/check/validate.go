// validate.go implements the "promptlint validate" command.
//
// Separated from check.go to isolate finding presentation and exit code
// handling.
//
// Design: Validate distinguishes operational failure from a failed check.
// An I/O or sandbox breakdown surfaces as a command error; findings print
// as a table and set the exit code via a silenced sentinel so scripts can
// branch on it without parsing output.

package check

import (
	"errors"
	"fmt"

	"github.com/jpl-au/promptlint/cmd"
	"github.com/jpl-au/promptlint/extension"
	"github.com/jpl-au/promptlint/internal/format"
	"github.com/jpl-au/promptlint/internal/lint"
	"github.com/jpl-au/promptlint/internal/log"
	"github.com/spf13/cobra"
)

// errValidationFailed sets the exit code when findings include errors.
// The findings table has already told the story, so the message is silenced.
var errValidationFailed = errors.New("validation failed")

func (e *Extension) newValidateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate the prompt library",
		Long: `Check the library against its manifest and layout conventions.

Findings are reported with severities: errors make the command exit
non-zero, warnings do not. Strict mode additionally requires every
documented directory to exist.`,
		Args: cobra.NoArgs,
		RunE: e.runValidate,
	}
	c.Flags().Bool(extension.FlagStrict, false, "Require every documented directory to exist")
	return c
}

func (e *Extension) runValidate(c *cobra.Command, _ []string) error {
	strict := e.strictMode(c)

	var r *lint.Result
	var err error
	defer func() {
		b := log.Event("check:validate", "validate").Author(cmd.Author()).Detail("strict", strict)
		if r != nil {
			b = b.Detail("findings", len(r.Findings))
		}
		b.Write(err)
	}()

	r, err = lint.Run(e.acc, e.root, lint.Options{Strict: strict})
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("validate: %w", err))
	}

	if cmd.JSON() {
		if jsonErr := cmd.PrintJSON(r); jsonErr != nil {
			return jsonErr
		}
	} else {
		if len(r.Findings) > 0 {
			if fmtErr := format.Findings(cmd.Out(), r.Findings); fmtErr != nil {
				return fmtErr
			}
		}
		fmt.Fprintln(cmd.Out(), format.FindingsSummary(r))
	}

	if r.Errors() > 0 {
		c.SilenceUsage = true
		c.SilenceErrors = true
		return errValidationFailed
	}
	return nil
}
