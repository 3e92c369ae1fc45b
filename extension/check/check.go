// Package check provides the validation extension for promptlint.
// Registers commands: validate, report, drift, watch.
//
// These commands audit a prompt library against its manifest and layout
// conventions. Each command file is separated to isolate its specific flag
// handling and output formatting logic.

package check

import (
	"github.com/jpl-au/promptlint/extension"
	"github.com/jpl-au/promptlint/internal/access"
	"github.com/jpl-au/promptlint/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the check extension.
type Extension struct {
	acc  *access.Accessor
	root string
	cfg  *config.Config
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "check" - this extension audits library structure and content.
func (e *Extension) Name() string { return "check" }

// Init connects to the shared accessor and library root.
func (e *Extension) Init(ctx extension.Context) error {
	e.acc = ctx.Accessor()
	e.root = ctx.Root()
	e.cfg = ctx.Config()
	return nil
}

// Commands returns the library auditing commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newValidateCmd(),
		e.newReportCmd(),
		e.newDriftCmd(),
		e.newWatchCmd(),
	}
}

// MCPTools returns nil - check MCP tools are provided by internal/mcp.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// strictMode resolves the effective strict setting: an explicit --strict
// flag wins, otherwise the configured check.strict value applies.
func (e *Extension) strictMode(c *cobra.Command) bool {
	if c.Flags().Changed(extension.FlagStrict) {
		strict, _ := c.Flags().GetBool(extension.FlagStrict)
		return strict
	}
	return e.cfg.Strict()
}
