// Package library provides the content browsing extension for promptlint.
// Registers commands: ls, cat, count.
//
// These commands mirror Unix filesystem utilities over the sandboxed view
// of the library: they see exactly what the access policy allows, nothing
// more. Each command file is separated to isolate its specific flag
// handling and output formatting logic.

package library

import (
	"github.com/jpl-au/promptlint/extension"
	"github.com/jpl-au/promptlint/internal/access"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the library extension.
type Extension struct {
	acc  *access.Accessor
	root string
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "library" - this extension browses library content.
func (e *Extension) Name() string { return "library" }

// Init connects to the shared accessor and library root.
func (e *Extension) Init(ctx extension.Context) error {
	e.acc = ctx.Accessor()
	e.root = ctx.Root()
	return nil
}

// Commands returns Unix-like content browsing commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newLsCmd(),
		e.newCatCmd(),
		e.newCountCmd(),
	}
}

// MCPTools returns nil - library MCP tools are provided by internal/mcp.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}
