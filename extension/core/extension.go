// Package core provides the core extension for promptlint.
// It registers commands: config, guide, serve, version.
package core

import (
	"github.com/jpl-au/promptlint/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension = (*Extension)(nil)
	_ extension.Rootless  = (*Extension)(nil)
)

// Name returns "core" - this extension provides fundamental promptlint commands.
func (e *Extension) Name() string { return "core" }

// Commands returns all core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newGuideCmd(),
		newServeCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil - the MCP tool set is provided by internal/mcp.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// NoRootCommands returns commands that work without a prompt library.
// version: Displays build info, doesn't need a library.
func (e *Extension) NoRootCommands() []string {
	return []string{"version"}
}
