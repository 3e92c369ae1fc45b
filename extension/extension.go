// Package extension provides the plugin architecture for promptlint.
// Extensions encapsulate related functionality (commands, MCP tools) and
// register at init time, enabling modular feature development without
// touching core code.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for promptlint extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions can perform setup once shared state exists.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Rootless is an optional interface for extensions with commands that
// don't require a prompt library. Commands returned by NoRootCommands()
// will not trigger library discovery in PersistentPreRunE.
//
// Use cases:
// 1. Commands that must work anywhere (like version)
// 2. Commands that resolve their own library, or none at all
type Rootless interface {
	NoRootCommands() []string
}
