// serve.go implements the "promptlint serve" command for MCP server operation.
//
// Separated from extension.go because serve has unique lifecycle requirements.
// Unlike other commands that run and exit, serve blocks indefinitely handling
// MCP requests over stdio.
//
// Design: Serve reuses the shared accessor and library root resolved during
// extension initialisation, so the MCP server enforces exactly the same
// sandbox as the CLI commands. Every tool call is validated and audited the
// same way a direct command invocation would be.

package core

import (
	"github.com/jpl-au/promptlint/cmd"
	"github.com/jpl-au/promptlint/extension"
	"github.com/jpl-au/promptlint/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

The server exposes the library behind the same sandbox the CLI uses:
reads outside the documented directories are denied and audited.`,
		RunE: runServe,
	}
	c.Flags().Bool(extension.FlagStrict, false, "Report missing documented directories as findings")
	return c
}

func runServe(c *cobra.Command, _ []string) error {
	strict := false
	if cfg := cmd.Config(); cfg != nil {
		strict = cfg.Strict()
	}
	if c.Flags().Changed(extension.FlagStrict) {
		strict, _ = c.Flags().GetBool(extension.FlagStrict)
	}
	return mcp.Serve(cmd.Accessor(), cmd.LibraryRoot(), strict)
}
