// Package mcp implements the Model Context Protocol server, exposing
// prompt library validation and reading to LLMs. Every path a tool
// receives passes through the same sandbox as CLI arguments; an LLM
// probing outside the library gets a denial result, never file content.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jpl-au/promptlint/internal/access"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other
// MCP clients.
//
// Design: The server starts even when the library has no manifest yet.
// Tools like promptlint_validate report the missing manifest as a
// finding, which is more useful to an LLM than refusing to start.
func Serve(acc *access.Accessor, root string, strict bool) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	h := &handlers{acc: acc, root: root, strict: strict}

	s := server.NewMCPServer(
		"promptlint",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s, h)
	registerTools(s, h)

	slog.Info("promptlint MCP server ready", "version", Version, "transport", "stdio", "library", root)

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers bound to one library.
type handlers struct {
	acc    *access.Accessor
	root   string // library root directory
	strict bool   // default for promptlint_validate
}

// registerResources adds URI-based resource access for direct file reading.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"promptlint://library/{path}",
			"Library file",
			mcp.WithTemplateDescription("Read a file inside the prompt library by relative path"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		h.readLibraryFile,
	)
}

// registerTools exposes promptlint operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	// Validate
	s.AddTool(
		mcp.NewTool("promptlint_validate",
			mcp.WithDescription("Lint the prompt library and return findings"),
			mcp.WithBoolean("strict", mcp.Description("Also flag content directories that are absent")),
		),
		h.validateLibrary,
	)

	// Report
	s.AddTool(
		mcp.NewTool("promptlint_report",
			mcp.WithDescription("Build a full inventory of the prompt library (manifest, content counts, root files, symlinks, git state)"),
		),
		h.reportLibrary,
	)

	// Drift
	s.AddTool(
		mcp.NewTool("promptlint_drift",
			mcp.WithDescription("Compare the manifest files field with the files on disk"),
		),
		h.driftLibrary,
	)

	// Read
	s.AddTool(
		mcp.NewTool("promptlint_read",
			mcp.WithDescription("Read a file inside the library. Paths outside the allowed directories are denied."),
			mcp.WithString("path", mcp.Required(), mcp.Description("Library-relative path (e.g. docs/guide.md)")),
		),
		h.readFile,
	)

	// List
	s.AddTool(
		mcp.NewTool("promptlint_ls",
			mcp.WithDescription("List the contents of an allowed content directory"),
			mcp.WithString("dir", mcp.Required(), mcp.Description("Content directory (e.g. docs, commands)")),
		),
		h.listDir,
	)

	// Exists
	s.AddTool(
		mcp.NewTool("promptlint_exists",
			mcp.WithDescription("Check whether a path exists inside the library. Denied paths read as absent."),
			mcp.WithString("path", mcp.Required(), mcp.Description("Library-relative path")),
		),
		h.pathExists,
	)

	// Count
	s.AddTool(
		mcp.NewTool("promptlint_count",
			mcp.WithDescription("Count files under a content directory whose names match a pattern"),
			mcp.WithString("dir", mcp.Required(), mcp.Description("Content directory to search")),
			mcp.WithString("pattern", mcp.Required(), mcp.Description("Filename pattern; * matches any run of characters (e.g. *.md)")),
		),
		h.countFiles,
	)

	// Symlink target
	s.AddTool(
		mcp.NewTool("promptlint_symlink_target",
			mcp.WithDescription("Report where a symbolic link points without following it"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Library-relative path of the link")),
		),
		h.symlinkTarget,
	)

	// Guide
	s.AddTool(
		mcp.NewTool("promptlint_guide",
			mcp.WithDescription("Get help/guide content for promptlint commands"),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g. 'validate', 'sandbox') or empty for index")),
		),
		h.getGuide,
	)
}
