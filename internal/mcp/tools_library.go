// tools_library.go implements MCP tools for reading library content.
//
// Every tool here funnels its path parameter through the accessor, so
// the sandbox decides before any file is touched. Denials come back as
// MCP error results carrying the denial message, and the audit log
// records the denial reason via the shared log builder.

package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jpl-au/promptlint/internal/access"
	"github.com/jpl-au/promptlint/internal/log"
)

// readFile handles promptlint_read tool calls.
func (h *handlers) readFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	path := getString(req, "path", "")
	if path == "" {
		return mcp.NewToolResultError("path is required"), nil
	}

	var err error
	l := log.Event("mcp:read", "read").Author("mcp").Path(path)
	defer func() { l.Write(err) }()

	content, err := h.acc.ReadText(path, h.root)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(content), nil
}

// listDir handles promptlint_ls tool calls.
func (h *handlers) listDir(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	dir := getString(req, "dir", "")
	if dir == "" {
		return mcp.NewToolResultError("dir is required"), nil
	}

	var err error
	l := log.Event("mcp:ls", "list").Author("mcp").Path(dir)
	defer func() { l.Write(err) }()

	entries, err := h.acc.List(dir, h.root)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if entries == nil {
		entries = []access.Entry{}
	}

	l.Detail("count", len(entries))
	return jsonResult(map[string]any{"dir": dir, "entries": entries})
}

// pathExists handles promptlint_exists tool calls.
func (h *handlers) pathExists(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	path := getString(req, "path", "")
	if path == "" {
		return mcp.NewToolResultError("path is required"), nil
	}

	exists := h.acc.Exists(path, h.root)
	log.Event("mcp:exists", "stat").Author("mcp").Path(path).Detail("exists", exists).Write(nil)

	return jsonResult(map[string]any{"path": path, "exists": exists})
}

// countFiles handles promptlint_count tool calls.
func (h *handlers) countFiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	dir := getString(req, "dir", "")
	pattern := getString(req, "pattern", "")
	if dir == "" || pattern == "" {
		return mcp.NewToolResultError("dir and pattern are required"), nil
	}

	var err error
	l := log.Event("mcp:count", "count").Author("mcp").Path(dir).Detail("pattern", pattern)
	defer func() { l.Write(err) }()

	n, err := h.acc.CountFiles(dir, pattern, h.root)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	l.Detail("count", n)
	return jsonResult(map[string]any{"dir": dir, "pattern": pattern, "count": n})
}

// symlinkTarget handles promptlint_symlink_target tool calls.
//
// The target is advisory: it is reported as written in the link, and a
// null target means the path is not a readable link. Nothing here
// follows the link.
func (h *handlers) symlinkTarget(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	path := getString(req, "path", "")
	if path == "" {
		return mcp.NewToolResultError("path is required"), nil
	}

	target := h.acc.SymlinkTarget(path, h.root)
	log.Event("mcp:symlink_target", "stat").Author("mcp").Path(path).Write(nil)

	result := map[string]any{"path": path, "target": nil}
	if target != "" {
		result["target"] = target
	}
	return jsonResult(result)
}
