// tools_check.go implements MCP tools for library validation.
//
// Separated from server.go to isolate the check-oriented tool
// implementations. These tools mirror the CLI commands (validate,
// report, drift) but return structured JSON for LLM consumption rather
// than human-readable text.

package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jpl-au/promptlint/internal/drift"
	"github.com/jpl-au/promptlint/internal/lint"
	"github.com/jpl-au/promptlint/internal/log"
	"github.com/jpl-au/promptlint/internal/manifest"
	"github.com/jpl-au/promptlint/internal/report"
)

// validateLibrary handles promptlint_validate tool calls.
func (h *handlers) validateLibrary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	strict := getBool(req, "strict", h.strict)

	var err error
	l := log.Event("mcp:validate", "validate").Author("mcp").Detail("strict", strict)
	defer func() { l.Write(err) }()

	r, err := lint.Run(h.acc, h.root, lint.Options{Strict: strict})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	l.Detail("findings", len(r.Findings))
	return jsonResult(r)
}

// reportLibrary handles promptlint_report tool calls.
func (h *handlers) reportLibrary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	var err error
	l := log.Event("mcp:report", "report").Author("mcp")
	defer func() { l.Write(err) }()

	r, err := report.Build(h.acc, h.root)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(r)
}

// driftLibrary handles promptlint_drift tool calls.
func (h *handlers) driftLibrary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	var err error
	l := log.Event("mcp:drift", "drift").Author("mcp")
	defer func() { l.Write(err) }()

	m, err := manifest.Load(h.acc, h.root)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	files, err := h.acc.ContentFiles(h.root)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	d, err := drift.Compute(m.Files, files)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	l.Detail("untracked", len(d.Untracked)).Detail("missing", len(d.Missing))
	return jsonResult(d)
}
