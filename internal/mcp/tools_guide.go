// tools_guide.go implements the MCP tool for accessing help content.
//
// Exposing the embedded guide over MCP lets a connected LLM read how the
// sandbox decides and what each command checks without leaving the
// session or touching the library itself.

package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jpl-au/promptlint/guide"
	"github.com/jpl-au/promptlint/internal/log"
)

// getGuide handles promptlint_guide tool calls.
func (h *handlers) getGuide(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	topic := getString(req, "topic", "")

	content, err := guide.Get(topic)
	log.Event("mcp:guide", "read").Author("mcp").Detail("topic", topic).Write(err)
	if err == nil {
		return mcp.NewToolResultText(content), nil
	}

	// Unknown topic: answer with the catalogue instead of a bare error.
	available, listErr := guide.List()
	if listErr != nil {
		return nil, fmt.Errorf("listing guides: %w", listErr)
	}
	return jsonResult(map[string]any{
		"error":            err.Error(),
		"available_topics": available,
	})
}
