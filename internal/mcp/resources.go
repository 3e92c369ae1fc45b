// resources.go implements MCP resource handlers for library file access.
//
// MCP resources provide read-only access to library files via URI
// schemes, enabling LLM clients to reference content without using
// tools. This is useful for context loading where the LLM needs file
// content but isn't performing an action.
//
// Design: Resource URIs follow the pattern promptlint://library/{path}.
// The embedded path goes through the same sandbox as every other
// request, so a URI naming a path outside the allow-list resolves to a
// denial, not to content.

package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jpl-au/promptlint/internal/log"
)

var (
	// ErrInvalidURI indicates a malformed resource URI, helping clients
	// debug URI construction issues.
	ErrInvalidURI = errors.New("invalid URI")
	// ErrEmptyPath indicates a missing file path in a resource URI.
	ErrEmptyPath = errors.New("empty file path")
)

// readLibraryFile handles promptlint://library/{path} resource requests.
func (h *handlers) readLibraryFile(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) { //nolint:revive // ctx for future use
	path, err := parseLibraryURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	content, err := h.acc.ReadText(path, h.root)
	log.Event("mcp:resource", "read").Author("mcp").Path(path).Write(err)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     content,
		},
	}, nil
}

// parseLibraryURI extracts the library-relative path from a resource URI.
// Supports: promptlint://library/{path}
func parseLibraryURI(uri string) (string, error) {
	const prefix = "promptlint://library/"
	if !strings.HasPrefix(uri, prefix) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}

	path := strings.TrimPrefix(uri, prefix)
	if path == "" {
		return "", ErrEmptyPath
	}
	return path, nil
}
