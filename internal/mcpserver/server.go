// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes jsonnav capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/jsonnav"
)

const serverInstructions = `jsonnav MCP server — extracts and locates values in JSON and YAML documents by dot-delimited path.

Paths are dot-delimited field names, e.g. "order.items.sku". A path segment
that lands on an array fans out across its elements, so one path can match
many values. Arrays nested directly inside arrays are rejected.

Configuration via environment variables set in your MCP client config:
- JSONNAV_MAX_INLINE_SIZE (default: 10MiB) — inline content size limit
- JSONNAV_MAX_FILE_SIZE (default: 10MiB) — file/URL document size limit
- JSONNAV_RESULT_LIMIT (default: 100) — default extract result page size
- JSONNAV_MAX_LIMIT (default: 1000) — hard ceiling on any requested page size`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "jsonnav", Version: jsonnav.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract",
		Description: "Extract values from a JSON or YAML document by dot-delimited paths. A path crossing an array fans out across its elements, so one path can return many values. Returns each match with its rendered location (including array indices). Use offset/limit to paginate large result sets.",
	}, handleExtract)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "locate",
		Description: "Check which dot-delimited paths exist in a JSON or YAML document. Returns found paths and, for each miss, the segment at which the document ended. A path fanning out across an array counts as missing if any element lacks the remaining segments.",
	}, handleLocate)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ResultLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ResultLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
