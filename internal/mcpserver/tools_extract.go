package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/jsonnav/navigate"
)

type extractInput struct {
	Doc    docInput `json:"doc"              jsonschema:"The document to extract from"`
	Paths  []string `json:"paths"            jsonschema:"Dot-delimited paths to extract, e.g. order.items.sku"`
	Offset int      `json:"offset,omitempty" jsonschema:"Number of matches to skip for pagination"`
	Limit  int      `json:"limit,omitempty"  jsonschema:"Maximum matches to return (default 100)"`
}

type extractMatch struct {
	Path     string `json:"path"`
	Location string `json:"location"`
	Index    int    `json:"index"`
	Value    any    `json:"value"`
}

type extractOutput struct {
	Source     string         `json:"source"`
	Format     string         `json:"format"`
	TotalCount int            `json:"total_count"`
	Matches    []extractMatch `json:"matches,omitempty"`
}

func handleExtract(_ context.Context, _ *mcp.CallToolRequest, input extractInput) (*mcp.CallToolResult, extractOutput, error) {
	result, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), extractOutput{}, nil
	}

	collector, err := navigate.CollectLeaves(result.Data, input.Paths...)
	if err != nil {
		return errResult(err), extractOutput{}, nil
	}

	output := extractOutput{
		Source:     result.SourcePath,
		Format:     string(result.SourceFormat),
		TotalCount: len(collector.All),
	}
	for _, leaf := range paginate(collector.All, input.Offset, input.Limit) {
		output.Matches = append(output.Matches, extractMatch{
			Path:     leaf.Path,
			Location: leaf.Location,
			Index:    leaf.Index,
			Value:    leaf.Value,
		})
	}

	return nil, output, nil
}
