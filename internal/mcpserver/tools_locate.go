package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/jsonnav/navigate"
)

type locateInput struct {
	Doc   docInput `json:"doc"   jsonschema:"The document to check"`
	Paths []string `json:"paths" jsonschema:"Dot-delimited paths to locate, e.g. order.customer.name"`
}

type locateMiss struct {
	Path      string `json:"path"`
	MissingAt string `json:"missing_at"`
}

type locateOutput struct {
	Source  string       `json:"source"`
	Format  string       `json:"format"`
	Found   []string     `json:"found,omitempty"`
	Missing []locateMiss `json:"missing,omitempty"`
}

func handleLocate(_ context.Context, _ *mcp.CallToolRequest, input locateInput) (*mcp.CallToolResult, locateOutput, error) {
	result, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), locateOutput{}, nil
	}

	locator, err := navigate.LocatePaths(result.Data, input.Paths...)
	if err != nil {
		return errResult(err), locateOutput{}, nil
	}

	output := locateOutput{
		Source: result.SourcePath,
		Format: string(result.SourceFormat),
		Found:  locator.Found,
	}
	for _, miss := range locator.Missing {
		output.Missing = append(output.Missing, locateMiss{
			Path:      miss.Path,
			MissingAt: miss.MissingAt,
		})
	}

	return nil, output, nil
}
