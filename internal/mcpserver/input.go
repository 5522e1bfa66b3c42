package mcpserver

import (
	"fmt"
	"strings"

	"github.com/erraggy/jsonnav/parser"
)

// docInput represents the three ways a document can be provided to a tool.
// Exactly one of File, URL, or Content must be set.
type docInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a JSON or YAML document on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch a JSON or YAML document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content (JSON or YAML)"`
}

// resolve parses the document from whichever input was provided.
func (d docInput) resolve() (*parser.ParseResult, error) {
	count := 0
	if d.File != "" {
		count++
	}
	if d.URL != "" {
		count++
	}
	if d.Content != "" {
		count++
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file, url, or content must be provided (got %d)", count)
	}

	if d.Content != "" && int64(len(d.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set JSONNAV_MAX_INLINE_SIZE to increase",
			len(d.Content), cfg.MaxInlineSize)
	}

	opts := []parser.Option{parser.WithMaxFileSize(cfg.MaxFileSize)}
	switch {
	case d.File != "":
		opts = append(opts, parser.WithFilePath(d.File))
	case d.URL != "":
		opts = append(opts, parser.WithFilePath(d.URL), parser.WithHTTPClient(newGuardedHTTPClient()))
	case d.Content != "":
		opts = append(opts, parser.WithReader(strings.NewReader(d.Content)))
	}

	return parser.ParseWithOptions(opts...)
}
