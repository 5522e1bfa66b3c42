// Package parser loads JSON and YAML documents into the tree form consumed
// by the navigate package.
//
// Documents can be read from a local file, an HTTP(S) URL, an io.Reader, or
// a byte slice. The document root must be an object; any other root shape is
// rejected with a [naverrors.ParseError].
//
// The simplest entry point is the functional options API:
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("orders.json"))
//	if err != nil {
//	    return err
//	}
//	collector, err := navigate.CollectLeaves(result.Data, "items.sku")
//
// For repeated use, configure a Parser once and reuse it:
//
//	p := parser.New()
//	p.Logger = parser.NewSlogAdapter(slog.Default())
//	result, err := p.Parse("https://example.com/orders.yaml")
package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/jsonnav"
	"github.com/erraggy/jsonnav/naverrors"
)

// defaultMaxFileSize caps document size at 10MB unless overridden.
const defaultMaxFileSize = 10 * 1024 * 1024

// Parser loads and decodes documents for navigation.
type Parser struct {
	// UserAgent is the User-Agent string used when fetching URLs.
	// Defaults to "jsonnav/vX.Y.Z" if not set.
	UserAgent string
	// HTTPClient is the HTTP client used for fetching URLs.
	// If nil, a default client with a 30-second timeout is created.
	HTTPClient *http.Client
	// MaxFileSize is the maximum document size in bytes.
	// Default: 10MB. Applies to files, URLs, and readers alike.
	MaxFileSize int64
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger Logger
}

// New creates a new Parser instance with default settings.
func New() *Parser {
	return &Parser{
		UserAgent: jsonnav.UserAgent(),
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// maxSize returns the effective document size limit.
func (p *Parser) maxSize() int64 {
	if p.MaxFileSize > 0 {
		return p.MaxFileSize
	}
	return defaultMaxFileSize
}

// SourceFormat represents the format of the source document.
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult contains the decoded document and load metadata.
//
// Callers should treat the Data tree as read-only once handed to a
// navigator; the navigate package never mutates it, but shared collectors
// may hold references into it.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// Note: if the source was not a file path, this will be set to the name
	// of the method and end in '.yaml' or '.json' based on the detected format
	SourcePath string
	// SourceFormat is the format of the source (JSON or YAML)
	SourceFormat SourceFormat
	// Data is the decoded document tree rooted at an object
	Data map[string]any
	// LoadTime is the time taken to load the source data (file, URL, etc.)
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
}

// Parse parses a document from a file path or URL.
// For URLs (http:// or https://), the content is fetched and parsed.
// For local files, the file is read and parsed.
func (p *Parser) Parse(docPath string) (*ParseResult, error) {
	var data []byte
	var err error
	var format SourceFormat

	loadStart := time.Now()
	if isURL(docPath) {
		var contentType string
		data, contentType, err = p.fetchURL(docPath)
		if err != nil {
			return nil, err
		}
		format = detectFormatFromURL(docPath, contentType)
	} else {
		data, err = os.ReadFile(docPath)
		if err != nil {
			return nil, fmt.Errorf("parser: failed to read file: %w", err)
		}
		if int64(len(data)) > p.maxSize() {
			return nil, fmt.Errorf("parser: file size %d exceeds limit %d", len(data), p.maxSize())
		}
		format = detectFormatFromPath(docPath)
	}
	loadTime := time.Since(loadStart)

	p.log().Debug("document loaded", "path", docPath, "bytes", len(data))

	res, err := p.decode(data, format)
	if err != nil {
		return nil, err
	}
	res.SourcePath = docPath
	res.LoadTime = loadTime
	res.SourceSize = int64(len(data))
	return res, nil
}

// ParseReader parses a document from an io.Reader.
// Note: since there is no actual source path, ParseResult.SourcePath is set
// to ParseReader.yaml or ParseReader.json based on the detected format.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(io.LimitReader(r, p.maxSize()+1))
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	if int64(len(data)) > p.maxSize() {
		return nil, fmt.Errorf("parser: document size exceeds limit %d", p.maxSize())
	}

	res, err := p.decode(data, SourceFormatUnknown)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	res.SourceSize = int64(len(data))
	if res.SourceFormat == SourceFormatJSON {
		res.SourcePath = "ParseReader.json"
	} else {
		res.SourcePath = "ParseReader.yaml"
	}
	return res, nil
}

// ParseBytes parses a document from a byte slice.
// Note: since there is no actual source path, ParseResult.SourcePath is set
// to ParseBytes.yaml or ParseBytes.json based on the detected format.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	res, err := p.decode(data, SourceFormatUnknown)
	if err != nil {
		return nil, err
	}
	res.SourceSize = int64(len(data))
	if res.SourceFormat == SourceFormatJSON {
		res.SourcePath = "ParseBytes.json"
	} else {
		res.SourcePath = "ParseBytes.yaml"
	}
	return res, nil
}

// decode parses raw bytes into a document tree. When format is unknown it is
// detected from the content. JSON input decodes with encoding/json directly;
// everything else goes through the YAML decoder.
func (p *Parser) decode(data []byte, format SourceFormat) (*ParseResult, error) {
	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}

	var root map[string]any
	switch format {
	case SourceFormatJSON:
		var decoded any
		if err := json.Unmarshal(data, &decoded); err != nil {
			return nil, &naverrors.ParseError{
				Message: "invalid JSON document",
				Cause:   err,
			}
		}
		obj, ok := decoded.(map[string]any)
		if !ok {
			return nil, &naverrors.ParseError{
				Message: fmt.Sprintf("document root must be an object, got %T", decoded),
			}
		}
		root = obj
	default:
		var decoded any
		if err := yaml.Unmarshal(data, &decoded); err != nil {
			return nil, &naverrors.ParseError{
				Message: "invalid YAML document",
				Cause:   err,
			}
		}
		obj, ok := decoded.(map[string]any)
		if !ok {
			return nil, &naverrors.ParseError{
				Message: fmt.Sprintf("document root must be an object, got %T", decoded),
			}
		}
		root = obj
		format = SourceFormatYAML
	}

	return &ParseResult{
		SourceFormat: format,
		Data:         root,
	}, nil
}
