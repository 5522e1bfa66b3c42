package parser

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/jsonnav/naverrors"
)

const sampleJSON = `{"order": {"id": "ord-1", "items": [{"sku": "A-1"}]}}`

const sampleYAML = `order:
  id: ord-1
  items:
    - sku: A-1
`

func writeTempDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseBytesJSON(t *testing.T) {
	p := New()
	result, err := p.ParseBytes([]byte(sampleJSON))
	require.NoError(t, err)

	assert.Equal(t, SourceFormatJSON, result.SourceFormat)
	assert.Equal(t, "ParseBytes.json", result.SourcePath)
	assert.Equal(t, int64(len(sampleJSON)), result.SourceSize)

	order, ok := result.Data["order"].(map[string]any)
	require.True(t, ok, "expected object at 'order', got %T", result.Data["order"])
	assert.Equal(t, "ord-1", order["id"])
}

func TestParseBytesYAML(t *testing.T) {
	p := New()
	result, err := p.ParseBytes([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, SourceFormatYAML, result.SourceFormat)
	assert.Equal(t, "ParseBytes.yaml", result.SourcePath)

	order, ok := result.Data["order"].(map[string]any)
	require.True(t, ok)
	items, ok := order["items"].([]any)
	require.True(t, ok, "expected array at 'order.items', got %T", order["items"])
	assert.Len(t, items, 1)
}

func TestParseBytesInvalidJSON(t *testing.T) {
	p := New()
	result, err := p.ParseBytes([]byte(`{"broken": `))
	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, naverrors.ErrParse)
}

func TestParseBytesNonObjectRoot(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"JSON array", `[1, 2, 3]`},
		{"JSON scalar", `42`},
		{"YAML sequence", "- a\n- b\n"},
		{"YAML scalar", "just a string\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			result, err := p.ParseBytes([]byte(tt.data))
			assert.Nil(t, result)
			require.Error(t, err)
			var parseErr *naverrors.ParseError
			assert.ErrorAs(t, err, &parseErr)
			assert.Contains(t, err.Error(), "must be an object")
		})
	}
}

func TestParseFile(t *testing.T) {
	path := writeTempDoc(t, "orders.json", sampleJSON)

	p := New()
	result, err := p.Parse(path)
	require.NoError(t, err)
	assert.Equal(t, path, result.SourcePath)
	assert.Equal(t, SourceFormatJSON, result.SourceFormat)
	assert.Equal(t, int64(len(sampleJSON)), result.SourceSize)
	assert.GreaterOrEqual(t, result.LoadTime, time.Duration(0))
}

func TestParseFileYAMLExtension(t *testing.T) {
	path := writeTempDoc(t, "orders.yaml", sampleYAML)

	p := New()
	result, err := p.Parse(path)
	require.NoError(t, err)
	assert.Equal(t, SourceFormatYAML, result.SourceFormat)
}

func TestParseFileNotFound(t *testing.T) {
	p := New()
	result, err := p.Parse(filepath.Join(t.TempDir(), "missing.json"))
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParseFileSizeLimit(t *testing.T) {
	path := writeTempDoc(t, "orders.json", sampleJSON)

	p := New()
	p.MaxFileSize = 8
	result, err := p.Parse(path)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds limit")
}

func TestParseURL(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleJSON))
	}))
	defer server.Close()

	p := New()
	result, err := p.Parse(server.URL + "/orders")
	require.NoError(t, err)
	assert.Equal(t, SourceFormatJSON, result.SourceFormat)
	assert.Contains(t, gotUserAgent, "jsonnav/")
}

func TestParseURLHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	p := New()
	result, err := p.Parse(server.URL + "/orders.json")
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestParseReader(t *testing.T) {
	p := New()
	result, err := p.ParseReader(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "ParseReader.yaml", result.SourcePath)
	assert.Equal(t, SourceFormatYAML, result.SourceFormat)
}

func TestParseWithOptionsFilePath(t *testing.T) {
	path := writeTempDoc(t, "orders.json", sampleJSON)

	result, err := ParseWithOptions(WithFilePath(path))
	require.NoError(t, err)
	assert.Equal(t, path, result.SourcePath)
}

func TestParseWithOptionsBytesAndSourceName(t *testing.T) {
	result, err := ParseWithOptions(
		WithBytes([]byte(sampleJSON)),
		WithSourceName("inline-orders"),
	)
	require.NoError(t, err)
	assert.Equal(t, "inline-orders", result.SourcePath)
}

func TestParseWithOptionsNoSource(t *testing.T) {
	result, err := ParseWithOptions()
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must specify an input source")
}

func TestParseWithOptionsMultipleSources(t *testing.T) {
	result, err := ParseWithOptions(
		WithBytes([]byte(sampleJSON)),
		WithReader(strings.NewReader(sampleJSON)),
	)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one input source")
}

func TestParseWithOptionsNilReader(t *testing.T) {
	_, err := ParseWithOptions(WithReader(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reader cannot be nil")
}

func TestParseWithOptionsNegativeMaxFileSize(t *testing.T) {
	_, err := ParseWithOptions(
		WithBytes([]byte(sampleJSON)),
		WithMaxFileSize(-1),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be negative")
}
