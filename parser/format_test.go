package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{-1, "-1 B"},
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
		{3 * 1024 * 1024 * 1024, "3.0 GiB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatBytes(tt.size))
	}
}

func TestDetectFormatFromPath(t *testing.T) {
	assert.Equal(t, SourceFormatJSON, detectFormatFromPath("docs/orders.json"))
	assert.Equal(t, SourceFormatYAML, detectFormatFromPath("orders.yaml"))
	assert.Equal(t, SourceFormatYAML, detectFormatFromPath("orders.yml"))
	assert.Equal(t, SourceFormatUnknown, detectFormatFromPath("orders.txt"))
	assert.Equal(t, SourceFormatUnknown, detectFormatFromPath("orders"))
}

func TestDetectFormatFromContent(t *testing.T) {
	assert.Equal(t, SourceFormatJSON, detectFormatFromContent([]byte(`  {"a": 1}`)))
	assert.Equal(t, SourceFormatJSON, detectFormatFromContent([]byte("\n[1, 2]")))
	assert.Equal(t, SourceFormatYAML, detectFormatFromContent([]byte("a: 1\n")))
	assert.Equal(t, SourceFormatUnknown, detectFormatFromContent([]byte("   ")))
	assert.Equal(t, SourceFormatUnknown, detectFormatFromContent(nil))
}

func TestDetectFormatFromURL(t *testing.T) {
	assert.Equal(t, SourceFormatJSON, detectFormatFromURL("https://example.com/orders.json", ""))
	assert.Equal(t, SourceFormatYAML, detectFormatFromURL("https://example.com/orders.yaml", ""))
	assert.Equal(t, SourceFormatJSON, detectFormatFromURL("https://example.com/orders", "application/json; charset=utf-8"))
	assert.Equal(t, SourceFormatYAML, detectFormatFromURL("https://example.com/orders", "text/yaml"))
	assert.Equal(t, SourceFormatUnknown, detectFormatFromURL("https://example.com/orders", "text/plain"))
}

func TestIsURL(t *testing.T) {
	assert.True(t, isURL("http://example.com/doc.json"))
	assert.True(t, isURL("https://example.com/doc.json"))
	assert.False(t, isURL("/tmp/doc.json"))
	assert.False(t, isURL("doc.json"))
}
