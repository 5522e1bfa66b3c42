package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// MaxInlineSize caps inline document content in bytes.
	MaxInlineSize int64
	// MaxFileSize caps file and URL document size in bytes.
	MaxFileSize int64
	// ResultLimit is the default result page size for the extract tool.
	ResultLimit int
	// MaxLimit is the hard ceiling on any requested page size.
	MaxLimit int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from JSONNAV_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxInlineSize: envInt64("JSONNAV_MAX_INLINE_SIZE", 10*1024*1024),
		MaxFileSize:   envInt64("JSONNAV_MAX_FILE_SIZE", 10*1024*1024),
		ResultLimit:   envInt("JSONNAV_RESULT_LIMIT", 100),
		MaxLimit:      envInt("JSONNAV_MAX_LIMIT", 1000),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
