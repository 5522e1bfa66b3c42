package pathutil

import "strings"

// SplitPath tokenizes a dot-delimited navigation path into segments.
// Empty tokens produced by leading, trailing, or doubled dots are dropped,
// so "a..b." yields ["a", "b"].
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	parts := strings.Split(path, ".")
	segments := parts[:0]
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	if len(segments) == 0 {
		return nil
	}
	return segments
}
