// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"testing"
)

// Tree decodes a JSON object literal into the map form the navigator
// consumes. The test fails immediately on malformed input or a non-object
// root.
func Tree(t *testing.T, jsonText string) map[string]any {
	t.Helper()
	var root map[string]any
	if err := json.Unmarshal([]byte(jsonText), &root); err != nil {
		t.Fatalf("failed to decode fixture tree: %v", err)
	}
	return root
}

// OrderDocument returns a small order document exercising objects, arrays,
// and scalar leaves. Shared by tests across packages.
func OrderDocument(t *testing.T) map[string]any {
	t.Helper()
	return Tree(t, `{
		"id": "ord-1001",
		"customer": {
			"name": "Ada",
			"address": {"city": "Oslo", "zip": "0150"}
		},
		"items": [
			{"sku": "A-1", "qty": 2},
			{"sku": "B-7", "qty": 1}
		],
		"tags": ["priority", "gift"]
	}`)
}
